package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMongo    = "mongo"
)

type Config struct {
	Port            string
	Env             string
	DBDriver        string
	PostgresConnStr string
	SQLitePath      string
	MongoURI        string
	MongoDatabase   string
	PostFields      []string
}

// Load reads the configuration from the environment, after loading a .env file if one exists
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		DBDriver:        strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
		PostgresConnStr: getEnv("POSTGRES_CONN_STR", ""),
		SQLitePath:      getEnv("SQLITE_PATH", "blog.db"),
		MongoURI:        getEnv("MONGO_URI", ""),
		MongoDatabase:   getEnv("MONGO_DATABASE", "blog"),
		PostFields:      splitList(getEnv("POST_FIELDS", "title,author")),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
