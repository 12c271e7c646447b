package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Title string `validate:"required"`
}

func TestValidate(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(sample{Title: "like glue"}))
	assert.Error(t, v.Validate(sample{}))
}
