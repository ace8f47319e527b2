package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Email  string `validate:"required,email"`
	Gender string `validate:"omitempty,oneof=male female"`
	Born   string `validate:"omitempty,datetime=2006-01-02"`
}

func TestValidatePasses(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sample{Email: "doc@example.com", Gender: "female", Born: "1990-06-15"})
	assert.NoError(t, err)
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sample{Gender: "other", Born: "15/06/1990"})
	assert.Error(t, err)

	fields := v.FormatValidationErrors(err)
	assert.Equal(t, "Email is required", fields["Email"])
	assert.Equal(t, "Gender must be one of: male female", fields["Gender"])
	assert.Equal(t, "Born must match format 2006-01-02", fields["Born"])
}

func TestFormatValidationErrorsIgnoresOtherErrors(t *testing.T) {
	v := NewValidator()

	fields := v.FormatValidationErrors(assert.AnError)
	assert.Empty(t, fields)
}
