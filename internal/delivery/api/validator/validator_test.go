package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=5"`
	Kind    string `query:"kind" validate:"omitempty,oneof=syllabus note pyq"`
}

func TestValidator_Valid(t *testing.T) {
	err := New().Validate(&sample{Email: "a@b.edu", Message: "hello there", Kind: "note"})

	assert.NoError(t, err)
}

func TestValidator_FieldErrorsUseTagNames(t *testing.T) {
	err := New().Validate(&sample{Email: "nope", Message: "hi", Kind: "video"})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, "email", fields["email"])
	assert.Equal(t, "min=5", fields["message"])
	assert.Equal(t, "oneof=syllabus note pyq", fields["kind"])
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}
