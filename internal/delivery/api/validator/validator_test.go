package validator

import (
	"net/http"
	"testing"

	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/errors"
	"fittrack/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Validate(t *testing.T) {
	v := New()

	t.Run("valid input", func(t *testing.T) {
		err := v.Validate(&usecase.AddUserInput{Username: "alice", Email: "alice@example.com", Password: "pw"})
		assert.NoError(t, err)
	})

	t.Run("reports json field names", func(t *testing.T) {
		err := v.Validate(&usecase.AddUserInput{Email: "not-an-email", Password: "pw"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, []FieldError{
			{Field: "username", Rule: "required"},
			{Field: "email", Rule: "email"},
		}, verr.Fields)
		assert.Equal(t, http.StatusBadRequest, verr.HTTPCode())
		assert.Equal(t, "validation failed: username required, email email", verr.Details())
	})

	t.Run("nil pointers skip optional rules", func(t *testing.T) {
		assert.NoError(t, v.Validate(&usecase.UpdateUserInput{}))

		bad := ""
		err := v.Validate(&usecase.UpdateUserInput{Username: &bad})

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, []FieldError{{Field: "username", Rule: "min", Param: "1"}}, verr.Fields)
	})
}
