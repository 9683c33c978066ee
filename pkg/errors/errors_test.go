package errors_test

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/stable/endpoints/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestUnknownKeyError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.UnknownKeyError{Key: "deleteProfile"}
		assert.Equal(t, `unknown endpoint key "deleteProfile"`, err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrUnknownKey))
		assert.False(t, errors.Is(err, pkgerrors.ErrShapeMismatch))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewUnknownKeyError("unknownKey")
		assert.True(t, pkgerrors.IsUnknownKey(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		wrapped := fmt.Errorf("resolve: %w", pkgerrors.NewUnknownKeyError("x"))
		assert.True(t, pkgerrors.IsUnknownKey(wrapped))

		var target *pkgerrors.UnknownKeyError
		require.True(t, errors.As(wrapped, &target))
		assert.Equal(t, "x", target.Key)
	})
}

func TestShapeError(t *testing.T) {
	err := pkgerrors.NewShapeError("message", "static", "parameterized")
	assert.Equal(t, `endpoint "message" is static, resolved as parameterized`, err.Error())
	assert.Equal(t, "static", err.Has)
	assert.Equal(t, "parameterized", err.Requested)
	assert.True(t, pkgerrors.IsShapeMismatch(err))
	assert.False(t, pkgerrors.IsUnknownKey(err))
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "id",
			Message: "cannot be empty",
		}
		assert.Equal(t, "validation failed for field id: cannot be empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "bad input"}
		assert.Equal(t, "validation failed: bad input", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("wrap", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapValidation("id", "x", nil))

		err := pkgerrors.WrapValidation("id", "x", errors.New("not a uuid"))
		require.Error(t, err)
		assert.Equal(t, "validation failed for field id: not a uuid", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestConfigError(t *testing.T) {
	t.Run("with component and cause", func(t *testing.T) {
		cause := errors.New("missing scheme")
		err := pkgerrors.NewConfigError("base_url", "invalid base address", cause)
		assert.Equal(t, "configuration error in base_url: invalid base address: missing scheme", err.Error())
		assert.ErrorIs(t, err, cause)
		assert.True(t, pkgerrors.IsConfigError(err))
	})

	t.Run("without component", func(t *testing.T) {
		err := &pkgerrors.ConfigError{Message: "empty"}
		assert.Equal(t, "configuration error: empty", err.Error())
		assert.Nil(t, err.Unwrap())
	})
}
