package errs_test

import (
	"errors"
	"testing"

	"github.com/riosgabriel/taq-u-app/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("customerId", "123")

		assert.Equal(t, "customerId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("customerId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: customerId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestEmailAlreadyExistsError(t *testing.T) {
	t.Run("NewEmailAlreadyExistsError", func(t *testing.T) {
		err := errs.NewEmailAlreadyExistsError("taro@example.com")

		assert.Equal(t, "taro@example.com", err.Email)
		require.NoError(t, err.Cause)
		assert.Equal(t, "email already exists: taro@example.com", err.Error())
		assert.Equal(t, errs.ErrEmailAlreadyExists, err.Unwrap())
	})

	t.Run("NewEmailAlreadyExistsErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicated key not allowed")
		err := errs.NewEmailAlreadyExistsErrorWithCause("taro@example.com", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"email already exists: taro@example.com (cause: duplicated key not allowed)",
			err.Error())
		assert.Equal(t, errs.ErrEmailAlreadyExists, err.Unwrap())
	})
}

func TestCustomerNotFoundError(t *testing.T) {
	err := errs.NewCustomerNotFoundError("a1b2c3")

	assert.Equal(t, "a1b2c3", err.CustomerID)
	assert.Equal(t, "customer not found: a1b2c3", err.Error())
	assert.Equal(t, errs.ErrCustomerNotFound, err.Unwrap())
}

func TestUnknownError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection reset by peer")
		err := errs.NewUnknownError(cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "unknown failure (cause: connection reset by peer)", err.Error())
		assert.Equal(t, errs.ErrUnknown, err.Unwrap())
	})

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewUnknownError(nil)
		assert.Equal(t, "unknown failure", err.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("name")

		assert.Equal(t, "name", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: name", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("name", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: name (cause: missing required field)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("sanitize removes newlines", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("hello\nworld")
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "customer not found", errs.ErrCustomerNotFound.Error())
		assert.Equal(t, "email already exists", errs.ErrEmailAlreadyExists.Error())
		assert.Equal(t, "unknown failure", errs.ErrUnknown.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("driverId", "42"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewCustomerNotFoundError("42"), errs.ErrCustomerNotFound)
		require.ErrorIs(t, errs.NewEmailAlreadyExistsError("a@b.c"), errs.ErrEmailAlreadyExists)
		require.ErrorIs(t, errs.NewUnknownError(errors.New("boom")), errs.ErrUnknown)
		require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewValueIsInvalidError("email"), errs.ErrValueIsInvalid)
	})
}
