package customer_test

import (
	"testing"

	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/customer"
	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/kernel"
	"github.com/riosgabriel/taq-u-app/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("should create a valid customer", func(t *testing.T) {
		c, err := customer.NewCustomer("Taro", "taro@example.com", "090-0000", "Shibuya")

		require.NoError(t, err)
		assert.NoError(t, c.Validate())
		assert.NoError(t, c.ID().Validate())
		assert.Equal(t, "Taro", c.Name())
		assert.Equal(t, "taro@example.com", c.Email())
		assert.Equal(t, "090-0000", c.Phone())
		assert.Equal(t, "Shibuya", c.Address())
	})

	t.Run("should allow empty phone", func(t *testing.T) {
		c, err := customer.NewCustomer("Taro", "taro@example.com", "", "Shibuya")

		require.NoError(t, err)
		assert.Empty(t, c.Phone())
	})

	t.Run("should assign distinct identifiers", func(t *testing.T) {
		c1, err := customer.NewCustomer("Taro", "taro@example.com", "", "Shibuya")
		require.NoError(t, err)
		c2, err := customer.NewCustomer("Taro", "taro2@example.com", "", "Shibuya")
		require.NoError(t, err)

		assert.False(t, c1.IsEqual(c2))
	})

	t.Run("should reject missing required fields", func(t *testing.T) {
		testCases := []struct {
			name          string
			customerName  string
			email         string
			address       string
		}{
			{"empty name", "", "taro@example.com", "Shibuya"},
			{"empty email", "Taro", "", "Shibuya"},
			{"empty address", "Taro", "taro@example.com", ""},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := customer.NewCustomer(tc.customerName, tc.email, "", tc.address)
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsRequired)
			})
		}
	})
}

func TestRestoreCustomer(t *testing.T) {
	t.Run("should restore a customer from persisted state", func(t *testing.T) {
		id := kernel.NewUUID()
		c, err := customer.RestoreCustomer(id, "Taro", "taro@example.com", "090-0000", "Shibuya")

		require.NoError(t, err)
		assert.True(t, c.ID().IsEqual(id))
		assert.NoError(t, c.Validate())
	})

	t.Run("should reject a zero identifier", func(t *testing.T) {
		_, err := customer.RestoreCustomer(kernel.UUID{}, "Taro", "taro@example.com", "", "Shibuya")
		require.Error(t, err)
	})
}

func TestCustomerValidate(t *testing.T) {
	t.Run("directly instantiated customer is invalid", func(t *testing.T) {
		var c customer.Customer
		require.ErrorIs(t, c.Validate(), customer.ErrCustomerIsNotConstructed)
	})
}
