package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/riosgabriel/taq-u-app/internal/core/application/services"
	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/customer"
	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/kernel"
	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/order"
	"github.com/riosgabriel/taq-u-app/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func validOrderInput(customerID kernel.UUID, packageCount int) services.CreateOrderInput {
	packages := make([]services.CreatePackageInput, 0, packageCount)
	for range packageCount {
		packages = append(packages, services.CreatePackageInput{
			WeightKg:    1.5,
			Dimensions:  "30x20x10",
			Description: "books",
			Insured:     true,
		})
	}

	return services.CreateOrderInput{
		CustomerID:      customerID,
		PickupAddress:   "Shibuya 1-1",
		DeliveryAddress: "Meguro 2-2",
		PickupDate:      time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		Priority:        order.PriorityNormal,
		Packages:        packages,
	}
}

func existingCustomer(t *testing.T, id kernel.UUID) *customer.Customer {
	t.Helper()

	c, err := customer.RestoreCustomer(id, "Taro", "taro@example.com", "", "Shibuya")
	require.NoError(t, err)
	return c
}

func TestOrderService_CreateOrder(t *testing.T) {
	ctx := t.Context()

	t.Run("creates an order with all packages when the customer exists", func(t *testing.T) {
		customerID := kernel.NewUUID()

		customers := new(MockCustomerRepository)
		orders := new(MockOrderRepository)
		mock.InOrder(
			customers.On("GetByID", ctx, customerID).Return(existingCustomer(t, customerID), true, nil).Once(),
			orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		)

		svc := services.NewOrderService(orders, customers, zap.NewNop())
		o, err := svc.CreateOrder(ctx, validOrderInput(customerID, 3))

		require.NoError(t, err)
		assert.Equal(t, order.StatusPending, o.Status())
		assert.True(t, o.CustomerID().IsEqual(customerID))
		require.Len(t, o.Packages(), 3)

		seen := make(map[string]bool)
		for _, p := range o.Packages() {
			assert.Equal(t, order.PackageStatusAwaitingPickup, p.Status())
			assert.NotEmpty(t, p.TrackingNumber())
			assert.False(t, seen[p.TrackingNumber()], "tracking number reused: %s", p.TrackingNumber())
			seen[p.TrackingNumber()] = true
		}

		customers.AssertExpectations(t)
		orders.AssertExpectations(t)
	})

	t.Run("fails with customer-not-found and never attempts the write", func(t *testing.T) {
		customerID := kernel.NewUUID()

		customers := new(MockCustomerRepository)
		customers.On("GetByID", ctx, customerID).Return(nil, false, nil).Once()
		orders := new(MockOrderRepository)

		svc := services.NewOrderService(orders, customers, zap.NewNop())
		_, err := svc.CreateOrder(ctx, validOrderInput(customerID, 1))

		require.ErrorIs(t, err, errs.ErrCustomerNotFound)
		var notFound *errs.CustomerNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, customerID.String(), notFound.CustomerID)
		orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("fails when the existence check itself fails, without writing", func(t *testing.T) {
		customerID := kernel.NewUUID()
		unknown := errs.NewUnknownError(errors.New("connection refused"))

		customers := new(MockCustomerRepository)
		customers.On("GetByID", ctx, customerID).Return(nil, false, unknown).Once()
		orders := new(MockOrderRepository)

		svc := services.NewOrderService(orders, customers, zap.NewNop())
		_, err := svc.CreateOrder(ctx, validOrderInput(customerID, 1))

		require.ErrorIs(t, err, errs.ErrUnknown)
		assert.NotErrorIs(t, err, errs.ErrCustomerNotFound)
		orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("rejects an invalid package before touching the order repository", func(t *testing.T) {
		customerID := kernel.NewUUID()

		customers := new(MockCustomerRepository)
		customers.On("GetByID", ctx, customerID).Return(existingCustomer(t, customerID), true, nil).Once()
		orders := new(MockOrderRepository)

		input := validOrderInput(customerID, 1)
		input.Packages[0].WeightKg = -1

		svc := services.NewOrderService(orders, customers, zap.NewNop())
		_, err := svc.CreateOrder(ctx, input)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("passes through an order repository failure", func(t *testing.T) {
		customerID := kernel.NewUUID()
		unknown := errs.NewUnknownError(errors.New("write failed"))

		customers := new(MockCustomerRepository)
		customers.On("GetByID", ctx, customerID).Return(existingCustomer(t, customerID), true, nil).Once()
		orders := new(MockOrderRepository)
		orders.On("Add", ctx, mock.Anything).Return(unknown).Once()

		svc := services.NewOrderService(orders, customers, zap.NewNop())
		_, err := svc.CreateOrder(ctx, validOrderInput(customerID, 1))

		require.ErrorIs(t, err, errs.ErrUnknown)
	})
}

func TestOrderService_GetByID(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()

	t.Run("converts absent into a not-found error", func(t *testing.T) {
		orders := new(MockOrderRepository)
		orders.On("GetByID", ctx, id).Return(nil, false, nil).Once()

		svc := services.NewOrderService(orders, new(MockCustomerRepository), zap.NewNop())
		_, err := svc.GetByID(ctx, id)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
