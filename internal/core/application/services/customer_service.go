package services

import (
	"context"

	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/customer"
	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/kernel"
	"github.com/riosgabriel/taq-u-app/internal/core/ports"
	"github.com/riosgabriel/taq-u-app/internal/pkg/errs"
)

// CreateCustomerInput carries the decoded, schema-validated fields for
// customer creation. Phone may be empty.
type CreateCustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// CustomerService implements the business operations on customers.
// It requires only the CustomerRepository capability; the composition root
// supplies the concrete implementation.
type CustomerService struct {
	customers ports.CustomerRepository
}

// NewCustomerService creates a CustomerService backed by the given repository.
func NewCustomerService(customers ports.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

// Create registers a new customer and returns it with its assigned identifier.
//
// Uniqueness of the email is arbitrated solely by the store: no existence
// pre-check is performed, so concurrent creates with the same email resolve
// to exactly one success and one errs.EmailAlreadyExistsError.
func (s *CustomerService) Create(ctx context.Context, input CreateCustomerInput) (*customer.Customer, error) {
	c, err := customer.NewCustomer(input.Name, input.Email, input.Phone, input.Address)
	if err != nil {
		return nil, err
	}

	if err = s.customers.Add(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// GetAll returns all customers.
func (s *CustomerService) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	return s.customers.GetAll(ctx)
}

// GetByID returns the customer with the given identifier.
// A repository "absent" result is converted into errs.ObjectNotFoundError
// here; the repository never raises not-found itself.
func (s *CustomerService) GetByID(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	c, found, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.NewObjectNotFoundError("customerId", id.String())
	}

	return c, nil
}
