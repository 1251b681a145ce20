package http

import (
	"time"

	"github.com/riosgabriel/taq-u-app/internal/core/application/services"
	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/customer"
	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/driver"
	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/order"
)

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateCustomerRequest is the body for POST /api/v1/customers.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (r CreateCustomerRequest) toInput() services.CreateCustomerInput {
	return services.CreateCustomerInput{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
	}
}

// CustomerResponse is the wire representation of a customer.
type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func customerResponseFromDomain(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:      c.ID().String(),
		Name:    c.Name(),
		Email:   c.Email(),
		Phone:   c.Phone(),
		Address: c.Address(),
	}
}

// CreateDriverRequest is the body for POST /api/v1/drivers.
// VehicleType carries the wire string; it is mapped onto the enumeration at
// decode time so an out-of-range value is rejected before any service call.
type CreateDriverRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	LicenseNumber string `json:"licenseNumber"`
	VehicleType   string `json:"vehicleType"`
	IsAvailable   bool   `json:"isAvailable"`
}

func (r CreateDriverRequest) toInput() (services.CreateDriverInput, error) {
	vehicleType, err := driver.VehicleTypeFromString(r.VehicleType)
	if err != nil {
		return services.CreateDriverInput{}, err
	}

	return services.CreateDriverInput{
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		LicenseNumber: r.LicenseNumber,
		VehicleType:   vehicleType,
		IsAvailable:   r.IsAvailable,
	}, nil
}

// DriverResponse is the wire representation of a driver.
type DriverResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	LicenseNumber string `json:"licenseNumber"`
	VehicleType   string `json:"vehicleType"`
	IsAvailable   bool   `json:"isAvailable"`
}

func driverResponseFromDomain(d *driver.Driver) DriverResponse {
	return DriverResponse{
		ID:            d.ID().String(),
		Name:          d.Name(),
		Email:         d.Email(),
		Phone:         d.Phone(),
		LicenseNumber: d.LicenseNumber(),
		VehicleType:   d.VehicleType().String(),
		IsAvailable:   d.IsAvailable(),
	}
}

// CreatePackageRequest describes one package of a new order. Status and
// tracking number are never accepted from the caller.
type CreatePackageRequest struct {
	WeightKg    float64 `json:"weightKg"`
	Dimensions  string  `json:"dimensions"`
	Description string  `json:"description"`
	Fragile     bool    `json:"fragile"`
	Perishable  bool    `json:"perishable"`
	Insured     bool    `json:"insured"`
}

// CreateOrderRequest is the body for POST /api/v1/orders.
// Priority is optional; an empty string selects the NORMAL default.
type CreateOrderRequest struct {
	CustomerID          string                 `json:"customerId"`
	PickupAddress       string                 `json:"pickupAddress"`
	DeliveryAddress     string                 `json:"deliveryAddress"`
	PickupDate          time.Time              `json:"pickupDate"`
	DeliveryDate        *time.Time             `json:"deliveryDate"`
	SpecialInstructions string                 `json:"specialInstructions"`
	Priority            string                 `json:"priority"`
	Packages            []CreatePackageRequest `json:"packages"`
}

// PackageResponse is the wire representation of a package within an order.
type PackageResponse struct {
	ID             string  `json:"id"`
	WeightKg       float64 `json:"weightKg"`
	Dimensions     string  `json:"dimensions"`
	Description    string  `json:"description"`
	Fragile        bool    `json:"fragile"`
	Perishable     bool    `json:"perishable"`
	Insured        bool    `json:"insured"`
	Status         string  `json:"status"`
	TrackingNumber string  `json:"trackingNumber"`
}

// OrderResponse is the wire representation of an order with its packages.
type OrderResponse struct {
	ID                  string            `json:"id"`
	CustomerID          string            `json:"customerId"`
	PickupAddress       string            `json:"pickupAddress"`
	DeliveryAddress     string            `json:"deliveryAddress"`
	PickupDate          time.Time         `json:"pickupDate"`
	DeliveryDate        *time.Time        `json:"deliveryDate,omitempty"`
	SpecialInstructions string            `json:"specialInstructions"`
	Priority            string            `json:"priority"`
	Status              string            `json:"status"`
	Packages            []PackageResponse `json:"packages"`
}

func orderResponseFromDomain(o *order.Order) OrderResponse {
	packages := make([]PackageResponse, 0, len(o.Packages()))
	for _, p := range o.Packages() {
		packages = append(packages, PackageResponse{
			ID:             p.ID().String(),
			WeightKg:       p.WeightKg(),
			Dimensions:     p.Dimensions(),
			Description:    p.Description(),
			Fragile:        p.IsFragile(),
			Perishable:     p.IsPerishable(),
			Insured:        p.IsInsured(),
			Status:         p.Status().String(),
			TrackingNumber: p.TrackingNumber(),
		})
	}

	return OrderResponse{
		ID:                  o.ID().String(),
		CustomerID:          o.CustomerID().String(),
		PickupAddress:       o.PickupAddress(),
		DeliveryAddress:     o.DeliveryAddress(),
		PickupDate:          o.PickupDate(),
		DeliveryDate:        o.DeliveryDate(),
		SpecialInstructions: o.SpecialInstructions(),
		Priority:            o.Priority().String(),
		Status:              o.Status().String(),
		Packages:            packages,
	}
}
