// Package http is the inbound HTTP adapter. It decodes requests, maps wire
// enumerations onto the domain, calls the application layer, and translates
// the closed error taxonomy onto status codes. No business rules live here.
package http

import (
	"errors"
	"net/http"

	"github.com/riosgabriel/taq-u-app/internal/core/application/queries"
	"github.com/riosgabriel/taq-u-app/internal/core/application/services"
	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/kernel"
	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/order"
	"github.com/riosgabriel/taq-u-app/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Server coordinates between HTTP handlers and the application layer.
type Server struct {
	customers *services.CustomerService
	drivers   *services.DriverService
	orders    *services.OrderService

	trackPackageHandler  queries.TrackPackageQueryHandler
	pendingOrdersHandler queries.PendingOrdersQueryHandler

	logger *zap.Logger
}

// NewServer creates a new HTTP server with the required services and query handlers.
func NewServer(
	customers *services.CustomerService,
	drivers *services.DriverService,
	orders *services.OrderService,
	trackPackageHandler queries.TrackPackageQueryHandler,
	pendingOrdersHandler queries.PendingOrdersQueryHandler,
	logger *zap.Logger,
) *Server {
	return &Server{
		customers:            customers,
		drivers:              drivers,
		orders:               orders,
		trackPackageHandler:  trackPackageHandler,
		pendingOrdersHandler: pendingOrdersHandler,
		logger:               logger,
	}
}

// RegisterRoutes attaches all endpoints to the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")

	v1.POST("/customers", s.CreateCustomer)
	v1.GET("/customers", s.GetCustomers)
	v1.GET("/customers/:id", s.GetCustomerByID)

	v1.POST("/drivers", s.CreateDriver)
	v1.GET("/drivers", s.GetDrivers)
	v1.GET("/drivers/:id", s.GetDriverByID)

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.GetOrders)
	v1.GET("/orders/pending", s.GetPendingOrders)
	v1.GET("/orders/:id", s.GetOrderByID)

	v1.GET("/tracking/:trackingNumber", s.TrackPackage)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var req CreateCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	c, err := s.customers.Create(ctx.Request().Context(), req.toInput())
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, customerResponseFromDomain(c))
}

// GetCustomers handles GET /api/v1/customers.
func (s *Server) GetCustomers(ctx echo.Context) error {
	customers, err := s.customers.GetAll(ctx.Request().Context())
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		response = append(response, customerResponseFromDomain(c))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCustomerByID handles GET /api/v1/customers/:id.
func (s *Server) GetCustomerByID(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	c, err := s.customers.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, customerResponseFromDomain(c))
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req CreateDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	input, err := req.toInput()
	if err != nil {
		return s.writeError(ctx, err)
	}

	d, err := s.drivers.Create(ctx.Request().Context(), input)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, driverResponseFromDomain(d))
}

// GetDrivers handles GET /api/v1/drivers.
func (s *Server) GetDrivers(ctx echo.Context) error {
	drivers, err := s.drivers.GetAll(ctx.Request().Context())
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]DriverResponse, 0, len(drivers))
	for _, d := range drivers {
		response = append(response, driverResponseFromDomain(d))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDriverByID handles GET /api/v1/drivers/:id.
func (s *Server) GetDriverByID(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	d, err := s.drivers.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, driverResponseFromDomain(d))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("customerId", err))
	}

	priority, err := order.PriorityFromString(req.Priority)
	if err != nil {
		return s.writeError(ctx, err)
	}

	packages := make([]services.CreatePackageInput, 0, len(req.Packages))
	for _, p := range req.Packages {
		packages = append(packages, services.CreatePackageInput{
			WeightKg:    p.WeightKg,
			Dimensions:  p.Dimensions,
			Description: p.Description,
			Fragile:     p.Fragile,
			Perishable:  p.Perishable,
			Insured:     p.Insured,
		})
	}

	o, err := s.orders.CreateOrder(ctx.Request().Context(), services.CreateOrderInput{
		CustomerID:          customerID,
		PickupAddress:       req.PickupAddress,
		DeliveryAddress:     req.DeliveryAddress,
		PickupDate:          req.PickupDate,
		DeliveryDate:        req.DeliveryDate,
		SpecialInstructions: req.SpecialInstructions,
		Priority:            priority,
		Packages:            packages,
	})
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromDomain(o))
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.orders.GetAll(ctx.Request().Context())
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderResponseFromDomain(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderByID handles GET /api/v1/orders/:id.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	o, err := s.orders.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromDomain(o))
}

// GetPendingOrders handles GET /api/v1/orders/pending.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	result, err := s.pendingOrdersHandler.Handle(ctx.Request().Context(), queries.NewPendingOrdersQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// TrackPackage handles GET /api/v1/tracking/:trackingNumber.
func (s *Server) TrackPackage(ctx echo.Context) error {
	query, err := queries.NewTrackPackageQuery(ctx.Param("trackingNumber"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	resp, err := s.trackPackageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// writeError maps the closed error taxonomy onto HTTP status codes.
// Anything unclassified is logged and reported as a generic 500 so internal
// detail never leaks into a response body.
func (s *Server) writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrEmailAlreadyExists):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound), errors.Is(err, errs.ErrCustomerNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		s.logger.Error("request failed",
			zap.String("method", ctx.Request().Method),
			zap.String("path", ctx.Request().URL.Path),
			zap.Error(err),
		)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
		})
	}
}

func parseIDParam(ctx echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}
