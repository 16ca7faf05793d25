// Package http exposes the delivery form over an echo JSON API described by
// the embedded openapi.yaml.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"deliverydesk/internal/core/application/usecases/commands"
	"deliverydesk/internal/core/application/usecases/queries"
	"deliverydesk/internal/core/domain/model/catalog"
	"deliverydesk/internal/core/domain/model/delivery"
	"deliverydesk/internal/core/domain/model/workflow"
	"deliverydesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ReadinessChecker reports whether reference data is available.
type ReadinessChecker interface {
	Loaded() bool
}

// Handlers groups the use cases the server delegates to.
type Handlers struct {
	// Command handlers
	AddProduct       commands.AddProductCommandHandler
	RemoveLineItem   commands.RemoveLineItemCommandHandler
	StartEdit        commands.StartEditCommandHandler
	CancelEdit       commands.CancelEditCommandHandler
	FinalizeDelivery commands.FinalizeDeliveryCommandHandler
	RemoveDelivery   commands.RemoveDeliveryCommandHandler

	// Query handlers
	GetDraft      queries.GetDraftQueryHandler
	GetDeliveries queries.GetDeliveriesQueryHandler
	GetCustomers  queries.GetCustomersQueryHandler
	GetProducts   queries.GetProductsQueryHandler
}

// Server implements ServerInterface on top of the application use cases.
type Server struct {
	handlers  Handlers
	readiness ReadinessChecker
	logger    *slog.Logger
}

// NewServer creates a server for the given use cases.
func NewServer(handlers Handlers, readiness ReadinessChecker, logger *slog.Logger) *Server {
	return &Server{
		handlers:  handlers,
		readiness: readiness,
		logger:    logger.With("component", "http_server"),
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, Health{
		Status:              "Healthy",
		ReferenceDataLoaded: s.readiness.Loaded(),
	})
}

// GetCustomers handles GET /api/v1/customers - lists the customer selector options.
func (s *Server) GetCustomers(ctx echo.Context) error {
	customers, err := s.handlers.GetCustomers.Handle(ctx.Request().Context(), queries.NewGetCustomersQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve customers")
	}

	response := make([]Customer, len(customers))
	for i, c := range customers {
		response[i] = toCustomer(c)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetProducts handles GET /api/v1/products - lists the product selector options.
func (s *Server) GetProducts(ctx echo.Context) error {
	products, err := s.handlers.GetProducts.Handle(ctx.Request().Context(), queries.NewGetProductsQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve products")
	}

	response := make([]Product, len(products))
	for i, p := range products {
		response[i] = Product{
			Id:          p.ID,
			Label:       p.Label,
			Description: p.Description,
			Attributes:  p.Attributes,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetDraft handles GET /api/v1/draft.
func (s *Server) GetDraft(ctx echo.Context) error {
	return s.respondDraft(ctx, http.StatusOK)
}

// AddDraftItem handles POST /api/v1/draft/items - adds a product to the draft.
func (s *Server) AddDraftItem(ctx echo.Context) error {
	var body NewLineItem
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAddProductCommand(body.ProductId, body.Quantity)
	if err != nil {
		return s.fail(ctx, err, "Invalid selection")
	}

	if err = s.handlers.AddProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to add product")
	}
	return s.respondDraft(ctx, http.StatusOK)
}

// RemoveDraftItem handles DELETE /api/v1/draft/items/{position}.
func (s *Server) RemoveDraftItem(ctx echo.Context, position int) error {
	cmd := commands.NewRemoveLineItemCommand(position)
	if err := s.handlers.RemoveLineItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to remove line item")
	}
	return s.respondDraft(ctx, http.StatusOK)
}

// GetDeliveries handles GET /api/v1/deliveries - lists deliveries and the total counter.
func (s *Server) GetDeliveries(ctx echo.Context) error {
	list, err := s.handlers.GetDeliveries.Handle(ctx.Request().Context(), queries.NewGetDeliveriesQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve deliveries")
	}

	response := DeliveryList{
		Deliveries:    make([]Delivery, len(list.Deliveries)),
		Total:         list.Total,
		EditingNumber: list.EditingNumber,
	}
	for i, d := range list.Deliveries {
		response.Deliveries[i] = toDelivery(d)
	}
	return ctx.JSON(http.StatusOK, response)
}

// FinalizeDelivery handles POST /api/v1/deliveries - commits the draft.
func (s *Server) FinalizeDelivery(ctx echo.Context) error {
	var body FinalizeRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var customerID string
	if body.CustomerId != nil {
		customerID = *body.CustomerId
	}

	d, err := s.handlers.FinalizeDelivery.Handle(ctx.Request().Context(), commands.NewFinalizeDeliveryCommand(customerID))
	if err != nil {
		return s.fail(ctx, err, "Failed to finalize delivery")
	}

	return ctx.JSON(http.StatusCreated, toDelivery(queries.NewDeliveryView(d)))
}

// RemoveDelivery handles DELETE /api/v1/deliveries/{number}.
func (s *Server) RemoveDelivery(ctx echo.Context, number int32) error {
	cmd, err := commands.NewRemoveDeliveryCommand(int(number))
	if err != nil {
		return s.fail(ctx, errs.NewObjectNotFoundErrorWithCause("delivery", number, err), "Delivery not found")
	}

	cancelled, err := s.handlers.RemoveDelivery.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to remove delivery")
	}

	return ctx.JSON(http.StatusOK, RemoveDeliveryResult{Number: int(number), EditCancelled: cancelled})
}

// StartEdit handles POST /api/v1/deliveries/{number}/edit.
func (s *Server) StartEdit(ctx echo.Context, number int32) error {
	cmd, err := commands.NewStartEditCommand(int(number))
	if err != nil {
		return s.fail(ctx, errs.NewObjectNotFoundErrorWithCause("delivery", number, err), "Delivery not found")
	}

	if err = s.handlers.StartEdit.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to start edit")
	}
	return s.respondDraft(ctx, http.StatusOK)
}

// CancelEdit handles DELETE /api/v1/edit.
func (s *Server) CancelEdit(ctx echo.Context) error {
	if err := s.handlers.CancelEdit.Handle(ctx.Request().Context(), commands.NewCancelEditCommand()); err != nil {
		return s.fail(ctx, err, "Failed to cancel edit")
	}
	return s.respondDraft(ctx, http.StatusOK)
}

func (s *Server) respondDraft(ctx echo.Context, status int) error {
	draft, err := s.handlers.GetDraft.Handle(ctx.Request().Context(), queries.NewGetDraftQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve draft")
	}

	return ctx.JSON(status, Draft{
		State:              draft.State,
		EditingNumber:      draft.EditingNumber,
		SelectedCustomerId: draft.SelectedCustomerID,
		Baseline:           toLineItems(draft.Baseline),
		Items:              toLineItems(draft.Items),
	})
}

// fail maps err to a status code. User errors keep their message; anything
// unexpected is logged and reported with fallback.
func (s *Server) fail(ctx echo.Context, err error, fallback string) error {
	status := statusFor(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), fallback,
			"error", err,
			"request_id", ctx.Response().Header().Get(echo.HeaderXRequestID),
		)
		message = fallback
	}

	return ctx.JSON(status, Error{Code: status, Message: message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, workflow.ErrInvalidSelection),
		errors.Is(err, delivery.ErrEmptyDelivery):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	case errors.Is(err, catalog.ErrLoad),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func toCustomer(c queries.CustomerView) Customer {
	address := c.Address
	if address == nil {
		address = []string{}
	}
	phone := c.Phone
	if phone == nil {
		phone = []string{}
	}
	return Customer{
		Id:      c.ID,
		Label:   c.Label,
		Name:    c.Name,
		Address: address,
		Phone:   phone,
		Notes:   c.Notes,
	}
}

func toLineItems(items []queries.LineItemView) []LineItem {
	out := make([]LineItem, len(items))
	for i, item := range items {
		out[i] = LineItem{
			ProductId:   item.ProductID,
			Description: item.Description,
			Quantity:    item.Quantity,
		}
	}
	return out
}

func toDelivery(d queries.DeliveryView) Delivery {
	return Delivery{
		Number:   d.Number,
		Customer: toCustomer(d.Customer),
		Items:    toLineItems(d.Items),
	}
}
