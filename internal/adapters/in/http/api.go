package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// API models, mirroring components/schemas in openapi.yaml.
type (
	// Customer is a customer selector option or delivery recipient.
	Customer struct {
		Id      string   `json:"id"`
		Label   string   `json:"label"`
		Name    string   `json:"name"`
		Address []string `json:"address"`
		Phone   []string `json:"phone"`
		Notes   string   `json:"notes"`
	}

	// Product is a product selector option.
	Product struct {
		Id          string         `json:"id"`
		Label       string         `json:"label"`
		Description string         `json:"description"`
		Attributes  map[string]any `json:"attributes,omitempty"`
	}

	// LineItem is a product row with its quantity.
	LineItem struct {
		ProductId   string `json:"productId"`
		Description string `json:"description"`
		Quantity    int    `json:"quantity"`
	}

	// NewLineItem is the body of AddDraftItem.
	NewLineItem struct {
		ProductId string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}

	// Draft is the draft and edit state.
	Draft struct {
		State              string     `json:"state"`
		EditingNumber      *int       `json:"editingNumber,omitempty"`
		SelectedCustomerId *string    `json:"selectedCustomerId,omitempty"`
		Baseline           []LineItem `json:"baseline"`
		Items              []LineItem `json:"items"`
	}

	// FinalizeRequest is the body of FinalizeDelivery.
	FinalizeRequest struct {
		CustomerId *string `json:"customerId,omitempty"`
	}

	// Delivery is a finalized delivery.
	Delivery struct {
		Number   int        `json:"number"`
		Customer Customer   `json:"customer"`
		Items    []LineItem `json:"items"`
	}

	// DeliveryList is the deliveries list with its counter.
	DeliveryList struct {
		Deliveries    []Delivery `json:"deliveries"`
		Total         int        `json:"total"`
		EditingNumber *int       `json:"editingNumber,omitempty"`
	}

	// RemoveDeliveryResult reports a removal.
	RemoveDeliveryResult struct {
		Number        int  `json:"number"`
		EditCancelled bool `json:"editCancelled"`
	}

	// Health is the /health body.
	Health struct {
		Status              string `json:"status"`
		ReferenceDataLoaded bool   `json:"referenceDataLoaded"`
	}

	// Error is the body of every error response.
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
)

// ServerInterface lists the operations of openapi.yaml.
type ServerInterface interface {
	// GetCustomers handles GET /api/v1/customers.
	GetCustomers(ctx echo.Context) error
	// GetProducts handles GET /api/v1/products.
	GetProducts(ctx echo.Context) error
	// GetDraft handles GET /api/v1/draft.
	GetDraft(ctx echo.Context) error
	// AddDraftItem handles POST /api/v1/draft/items.
	AddDraftItem(ctx echo.Context) error
	// RemoveDraftItem handles DELETE /api/v1/draft/items/{position}.
	RemoveDraftItem(ctx echo.Context, position int) error
	// GetDeliveries handles GET /api/v1/deliveries.
	GetDeliveries(ctx echo.Context) error
	// FinalizeDelivery handles POST /api/v1/deliveries.
	FinalizeDelivery(ctx echo.Context) error
	// RemoveDelivery handles DELETE /api/v1/deliveries/{number}.
	RemoveDelivery(ctx echo.Context, number int32) error
	// StartEdit handles POST /api/v1/deliveries/{number}/edit.
	StartEdit(ctx echo.Context, number int32) error
	// CancelEdit handles DELETE /api/v1/edit.
	CancelEdit(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetCustomers(ctx echo.Context) error {
	return w.Handler.GetCustomers(ctx)
}

func (w *ServerInterfaceWrapper) GetProducts(ctx echo.Context) error {
	return w.Handler.GetProducts(ctx)
}

func (w *ServerInterfaceWrapper) GetDraft(ctx echo.Context) error {
	return w.Handler.GetDraft(ctx)
}

func (w *ServerInterfaceWrapper) AddDraftItem(ctx echo.Context) error {
	return w.Handler.AddDraftItem(ctx)
}

func (w *ServerInterfaceWrapper) RemoveDraftItem(ctx echo.Context) error {
	var position int
	if err := bindPathParam(ctx, "position", &position); err != nil {
		return err
	}
	return w.Handler.RemoveDraftItem(ctx, position)
}

func (w *ServerInterfaceWrapper) GetDeliveries(ctx echo.Context) error {
	return w.Handler.GetDeliveries(ctx)
}

func (w *ServerInterfaceWrapper) FinalizeDelivery(ctx echo.Context) error {
	return w.Handler.FinalizeDelivery(ctx)
}

func (w *ServerInterfaceWrapper) RemoveDelivery(ctx echo.Context) error {
	var number int32
	if err := bindPathParam(ctx, "number", &number); err != nil {
		return err
	}
	return w.Handler.RemoveDelivery(ctx, number)
}

func (w *ServerInterfaceWrapper) StartEdit(ctx echo.Context) error {
	var number int32
	if err := bindPathParam(ctx, "number", &number); err != nil {
		return err
	}
	return w.Handler.StartEdit(ctx, number)
}

func (w *ServerInterfaceWrapper) CancelEdit(ctx echo.Context) error {
	return w.Handler.CancelEdit(ctx)
}

func bindPathParam(ctx echo.Context, name string, dest any) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), dest,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts every operation of openapi.yaml on router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.GET("/api/v1/customers", w.GetCustomers)
	router.GET("/api/v1/products", w.GetProducts)
	router.GET("/api/v1/draft", w.GetDraft)
	router.POST("/api/v1/draft/items", w.AddDraftItem)
	router.DELETE("/api/v1/draft/items/:position", w.RemoveDraftItem)
	router.GET("/api/v1/deliveries", w.GetDeliveries)
	router.POST("/api/v1/deliveries", w.FinalizeDelivery)
	router.DELETE("/api/v1/deliveries/:number", w.RemoveDelivery)
	router.POST("/api/v1/deliveries/:number/edit", w.StartEdit)
	router.DELETE("/api/v1/edit", w.CancelEdit)
}
