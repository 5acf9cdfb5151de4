package http

import (
	"errors"
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/generated/servers"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	addLineItemHandler    commands.AddLineItemCommandHandler
	removeLineItemHandler commands.RemoveLineItemCommandHandler
	confirmOrderHandler   commands.ConfirmOrderCommandHandler
	cancelOrderHandler    commands.CancelOrderCommandHandler
	shipOrderHandler      commands.ShipOrderCommandHandler

	// Query handlers
	getOrderHandler queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addLineItemHandler commands.AddLineItemCommandHandler,
	removeLineItemHandler commands.RemoveLineItemCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:    createOrderHandler,
		addLineItemHandler:    addLineItemHandler,
		removeLineItemHandler: removeLineItemHandler,
		confirmOrderHandler:   confirmOrderHandler,
		cancelOrderHandler:    cancelOrderHandler,
		shipOrderHandler:      shipOrderHandler,
		getOrderHandler:       getOrderHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - opens a new order.
// The order ID is minted server side and returned to the caller.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	lineItems := make([]order.LineItem, 0, len(newOrder.LineItems))
	for _, li := range newOrder.LineItems {
		itemID := kernel.NewUUID()
		if li.Id != nil {
			parsed, err := kernel.UUIDFromBytes((*li.Id)[:])
			if err != nil {
				return badRequest(ctx, "Invalid line item ID: "+err.Error())
			}
			itemID = parsed
		}

		item, err := order.NewLineItem(itemID, li.Quantity)
		if err != nil {
			return badRequest(ctx, "Invalid line item: "+err.Error())
		}

		lineItems = append(lineItems, item)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, lineItems)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{Id: orderID.Bytes()})
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves an order.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	v, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(v))
}

// AddLineItem handles POST /api/v1/orders/{orderId}/items.
func (s *Server) AddLineItem(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var newItem servers.NewLineItem
	if err := ctx.Bind(&newItem); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	itemID := kernel.NewUUID()
	if newItem.Id != nil {
		parsed, idErr := kernel.UUIDFromBytes((*newItem.Id)[:])
		if idErr != nil {
			return badRequest(ctx, "Invalid line item ID: "+idErr.Error())
		}
		itemID = parsed
	}

	item, err := order.NewLineItem(itemID, newItem.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid line item: "+err.Error())
	}

	cmd, err := commands.NewAddLineItemCommand(orderID, item)
	if err != nil {
		return badRequest(ctx, "Invalid line item data: "+err.Error())
	}

	if err := s.addLineItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveLineItem handles DELETE /api/v1/orders/{orderId}/items/{itemId}.
// Removing the last line item cancels the order.
func (s *Server) RemoveLineItem(ctx echo.Context, orderId openapi_types.UUID, itemId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	itemID, err := kernel.UUIDFromBytes(itemId[:])
	if err != nil {
		return badRequest(ctx, "Invalid line item ID: "+err.Error())
	}

	cmd, err := commands.NewRemoveLineItemCommand(orderID, itemID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if err := s.removeLineItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmOrder handles POST /api/v1/orders/{orderId}/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if err := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ShipOrder handles POST /api/v1/orders/{orderId}/ship.
func (s *Server) ShipOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var shipOrder servers.ShipOrder
	if err := ctx.Bind(&shipOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var trackingID string
	if shipOrder.TrackingId != nil {
		trackingID = *shipOrder.TrackingId
	}

	cmd, err := commands.NewShipOrderCommand(orderID, shipOrder.ShippedAt, trackingID)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	if err := s.shipOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// orderResponse maps an order in any state to its response shape. The
// per-state fields are populated exactly for the state the order is in.
func orderResponse(v order.Variant) servers.Order {
	response := servers.Order{
		Id:        v.ID().Bytes(),
		State:     servers.OrderState(order.VariantStateName(v)),
		CreatedAt: v.CreatedAt(),
		UpdatedAt: v.UpdatedAt(),
		LineItems: make([]servers.LineItem, 0, len(v.LineItems())),
	}

	for _, li := range v.LineItems() {
		response.LineItems = append(response.LineItems, servers.LineItem{
			Id:       li.ID().Bytes(),
			Quantity: li.Quantity(),
		})
	}

	switch o := v.(type) {
	case order.Order[order.Created]:
	case order.Order[order.Confirmed]:
		confirmedAt := o.State().ConfirmedAt
		response.ConfirmedAt = &confirmedAt
	case order.Order[order.Shipped]:
		confirmedAt := o.State().ConfirmedAt
		shippedAt := o.State().ShippedAt
		trackingID := o.State().TrackingID
		response.ConfirmedAt = &confirmedAt
		response.ShippedAt = &shippedAt
		response.TrackingId = &trackingID
	case order.Order[order.Cancelled]:
		cancelledAt := o.State().CancelledAt
		response.CancelledAt = &cancelledAt
	}

	return response
}

// domainError maps the error taxonomy to HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	var code int
	switch {
	case errors.Is(err, errs.ErrEmptyOrder),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrMissingField):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrOrderNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidOrderType):
		code = http.StatusConflict
	default:
		code = http.StatusInternalServerError
	}

	return ctx.JSON(code, servers.Error{
		Code:    int32(code),
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
