// Package http exposes the order use cases over a REST API. This is the
// only layer that knows about status codes: use cases return typed errors
// and the server maps them here.
package http

import (
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler   commands.CreateOrderCommandHandler
	addItemHandler       commands.AddItemToOrderCommandHandler
	deleteOrderHandler   commands.DeleteOrderCommandHandler
	getOrderQueryHandler queries.GetOrderQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addItemHandler commands.AddItemToOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderQueryHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:   createOrderHandler,
		addItemHandler:       addItemHandler,
		deleteOrderHandler:   deleteOrderHandler,
		getOrderQueryHandler: getOrderQueryHandler,
	}
}

// RegisterRoutes attaches all order routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderId", s.GetOrder)
	api.DELETE("/orders/:orderId", s.DeleteOrder)
	api.POST("/orders/:orderId/items", s.AddItemToOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type createOrderRequest struct {
	OrderID    string                `json:"orderId"`
	CustomerID string                `json:"customerId"`
	Items      []createOrderItemBody `json:"items"`
}

type createOrderItemBody struct {
	ProductID string         `json:"productId"`
	Name      string         `json:"name"`
	Quantity  int            `json:"quantity"`
	UnitPrice float64        `json:"unitPrice"`
	Metadata  map[string]any `json:"metadata"`
}

type createOrderResponse struct {
	OrderID string `json:"orderId"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestBody(ctx)
	}

	items := make([]commands.NewOrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = commands.NewOrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Metadata:  item.Metadata,
		}
	}

	cmd, err := commands.NewCreateOrderCommand(req.OrderID, req.CustomerID, items)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createOrderResponse{OrderID: orderID.String()})
}

type addItemRequest struct {
	SKU       string   `json:"sku"`
	Qty       int      `json:"qty"`
	Currency  string   `json:"currency"`
	UnitPrice *float64 `json:"unitPrice"`
}

type addItemResponse struct {
	OrderID string    `json:"orderId"`
	Total   moneyBody `json:"total"`
}

type moneyBody struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// AddItemToOrder handles POST /api/v1/orders/:orderId/items.
func (s *Server) AddItemToOrder(ctx echo.Context) error {
	var req addItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestBody(ctx)
	}

	cmd, err := commands.NewAddItemToOrderCommand(
		ctx.Param("orderId"), req.SKU, req.Qty, req.Currency, req.UnitPrice)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.addItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, addItemResponse{
		OrderID: result.OrderID.String(),
		Total: moneyBody{
			Amount:   result.Total.Amount(),
			Currency: string(result.Total.Currency()),
		},
	})
}

// DeleteOrder handles DELETE /api/v1/orders/:orderId.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	cmd, err := commands.NewDeleteOrderCommand(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderQuery(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	snapshot, err := s.getOrderQueryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshot)
}
