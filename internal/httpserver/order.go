package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/avolkov/canteen/internal/logging"
	"github.com/avolkov/canteen/internal/service"
	"github.com/avolkov/canteen/internal/transport"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_order")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	invoice, err := h.Svc.CreateOrder(ctx, req)
	if err != nil {
		return httpError(l, "create_order", err)
	}

	l.Info("create_order_success", "orderID", invoice.OrderID, "total", invoice.TotalAmount)
	return c.JSON(http.StatusCreated, invoice)
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_order")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	invoice, err := h.Svc.GetInvoice(ctx, id)
	if err != nil {
		return httpError(l, "get_order", err)
	}
	return c.JSON(http.StatusOK, invoice)
}

func (h *OrderHTTP) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_orders")

	invoices, err := h.Svc.ListInvoices(ctx)
	if err != nil {
		return httpError(l, "get_orders", err)
	}
	return c.JSON(http.StatusOK, invoices)
}
