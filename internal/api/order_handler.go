package api

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/service"
)

type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new instance of OrderHandler
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List returns orders with user and status, newest first --> GET /admin/orders?search=
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.orderService.List(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(200, orders)
}

// History returns completed orders only --> GET /admin/orders/history?search=
func (h *OrderHandler) History(c echo.Context) error {
	orders, err := h.orderService.History(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(200, orders)
}

// Details returns one order with the full item breakdown --> GET /admin/orders/:id
func (h *OrderHandler) Details(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	order, err := h.orderService.Details(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(200, order)
}

// Statuses returns the status rows for the status dropdown --> GET /admin/statuses
func (h *OrderHandler) Statuses(c echo.Context) error {
	statuses, err := h.orderService.Statuses(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(200, statuses)
}

// DeleteStatus removes an unused status row --> DELETE /admin/statuses/:id
func (h *OrderHandler) DeleteStatus(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	if err := h.orderService.DeleteStatus(c.Request().Context(), id); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(200, map[string]string{"message": "deleted"})
}

// UpdateStatus overwrites an order's status --> PUT /admin/orders/:id/status
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	form := struct {
		StatusID int `json:"status_id" form:"status_id"`
	}{}
	if err := c.Bind(&form); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	order, err := h.orderService.UpdateStatus(c.Request().Context(), id, form.StatusID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(200, order)
}
