package api

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/entity"
	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/service"
)

type VoucherHandler struct {
	voucherService service.VoucherService
}

// NewVoucherHandler creates a new instance of VoucherHandler
func NewVoucherHandler(voucherService service.VoucherService) *VoucherHandler {
	return &VoucherHandler{voucherService: voucherService}
}

// List returns vouchers, newest first --> GET /admin/vouchers?search=
func (h *VoucherHandler) List(c echo.Context) error {
	vouchers, err := h.voucherService.List(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(200, vouchers)
}

// Get returns one voucher --> GET /admin/vouchers/:id
func (h *VoucherHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	voucher, err := h.voucherService.GetByID(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(200, voucher)
}

// Create adds a voucher --> POST /admin/vouchers
func (h *VoucherHandler) Create(c echo.Context) error {
	voucher := entity.Voucher{}
	if err := c.Bind(&voucher); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	created, err := h.voucherService.Create(c.Request().Context(), &voucher)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(201, created)
}

// Update edits a voucher --> PUT /admin/vouchers/:id
func (h *VoucherHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	voucher := entity.Voucher{}
	if err := c.Bind(&voucher); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}
	voucher.ID = id

	updated, err := h.voucherService.Update(c.Request().Context(), &voucher)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(200, updated)
}

// Delete removes a voucher --> DELETE /admin/vouchers/:id
func (h *VoucherHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	if err := h.voucherService.Delete(c.Request().Context(), id); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(200, map[string]string{"message": "deleted"})
}
