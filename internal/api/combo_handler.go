package api

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/entity"
	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/service"
)

type ComboHandler struct {
	comboService service.ComboService
}

// NewComboHandler creates a new instance of ComboHandler
func NewComboHandler(comboService service.ComboService) *ComboHandler {
	return &ComboHandler{comboService: comboService}
}

// List returns combos, newest first --> GET /admin/combos?search=
func (h *ComboHandler) List(c echo.Context) error {
	combos, err := h.comboService.List(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(200, combos)
}

// Get returns one combo with its items --> GET /admin/combos/:id
func (h *ComboHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	combo, err := h.comboService.GetByID(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(200, combo)
}

// Create adds a combo with its items --> POST /admin/combos
func (h *ComboHandler) Create(c echo.Context) error {
	combo := entity.Combo{}
	if err := c.Bind(&combo); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	created, err := h.comboService.Create(c.Request().Context(), &combo)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(201, created)
}

// Update edits a combo, replacing its item list --> PUT /admin/combos/:id
func (h *ComboHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	combo := entity.Combo{}
	if err := c.Bind(&combo); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}
	combo.ID = id

	updated, err := h.comboService.Update(c.Request().Context(), &combo)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(200, updated)
}

// Delete removes a combo --> DELETE /admin/combos/:id
func (h *ComboHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	if err := h.comboService.Delete(c.Request().Context(), id); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(200, map[string]string{"message": "deleted"})
}
