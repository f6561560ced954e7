package api

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/entity"
	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/service"
)

type CategoryHandler struct {
	categoryService service.CategoryService
}

// NewCategoryHandler creates a new instance of CategoryHandler
func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List returns categories in sort order --> GET /admin/categories?search=
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categoryService.List(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(200, categories)
}

// Get returns one category --> GET /admin/categories/:id
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	category, err := h.categoryService.GetByID(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(200, category)
}

// Create adds a category --> POST /admin/categories
func (h *CategoryHandler) Create(c echo.Context) error {
	category := entity.Category{}
	if err := c.Bind(&category); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	created, err := h.categoryService.Create(c.Request().Context(), &category)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(201, created)
}

// Update edits a category --> PUT /admin/categories/:id
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	category := entity.Category{}
	if err := c.Bind(&category); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}
	category.ID = id

	updated, err := h.categoryService.Update(c.Request().Context(), &category)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(200, updated)
}

// Delete removes a category --> DELETE /admin/categories/:id
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	if err := h.categoryService.Delete(c.Request().Context(), id); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(200, map[string]string{"message": "deleted"})
}
