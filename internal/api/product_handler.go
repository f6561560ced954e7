package api

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/entity"
	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/service"
)

type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new instance of ProductHandler
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List returns menu items, newest first --> GET /admin/products?search=
func (h *ProductHandler) List(c echo.Context) error {
	items, err := h.productService.List(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(200, items)
}

// Get returns one menu item with its sizes --> GET /admin/products/:id
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	item, err := h.productService.GetByID(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(200, item)
}

// Create adds a menu item; the image part is optional --> POST /admin/products
func (h *ProductHandler) Create(c echo.Context) error {
	item, image, err := bindProductForm(c)
	if err != nil {
		return c.JSON(400, map[string]string{"error": err.Error()})
	}

	created, err := h.productService.Create(c.Request().Context(), item, image)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(201, created)
}

// Update edits a menu item; without a new image part the stored image path
// is kept --> PUT /admin/products/:id
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	item, image, err := bindProductForm(c)
	if err != nil {
		return c.JSON(400, map[string]string{"error": err.Error()})
	}
	item.ID = id

	updated, err := h.productService.Update(c.Request().Context(), item, image)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(200, updated)
}

// Delete removes a menu item and its sizes --> DELETE /admin/products/:id
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	if err := h.productService.Delete(c.Request().Context(), id); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(200, map[string]string{"message": "deleted"})
}

// bindProductForm reads the multipart product form: plain fields, a JSON
// encoded size list, and an optional image part.
func bindProductForm(c echo.Context) (*entity.MenuItem, *multipart.FileHeader, error) {
	item := &entity.MenuItem{Name: c.FormValue("name")}

	if v := c.FormValue("category_id"); v != "" {
		categoryID, err := strconv.Atoi(v)
		if err != nil {
			return nil, nil, errors.New("invalid category id")
		}
		item.CategoryID = categoryID
	}

	if v := c.FormValue("sizes"); v != "" {
		if err := json.Unmarshal([]byte(v), &item.Sizes); err != nil {
			return nil, nil, errors.New("invalid sizes payload")
		}
	}

	image, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return item, nil, nil
		}
		return nil, nil, errors.New("invalid image upload")
	}

	return item, image, nil
}
