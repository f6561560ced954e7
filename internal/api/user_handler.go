package api

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/entity"
	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/service"
)

type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new instance of UserHandler
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns users, optionally filtered --> GET /admin/users?search=
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(200, users)
}

// Get returns one user, also the delete-confirmation view --> GET /admin/users/:id
func (h *UserHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	user, err := h.userService.GetByID(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(200, user)
}

// Create adds a user --> POST /admin/users
func (h *UserHandler) Create(c echo.Context) error {
	form := struct {
		FullName string      `json:"full_name" form:"full_name"`
		Email    string      `json:"email" form:"email"`
		Password string      `json:"password" form:"password"`
		Phone    string      `json:"phone" form:"phone"`
		Role     entity.Role `json:"role" form:"role"`
	}{}
	if err := c.Bind(&form); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	user := &entity.User{
		FullName: form.FullName,
		Email:    form.Email,
		Phone:    form.Phone,
		Role:     form.Role,
	}
	created, err := h.userService.Create(c.Request().Context(), user, form.Password)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(201, created)
}

// Update edits a user --> PUT /admin/users/:id
func (h *UserHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	user := entity.User{}
	if err := c.Bind(&user); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}
	user.ID = id

	updated, err := h.userService.Update(c.Request().Context(), &user)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(200, updated)
}

// Delete removes a user; deleting an absent one succeeds --> DELETE /admin/users/:id
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	if err := h.userService.Delete(c.Request().Context(), id); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(200, map[string]string{"message": "deleted"})
}
