package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/entity"
	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
	sessionTTL  time.Duration
}

// NewAuthHandler creates a new instance of AuthHandler
func NewAuthHandler(authService service.AuthService, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, sessionTTL: sessionTTL}
}

// Login authenticates a user and sets the session cookie --> POST /login
func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	login := struct {
		Email    string `json:"email" form:"email"`
		Password string `json:"password" form:"password"`
	}{}
	if err := c.Bind(&login); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	token, user, err := h.authService.Login(ctx, login.Email, login.Password)
	if err != nil {
		return jsonError(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.sessionTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	// Admins land on the dashboard, everyone else on the storefront.
	redirect := "/"
	if user.Role == entity.RoleAdmin {
		redirect = "/admin/dashboard"
	}

	return c.JSON(200, map[string]string{"token": token, "redirect": redirect})
}

// Register creates a customer account --> POST /register
func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	form := struct {
		FullName string `json:"full_name" form:"full_name"`
		Email    string `json:"email" form:"email"`
		Password string `json:"password" form:"password"`
		Phone    string `json:"phone" form:"phone"`
	}{}
	if err := c.Bind(&form); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}
	if form.FullName == "" || form.Email == "" || form.Password == "" {
		return c.JSON(400, map[string]string{"error": "full name, email and password are required"})
	}

	user, err := h.authService.Register(ctx, form.FullName, form.Email, form.Password, form.Phone)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(201, user)
}

// Logout tears down the session and expires the cookie --> POST /logout
func (h *AuthHandler) Logout(c echo.Context) error {
	claims := sessionClaims(c)
	if claims == nil {
		return c.JSON(401, map[string]string{"error": "unauthorized"})
	}

	if err := h.authService.Logout(c.Request().Context(), claims.Email); err != nil {
		return jsonError(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})

	return c.JSON(200, map[string]string{"message": "logged out"})
}
