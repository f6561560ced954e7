package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/entity"
	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/service"
	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/session"
)

var testSecret = []byte("test-secret")

func signedToken(t *testing.T, email string, role entity.Role) string {
	t.Helper()
	claims := &service.SessionClaims{
		Name:   "Test User",
		Email:  email,
		Role:   role,
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)
	return token
}

func adminTestServer(sessions session.Store) *echo.Echo {
	e := echo.New()
	admin := e.Group("/admin", SessionMiddleware(testSecret), SessionCheck(sessions), RequireAdmin)
	admin.GET("/ping", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"message": "pong"})
	})
	return e
}

func request(e *echo.Echo, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAdminRouteAllowsAdmin(t *testing.T) {
	sessions := session.NewMemoryStore()
	token := signedToken(t, "admin@x.com", entity.RoleAdmin)
	require.NoError(t, sessions.Save(context.Background(), "admin@x.com", token, time.Hour))

	rec := request(adminTestServer(sessions), token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminRouteRejectsCustomer(t *testing.T) {
	sessions := session.NewMemoryStore()
	token := signedToken(t, "cust@x.com", entity.RoleCustomer)
	require.NoError(t, sessions.Save(context.Background(), "cust@x.com", token, time.Hour))

	rec := request(adminTestServer(sessions), token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminRouteRejectsMissingCookie(t *testing.T) {
	rec := request(adminTestServer(session.NewMemoryStore()), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// A token that still verifies is rejected once the session is gone.
func TestAdminRouteRejectsRevokedSession(t *testing.T) {
	sessions := session.NewMemoryStore()
	token := signedToken(t, "admin@x.com", entity.RoleAdmin)

	rec := request(adminTestServer(sessions), token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRouteRejectsForgedToken(t *testing.T) {
	sessions := session.NewMemoryStore()
	claims := &service.SessionClaims{
		Email: "admin@x.com",
		Role:  entity.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	rec := request(adminTestServer(sessions), forged)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
