package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/repository"
	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/service"
	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/session"
)

func newAuthHandler(t *testing.T) (*AuthHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc := service.NewAuthService(*repository.NewUserRepository(db), session.NewMemoryStore(), testSecret, time.Hour)
	return NewAuthHandler(*svc, time.Hour), mock
}

func loginRequest(h *AuthHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = h.Login(c)
	return rec
}

func TestLoginSetsSessionCookie(t *testing.T) {
	h, mock := newAuthHandler(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE u.email = ?`)).
		WithArgs("admin@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "email", "password_hash", "phone", "role", "is_active", "created_at",
			"a_id", "a_user_id", "street", "city"}).
			AddRow(1, "Admin", "admin@x.com", string(hash), "", "Admin", true, time.Now(),
				nil, nil, nil, nil))

	rec := loginRequest(h, `{"email":"admin@x.com","password":"secret"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, cookie.Value, body["token"])
	assert.Equal(t, "/admin/dashboard", body["redirect"])
}

func TestLoginBadCredentials(t *testing.T) {
	h, mock := newAuthHandler(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE u.email = ?`)).
		WithArgs("ghost@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "email", "password_hash", "phone", "role", "is_active", "created_at",
			"a_id", "a_user_id", "street", "city"}))

	rec := loginRequest(h, `{"email":"ghost@x.com","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestRegisterMissingFields(t *testing.T) {
	h, _ := newAuthHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"email":"a@x.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.Register(e.NewContext(req, rec))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
