package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/entity"
	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/repository"
	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/session"
)

var testSecret = []byte("test-secret")

func userByEmailColumns() []string {
	return []string{"id", "full_name", "email", "password_hash", "phone", "role", "is_active", "created_at",
		"a_id", "a_user_id", "street", "city"}
}

func newAuthService(t *testing.T) (*AuthService, sqlmock.Sqlmock, *session.MemoryStore) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sessions := session.NewMemoryStore()
	svc := NewAuthService(*repository.NewUserRepository(db), sessions, testSecret, time.Hour)
	return svc, mock, sessions
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func expectUserByEmail(mock sqlmock.Sqlmock, email string, rows *sqlmock.Rows) {
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE u.email = ?`)).
		WithArgs(email).
		WillReturnRows(rows)
}

func TestLoginSuccessIssuesSession(t *testing.T) {
	svc, mock, sessions := newAuthService(t)

	rows := sqlmock.NewRows(userByEmailColumns()).
		AddRow(4, "An Nguyen", "an@x.com", hashOf(t, "secret"), "0901", "Admin", true, time.Now(),
			nil, nil, nil, nil)
	expectUserByEmail(mock, "an@x.com", rows)

	token, user, err := svc.Login(context.Background(), "an@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)

	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return testSecret, nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "An Nguyen", claims.Name)
	assert.Equal(t, "an@x.com", claims.Email)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	assert.Equal(t, 4, claims.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)

	stored, err := sessions.Get(context.Background(), "an@x.com")
	require.NoError(t, err)
	assert.Equal(t, token, stored)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, mock, sessions := newAuthService(t)

	expectUserByEmail(mock, "ghost@x.com", sqlmock.NewRows(userByEmailColumns()))

	_, _, err := svc.Login(context.Background(), "ghost@x.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = sessions.Get(context.Background(), "ghost@x.com")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, mock, sessions := newAuthService(t)

	rows := sqlmock.NewRows(userByEmailColumns()).
		AddRow(4, "An Nguyen", "an@x.com", hashOf(t, "right"), "0901", "Admin", true, time.Now(),
			nil, nil, nil, nil)
	expectUserByEmail(mock, "an@x.com", rows)

	_, _, err := svc.Login(context.Background(), "an@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = sessions.Get(context.Background(), "an@x.com")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestLoginInactiveUserCorrectPassword(t *testing.T) {
	svc, mock, sessions := newAuthService(t)

	rows := sqlmock.NewRows(userByEmailColumns()).
		AddRow(4, "An Nguyen", "an@x.com", hashOf(t, "secret"), "0901", "Admin", false, time.Now(),
			nil, nil, nil, nil)
	expectUserByEmail(mock, "an@x.com", rows)

	_, _, err := svc.Login(context.Background(), "an@x.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = sessions.Get(context.Background(), "an@x.com")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, mock, _ := newAuthService(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	_, err := svc.Register(context.Background(), "Someone", "a@x.com", "pw", "")
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
	// No INSERT was expected; a second row would have failed the mock.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterCreatesCustomer(t *testing.T) {
	svc, mock, _ := newAuthService(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).
		WithArgs("new@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users`)).
		WillReturnResult(sqlmock.NewResult(5, 1))

	user, err := svc.Register(context.Background(), "New User", "new@x.com", "pw", "0900")
	require.NoError(t, err)
	assert.Equal(t, 5, user.ID)
	assert.Equal(t, entity.RoleCustomer, user.Role)
	assert.True(t, user.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw")))
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, mock, _ := newAuthService(t)

	rows := sqlmock.NewRows(userByEmailColumns()).
		AddRow(4, "An Nguyen", "an@x.com", hashOf(t, "secret"), "0901", "Admin", true, time.Now(),
			nil, nil, nil, nil)
	expectUserByEmail(mock, "an@x.com", rows)

	token, _, err := svc.Login(context.Background(), "an@x.com", "secret")
	require.NoError(t, err)

	valid, err := svc.ValidateSession(context.Background(), "an@x.com", token)
	require.NoError(t, err)
	assert.True(t, valid)

	require.NoError(t, svc.Logout(context.Background(), "an@x.com"))

	valid, err = svc.ValidateSession(context.Background(), "an@x.com", token)
	require.NoError(t, err)
	assert.False(t, valid)
}
