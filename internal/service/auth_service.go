package service

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/entity"
	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/repository"
	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/session"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// ErrInvalidCredentials is deliberately the same for an unknown email, a
// wrong password and an inactive account.
var ErrInvalidCredentials = errors.New("invalid email or password")

// SessionClaims is the identity carried by the session cookie.
type SessionClaims struct {
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Role   entity.Role `json:"role"`
	UserID int         `json:"user_id"`
	jwt.RegisteredClaims
}

type AuthService struct {
	users    repository.UserRepository
	sessions session.Store
	secret   []byte
	ttl      time.Duration
}

func NewAuthService(users repository.UserRepository, sessions session.Store, secret []byte, ttl time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		secret:   secret,
		ttl:      ttl,
	}
}

// Login verifies the credentials and, on success, issues a signed session
// token and records it in the session store for the session TTL.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		logger.Error().Err(err).Msg("Error looking up user for login")
		return "", nil, err
	}

	if !user.IsActive {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	claims := &SessionClaims{
		Name:   user.FullName,
		Email:  user.Email,
		Role:   user.Role,
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
		},
	}

	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err := tkn.SignedString(s.secret)
	if err != nil {
		logger.Error().Err(err).Msg("Error signing session token")
		return "", nil, err
	}

	if err := s.sessions.Save(ctx, user.Email, token, s.ttl); err != nil {
		logger.Error().Err(err).Msg("Error saving session")
		return "", nil, err
	}

	return token, user, nil
}

// Register creates a customer account. The role is always Customer; admins
// are created through the admin user screen.
func (s *AuthService) Register(ctx context.Context, fullName, email, password, phone string) (*entity.User, error) {
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		logger.Error().Err(err).Msg("Error checking email on registration")
		return nil, err
	}
	if exists {
		return nil, repository.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        phone,
		Role:         entity.RoleCustomer,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating user on registration")
		return nil, err
	}

	return created, nil
}

// Logout tears the session down; the cookie alone is not trusted afterward.
func (s *AuthService) Logout(ctx context.Context, email string) error {
	return s.sessions.Delete(ctx, email)
}

// ValidateSession reports whether the presented token is the one the store
// still holds for the email.
func (s *AuthService) ValidateSession(ctx context.Context, email, token string) (bool, error) {
	stored, err := s.sessions.Get(ctx, email)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return stored == token, nil
}
