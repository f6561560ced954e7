package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/entity"
	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/repository"
)

// ErrValidation wraps required-field failures so handlers can answer with a
// form-level message instead of a server error.
var ErrValidation = errors.New("validation failed")

type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context, search string) ([]*entity.User, error) {
	users, err := s.users.List(ctx, search)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing users")
		return nil, err
	}
	return users, nil
}

func (s *UserService) GetByID(ctx context.Context, id int) (*entity.User, error) {
	return s.users.GetByID(ctx, id)
}

// Create is the admin path for new accounts. Unlike registration the role
// is taken from the form, defaulting to Customer when left blank.
func (s *UserService) Create(ctx context.Context, user *entity.User, password string) (*entity.User, error) {
	if user.FullName == "" {
		return nil, fmt.Errorf("%w: full name is required", ErrValidation)
	}
	if user.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrValidation)
	}

	exists, err := s.users.ExistsByEmail(ctx, user.Email)
	if err != nil {
		logger.Error().Err(err).Msg("Error checking email on user create")
		return nil, err
	}
	if exists {
		return nil, repository.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hash)

	if user.Role == "" {
		user.Role = entity.RoleCustomer
	}
	user.IsActive = true
	user.CreatedAt = time.Now()

	created, err := s.users.Create(ctx, user)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating user")
		return nil, err
	}

	return created, nil
}

func (s *UserService) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	if user.FullName == "" {
		return nil, fmt.Errorf("%w: full name is required", ErrValidation)
	}
	if user.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.Error().Err(err).Msgf("Error updating user %d", user.ID)
		}
		return nil, err
	}

	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	if err := s.users.Delete(ctx, id); err != nil {
		logger.Error().Err(err).Msgf("Error deleting user %d", id)
		return err
	}
	return nil
}
