package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/entity"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db}
}

// List returns all users, newest first. A non-empty search narrows the
// result to rows whose full name, email or phone contains the term.
func (r *UserRepository) List(ctx context.Context, search string) ([]*entity.User, error) {
	query := `SELECT id, full_name, email, password_hash, phone, role, is_active, created_at FROM users`
	var args []interface{}
	if search != "" {
		query += ` WHERE full_name LIKE ? OR email LIKE ? OR phone LIKE ?`
		term := "%" + search + "%"
		args = append(args, term, term, term)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		var user entity.User
		var phone sql.NullString
		err := rows.Scan(&user.ID, &user.FullName, &user.Email, &user.PasswordHash, &phone, &user.Role, &user.IsActive, &user.CreatedAt)
		if err != nil {
			return nil, err
		}
		user.Phone = phone.String
		users = append(users, &user)
	}

	return users, rows.Err()
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (*entity.User, error) {
	user := &entity.User{}
	var phone sql.NullString
	query := `SELECT id, full_name, email, password_hash, phone, role, is_active, created_at FROM users WHERE id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.FullName, &user.Email, &user.PasswordHash, &phone, &user.Role, &user.IsActive, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	user.Phone = phone.String

	return user, nil
}

// GetByEmail loads a user together with the optional address row, the one
// place the login path needs it.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	user := &entity.User{}
	var phone sql.NullString
	var addrID, addrUserID sql.NullInt64
	var street, city sql.NullString

	query := `
		SELECT u.id, u.full_name, u.email, u.password_hash, u.phone, u.role, u.is_active, u.created_at,
		       a.id, a.user_id, a.street, a.city
		FROM users u
		LEFT JOIN addresses a ON a.user_id = u.id
		WHERE u.email = ?`
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.FullName, &user.Email, &user.PasswordHash, &phone, &user.Role, &user.IsActive, &user.CreatedAt,
		&addrID, &addrUserID, &street, &city,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	user.Phone = phone.String
	if addrID.Valid {
		user.Address = &entity.Address{
			ID:     int(addrID.Int64),
			UserID: int(addrUserID.Int64),
			Street: street.String,
			City:   city.String,
		}
	}

	return user, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `INSERT INTO users (full_name, email, password_hash, phone, role, is_active, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, user.FullName, user.Email, user.PasswordHash, user.Phone, user.Role, user.IsActive, user.CreatedAt)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	user.ID = int(id)
	return user, nil
}

func (r *UserRepository) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `UPDATE users SET full_name = ?, email = ?, phone = ?, role = ?, is_active = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, user.FullName, user.Email, user.Phone, user.Role, user.IsActive, user.ID)
	if err != nil {
		return nil, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return user, nil
}

// Delete is idempotent; deleting an absent user is not an error.
func (r *UserRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM users WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
