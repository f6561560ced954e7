package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/entity"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db}
}

// List orders categories by their explicit sort order, not creation time.
func (r *CategoryRepository) List(ctx context.Context, search string) ([]*entity.Category, error) {
	query := `SELECT id, name, sort_order FROM categories`
	var args []interface{}
	if search != "" {
		query += ` WHERE name LIKE ?`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY sort_order ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*entity.Category
	for rows.Next() {
		var category entity.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.SortOrder); err != nil {
			return nil, err
		}
		categories = append(categories, &category)
	}

	return categories, rows.Err()
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*entity.Category, error) {
	category := &entity.Category{}
	query := `SELECT id, name, sort_order FROM categories WHERE id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&category.ID, &category.Name, &category.SortOrder)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return category, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	query := `INSERT INTO categories (name, sort_order) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, query, category.Name, category.SortOrder)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	category.ID = int(id)
	return category, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	query := `UPDATE categories SET name = ?, sort_order = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, category.Name, category.SortOrder, category.ID)
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

	return category, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM categories WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
