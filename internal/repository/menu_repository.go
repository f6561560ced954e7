package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/entity"
)

type MenuRepository struct {
	db *sql.DB
}

func NewMenuRepository(db *sql.DB) *MenuRepository {
	return &MenuRepository{db}
}

func (r *MenuRepository) List(ctx context.Context, search string) ([]*entity.MenuItem, error) {
	query := `
		SELECT m.id, m.name, m.category_id, c.name, m.image_path, m.created_at
		FROM menu_items m
		JOIN categories c ON c.id = m.category_id`
	var args []interface{}
	if search != "" {
		query += ` WHERE m.name LIKE ?`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY m.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*entity.MenuItem
	for rows.Next() {
		var item entity.MenuItem
		err := rows.Scan(&item.ID, &item.Name, &item.CategoryID, &item.CategoryName, &item.ImagePath, &item.CreatedAt)
		if err != nil {
			return nil, err
		}
		items = append(items, &item)
	}

	return items, rows.Err()
}

// GetByID loads the menu item together with its sizes.
func (r *MenuRepository) GetByID(ctx context.Context, id int) (*entity.MenuItem, error) {
	item := &entity.MenuItem{}
	itemQuery := `
		SELECT m.id, m.name, m.category_id, c.name, m.image_path, m.created_at
		FROM menu_items m
		JOIN categories c ON c.id = m.category_id
		WHERE m.id = ?`
	err := r.db.QueryRowContext(ctx, itemQuery, id).Scan(&item.ID, &item.Name, &item.CategoryID, &item.CategoryName, &item.ImagePath, &item.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	sizeQuery := `SELECT id, menu_item_id, name, price FROM menu_item_sizes WHERE menu_item_id = ?`
	rows, err := r.db.QueryContext(ctx, sizeQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var size entity.MenuItemSize
		if err := rows.Scan(&size.ID, &size.MenuItemID, &size.Name, &size.Price); err != nil {
			return nil, err
		}
		item.Sizes = append(item.Sizes, size)
	}

	return item, rows.Err()
}

// Create inserts the menu item and its sizes in one transaction.
func (r *MenuRepository) Create(ctx context.Context, item *entity.MenuItem) (*entity.MenuItem, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	itemQuery := `INSERT INTO menu_items (name, category_id, image_path, created_at) VALUES (?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, itemQuery, item.Name, item.CategoryID, item.ImagePath, item.CreatedAt)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	itemID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if len(item.Sizes) > 0 {
		sizeQuery := `INSERT INTO menu_item_sizes (menu_item_id, name, price) VALUES `
		var values []interface{}
		for _, size := range item.Sizes {
			sizeQuery += "(?, ?, ?),"
			values = append(values, itemID, size.Name, size.Price)
		}
		sizeQuery = sizeQuery[:len(sizeQuery)-1]

		_, err = tx.ExecContext(ctx, sizeQuery, values...)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	item.ID = int(itemID)
	for i := range item.Sizes {
		item.Sizes[i].MenuItemID = item.ID
	}
	return item, nil
}

// Update overwrites the menu item row and replaces its size list.
func (r *MenuRepository) Update(ctx context.Context, item *entity.MenuItem) (*entity.MenuItem, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	itemQuery := `UPDATE menu_items SET name = ?, category_id = ?, image_path = ? WHERE id = ?`
	res, err := tx.ExecContext(ctx, itemQuery, item.Name, item.CategoryID, item.ImagePath, item.ID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if affected == 0 {
		tx.Rollback()
		return nil, ErrNotFound
	}

	deleteQuery := `DELETE FROM menu_item_sizes WHERE menu_item_id = ?`
	_, err = tx.ExecContext(ctx, deleteQuery, item.ID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	sizeQuery := `INSERT INTO menu_item_sizes (menu_item_id, name, price) VALUES (?, ?, ?)`
	for _, size := range item.Sizes {
		_, err := tx.ExecContext(ctx, sizeQuery, item.ID, size.Name, size.Price)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return item, nil
}

func (r *MenuRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	sizeQuery := `DELETE FROM menu_item_sizes WHERE menu_item_id = ?`
	_, err = tx.ExecContext(ctx, sizeQuery, id)
	if err != nil {
		tx.Rollback()
		return err
	}

	itemQuery := `DELETE FROM menu_items WHERE id = ?`
	_, err = tx.ExecContext(ctx, itemQuery, id)
	if err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
