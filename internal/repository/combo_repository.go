package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/entity"
)

type ComboRepository struct {
	db *sql.DB
}

func NewComboRepository(db *sql.DB) *ComboRepository {
	return &ComboRepository{db}
}

func (r *ComboRepository) List(ctx context.Context, search string) ([]*entity.Combo, error) {
	query := `SELECT id, name, code, created_at FROM combos`
	var args []interface{}
	if search != "" {
		query += ` WHERE name LIKE ? OR code LIKE ?`
		term := "%" + search + "%"
		args = append(args, term, term)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var combos []*entity.Combo
	for rows.Next() {
		var combo entity.Combo
		if err := rows.Scan(&combo.ID, &combo.Name, &combo.Code, &combo.CreatedAt); err != nil {
			return nil, err
		}
		combos = append(combos, &combo)
	}

	return combos, rows.Err()
}

// GetByID loads the combo with its items and each item's menu item name.
func (r *ComboRepository) GetByID(ctx context.Context, id int) (*entity.Combo, error) {
	combo := &entity.Combo{}
	comboQuery := `SELECT id, name, code, created_at FROM combos WHERE id = ?`
	err := r.db.QueryRowContext(ctx, comboQuery, id).Scan(&combo.ID, &combo.Name, &combo.Code, &combo.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	itemQuery := `
		SELECT ci.id, ci.combo_id, ci.menu_item_id, m.name, ci.quantity
		FROM combo_items ci
		JOIN menu_items m ON m.id = ci.menu_item_id
		WHERE ci.combo_id = ?`
	rows, err := r.db.QueryContext(ctx, itemQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item entity.ComboItem
		if err := rows.Scan(&item.ID, &item.ComboID, &item.MenuItemID, &item.MenuItemName, &item.Quantity); err != nil {
			return nil, err
		}
		combo.Items = append(combo.Items, item)
	}

	return combo, rows.Err()
}

func (r *ComboRepository) Create(ctx context.Context, combo *entity.Combo) (*entity.Combo, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	comboQuery := `INSERT INTO combos (name, code, created_at) VALUES (?, ?, ?)`
	res, err := tx.ExecContext(ctx, comboQuery, combo.Name, combo.Code, combo.CreatedAt)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	comboID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if len(combo.Items) > 0 {
		itemQuery := `INSERT INTO combo_items (combo_id, menu_item_id, quantity) VALUES `
		var values []interface{}
		for _, item := range combo.Items {
			itemQuery += "(?, ?, ?),"
			values = append(values, comboID, item.MenuItemID, item.Quantity)
		}
		itemQuery = itemQuery[:len(itemQuery)-1]

		_, err = tx.ExecContext(ctx, itemQuery, values...)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	combo.ID = int(comboID)
	for i := range combo.Items {
		combo.Items[i].ComboID = combo.ID
	}
	return combo, nil
}

func (r *ComboRepository) Update(ctx context.Context, combo *entity.Combo) (*entity.Combo, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	comboQuery := `UPDATE combos SET name = ?, code = ? WHERE id = ?`
	res, err := tx.ExecContext(ctx, comboQuery, combo.Name, combo.Code, combo.ID)
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

	deleteQuery := `DELETE FROM combo_items WHERE combo_id = ?`
	_, err = tx.ExecContext(ctx, deleteQuery, combo.ID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	itemQuery := `INSERT INTO combo_items (combo_id, menu_item_id, quantity) VALUES (?, ?, ?)`
	for _, item := range combo.Items {
		_, err := tx.ExecContext(ctx, itemQuery, combo.ID, item.MenuItemID, item.Quantity)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return combo, nil
}

func (r *ComboRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	itemQuery := `DELETE FROM combo_items WHERE combo_id = ?`
	_, err = tx.ExecContext(ctx, itemQuery, id)
	if err != nil {
		tx.Rollback()
		return err
	}

	comboQuery := `DELETE FROM combos WHERE id = ?`
	_, err = tx.ExecContext(ctx, comboQuery, id)
	if err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
