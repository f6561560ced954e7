package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/entity"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db}
}

// List returns all orders with user and status joined, newest first. The
// search term matches the customer's full name or the order id rendered as
// a string, the way the admin search box works.
func (r *OrderRepository) List(ctx context.Context, search string) ([]*entity.Order, error) {
	return r.list(ctx, search, "")
}

// ListByStatusName narrows List to orders whose status display name matches
// exactly.
func (r *OrderRepository) ListByStatusName(ctx context.Context, status entity.StatusName, search string) ([]*entity.Order, error) {
	return r.list(ctx, search, status)
}

func (r *OrderRepository) list(ctx context.Context, search string, status entity.StatusName) ([]*entity.Order, error) {
	query := `
		SELECT o.id, o.user_id, u.full_name, o.order_date, o.total_amount, o.status_id, s.name
		FROM orders o
		JOIN users u ON u.id = o.user_id
		JOIN order_statuses s ON s.id = o.status_id`

	var conds []string
	var args []interface{}
	if status != "" {
		conds = append(conds, `s.name = ?`)
		args = append(args, status)
	}
	if search != "" {
		conds = append(conds, `(u.full_name LIKE ? OR CAST(o.id AS CHAR) LIKE ?)`)
		term := "%" + search + "%"
		args = append(args, term, term)
	}
	for i, cond := range conds {
		if i == 0 {
			query += ` WHERE ` + cond
		} else {
			query += ` AND ` + cond
		}
	}
	query += ` ORDER BY o.order_date DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		var order entity.Order
		err := rows.Scan(&order.ID, &order.UserID, &order.UserFullName, &order.OrderDate, &order.TotalAmount, &order.StatusID, &order.StatusName)
		if err != nil {
			return nil, err
		}
		orders = append(orders, &order)
	}

	return orders, rows.Err()
}

// GetByID loads one order with user, status and the full item breakdown,
// each line resolved to either a menu item size or a combo.
func (r *OrderRepository) GetByID(ctx context.Context, id int) (*entity.Order, error) {
	order := &entity.Order{}
	orderQuery := `
		SELECT o.id, o.user_id, u.full_name, o.order_date, o.total_amount, o.status_id, s.name
		FROM orders o
		JOIN users u ON u.id = o.user_id
		JOIN order_statuses s ON s.id = o.status_id
		WHERE o.id = ?`
	err := r.db.QueryRowContext(ctx, orderQuery, id).Scan(&order.ID, &order.UserID, &order.UserFullName, &order.OrderDate, &order.TotalAmount, &order.StatusID, &order.StatusName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	itemQuery := `
		SELECT i.id, i.order_id, i.size_id, i.combo_id, i.quantity, i.line_price,
		       COALESCE(m.name, ''), COALESCE(ms.name, ''), COALESCE(c.name, '')
		FROM order_items i
		LEFT JOIN menu_item_sizes ms ON ms.id = i.size_id
		LEFT JOIN menu_items m ON m.id = ms.menu_item_id
		LEFT JOIN combos c ON c.id = i.combo_id
		WHERE i.order_id = ?`
	rows, err := r.db.QueryContext(ctx, itemQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item entity.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.SizeID, &item.ComboID, &item.Quantity, &item.LinePrice,
			&item.MenuItemName, &item.SizeName, &item.ComboName)
		if err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}

	return order, rows.Err()
}

// Create inserts the order and its line items in one transaction. The admin
// surface never calls this; orders arrive from the storefront.
func (r *OrderRepository) Create(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	orderQuery := `INSERT INTO orders (user_id, order_date, total_amount, status_id) VALUES (?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, orderQuery, order.UserID, order.OrderDate, order.TotalAmount, order.StatusID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	orderID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if len(order.Items) > 0 {
		itemQuery := `INSERT INTO order_items (order_id, size_id, combo_id, quantity, line_price) VALUES `
		var values []interface{}
		for _, item := range order.Items {
			itemQuery += "(?, ?, ?, ?, ?),"
			values = append(values, orderID, item.SizeID, item.ComboID, item.Quantity, item.LinePrice)
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

	order.ID = int(orderID)
	return order, nil
}

// UpdateStatus overwrites the status reference unconditionally. Any status
// may follow any other; there is no transition table.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID, statusID int) error {
	query := `UPDATE orders SET status_id = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, statusID, orderID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *OrderRepository) ListStatuses(ctx context.Context) ([]*entity.OrderStatus, error) {
	query := `SELECT id, name FROM order_statuses ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []*entity.OrderStatus
	for rows.Next() {
		var status entity.OrderStatus
		if err := rows.Scan(&status.ID, &status.Name); err != nil {
			return nil, err
		}
		statuses = append(statuses, &status)
	}

	return statuses, rows.Err()
}

func (r *OrderRepository) StatusExists(ctx context.Context, id int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM order_statuses WHERE id = ?)`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// DeleteStatus removes a status row, refusing while orders still reference
// it. Statuses are seed data, so this mostly serves cleanup tooling.
func (r *OrderRepository) DeleteStatus(ctx context.Context, id int) error {
	var count int
	countQuery := `SELECT COUNT(*) FROM orders WHERE status_id = ?`
	if err := r.db.QueryRowContext(ctx, countQuery, id).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return ErrStatusInUse
	}

	query := `DELETE FROM order_statuses WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
