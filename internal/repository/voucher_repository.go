package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/entity"
)

type VoucherRepository struct {
	db *sql.DB
}

func NewVoucherRepository(db *sql.DB) *VoucherRepository {
	return &VoucherRepository{db}
}

func (r *VoucherRepository) List(ctx context.Context, search string) ([]*entity.Voucher, error) {
	query := `SELECT id, code, discount_percent, created_at FROM vouchers`
	var args []interface{}
	if search != "" {
		query += ` WHERE code LIKE ?`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vouchers []*entity.Voucher
	for rows.Next() {
		var voucher entity.Voucher
		if err := rows.Scan(&voucher.ID, &voucher.Code, &voucher.DiscountPercent, &voucher.CreatedAt); err != nil {
			return nil, err
		}
		vouchers = append(vouchers, &voucher)
	}

	return vouchers, rows.Err()
}

func (r *VoucherRepository) GetByID(ctx context.Context, id int) (*entity.Voucher, error) {
	voucher := &entity.Voucher{}
	query := `SELECT id, code, discount_percent, created_at FROM vouchers WHERE id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&voucher.ID, &voucher.Code, &voucher.DiscountPercent, &voucher.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return voucher, nil
}

func (r *VoucherRepository) Create(ctx context.Context, voucher *entity.Voucher) (*entity.Voucher, error) {
	query := `INSERT INTO vouchers (code, discount_percent, created_at) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, voucher.Code, voucher.DiscountPercent, voucher.CreatedAt)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	voucher.ID = int(id)
	return voucher, nil
}

func (r *VoucherRepository) Update(ctx context.Context, voucher *entity.Voucher) (*entity.Voucher, error) {
	query := `UPDATE vouchers SET code = ?, discount_percent = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, voucher.Code, voucher.DiscountPercent, voucher.ID)
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

	return voucher, nil
}

func (r *VoucherRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM vouchers WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
