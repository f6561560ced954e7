package entity

import "time"

// Voucher codes are not unique; two vouchers may share a code.
type Voucher struct {
	ID              int       `json:"id"`
	Code            string    `json:"code"`
	DiscountPercent float64   `json:"discount_percent"`
	CreatedAt       time.Time `json:"created_at"`
}

/*
Mysql Schema:

CREATE TABLE vouchers (
	id INT AUTO_INCREMENT PRIMARY KEY,
	code VARCHAR(50) NOT NULL,
	discount_percent DOUBLE NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL
);
*/
