package entity

import "time"

// StatusName is the closed set of order status display names. Statuses live
// in their own table; these constants exist so business rules compare
// against a typed value instead of a bare string.
type StatusName string

const (
	StatusPending    StatusName = "Pending"
	StatusConfirmed  StatusName = "Confirmed"
	StatusPreparing  StatusName = "Preparing"
	StatusDelivering StatusName = "Delivering"
	StatusCompleted  StatusName = "Completed"
	StatusCancelled  StatusName = "Cancelled"
)

type OrderStatus struct {
	ID   int        `json:"id"`
	Name StatusName `json:"name"`
}

type Order struct {
	ID           int         `json:"id"`
	UserID       int         `json:"user_id"`
	UserFullName string      `json:"user_full_name,omitempty"`
	OrderDate    time.Time   `json:"order_date"`
	TotalAmount  float64     `json:"total_amount"`
	StatusID     int         `json:"status_id"`
	StatusName   StatusName  `json:"status_name,omitempty"`
	Items        []OrderItem `json:"items,omitempty"`
}

// OrderItem references exactly one of a menu item size or a combo. The
// resolved display fields are filled in by the join, not stored.
type OrderItem struct {
	ID           int     `json:"id"`
	OrderID      int     `json:"order_id"`
	SizeID       *int    `json:"size_id,omitempty"`
	ComboID      *int    `json:"combo_id,omitempty"`
	Quantity     int     `json:"quantity"`
	LinePrice    float64 `json:"line_price"`
	MenuItemName string  `json:"menu_item_name,omitempty"`
	SizeName     string  `json:"size_name,omitempty"`
	ComboName    string  `json:"combo_name,omitempty"`
}

/*
Mysql Schema:

CREATE TABLE order_statuses (
	id INT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(50) NOT NULL
);

CREATE TABLE orders (
	id INT AUTO_INCREMENT PRIMARY KEY,
	user_id INT NOT NULL REFERENCES users(id),
	order_date DATETIME NOT NULL,
	total_amount DOUBLE NOT NULL,
	status_id INT NOT NULL REFERENCES order_statuses(id)
);

CREATE TABLE order_items (
	id INT AUTO_INCREMENT PRIMARY KEY,
	order_id INT NOT NULL REFERENCES orders(id),
	size_id INT NULL REFERENCES menu_item_sizes(id),
	combo_id INT NULL REFERENCES combos(id),
	quantity INT NOT NULL,
	line_price DOUBLE NOT NULL
);
*/
