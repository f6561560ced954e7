package migrations

import (
	"database/sql"
	"time"
)

var tables = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		full_name VARCHAR(100) NOT NULL,
		email VARCHAR(100) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		phone VARCHAR(20),
		role VARCHAR(20) NOT NULL,
		is_active TINYINT(1) NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL,
		UNIQUE KEY email_idx (email)
	);`,
	`CREATE TABLE IF NOT EXISTS addresses (
		id INT AUTO_INCREMENT PRIMARY KEY,
		user_id INT NOT NULL,
		street VARCHAR(255) NOT NULL,
		city VARCHAR(100) NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	);`,
	`CREATE TABLE IF NOT EXISTS categories (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		sort_order INT NOT NULL DEFAULT 0
	);`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		category_id INT NOT NULL,
		image_path VARCHAR(255) NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL,
		FOREIGN KEY (category_id) REFERENCES categories(id)
	);`,
	`CREATE TABLE IF NOT EXISTS menu_item_sizes (
		id INT AUTO_INCREMENT PRIMARY KEY,
		menu_item_id INT NOT NULL,
		name VARCHAR(50) NOT NULL,
		price DOUBLE NOT NULL,
		FOREIGN KEY (menu_item_id) REFERENCES menu_items(id) ON DELETE CASCADE
	);`,
	`CREATE TABLE IF NOT EXISTS combos (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		code VARCHAR(50) NOT NULL,
		created_at DATETIME NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS combo_items (
		id INT AUTO_INCREMENT PRIMARY KEY,
		combo_id INT NOT NULL,
		menu_item_id INT NOT NULL,
		quantity INT NOT NULL DEFAULT 1,
		FOREIGN KEY (combo_id) REFERENCES combos(id) ON DELETE CASCADE,
		FOREIGN KEY (menu_item_id) REFERENCES menu_items(id)
	);`,
	`CREATE TABLE IF NOT EXISTS vouchers (
		id INT AUTO_INCREMENT PRIMARY KEY,
		code VARCHAR(50) NOT NULL,
		discount_percent DOUBLE NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS order_statuses (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(50) NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS orders (
		id INT AUTO_INCREMENT PRIMARY KEY,
		user_id INT NOT NULL,
		order_date DATETIME NOT NULL,
		total_amount DOUBLE NOT NULL,
		status_id INT NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id),
		FOREIGN KEY (status_id) REFERENCES order_statuses(id)
	);`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id INT AUTO_INCREMENT PRIMARY KEY,
		order_id INT NOT NULL,
		size_id INT NULL,
		combo_id INT NULL,
		quantity INT NOT NULL,
		line_price DOUBLE NOT NULL,
		FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE,
		FOREIGN KEY (size_id) REFERENCES menu_item_sizes(id),
		FOREIGN KEY (combo_id) REFERENCES combos(id)
	);`,
}

// AutoMigrate creates the schema if it does not exist and seeds the order
// status rows.
func AutoMigrate(retries int, db *sql.DB) error {
	for _, query := range tables {
		if err := execWithRetry(db, query, retries); err != nil {
			return err
		}
	}
	return seedStatuses(db)
}

func execWithRetry(db *sql.DB, query string, retries int) error {
	_, err := db.Exec(query)
	for i := 0; err != nil && i < retries; i++ {
		time.Sleep(1 * time.Second)
		_, err = db.Exec(query)
	}
	return err
}

// seedStatuses inserts the canonical status rows once; reruns are no-ops.
func seedStatuses(db *sql.DB) error {
	names := []string{"Pending", "Confirmed", "Preparing", "Delivering", "Completed", "Cancelled"}
	for _, name := range names {
		query := `INSERT INTO order_statuses (name)
			SELECT ? FROM DUAL
			WHERE NOT EXISTS (SELECT 1 FROM order_statuses WHERE name = ?)`
		if _, err := db.Exec(query, name, name); err != nil {
			return err
		}
	}
	return nil
}
