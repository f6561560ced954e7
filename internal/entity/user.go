package entity

import "time"

// Role is the closed set of account roles. The stored value is the display
// name, so comparisons against existing rows keep working.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleCustomer Role = "Customer"
)

type User struct {
	ID           int       `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	Address      *Address  `json:"address,omitempty"`
}

type Address struct {
	ID     int    `json:"id"`
	UserID int    `json:"user_id"`
	Street string `json:"street"`
	City   string `json:"city"`
}

/*
Mysql Schema:

CREATE TABLE users (
	id INT AUTO_INCREMENT PRIMARY KEY,
	full_name VARCHAR(100) NOT NULL,
	email VARCHAR(100) NOT NULL,
	password_hash VARCHAR(255) NOT NULL,
	phone VARCHAR(20),
	role VARCHAR(20) NOT NULL,
	is_active TINYINT(1) NOT NULL DEFAULT 1,
	created_at DATETIME NOT NULL
);

CREATE UNIQUE INDEX email_idx ON users(email);

CREATE TABLE addresses (
	id INT AUTO_INCREMENT PRIMARY KEY,
	user_id INT NOT NULL REFERENCES users(id),
	street VARCHAR(255) NOT NULL,
	city VARCHAR(100) NOT NULL
);
*/
