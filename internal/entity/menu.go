package entity

import "time"

type MenuItem struct {
	ID           int            `json:"id"`
	Name         string         `json:"name"`
	CategoryID   int            `json:"category_id"`
	CategoryName string         `json:"category_name,omitempty"`
	ImagePath    string         `json:"image_path"`
	CreatedAt    time.Time      `json:"created_at"`
	Sizes        []MenuItemSize `json:"sizes,omitempty"`
}

type MenuItemSize struct {
	ID         int     `json:"id"`
	MenuItemID int     `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
}

/*
Mysql Schema:

CREATE TABLE menu_items (
	id INT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	category_id INT NOT NULL REFERENCES categories(id),
	image_path VARCHAR(255) NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL
);

CREATE TABLE menu_item_sizes (
	id INT AUTO_INCREMENT PRIMARY KEY,
	menu_item_id INT NOT NULL REFERENCES menu_items(id),
	name VARCHAR(50) NOT NULL,
	price DOUBLE NOT NULL
);
*/
