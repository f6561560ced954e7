package entity

import "time"

type Combo struct {
	ID        int         `json:"id"`
	Name      string      `json:"name"`
	Code      string      `json:"code"`
	CreatedAt time.Time   `json:"created_at"`
	Items     []ComboItem `json:"items,omitempty"`
}

type ComboItem struct {
	ID           int    `json:"id"`
	ComboID      int    `json:"combo_id"`
	MenuItemID   int    `json:"menu_item_id"`
	MenuItemName string `json:"menu_item_name,omitempty"`
	Quantity     int    `json:"quantity"`
}

/*
Mysql Schema:

CREATE TABLE combos (
	id INT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	code VARCHAR(50) NOT NULL,
	created_at DATETIME NOT NULL
);

CREATE TABLE combo_items (
	id INT AUTO_INCREMENT PRIMARY KEY,
	combo_id INT NOT NULL REFERENCES combos(id),
	menu_item_id INT NOT NULL REFERENCES menu_items(id),
	quantity INT NOT NULL DEFAULT 1
);
*/
