package models

import "time"

// Note is keyed by (user, supplier). Writes are last-write-wins.
type Note struct {
	UserID     string    `json:"user_id"`
	SupplierID int       `json:"supplier_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
