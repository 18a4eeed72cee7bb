package models

import "time"

// CartItem ties a product to either an authenticated user or an anonymous
// browser session; exactly one of UserID/SessionID is expected to be set.
type CartItem struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SessionID *string   `gorm:"column:session_id" json:"session_id,omitempty"`
	UserID    *int64    `gorm:"column:user_id" json:"user_id,omitempty"`
	ProductID int64     `gorm:"column:product_id;not null" json:"product_id"`
	Quantity  int       `gorm:"column:quantity;not null;default:1" json:"quantity"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
