package models

import "time"

// Category groups products; its name doubles as a public filter key.
type Category struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;not null;uniqueIndex" json:"name"`
	Description *string   `gorm:"column:description" json:"description,omitempty"`
	Image       *string   `gorm:"column:image" json:"image,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
