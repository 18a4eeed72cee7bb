package models

import "time"

// UserProfile holds the extended account fields created empty at registration.
type UserProfile struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID      int64     `gorm:"column:user_id;not null;uniqueIndex" json:"user_id"`
	DateOfBirth *string   `gorm:"column:date_of_birth" json:"date_of_birth,omitempty"`
	Address     *string   `gorm:"column:address" json:"address,omitempty"`
	City        *string   `gorm:"column:city" json:"city,omitempty"`
	PostalCode  *string   `gorm:"column:postal_code" json:"postal_code,omitempty"`
	Preferences *string   `gorm:"column:preferences" json:"preferences,omitempty"`
	Newsletter  bool      `gorm:"column:newsletter;not null;default:false" json:"newsletter"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
