package models

import "time"

// User represents the canonical identity entity. Username and email are both
// accepted as login identifiers and each is unique.
type User struct {
	ID           int64      `gorm:"column:id;primaryKey;autoIncrement"`
	Email        string     `gorm:"column:email;not null;uniqueIndex"`
	Username     string     `gorm:"column:username;not null;uniqueIndex"`
	PasswordHash string     `gorm:"column:password_hash;not null"`
	FirstName    *string    `gorm:"column:first_name"`
	LastName     *string    `gorm:"column:last_name"`
	MiddleName   *string    `gorm:"column:middle_name"`
	Phone        *string    `gorm:"column:phone"`
	Avatar       *string    `gorm:"column:avatar"`
	IsAdmin      bool       `gorm:"column:is_admin;not null;default:false"`
	LastLogin    *time.Time `gorm:"column:last_login"`
	LoginCount   int        `gorm:"column:login_count;not null;default:0"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
}
