package users

import (
	"time"

	"github.com/akulikov/pharmshop-backend/pkg/db/models"
)

// UserDTO is the transport shape that omits credentials.
type UserDTO struct {
	ID         int64       `json:"id"`
	Email      string      `json:"email"`
	Username   string      `json:"username"`
	FirstName  *string     `json:"first_name,omitempty"`
	LastName   *string     `json:"last_name,omitempty"`
	MiddleName *string     `json:"middle_name,omitempty"`
	Phone      *string     `json:"phone,omitempty"`
	Avatar     *string     `json:"avatar,omitempty"`
	IsAdmin    bool        `json:"is_admin"`
	LastLogin  *time.Time  `json:"last_login,omitempty"`
	LoginCount int         `json:"login_count"`
	CreatedAt  time.Time   `json:"created_at"`
	Profile    *ProfileDTO `json:"profile,omitempty"`
}

// ProfileDTO carries the extended account fields.
type ProfileDTO struct {
	DateOfBirth *string   `json:"date_of_birth,omitempty"`
	Address     *string   `json:"address,omitempty"`
	City        *string   `json:"city,omitempty"`
	PostalCode  *string   `json:"postal_code,omitempty"`
	Preferences *string   `json:"preferences,omitempty"`
	Newsletter  bool      `json:"newsletter"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FromModel converts the persisted user, optionally with their profile row.
func FromModel(u *models.User, p *models.UserProfile) *UserDTO {
	if u == nil {
		return nil
	}

	dto := &UserDTO{
		ID:         u.ID,
		Email:      u.Email,
		Username:   u.Username,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		MiddleName: u.MiddleName,
		Phone:      u.Phone,
		Avatar:     u.Avatar,
		IsAdmin:    u.IsAdmin,
		LastLogin:  u.LastLogin,
		LoginCount: u.LoginCount,
		CreatedAt:  u.CreatedAt,
	}
	if p != nil {
		dto.Profile = &ProfileDTO{
			DateOfBirth: p.DateOfBirth,
			Address:     p.Address,
			City:        p.City,
			PostalCode:  p.PostalCode,
			Preferences: p.Preferences,
			Newsletter:  p.Newsletter,
			UpdatedAt:   p.UpdatedAt,
		}
	}
	return dto
}
