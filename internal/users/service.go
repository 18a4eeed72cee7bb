package users

import (
	"context"
	"fmt"

	"github.com/akulikov/pharmshop-backend/pkg/db/models"
)

// UpdateProfileInput carries optional account mutations. Nil means "leave
// unchanged"; clearing a column requires sending an empty string.
type UpdateProfileInput struct {
	FirstName  *string
	LastName   *string
	MiddleName *string
	Phone      *string
}

// Service exposes the current-user account operations.
type Service interface {
	Me(ctx context.Context, userID int64) (*UserDTO, error)
	UpdateProfile(ctx context.Context, userID int64, input UpdateProfileInput) (*UserDTO, error)
}

type accountRepository interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindProfile(ctx context.Context, userID int64) (*models.UserProfile, error)
	UpdateAccountFields(ctx context.Context, id int64, fields map[string]any) error
}

type service struct {
	repo accountRepository
}

// NewService constructs a users service instance.
func NewService(repo accountRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("users repository required")
	}
	return &service{repo: repo}, nil
}

// Me returns the current user joined with their profile row.
func (s *service) Me(ctx context.Context, userID int64) (*UserDTO, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile, err := s.repo.FindProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return FromModel(user, profile), nil
}

// UpdateProfile applies the provided fields and returns the fresh row. An
// input with nothing set issues no update statement and succeeds with the
// current state.
func (s *service) UpdateProfile(ctx context.Context, userID int64, input UpdateProfileInput) (*UserDTO, error) {
	fields := map[string]any{}
	if input.FirstName != nil {
		fields["first_name"] = *input.FirstName
	}
	if input.LastName != nil {
		fields["last_name"] = *input.LastName
	}
	if input.MiddleName != nil {
		fields["middle_name"] = *input.MiddleName
	}
	if input.Phone != nil {
		fields["phone"] = *input.Phone
	}

	if len(fields) > 0 {
		if err := s.repo.UpdateAccountFields(ctx, userID, fields); err != nil {
			return nil, err
		}
	}

	return s.Me(ctx, userID)
}
