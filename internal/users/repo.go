package users

import (
	"context"
	"errors"

	"github.com/akulikov/pharmshop-backend/pkg/db"
	"github.com/akulikov/pharmshop-backend/pkg/db/models"
	pkgerrors "github.com/akulikov/pharmshop-backend/pkg/errors"
	"github.com/akulikov/pharmshop-backend/pkg/sqlbuilder"
	"gorm.io/gorm"
)

// accountUpdate is the closed set of user columns the profile endpoint may
// touch. Order here decides parameter order in every generated statement.
var accountUpdate = sqlbuilder.NewUpdateBuilder("users", "id",
	"first_name", "last_name", "middle_name", "phone",
)

// Repository exposes user and profile persistence.
type Repository struct {
	client *db.Client
}

// NewRepository constructs a users repo bound to the provided DB client.
func NewRepository(client *db.Client) *Repository {
	return &Repository{client: client}
}

// CreateWithProfile inserts the user and their empty profile row in one
// transaction.
func (r *Repository) CreateWithProfile(ctx context.Context, user *models.User) (*models.User, error) {
	err := r.client.WithTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(&models.UserProfile{UserID: user.ID}).Error
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// FindByID loads a user by their ID.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := r.client.DB().WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}
	return &user, nil
}

// FindByIdentifier retrieves the user whose email or username matches.
func (r *Repository) FindByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	var user models.User
	err := r.client.DB().WithContext(ctx).
		Where("email = ? OR username = ?", identifier, identifier).
		First(&user).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}
	return &user, nil
}

// RecordLogin bumps login_count and stamps last_login in one unconditional
// statement.
func (r *Repository) RecordLogin(ctx context.Context, id int64) error {
	return r.client.DB().WithContext(ctx).
		Exec("UPDATE users SET login_count = login_count + 1, last_login = NOW() WHERE id = ?", id).
		Error
}

// UpdateAccountFields applies a sparse update over the account allow-list.
// An empty field set is a no-op success; a missing target row fails with a
// not-found error.
func (r *Repository) UpdateAccountFields(ctx context.Context, id int64, fields map[string]any) error {
	query, ok, err := accountUpdate.Build(id, fields)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "build account update")
	}
	if !ok {
		return nil
	}

	std, err := r.client.Std()
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "acquire sql handle")
	}
	result, err := std.ExecContext(ctx, query.SQL, query.Args...)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update user")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update user")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}
	return nil
}

// FindProfile loads the extended profile row for the user.
func (r *Repository) FindProfile(ctx context.Context, userID int64) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.client.DB().WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load profile")
	}
	return &profile, nil
}
