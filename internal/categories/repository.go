package category

import (
	"context"

	"github.com/akulikov/pharmshop-backend/pkg/db/models"
	pkgerrors "github.com/akulikov/pharmshop-backend/pkg/errors"
	"gorm.io/gorm"
)

// Repository exposes category persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListAll returns every category ordered by name.
func (r *Repository) ListAll(ctx context.Context) ([]models.Category, error) {
	var rows []models.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list categories")
	}
	return rows, nil
}

// Exists reports whether a category row with the given ID is present.
func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("id = ?", id).
		Count(&count).
		Error
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check category")
	}
	return count > 0, nil
}

// CountCategories returns the total category count; used by readiness.
func (r *Repository) CountCategories(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Category{}).Count(&total).Error
	return total, err
}
