package category

import (
	"context"
	"fmt"
	"time"

	"github.com/akulikov/pharmshop-backend/pkg/db/models"
)

// CategoryDTO is the public category payload.
type CategoryDTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Image       *string   `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Service exposes category reads.
type Service interface {
	List(ctx context.Context) ([]CategoryDTO, error)
}

type lister interface {
	ListAll(ctx context.Context) ([]models.Category, error)
}

type service struct {
	repo lister
}

// NewService constructs a category service instance.
func NewService(repo lister) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("category repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]CategoryDTO, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CategoryDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, CategoryDTO{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			Image:       row.Image,
			CreatedAt:   row.CreatedAt,
		})
	}
	return out, nil
}
