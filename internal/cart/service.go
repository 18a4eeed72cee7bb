package cart

import (
	"context"
	"fmt"

	"github.com/akulikov/pharmshop-backend/pkg/db/models"
	pkgerrors "github.com/akulikov/pharmshop-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

// ItemDTO is one cart line joined with its product.
type ItemDTO struct {
	ID           int64           `json:"id"`
	ProductID    int64           `json:"product_id"`
	Quantity     int             `json:"quantity"`
	ProductName  string          `json:"product_name"`
	ProductPrice decimal.Decimal `json:"product_price"`
	ProductImage *string         `json:"product_image,omitempty"`
	InStock      bool            `json:"in_stock"`
	LineTotal    decimal.Decimal `json:"line_total"`
}

// CartDTO is the full cart payload.
type CartDTO struct {
	Items []ItemDTO       `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// AddItemInput is the validated add-to-cart payload.
type AddItemInput struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"omitempty,gt=0"`
}

// Service exposes cart operations scoped to the authenticated user.
type Service interface {
	List(ctx context.Context, userID int64) (*CartDTO, error)
	AddItem(ctx context.Context, userID int64, input AddItemInput) (*CartDTO, error)
	RemoveItem(ctx context.Context, userID, itemID int64) (*CartDTO, error)
}

type cartRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]ItemRow, error)
	AddItem(ctx context.Context, userID, productID int64, quantity int) (*models.CartItem, error)
	RemoveItem(ctx context.Context, userID, itemID int64) error
}

type service struct {
	repo cartRepository
}

// NewService constructs a cart service instance.
func NewService(repo cartRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, userID int64) (*CartDTO, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return buildCart(rows), nil
}

func (s *service) AddItem(ctx context.Context, userID int64, input AddItemInput) (*CartDTO, error) {
	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	if _, err := s.repo.AddItem(ctx, userID, input.ProductID, quantity); err != nil {
		if appErr := pkgerrors.As(err); appErr != nil && appErr.Code() == pkgerrors.CodeNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "product does not exist")
		}
		return nil, err
	}
	return s.List(ctx, userID)
}

func (s *service) RemoveItem(ctx context.Context, userID, itemID int64) (*CartDTO, error) {
	if err := s.repo.RemoveItem(ctx, userID, itemID); err != nil {
		return nil, err
	}
	return s.List(ctx, userID)
}

func buildCart(rows []ItemRow) *CartDTO {
	items := make([]ItemDTO, 0, len(rows))
	total := decimal.Zero
	for _, row := range rows {
		lineTotal := row.ProductPrice.Mul(decimal.NewFromInt(int64(row.Quantity)))
		total = total.Add(lineTotal)
		items = append(items, ItemDTO{
			ID:           row.ID,
			ProductID:    row.ProductID,
			Quantity:     row.Quantity,
			ProductName:  row.ProductName,
			ProductPrice: row.ProductPrice,
			ProductImage: row.ProductImage,
			InStock:      row.InStock,
			LineTotal:    lineTotal,
		})
	}
	return &CartDTO{Items: items, Total: total}
}
