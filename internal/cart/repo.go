package cart

import (
	"context"
	"errors"

	"github.com/akulikov/pharmshop-backend/pkg/db"
	"github.com/akulikov/pharmshop-backend/pkg/db/models"
	pkgerrors "github.com/akulikov/pharmshop-backend/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ItemRow is a cart item joined with the product columns the cart view needs.
type ItemRow struct {
	ID           int64
	ProductID    int64
	Quantity     int
	ProductName  string
	ProductPrice decimal.Decimal
	ProductImage *string
	InStock      bool
}

// Repository exposes cart persistence for authenticated users.
type Repository struct {
	client *db.Client
}

// NewRepository constructs a cart repo bound to the provided DB client.
func NewRepository(client *db.Client) *Repository {
	return &Repository{client: client}
}

const listItemsQuery = `
SELECT ci.id, ci.product_id, ci.quantity,
       p.name AS product_name, p.price AS product_price,
       p.image AS product_image, p.in_stock
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
WHERE ci.user_id = ?
ORDER BY ci.created_at DESC, ci.id DESC
`

// ListByUser returns the user's cart joined with product data.
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]ItemRow, error) {
	var rows []ItemRow
	err := r.client.DB().WithContext(ctx).Raw(listItemsQuery, userID).Scan(&rows).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list cart items")
	}
	return rows, nil
}

// AddItem inserts a cart row or bumps the quantity when the product is
// already in the cart. Runs in one transaction to keep the upsert atomic.
func (r *Repository) AddItem(ctx context.Context, userID, productID int64, quantity int) (*models.CartItem, error) {
	var item models.CartItem
	err := r.client.WithTx(ctx, func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
			}
			return err
		}

		err := tx.First(&item, "user_id = ? AND product_id = ?", userID, productID).Error
		switch {
		case err == nil:
			item.Quantity += quantity
			return tx.Model(&models.CartItem{}).
				Where("id = ?", item.ID).
				UpdateColumn("quantity", item.Quantity).
				Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{
				UserID:    &userID,
				ProductID: productID,
				Quantity:  quantity,
			}
			return tx.Create(&item).Error
		default:
			return err
		}
	})
	if err != nil {
		if appErr := pkgerrors.As(err); appErr != nil {
			return nil, appErr
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "add cart item")
	}
	return &item, nil
}

// RemoveItem deletes the user's cart row by item ID.
func (r *Repository) RemoveItem(ctx context.Context, userID, itemID int64) error {
	result := r.client.DB().WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, result.Error, "remove cart item")
	}
	if result.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}
	return nil
}
