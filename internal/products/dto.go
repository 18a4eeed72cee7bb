package product

import (
	"time"

	"github.com/akulikov/pharmshop-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// ProductDTO represents a catalog product joined with its category name.
type ProductDTO struct {
	ID                int64            `json:"id"`
	Name              string           `json:"name"`
	Description       *string          `json:"description,omitempty"`
	Price             decimal.Decimal  `json:"price"`
	OldPrice          *decimal.Decimal `json:"old_price,omitempty"`
	Image             *string          `json:"image,omitempty"`
	CategoryID        *int64           `json:"category_id,omitempty"`
	CategoryName      *string          `json:"category_name,omitempty"`
	Manufacturer      *string          `json:"manufacturer,omitempty"`
	Country           *string          `json:"country,omitempty"`
	InStock           bool             `json:"in_stock"`
	StockQuantity     int              `json:"stock_quantity"`
	IsPopular         bool             `json:"is_popular"`
	IsNew             bool             `json:"is_new"`
	Composition       *string          `json:"composition,omitempty"`
	Indications       *string          `json:"indications,omitempty"`
	Usage             *string          `json:"usage,omitempty"`
	Contraindications *string          `json:"contraindications,omitempty"`
	Dosage            *string          `json:"dosage,omitempty"`
	ExpiryDate        *string          `json:"expiry_date,omitempty"`
	StorageConditions *string          `json:"storage_conditions,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
}

// ListResult is the paginated products payload.
type ListResult struct {
	Products   []ProductDTO `json:"products"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	Limit      int          `json:"limit"`
	TotalPages int          `json:"total_pages"`
}

// NewProductDTO builds a DTO from the persisted model and its category name.
func NewProductDTO(item *models.Product, categoryName string) *ProductDTO {
	dto := &ProductDTO{
		ID:                item.ID,
		Name:              item.Name,
		Description:       item.Description,
		Price:             item.Price,
		OldPrice:          item.OldPrice,
		Image:             item.Image,
		CategoryID:        item.CategoryID,
		Manufacturer:      item.Manufacturer,
		Country:           item.Country,
		InStock:           item.InStock,
		StockQuantity:     item.StockQuantity,
		IsPopular:         item.IsPopular,
		IsNew:             item.IsNew,
		Composition:       item.Composition,
		Indications:       item.Indications,
		Usage:             item.Usage,
		Contraindications: item.Contraindications,
		Dosage:            item.Dosage,
		ExpiryDate:        item.ExpiryDate,
		StorageConditions: item.StorageConditions,
		CreatedAt:         item.CreatedAt,
	}
	if categoryName != "" {
		dto.CategoryName = &categoryName
	}
	return dto
}
