package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the canonical catalog listing.
type Product struct {
	ID                int64            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name              string           `gorm:"column:name;not null" json:"name"`
	Description       *string          `gorm:"column:description" json:"description,omitempty"`
	Price             decimal.Decimal  `gorm:"column:price;type:numeric(10,2);not null" json:"price"`
	OldPrice          *decimal.Decimal `gorm:"column:old_price;type:numeric(10,2)" json:"old_price,omitempty"`
	Image             *string          `gorm:"column:image" json:"image,omitempty"`
	CategoryID        *int64           `gorm:"column:category_id" json:"category_id,omitempty"`
	Manufacturer      *string          `gorm:"column:manufacturer" json:"manufacturer,omitempty"`
	Country           *string          `gorm:"column:country" json:"country,omitempty"`
	InStock           bool             `gorm:"column:in_stock;not null;default:true" json:"in_stock"`
	StockQuantity     int              `gorm:"column:stock_quantity;not null;default:0" json:"stock_quantity"`
	IsPopular         bool             `gorm:"column:is_popular;not null;default:false" json:"is_popular"`
	IsNew             bool             `gorm:"column:is_new;not null;default:true" json:"is_new"`
	Composition       *string          `gorm:"column:composition" json:"composition,omitempty"`
	Indications       *string          `gorm:"column:indications" json:"indications,omitempty"`
	Usage             *string          `gorm:"column:usage" json:"usage,omitempty"`
	Contraindications *string          `gorm:"column:contraindications" json:"contraindications,omitempty"`
	Dosage            *string          `gorm:"column:dosage" json:"dosage,omitempty"`
	ExpiryDate        *string          `gorm:"column:expiry_date" json:"expiry_date,omitempty"`
	StorageConditions *string          `gorm:"column:storage_conditions" json:"storage_conditions,omitempty"`
	CreatedAt         time.Time        `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
