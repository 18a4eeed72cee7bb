package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/akulikov/pharmshop-backend/api/responses"
	"github.com/akulikov/pharmshop-backend/api/validators"
	productsvc "github.com/akulikov/pharmshop-backend/internal/products"
	pkgerrors "github.com/akulikov/pharmshop-backend/pkg/errors"
	"github.com/akulikov/pharmshop-backend/pkg/logger"
	"github.com/akulikov/pharmshop-backend/pkg/pagination"
	"github.com/shopspring/decimal"
)

// ListProducts handles the filtered, paginated catalog listing.
func ListProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		page, err := validators.ParseQueryInt(r, "page", pagination.DefaultPage, 1, 1<<30)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		query := r.URL.Query()
		result, err := svc.List(r.Context(), productsvc.ListInput{
			Category:   validators.SanitizeString(query.Get("category"), 255),
			CategoryID: validators.SanitizeString(query.Get("category_id"), 32),
			Search:     validators.SanitizeString(query.Get("search"), 255),
			Popular:    validators.SanitizeString(query.Get("popular"), 8),
			New:        validators.SanitizeString(query.Get("new"), 8),
			Pagination: pagination.Params{Page: page, Limit: limit},
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// GetProduct returns a single product joined with its category name.
func GetProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
		if err != nil || id <= 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid product id"))
			return
		}

		product, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// AdminCreateProduct handles catalog inserts for admin users.
func AdminCreateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		var payload createProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toCreateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

type createProductRequest struct {
	Name              string  `json:"name" validate:"required,max=255"`
	Description       *string `json:"description,omitempty"`
	Price             string  `json:"price" validate:"required"`
	OldPrice          *string `json:"old_price,omitempty"`
	Image             *string `json:"image,omitempty"`
	CategoryID        *int64  `json:"category_id,omitempty"`
	Manufacturer      *string `json:"manufacturer,omitempty"`
	Country           *string `json:"country,omitempty"`
	InStock           *bool   `json:"in_stock,omitempty"`
	StockQuantity     int     `json:"stock_quantity" validate:"gte=0"`
	IsPopular         bool    `json:"is_popular"`
	IsNew             bool    `json:"is_new"`
	Composition       *string `json:"composition,omitempty"`
	Indications       *string `json:"indications,omitempty"`
	Usage             *string `json:"usage,omitempty"`
	Contraindications *string `json:"contraindications,omitempty"`
	Dosage            *string `json:"dosage,omitempty"`
	ExpiryDate        *string `json:"expiry_date,omitempty"`
	StorageConditions *string `json:"storage_conditions,omitempty"`
}

func (p createProductRequest) toCreateInput() (productsvc.CreateProductInput, error) {
	price, err := decimal.NewFromString(p.Price)
	if err != nil || price.IsNegative() {
		return productsvc.CreateProductInput{}, pkgerrors.New(pkgerrors.CodeValidation, "price must be a non-negative decimal")
	}

	var oldPrice *decimal.Decimal
	if p.OldPrice != nil {
		parsed, err := decimal.NewFromString(*p.OldPrice)
		if err != nil || parsed.IsNegative() {
			return productsvc.CreateProductInput{}, pkgerrors.New(pkgerrors.CodeValidation, "old_price must be a non-negative decimal")
		}
		oldPrice = &parsed
	}

	return productsvc.CreateProductInput{
		Name:              p.Name,
		Description:       p.Description,
		Price:             price,
		OldPrice:          oldPrice,
		Image:             p.Image,
		CategoryID:        p.CategoryID,
		Manufacturer:      p.Manufacturer,
		Country:           p.Country,
		InStock:           p.InStock,
		StockQuantity:     p.StockQuantity,
		IsPopular:         p.IsPopular,
		IsNew:             p.IsNew,
		Composition:       p.Composition,
		Indications:       p.Indications,
		Usage:             p.Usage,
		Contraindications: p.Contraindications,
		Dosage:            p.Dosage,
		ExpiryDate:        p.ExpiryDate,
		StorageConditions: p.StorageConditions,
	}, nil
}
