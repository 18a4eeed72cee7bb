package product

import (
	"context"
	"fmt"
	"strings"

	"github.com/akulikov/pharmshop-backend/pkg/db/models"
	pkgerrors "github.com/akulikov/pharmshop-backend/pkg/errors"
	"github.com/akulikov/pharmshop-backend/pkg/pagination"
	"github.com/akulikov/pharmshop-backend/pkg/sqlbuilder"
	"github.com/shopspring/decimal"
)

// Service exposes catalog read and admin write operations.
type Service interface {
	List(ctx context.Context, input ListInput) (*ListResult, error)
	Get(ctx context.Context, id int64) (*ProductDTO, error)
	Create(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
}

// ListInput carries the raw filter values from the query string. Empty
// strings mean "not filtered".
type ListInput struct {
	Category   string
	CategoryID string
	Search     string
	Popular    string
	New        string
	Pagination pagination.Params
}

// CreateProductInput holds the validated payload to create a product.
type CreateProductInput struct {
	Name              string
	Description       *string
	Price             decimal.Decimal
	OldPrice          *decimal.Decimal
	Image             *string
	CategoryID        *int64
	Manufacturer      *string
	Country           *string
	InStock           *bool
	StockQuantity     int
	IsPopular         bool
	IsNew             bool
	Composition       *string
	Indications       *string
	Usage             *string
	Contraindications *string
	Dosage            *string
	ExpiryDate        *string
	StorageConditions *string
}

type catalogRepository interface {
	ListFiltered(ctx context.Context, values sqlbuilder.Values, page sqlbuilder.Page) ([]models.Product, []string, int64, error)
	FindDetail(ctx context.Context, id int64) (*models.Product, string, error)
	CreateProduct(ctx context.Context, item *models.Product) (*models.Product, error)
}

type categoryChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type service struct {
	repo       catalogRepository
	categories categoryChecker
}

// NewService constructs a product service instance.
func NewService(repo catalogRepository, categories categoryChecker) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if categories == nil {
		return nil, fmt.Errorf("category repository required")
	}
	return &service{repo: repo, categories: categories}, nil
}

// List translates the query string filters into catalog values and returns
// one page plus the matching total.
func (s *service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	params := input.Pagination.Normalized()
	values := listValues(input)

	rows, categoryNames, total, err := s.repo.ListFiltered(ctx, values, sqlbuilder.Page{
		Number: params.Page,
		Limit:  params.Limit,
	})
	if err != nil {
		return nil, err
	}

	items := make([]ProductDTO, 0, len(rows))
	for i := range rows {
		items = append(items, *NewProductDTO(&rows[i], categoryNames[i]))
	}

	return &ListResult{
		Products:   items,
		Total:      total,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: pagination.TotalPages(total, params.Limit),
	}, nil
}

// Get returns a single product or a not-found error.
func (s *service) Get(ctx context.Context, id int64) (*ProductDTO, error) {
	item, categoryName, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewProductDTO(item, categoryName), nil
}

// Create validates the referenced category and inserts the product.
func (s *service) Create(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	if input.CategoryID != nil {
		exists, err := s.categories.Exists(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "category does not exist")
		}
	}

	inStock := true
	if input.InStock != nil {
		inStock = *input.InStock
	}

	item := &models.Product{
		Name:              strings.TrimSpace(input.Name),
		Description:       input.Description,
		Price:             input.Price,
		OldPrice:          input.OldPrice,
		Image:             input.Image,
		CategoryID:        input.CategoryID,
		Manufacturer:      input.Manufacturer,
		Country:           input.Country,
		InStock:           inStock,
		StockQuantity:     input.StockQuantity,
		IsPopular:         input.IsPopular,
		IsNew:             input.IsNew,
		Composition:       input.Composition,
		Indications:       input.Indications,
		Usage:             input.Usage,
		Contraindications: input.Contraindications,
		Dosage:            input.Dosage,
		ExpiryDate:        input.ExpiryDate,
		StorageConditions: input.StorageConditions,
	}

	created, err := s.repo.CreateProduct(ctx, item)
	if err != nil {
		return nil, err
	}

	categoryName := ""
	if created.CategoryID != nil {
		// Re-read to pick up the joined category name for the response.
		detail, name, err := s.repo.FindDetail(ctx, created.ID)
		if err == nil {
			return NewProductDTO(detail, name), nil
		}
	}
	return NewProductDTO(created, categoryName), nil
}

// listValues maps the supported query keys onto catalog values. The literal
// "all" is the category picker's no-filter sentinel and is skipped.
func listValues(input ListInput) sqlbuilder.Values {
	values := sqlbuilder.Values{}
	if input.Category != "" && input.Category != "all" {
		values["category"] = input.Category
	}
	if input.CategoryID != "" {
		values["category_id"] = input.CategoryID
	}
	if input.Search != "" {
		values["search"] = input.Search
	}
	if input.Popular != "" {
		values["popular"] = input.Popular
	}
	if input.New != "" {
		values["new"] = input.New
	}
	return values
}
