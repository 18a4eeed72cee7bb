package product

import (
	"context"
	"testing"

	"github.com/akulikov/pharmshop-backend/pkg/db/models"
	pkgerrors "github.com/akulikov/pharmshop-backend/pkg/errors"
	"github.com/akulikov/pharmshop-backend/pkg/pagination"
	"github.com/akulikov/pharmshop-backend/pkg/sqlbuilder"
	"github.com/shopspring/decimal"
)

type fakeCatalogRepo struct {
	lastValues sqlbuilder.Values
	lastPage   sqlbuilder.Page
	rows       []models.Product
	names      []string
	total      int64

	detail     *models.Product
	detailName string
	detailErr  error

	created *models.Product
}

func (f *fakeCatalogRepo) ListFiltered(_ context.Context, values sqlbuilder.Values, page sqlbuilder.Page) ([]models.Product, []string, int64, error) {
	f.lastValues = values
	f.lastPage = page
	return f.rows, f.names, f.total, nil
}

func (f *fakeCatalogRepo) FindDetail(_ context.Context, id int64) (*models.Product, string, error) {
	if f.detailErr != nil {
		return nil, "", f.detailErr
	}
	return f.detail, f.detailName, nil
}

func (f *fakeCatalogRepo) CreateProduct(_ context.Context, item *models.Product) (*models.Product, error) {
	item.ID = 42
	f.created = item
	return item, nil
}

type fakeCategoryChecker struct {
	exists bool
}

func (f *fakeCategoryChecker) Exists(context.Context, int64) (bool, error) {
	return f.exists, nil
}

func newTestService(t *testing.T, repo *fakeCatalogRepo, categories *fakeCategoryChecker) Service {
	t.Helper()
	svc, err := NewService(repo, categories)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestListTranslatesQueryFilters(t *testing.T) {
	repo := &fakeCatalogRepo{}
	svc := newTestService(t, repo, &fakeCategoryChecker{exists: true})

	_, err := svc.List(context.Background(), ListInput{
		Category:   "Витамины",
		CategoryID: "2",
		Search:     "ибупрофен",
		Popular:    "true",
		New:        "false",
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	want := sqlbuilder.Values{
		"category":    "Витамины",
		"category_id": "2",
		"search":      "ибупрофен",
		"popular":     "true",
		"new":         "false",
	}
	if len(repo.lastValues) != len(want) {
		t.Fatalf("values = %v, want %v", repo.lastValues, want)
	}
	for k, v := range want {
		if repo.lastValues[k] != v {
			t.Fatalf("values[%q] = %q, want %q", k, repo.lastValues[k], v)
		}
	}
}

func TestListSkipsCategoryAllSentinel(t *testing.T) {
	repo := &fakeCatalogRepo{}
	svc := newTestService(t, repo, &fakeCategoryChecker{exists: true})

	if _, err := svc.List(context.Background(), ListInput{Category: "all"}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if _, ok := repo.lastValues["category"]; ok {
		t.Fatalf("category=all should not reach the catalog, got %v", repo.lastValues)
	}
	if len(repo.lastValues) != 0 {
		t.Fatalf("expected no filter values, got %v", repo.lastValues)
	}
}

func TestListAppliesPaginationDefaults(t *testing.T) {
	repo := &fakeCatalogRepo{total: 101}
	svc := newTestService(t, repo, &fakeCategoryChecker{exists: true})

	result, err := svc.List(context.Background(), ListInput{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if repo.lastPage.Number != 1 || repo.lastPage.Limit != 50 {
		t.Fatalf("page = %+v, want number=1 limit=50", repo.lastPage)
	}
	if result.Page != 1 || result.Limit != 50 {
		t.Fatalf("result page/limit = %d/%d, want 1/50", result.Page, result.Limit)
	}
	if result.TotalPages != 3 {
		t.Fatalf("total_pages = %d, want 3 for total=101 limit=50", result.TotalPages)
	}
}

func TestListCapsLimit(t *testing.T) {
	repo := &fakeCatalogRepo{}
	svc := newTestService(t, repo, &fakeCategoryChecker{exists: true})

	if _, err := svc.List(context.Background(), ListInput{
		Pagination: pagination.Params{Page: 2, Limit: 500},
	}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if repo.lastPage.Limit != pagination.MaxLimit {
		t.Fatalf("limit = %d, want capped at %d", repo.lastPage.Limit, pagination.MaxLimit)
	}
}

func TestGetPropagatesNotFound(t *testing.T) {
	repo := &fakeCatalogRepo{detailErr: pkgerrors.New(pkgerrors.CodeNotFound, "product not found")}
	svc := newTestService(t, repo, &fakeCategoryChecker{exists: true})

	_, err := svc.Get(context.Background(), 99)
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	repo := &fakeCatalogRepo{}
	svc := newTestService(t, repo, &fakeCategoryChecker{exists: false})

	categoryID := int64(7)
	_, err := svc.Create(context.Background(), CreateProductInput{
		Name:       "Аспирин",
		Price:      decimal.NewFromFloat(120.00),
		CategoryID: &categoryID,
	})
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if repo.created != nil {
		t.Fatal("product must not be inserted when the category is missing")
	}
}

func TestCreateDefaultsInStock(t *testing.T) {
	repo := &fakeCatalogRepo{}
	svc := newTestService(t, repo, &fakeCategoryChecker{exists: true})

	dto, err := svc.Create(context.Background(), CreateProductInput{
		Name:  "Аспирин",
		Price: decimal.NewFromFloat(120.00),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !repo.created.InStock {
		t.Fatal("in_stock should default to true")
	}
	if dto.ID != 42 {
		t.Fatalf("dto.ID = %d, want 42", dto.ID)
	}
}
