package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	productsvc "github.com/akulikov/pharmshop-backend/internal/products"
	pkgerrors "github.com/akulikov/pharmshop-backend/pkg/errors"
)

type fakeProductService struct {
	lastInput productsvc.ListInput
	result    *productsvc.ListResult
	getErr    error
}

func (f *fakeProductService) List(_ context.Context, input productsvc.ListInput) (*productsvc.ListResult, error) {
	f.lastInput = input
	if f.result != nil {
		return f.result, nil
	}
	return &productsvc.ListResult{Products: []productsvc.ProductDTO{}, Page: input.Pagination.Page, Limit: input.Pagination.Limit}, nil
}

func (f *fakeProductService) Get(_ context.Context, id int64) (*productsvc.ProductDTO, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &productsvc.ProductDTO{ID: id, Name: "Нурофен"}, nil
}

func (f *fakeProductService) Create(_ context.Context, input productsvc.CreateProductInput) (*productsvc.ProductDTO, error) {
	return &productsvc.ProductDTO{ID: 1, Name: input.Name, Price: input.Price}, nil
}

func TestListProductsPassesFilters(t *testing.T) {
	svc := &fakeProductService{}
	handler := ListProducts(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?category=all&search=ибу&popular=true&page=3&limit=10", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastInput.Category != "all" || svc.lastInput.Search != "ибу" || svc.lastInput.Popular != "true" {
		t.Fatalf("input = %+v, want raw filters forwarded", svc.lastInput)
	}
	if svc.lastInput.Pagination.Page != 3 || svc.lastInput.Pagination.Limit != 10 {
		t.Fatalf("pagination = %+v, want page=3 limit=10", svc.lastInput.Pagination)
	}
}

func TestListProductsRejectsNonNumericPage(t *testing.T) {
	handler := ListProducts(&fakeProductService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?page=abc", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestListProductsRejectsOversizedLimit(t *testing.T) {
	handler := ListProducts(&fakeProductService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?limit=1000", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestGetProductInvalidID(t *testing.T) {
	handler := GetProduct(&fakeProductService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/abc", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestGetProductNotFound(t *testing.T) {
	svc := &fakeProductService{getErr: pkgerrors.New(pkgerrors.CodeNotFound, "product not found")}
	router := newTestRouter(http.MethodGet, "/api/v1/products/{productID}", GetProduct(svc, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error.Code != string(pkgerrors.CodeNotFound) {
		t.Fatalf("error code = %q", body.Error.Code)
	}
}
