package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authsvc "github.com/akulikov/pharmshop-backend/internal/auth"
	cartsvc "github.com/akulikov/pharmshop-backend/internal/cart"
	categorysvc "github.com/akulikov/pharmshop-backend/internal/categories"
	productsvc "github.com/akulikov/pharmshop-backend/internal/products"
	userssvc "github.com/akulikov/pharmshop-backend/internal/users"
	pkgAuth "github.com/akulikov/pharmshop-backend/pkg/auth"
	"github.com/akulikov/pharmshop-backend/pkg/config"
)

type stubCategoryService struct{}

func (stubCategoryService) List(context.Context) ([]categorysvc.CategoryDTO, error) {
	return []categorysvc.CategoryDTO{}, nil
}

type stubProductService struct{}

func (stubProductService) List(_ context.Context, input productsvc.ListInput) (*productsvc.ListResult, error) {
	return &productsvc.ListResult{Products: []productsvc.ProductDTO{}}, nil
}

func (stubProductService) Get(_ context.Context, id int64) (*productsvc.ProductDTO, error) {
	return &productsvc.ProductDTO{ID: id}, nil
}

func (stubProductService) Create(_ context.Context, input productsvc.CreateProductInput) (*productsvc.ProductDTO, error) {
	return &productsvc.ProductDTO{ID: 1}, nil
}

type stubUsersService struct{}

func (stubUsersService) Me(_ context.Context, userID int64) (*userssvc.UserDTO, error) {
	return &userssvc.UserDTO{ID: userID}, nil
}

func (stubUsersService) UpdateProfile(_ context.Context, userID int64, _ userssvc.UpdateProfileInput) (*userssvc.UserDTO, error) {
	return &userssvc.UserDTO{ID: userID}, nil
}

type stubCartService struct{}

func (stubCartService) List(context.Context, int64) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{}, nil
}

func (stubCartService) AddItem(context.Context, int64, cartsvc.AddItemInput) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{}, nil
}

func (stubCartService) RemoveItem(context.Context, int64, int64) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{}, nil
}

type stubAuthService struct{}

func (stubAuthService) Register(context.Context, authsvc.RegisterRequest) (*authsvc.AuthResponse, error) {
	return &authsvc.AuthResponse{}, nil
}

func (stubAuthService) Login(context.Context, authsvc.LoginRequest) (*authsvc.AuthResponse, error) {
	return &authsvc.AuthResponse{}, nil
}

func (stubAuthService) Refresh(context.Context, authsvc.RefreshRequest) (*authsvc.TokenPair, error) {
	return &authsvc.TokenPair{}, nil
}

func (stubAuthService) Logout(context.Context, string) error { return nil }

func testDeps() Deps {
	return Deps{
		Config: &config.Config{
			App: config.AppConfig{Env: "dev"},
			JWT: config.JWTConfig{Secret: "secret", Issuer: "issuer", ExpirationMinutes: 60},
		},
		AuthService:     stubAuthService{},
		CategoryService: stubCategoryService{},
		ProductService:  stubProductService{},
		UsersService:    stubUsersService{},
		CartService:     stubCartService{},
	}
}

func mintToken(t *testing.T, deps Deps, userID int64, isAdmin bool) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(deps.Config.JWT, time.Now().UTC(), pkgAuth.AccessTokenPayload{
		UserID:  userID,
		IsAdmin: isAdmin,
		JTI:     "router-test",
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestRouterPublicEndpoints(t *testing.T) {
	router := NewRouter(testDeps())

	for _, target := range []string{"/health/live", "/api/v1/categories", "/api/v1/products", "/api/v1/products/1"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200 got %d", target, rec.Code)
		}
	}
}

func TestRouterProtectedEndpointsRequireAuth(t *testing.T) {
	router := NewRouter(testDeps())

	cases := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/v1/users/me"},
		{http.MethodPut, "/api/v1/users/me/profile"},
		{http.MethodGet, "/api/v1/cart"},
		{http.MethodPost, "/api/admin/v1/products"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.target, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401 got %d", tc.method, tc.target, rec.Code)
		}
	}
}

func TestRouterAdminEndpointForbidsRegularUsers(t *testing.T) {
	deps := testDeps()
	router := NewRouter(deps)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/products", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, deps, 7, false))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", rec.Code)
	}
}

func TestRouterAuthedUserReachesMe(t *testing.T) {
	deps := testDeps()
	router := NewRouter(deps)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, deps, 7, false))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
}
