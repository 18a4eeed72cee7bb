package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akulikov/pharmshop-backend/api/controllers"
	"github.com/akulikov/pharmshop-backend/api/middleware"
	"github.com/akulikov/pharmshop-backend/internal/auth"
	"github.com/akulikov/pharmshop-backend/internal/cart"
	categorysvc "github.com/akulikov/pharmshop-backend/internal/categories"
	products "github.com/akulikov/pharmshop-backend/internal/products"
	"github.com/akulikov/pharmshop-backend/internal/users"
	"github.com/akulikov/pharmshop-backend/pkg/auth/session"
	"github.com/akulikov/pharmshop-backend/pkg/config"
	"github.com/akulikov/pharmshop-backend/pkg/db"
	"github.com/akulikov/pharmshop-backend/pkg/logger"
	"github.com/akulikov/pharmshop-backend/pkg/redis"
)

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config          *config.Config
	Logger          *logger.Logger
	DBPinger        db.Pinger
	RedisClient     *redis.Client
	SessionVerifier session.AccessSessionChecker

	AuthService     auth.Service
	CategoryService categorysvc.Service
	ProductService  products.Service
	UsersService    users.Service
	CartService     cart.Service

	ProductCounter  controllers.TableCounter
	CategoryCounter controllers.CategoryCounter
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DBPinger, deps.RedisClient, deps.ProductCounter, deps.CategoryCounter))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/categories", controllers.ListCategories(deps.CategoryService, logg))
		r.Get("/products", controllers.ListProducts(deps.ProductService, logg))
		r.Get("/products/{productID}", controllers.GetProduct(deps.ProductService, logg))

		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.AuthRateLimit(registerPolicy, deps.RedisClient, logg)).
				Post("/register", controllers.AuthRegister(deps.AuthService, logg))
			r.With(middleware.AuthRateLimit(loginPolicy, deps.RedisClient, logg)).
				Post("/login", controllers.AuthLogin(deps.AuthService, logg))
			r.Post("/refresh", controllers.AuthRefresh(deps.AuthService, logg))
			r.With(middleware.Auth(cfg.JWT, deps.SessionVerifier, logg)).
				Post("/logout", controllers.AuthLogout(deps.AuthService, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, deps.SessionVerifier, logg))

			r.Get("/users/me", controllers.UsersMe(deps.UsersService, logg))
			r.Put("/users/me/profile", controllers.UpdateProfile(deps.UsersService, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.GetCart(deps.CartService, logg))
				r.Post("/items", controllers.AddCartItem(deps.CartService, logg))
				r.Delete("/items/{itemID}", controllers.RemoveCartItem(deps.CartService, logg))
			})
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(
			middleware.Auth(cfg.JWT, deps.SessionVerifier, logg),
			middleware.RequireAdmin(logg),
		)
		r.Post("/products", controllers.AdminCreateProduct(deps.ProductService, logg))
	})

	return r
}
