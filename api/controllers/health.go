package controllers

import (
	"context"
	"net/http"

	"github.com/akulikov/pharmshop-backend/api/responses"
	"github.com/akulikov/pharmshop-backend/pkg/config"
	"github.com/akulikov/pharmshop-backend/pkg/db"
	pkgerrors "github.com/akulikov/pharmshop-backend/pkg/errors"
	"github.com/akulikov/pharmshop-backend/pkg/logger"
	"github.com/akulikov/pharmshop-backend/pkg/redis"
)

// TableCounter reports catalog row counts for the readiness payload.
type TableCounter interface {
	CountProducts(ctx context.Context) (int64, error)
}

// CategoryCounter reports category row counts for the readiness payload.
type CategoryCounter interface {
	CountCategories(ctx context.Context) (int64, error)
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Pharmshop-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the database and Redis and reports catalog table counts.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger, products TableCounter, categories CategoryCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("X-Pharmshop-Env", cfg.App.Env)

		if dbP != nil {
			if err := dbP.Ping(ctx); err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unavailable"))
				return
			}
		}
		if redisP != nil {
			if err := redisP.Ping(ctx); err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unavailable"))
				return
			}
		}

		payload := map[string]any{"status": "ready"}
		if products != nil {
			if count, err := products.CountProducts(ctx); err == nil {
				payload["products"] = count
			}
		}
		if categories != nil {
			if count, err := categories.CountCategories(ctx); err == nil {
				payload["categories"] = count
			}
		}

		responses.WriteSuccess(w, payload)
	}
}
