package controllers

import (
	"net/http"

	"github.com/akulikov/pharmshop-backend/api/responses"
	categorysvc "github.com/akulikov/pharmshop-backend/internal/categories"
	pkgerrors "github.com/akulikov/pharmshop-backend/pkg/errors"
	"github.com/akulikov/pharmshop-backend/pkg/logger"
)

// ListCategories returns every category ordered by name.
func ListCategories(svc categorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "category service unavailable"))
			return
		}

		categories, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, categories)
	}
}
