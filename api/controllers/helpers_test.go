package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func newTestRouter(method, pattern string, handler http.HandlerFunc) http.Handler {
	r := chi.NewRouter()
	r.Method(method, pattern, handler)
	return r
}
