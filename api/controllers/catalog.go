package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nettoria/storefront-backend/api/middleware"
	"github.com/nettoria/storefront-backend/api/responses"
	"github.com/nettoria/storefront-backend/internal/catalog"
	cartsvc "github.com/nettoria/storefront-backend/internal/cart"
	pkgerrors "github.com/nettoria/storefront-backend/pkg/errors"
	"github.com/nettoria/storefront-backend/pkg/logger"
	"github.com/nettoria/storefront-backend/pkg/pagination"
)

// CatalogList returns active service plans, optionally filtered by kind.
func CatalogList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		query := r.URL.Query()
		params := pagination.FromQuery(query.Get("page"), query.Get("per_page"))

		list, err := svc.List(r.Context(), query.Get("kind"), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

// CatalogGet returns a single active plan by code.
func CatalogGet(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		plan, err := svc.GetByCode(r.Context(), chi.URLParam(r, "code"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, plan)
	}
}

// CatalogSelect records a catalog plan as the session's pending selection for
// the configuration page.
func CatalogSelect(catSvc catalog.Service, carts cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if catSvc == nil || carts == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		token := middleware.CartTokenFromContext(r.Context())

		plan, err := catSvc.GetByCode(r.Context(), chi.URLParam(r, "code"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		selection := catalog.SelectionFromPlan(*plan)
		if err := carts.SelectService(r.Context(), token, selection); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, selection)
	}
}
