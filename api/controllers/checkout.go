package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nettoria/storefront-backend/api/middleware"
	"github.com/nettoria/storefront-backend/api/responses"
	"github.com/nettoria/storefront-backend/internal/checkout"
	"github.com/nettoria/storefront-backend/pkg/db/models"
	pkgerrors "github.com/nettoria/storefront-backend/pkg/errors"
	"github.com/nettoria/storefront-backend/pkg/logger"
)

// CheckoutSummary computes the tax-inclusive breakdown for the current cart.
func CheckoutSummary(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		token := middleware.CartTokenFromContext(r.Context())
		summary, err := svc.Summarize(r.Context(), token)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, summary)
	}
}

// Checkout freezes the cart into an order.
func Checkout(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		token := middleware.CartTokenFromContext(r.Context())
		order, err := svc.Checkout(r.Context(), token)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, newOrderResponse(order))
	}
}

// OrderGet loads one of the session's orders.
func OrderGet(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order id"))
			return
		}

		token := middleware.CartTokenFromContext(r.Context())
		order, err := svc.GetOrder(r.Context(), token, id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newOrderResponse(order))
	}
}

// OrdersList returns the session's order history.
func OrdersList(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		token := middleware.CartTokenFromContext(r.Context())
		orders, err := svc.ListOrders(r.Context(), token)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		out := make([]orderResponse, 0, len(orders))
		for i := range orders {
			out = append(out, newOrderResponse(&orders[i]))
		}
		responses.WriteSuccess(w, out)
	}
}

type orderResponse struct {
	ID        uuid.UUID          `json:"id"`
	Items     []models.OrderItem `json:"items"`
	Original  int64              `json:"original"`
	Subtotal  int64              `json:"subtotal"`
	Saved     int64              `json:"saved"`
	Tax       int64              `json:"tax"`
	Total     int64              `json:"total"`
	Status    string             `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
}

func newOrderResponse(order *models.Order) orderResponse {
	return orderResponse{
		ID:        order.ID,
		Items:     order.Items,
		Original:  order.Original,
		Subtotal:  order.Subtotal,
		Saved:     order.Saved,
		Tax:       order.Tax,
		Total:     order.Total,
		Status:    order.Status.String(),
		CreatedAt: order.CreatedAt,
	}
}
