package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nettoria/storefront-backend/api/middleware"
	"github.com/nettoria/storefront-backend/api/responses"
	"github.com/nettoria/storefront-backend/api/validators"
	cartsvc "github.com/nettoria/storefront-backend/internal/cart"
	pkgerrors "github.com/nettoria/storefront-backend/pkg/errors"
	"github.com/nettoria/storefront-backend/pkg/logger"
	"github.com/nettoria/storefront-backend/pkg/types"
)

// CartGet returns the session's cart with per-item and whole-cart totals.
func CartGet(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		token := middleware.CartTokenFromContext(r.Context())
		crt, err := svc.Get(r.Context(), token)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartResponse(crt))
	}
}

// CartAddItem inserts a line item, replacing any existing item with the same
// code.
func CartAddItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		token := middleware.CartTokenFromContext(r.Context())
		crt, item, err := svc.AddItem(r.Context(), token, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, addItemResponse{
			Item: newCartItemResponse(*item),
			Cart: newCartResponse(crt),
		})
	}
}

// CartUpdateItem patches an existing line item in place.
func CartUpdateItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload updateItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		token := middleware.CartTokenFromContext(r.Context())
		item, err := svc.UpdateItem(r.Context(), token, chi.URLParam(r, "code"), payload.toPatch())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartItemResponse(*item))
	}
}

// CartRemoveItem drops an item by code. Unknown codes are a no-op.
func CartRemoveItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		token := middleware.CartTokenFromContext(r.Context())
		crt, err := svc.RemoveItem(r.Context(), token, chi.URLParam(r, "code"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartResponse(crt))
	}
}

// CartClear empties the cart and its companion session slots.
func CartClear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		token := middleware.CartTokenFromContext(r.Context())
		if err := svc.Clear(r.Context(), token); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartResponse(cartsvc.New()))
	}
}

// CartSelectedGet returns the session's pending catalog selection.
func CartSelectedGet(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		token := middleware.CartTokenFromContext(r.Context())
		selection, err := svc.GetSelected(r.Context(), token)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, selection)
	}
}

// CartEditItem pulls an item out of the cart into the editing slot so the
// configuration page can rework and re-add it.
func CartEditItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		token := middleware.CartTokenFromContext(r.Context())
		item, err := svc.StashEditing(r.Context(), token, chi.URLParam(r, "code"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartItemResponse(*item))
	}
}

// CartEditingGet pops the editing slot.
func CartEditingGet(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		token := middleware.CartTokenFromContext(r.Context())
		item, err := svc.TakeEditing(r.Context(), token)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartItemResponse(*item))
	}
}

type addItemRequest struct {
	Name     string       `json:"name" validate:"required"`
	Code     string       `json:"code"`
	Quantity types.Count  `json:"quantity"`
	Price    types.Amount `json:"price"`
	Kind     string       `json:"type"`
	Duration types.Count  `json:"duration"`
	Extras   types.Extras `json:"extras"`
}

func (r addItemRequest) toInput() cartsvc.LineItemInput {
	return cartsvc.LineItemInput{
		Name:      r.Name,
		Code:      r.Code,
		Quantity:  r.Quantity.Int(),
		UnitPrice: r.Price.Int64(),
		Kind:      r.Kind,
		Duration:  r.Duration.Int(),
		Extras:    r.Extras,
	}
}

type updateItemRequest struct {
	Name     *string       `json:"name"`
	Quantity *types.Count  `json:"quantity"`
	Price    *types.Amount `json:"price"`
	Duration *types.Count  `json:"duration"`
	Extras   types.Extras  `json:"extras"`
}

func (r updateItemRequest) toPatch() cartsvc.ItemPatch {
	patch := cartsvc.ItemPatch{Extras: r.Extras}
	if r.Name != nil {
		patch.Name = r.Name
	}
	if r.Quantity != nil {
		qty := r.Quantity.Int()
		patch.Quantity = &qty
	}
	if r.Price != nil {
		price := r.Price.Int64()
		patch.UnitPrice = &price
	}
	if r.Duration != nil {
		duration := r.Duration.Int()
		patch.Duration = &duration
	}
	return patch
}

type cartItemResponse struct {
	Name       string             `json:"name"`
	Code       string             `json:"code"`
	Quantity   int                `json:"quantity"`
	UnitPrice  int64              `json:"price"`
	Kind       string             `json:"type"`
	Duration   int                `json:"duration"`
	Extras     types.Extras       `json:"extras,omitempty"`
	FinalPrice cartsvc.FinalPrice `json:"final_price"`
	TotalPrice cartsvc.TotalPrice `json:"total_price"`
}

func newCartItemResponse(item cartsvc.LineItem) cartItemResponse {
	return cartItemResponse{
		Name:       item.Name,
		Code:       item.Code,
		Quantity:   item.Quantity,
		UnitPrice:  item.UnitPrice,
		Kind:       item.Kind,
		Duration:   item.Duration,
		Extras:     item.Extras,
		FinalPrice: item.FinalPrice(),
		TotalPrice: item.TotalPrice(),
	}
}

type cartResponse struct {
	Items     []cartItemResponse `json:"items"`
	Len       int                `json:"len"`
	ItemCount int                `json:"item_count"`
	Totals    cartsvc.Totals     `json:"totals"`
}

func newCartResponse(crt *cartsvc.Cart) cartResponse {
	items := make([]cartItemResponse, 0, crt.Len())
	for _, item := range crt.Items {
		items = append(items, newCartItemResponse(item))
	}
	return cartResponse{
		Items:     items,
		Len:       crt.Len(),
		ItemCount: crt.ItemCount(),
		Totals:    crt.TotalPrice(),
	}
}

type addItemResponse struct {
	Item cartItemResponse `json:"item"`
	Cart cartResponse     `json:"cart"`
}
