package controllers

import (
	"net/http"

	"github.com/neonmart/neonmart-backend/api/responses"
	"github.com/neonmart/neonmart-backend/api/validators"
	"github.com/neonmart/neonmart-backend/internal/cart"
	"github.com/neonmart/neonmart-backend/internal/orders"
	"github.com/neonmart/neonmart-backend/pkg/logger"
)

func CartView(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.View(r.Context()))
	}
}

type cartAddRequest struct {
	ProductID int64 `json:"productId" validate:"required"`
}

func CartAdd(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload cartAddRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Add(r.Context(), payload.ProductID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, svc.View(r.Context()))
	}
}

func CartRemove(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := parseIndexParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Remove(r.Context(), index); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, svc.View(r.Context()))
	}
}

type checkoutRequest struct {
	Name       string `json:"name" validate:"required"`
	Contact    string `json:"contact" validate:"required"`
	Address    string `json:"address" validate:"required"`
	NationalID string `json:"nationalId" validate:"required"`
}

// Checkout converts the cart into a persisted order.
func Checkout(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Checkout(r.Context(), orders.Customer{
			Name:       payload.Name,
			Contact:    payload.Contact,
			Address:    payload.Address,
			NationalID: payload.NationalID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

func parseIndexParam(r *http.Request) (int, error) {
	id, err := parseIDParam(r, "index")
	if err != nil {
		return 0, err
	}
	return int(id), nil
}
