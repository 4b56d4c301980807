package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/yuhyam95/meenos-menu/internal/domain"
	"github.com/yuhyam95/meenos-menu/internal/repo"
	"github.com/yuhyam95/meenos-menu/internal/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// listOrdersHandler godoc
//
//	@Summary		List orders
//	@Description	List all orders, newest first
//	@Tags			orders
//	@Produce		json
//	@Success		200	{array}		domain.Order
//	@Failure		500	{object}	map[string]string
//	@Router			/admin/orders [get]
func (app *application) listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := app.orderService.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, orders); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateOrderStatusHandler godoc
//
//	@Summary		Update order status
//	@Description	Move an order through its lifecycle; each change is recorded in the status audit trail
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order_id	path		string						true	"Order ID"
//	@Param			request		body		UpdateOrderStatusRequest	true	"New status"
//	@Success		200			{object}	domain.Order
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/admin/orders/{order_id}/status [patch]
func (app *application) updateOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	orderID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "order_id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var req UpdateOrderStatusRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	userID := ""
	if claims := sessionFromContext(r.Context()); claims != nil {
		userID = claims.Subject
	}

	order, err := app.orderService.UpdateStatus(r.Context(), orderID, domain.OrderStatus(req.Status), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			app.badRequestResponse(w, r, err)
		case errors.Is(err, repo.ErrNotFound):
			app.notFoundError(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, order); err != nil {
		app.internalServerError(w, r, err)
	}
}
