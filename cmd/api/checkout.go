package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/yuhyam95/meenos-menu/internal/domain"
	"github.com/yuhyam95/meenos-menu/internal/repo"
	"github.com/yuhyam95/meenos-menu/internal/service"
)

type CheckoutRequest struct {
	Name               string `json:"name" validate:"required"`
	Phone              string `json:"phone" validate:"required"`
	OrderType          string `json:"order_type" validate:"required,oneof=delivery pickup"`
	Address            string `json:"address"`
	DeliveryLocationID string `json:"delivery_location_id"`
	Notes              string `json:"notes"`
}

// PaymentDetails carries the bank-transfer instructions shown after
// checkout. Empty when the store has never been configured.
type PaymentDetails struct {
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
}

type CheckoutResponse struct {
	Order          *domain.Order  `json:"order"`
	PaymentDetails PaymentDetails `json:"payment_details"`
}

// checkoutHandler godoc
//
//	@Summary		Place order
//	@Description	Turn the caller's cart into a pending order and return bank-transfer payment instructions. The cart survives until payment is acknowledged.
//	@Tags			checkout
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CheckoutRequest	true	"Checkout details"
//	@Success		201		{object}	CheckoutResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		422		{object}	map[string]string
//	@Router			/checkout [post]
func (app *application) checkoutHandler(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	cartID := app.cartID(w, r)

	order, err := app.orderService.PlaceOrder(r.Context(), service.CheckoutInput{
		CartID:             cartID,
		Name:               req.Name,
		Phone:              req.Phone,
		OrderType:          domain.OrderType(req.OrderType),
		Address:            req.Address,
		DeliveryLocationID: req.DeliveryLocationID,
		Notes:              req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart), errors.Is(err, service.ErrInvalidInput):
			app.badRequestResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	resp := CheckoutResponse{Order: order}
	if setting, err := app.settingRepo.Get(r.Context()); err == nil {
		resp.PaymentDetails = PaymentDetails{
			BankName:      setting.BankName,
			AccountName:   setting.AccountName,
			AccountNumber: setting.AccountNumber,
		}
	} else if !errors.Is(err, repo.ErrNotFound) {
		app.logger.Errorw("failed to load payment details", "error", err)
	}

	if err := app.jsonRespone(w, http.StatusCreated, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

// confirmPaymentHandler godoc
//
//	@Summary		Acknowledge payment
//	@Description	Record that the customer confirmed the transfer; clears the cart. Safe to repeat.
//	@Tags			checkout
//	@Produce		json
//	@Param			order_number	path		string	true	"Order number"
//	@Success		200				{object}	domain.Order
//	@Failure		404				{object}	map[string]string
//	@Router			/orders/{order_number}/payment [post]
func (app *application) confirmPaymentHandler(w http.ResponseWriter, r *http.Request) {
	orderNumber := chi.URLParam(r, "order_number")
	cartID := app.cartID(w, r)

	order, err := app.orderService.ConfirmPayment(r.Context(), orderNumber, cartID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, order); err != nil {
		app.internalServerError(w, r, err)
	}
}
