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

type AddCartItemRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse pairs the cart snapshot with the outcome of the last
// mutation so the storefront can surface stock notices.
type CartResponse struct {
	Cart   *domain.Cart   `json:"cart"`
	Notice service.Notice `json:"notice,omitempty"`
	Total  float64        `json:"total"`
	Count  int            `json:"count"`
}

func cartResponse(cart *domain.Cart, notice service.Notice) CartResponse {
	return CartResponse{
		Cart:   cart,
		Notice: notice,
		Total:  cart.Total(),
		Count:  cart.Count(),
	}
}

// getCartHandler godoc
//
//	@Summary		Get cart
//	@Description	Get the caller's cart, minting a cart cookie on first contact
//	@Tags			cart
//	@Produce		json
//	@Success		200	{object}	CartResponse
//	@Failure		500	{object}	map[string]string
//	@Router			/cart [get]
func (app *application) getCartHandler(w http.ResponseWriter, r *http.Request) {
	cartID := app.cartID(w, r)

	cart, err := app.cartService.Get(r.Context(), cartID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, cartResponse(cart, "")); err != nil {
		app.internalServerError(w, r, err)
	}
}

// clearCartHandler godoc
//
//	@Summary		Clear cart
//	@Description	Remove every line from the caller's cart
//	@Tags			cart
//	@Produce		json
//	@Success		200	{object}	CartResponse
//	@Failure		500	{object}	map[string]string
//	@Router			/cart [delete]
func (app *application) clearCartHandler(w http.ResponseWriter, r *http.Request) {
	cartID := app.cartID(w, r)

	cart, err := app.cartService.Clear(r.Context(), cartID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, cartResponse(cart, service.NoticeCleared)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// addCartItemHandler godoc
//
//	@Summary		Add item to cart
//	@Description	Add one unit of a menu item to the caller's cart
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AddCartItemRequest	true	"Item to add"
//	@Success		200		{object}	CartResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/cart/items [post]
func (app *application) addCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	itemID, err := primitive.ObjectIDFromHex(req.ItemID)
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	cartID := app.cartID(w, r)

	cart, notice, err := app.cartService.AddItem(r.Context(), cartID, itemID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, cartResponse(cart, notice)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateCartItemHandler godoc
//
//	@Summary		Update cart line quantity
//	@Description	Set a cart line's quantity; zero removes the line, amounts past the stock ceiling are clamped
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			item_id	path		string					true	"Menu item ID"
//	@Param			request	body		UpdateCartItemRequest	true	"New quantity"
//	@Success		200		{object}	CartResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/cart/items/{item_id} [patch]
func (app *application) updateCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var req UpdateCartItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	cartID := app.cartID(w, r)
	itemID := chi.URLParam(r, "item_id")

	cart, notice, err := app.cartService.UpdateQuantity(r.Context(), cartID, itemID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrItemNotInCart) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, cartResponse(cart, notice)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// removeCartItemHandler godoc
//
//	@Summary		Remove cart line
//	@Description	Remove a menu item from the caller's cart
//	@Tags			cart
//	@Produce		json
//	@Param			item_id	path		string	true	"Menu item ID"
//	@Success		200		{object}	CartResponse
//	@Failure		500		{object}	map[string]string
//	@Router			/cart/items/{item_id} [delete]
func (app *application) removeCartItemHandler(w http.ResponseWriter, r *http.Request) {
	cartID := app.cartID(w, r)
	itemID := chi.URLParam(r, "item_id")

	cart, notice, err := app.cartService.RemoveItem(r.Context(), cartID, itemID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, cartResponse(cart, notice)); err != nil {
		app.internalServerError(w, r, err)
	}
}
