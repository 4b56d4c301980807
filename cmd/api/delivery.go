package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/yuhyam95/meenos-menu/internal/domain"
	"github.com/yuhyam95/meenos-menu/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeliveryLocationRequest struct {
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
}

// listDeliveryLocationsHandler godoc
//
//	@Summary		List delivery locations
//	@Description	List all delivery locations with their fees
//	@Tags			delivery
//	@Produce		json
//	@Success		200	{array}		domain.DeliveryLocation
//	@Failure		500	{object}	map[string]string
//	@Router			/delivery-locations [get]
func (app *application) listDeliveryLocationsHandler(w http.ResponseWriter, r *http.Request) {
	locations, err := app.deliveryRepo.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, locations); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createDeliveryLocationHandler godoc
//
//	@Summary		Create delivery location
//	@Description	Create a delivery location with its fee
//	@Tags			delivery
//	@Accept			json
//	@Produce		json
//	@Param			request	body		DeliveryLocationRequest	true	"Delivery location"
//	@Success		201		{object}	domain.DeliveryLocation
//	@Failure		400		{object}	map[string]string
//	@Router			/admin/delivery-locations [post]
func (app *application) createDeliveryLocationHandler(w http.ResponseWriter, r *http.Request) {
	var req DeliveryLocationRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	location := &domain.DeliveryLocation{Name: req.Name, Price: req.Price}

	if err := app.deliveryRepo.Create(r.Context(), location); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, location); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateDeliveryLocationHandler godoc
//
//	@Summary		Update delivery location
//	@Description	Update a delivery location's name or fee
//	@Tags			delivery
//	@Accept			json
//	@Produce		json
//	@Param			location_id	path		string					true	"Location ID"
//	@Param			request		body		DeliveryLocationRequest	true	"Delivery location"
//	@Success		200			{object}	domain.DeliveryLocation
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/admin/delivery-locations/{location_id} [put]
func (app *application) updateDeliveryLocationHandler(w http.ResponseWriter, r *http.Request) {
	locationID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "location_id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var req DeliveryLocationRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	location := &domain.DeliveryLocation{ID: locationID, Name: req.Name, Price: req.Price}

	if err := app.deliveryRepo.Update(r.Context(), location); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, location); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteDeliveryLocationHandler godoc
//
//	@Summary		Delete delivery location
//	@Description	Delete a delivery location
//	@Tags			delivery
//	@Produce		json
//	@Param			location_id	path	string	true	"Location ID"
//	@Success		204
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Router			/admin/delivery-locations/{location_id} [delete]
func (app *application) deleteDeliveryLocationHandler(w http.ResponseWriter, r *http.Request) {
	locationID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "location_id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	if err := app.deliveryRepo.Delete(r.Context(), locationID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
