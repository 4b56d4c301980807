package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/yuhyam95/meenos-menu/internal/domain"
	"github.com/yuhyam95/meenos-menu/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// listCategoriesHandler godoc
//
//	@Summary		List categories
//	@Description	List all food categories
//	@Tags			categories
//	@Produce		json
//	@Success		200	{array}		domain.FoodCategory
//	@Failure		500	{object}	map[string]string
//	@Router			/categories [get]
func (app *application) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := app.categoryRepo.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, categories); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createCategoryHandler godoc
//
//	@Summary		Create category
//	@Description	Create a new food category
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CategoryRequest	true	"Category"
//	@Success		201		{object}	domain.FoodCategory
//	@Failure		400		{object}	map[string]string
//	@Failure		409		{object}	map[string]string
//	@Router			/admin/categories [post]
func (app *application) createCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	category := &domain.FoodCategory{Name: req.Name}

	if err := app.categoryRepo.Create(r.Context(), category); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			app.conflictResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, category); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateCategoryHandler godoc
//
//	@Summary		Update category
//	@Description	Rename a food category
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Param			category_id	path		string			true	"Category ID"
//	@Param			request		body		CategoryRequest	true	"Category"
//	@Success		200			{object}	domain.FoodCategory
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/admin/categories/{category_id} [put]
func (app *application) updateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	categoryID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "category_id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var req CategoryRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	category := &domain.FoodCategory{ID: categoryID, Name: req.Name}

	if err := app.categoryRepo.Update(r.Context(), category); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, category); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteCategoryHandler godoc
//
//	@Summary		Delete category
//	@Description	Delete a food category
//	@Tags			categories
//	@Produce		json
//	@Param			category_id	path	string	true	"Category ID"
//	@Success		204
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Router			/admin/categories/{category_id} [delete]
func (app *application) deleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	categoryID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "category_id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	if err := app.categoryRepo.Delete(r.Context(), categoryID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
