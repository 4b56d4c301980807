package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/yuhyam95/meenos-menu/internal/auth"
	"github.com/yuhyam95/meenos-menu/internal/domain"
	"github.com/yuhyam95/meenos-menu/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=Admin User"`
	Password string `json:"password" validate:"required,min=8"`
}

type UpdateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=Admin User"`
	Password string `json:"password" validate:"omitempty,min=8"`
}

// listUsersHandler godoc
//
//	@Summary		List users
//	@Description	List back-office users
//	@Tags			users
//	@Produce		json
//	@Success		200	{array}		domain.User
//	@Failure		500	{object}	map[string]string
//	@Router			/admin/users [get]
func (app *application) listUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := app.userRepo.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, users); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createUserHandler godoc
//
//	@Summary		Create user
//	@Description	Create a back-office user
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateUserRequest	true	"User"
//	@Success		201		{object}	domain.User
//	@Failure		400		{object}	map[string]string
//	@Failure		409		{object}	map[string]string
//	@Router			/admin/users [post]
func (app *application) createUserHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	user := &domain.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         domain.UserRole(req.Role),
		PasswordHash: hash,
	}

	if err := app.userRepo.Create(r.Context(), user); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			app.conflictResponse(w, r, errors.New("email already in use"))
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, user); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateUserHandler godoc
//
//	@Summary		Update user
//	@Description	Update a back-office user; password only changes when provided
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			user_id	path		string				true	"User ID"
//	@Param			request	body		UpdateUserRequest	true	"User"
//	@Success		200		{object}	domain.User
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/admin/users/{user_id} [put]
func (app *application) updateUserHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "user_id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var req UpdateUserRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user := &domain.User{
		ID:    userID,
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Role:  domain.UserRole(req.Role),
	}

	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
		user.PasswordHash = hash
	}

	if err := app.userRepo.Update(r.Context(), user); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, user); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteUserHandler godoc
//
//	@Summary		Delete user
//	@Description	Delete a back-office user
//	@Tags			users
//	@Produce		json
//	@Param			user_id	path	string	true	"User ID"
//	@Success		204
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Router			/admin/users/{user_id} [delete]
func (app *application) deleteUserHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "user_id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	if err := app.userRepo.Delete(r.Context(), userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
