package main

import (
	"errors"
	"net/http"

	"github.com/yuhyam95/meenos-menu/internal/auth"
	"github.com/yuhyam95/meenos-menu/internal/domain"
	"github.com/yuhyam95/meenos-menu/internal/repo"
)

type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  domain.UserRole `json:"role"`
}

// loginHandler godoc
//
//	@Summary		Log in
//	@Description	Authenticate with email or phone plus password; sets the session cookie
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Credentials"
//	@Success		200		{object}	LoginResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		401		{object}	map[string]string
//	@Router			/login [post]
func (app *application) loginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user, err := app.userRepo.GetByLogin(r.Context(), req.Login)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.unauthorizedErrorResponse(w, r, errors.New("invalid credentials"))
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		app.unauthorizedErrorResponse(w, r, errors.New("invalid credentials"))
		return
	}

	token, err := app.sessions.Issue(user)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	http.SetCookie(w, app.sessions.Cookie(token))

	resp := LoginResponse{Name: user.Name, Email: user.Email, Role: user.Role}
	if err := app.jsonRespone(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

// logoutHandler godoc
//
//	@Summary		Log out
//	@Description	Expire the session cookie
//	@Tags			auth
//	@Produce		json
//	@Success		204
//	@Router			/logout [post]
func (app *application) logoutHandler(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, app.sessions.ClearCookie())
	w.WriteHeader(http.StatusNoContent)
}
