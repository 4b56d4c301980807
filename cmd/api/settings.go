package main

import (
	"errors"
	"net/http"

	"github.com/yuhyam95/meenos-menu/internal/domain"
	"github.com/yuhyam95/meenos-menu/internal/repo"
)

type SettingsRequest struct {
	BankName       string `json:"bank_name" validate:"required"`
	AccountName    string `json:"account_name" validate:"required"`
	AccountNumber  string `json:"account_number" validate:"required"`
	HeaderImageURL string `json:"header_image_url"`
	ContactPhone   string `json:"contact_phone"`
	ContactEmail   string `json:"contact_email" validate:"omitempty,email"`
	InstagramURL   string `json:"instagram_url"`
}

// PublicSettings is the storefront-facing slice of the store settings.
// Bank details are excluded; they only surface in the checkout response.
type PublicSettings struct {
	HeaderImageURL string `json:"header_image_url"`
	ContactPhone   string `json:"contact_phone"`
	ContactEmail   string `json:"contact_email"`
	InstagramURL   string `json:"instagram_url"`
}

// getPublicSettingsHandler godoc
//
//	@Summary		Get storefront settings
//	@Description	Get the public display settings (header image, contact details)
//	@Tags			settings
//	@Produce		json
//	@Success		200	{object}	PublicSettings
//	@Failure		500	{object}	map[string]string
//	@Router			/settings [get]
func (app *application) getPublicSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var public PublicSettings

	setting, err := app.settingRepo.Get(r.Context())
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		app.internalServerError(w, r, err)
		return
	}
	if setting != nil {
		public = PublicSettings{
			HeaderImageURL: setting.HeaderImageURL,
			ContactPhone:   setting.ContactPhone,
			ContactEmail:   setting.ContactEmail,
			InstagramURL:   setting.InstagramURL,
		}
	}

	if err := app.jsonRespone(w, http.StatusOK, public); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getSettingsHandler godoc
//
//	@Summary		Get store settings
//	@Description	Get the full store settings including bank-transfer details
//	@Tags			settings
//	@Produce		json
//	@Success		200	{object}	domain.StoreSetting
//	@Failure		404	{object}	map[string]string
//	@Router			/admin/settings [get]
func (app *application) getSettingsHandler(w http.ResponseWriter, r *http.Request) {
	setting, err := app.settingRepo.Get(r.Context())
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, setting); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateSettingsHandler godoc
//
//	@Summary		Update store settings
//	@Description	Replace the singleton store settings document
//	@Tags			settings
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SettingsRequest	true	"Settings"
//	@Success		200		{object}	domain.StoreSetting
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/admin/settings [put]
func (app *application) updateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var req SettingsRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	setting := &domain.StoreSetting{
		BankName:       req.BankName,
		AccountName:    req.AccountName,
		AccountNumber:  req.AccountNumber,
		HeaderImageURL: req.HeaderImageURL,
		ContactPhone:   req.ContactPhone,
		ContactEmail:   req.ContactEmail,
		InstagramURL:   req.InstagramURL,
	}

	if err := app.settingRepo.Upsert(r.Context(), setting); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, setting); err != nil {
		app.internalServerError(w, r, err)
	}
}
