package main

import (
	"net/http"
	"time"

	"github.com/yuhyam95/meenos-menu/internal/domain"
)

// testNotificationsHandler godoc
//
//	@Summary		Send test notifications
//	@Description	Fan a fabricated order out to every configured channel and report per-channel results
//	@Tags			notifications
//	@Produce		json
//	@Success		200	{object}	notify.Results
//	@Router			/admin/notifications/test [post]
func (app *application) testNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	order := testOrder()

	cfg := app.config.notify
	if cfg.CustomerPhone == "" {
		cfg.CustomerPhone = order.Customer.Phone
	}

	results := app.notifier.SendOrderNotifications(r.Context(), order, cfg)

	app.logger.Infow("test notifications sent",
		"email", results.AdminEmail.Success,
		"whatsapp", results.AdminWhatsApp.Success,
		"customer_email", results.CustomerEmail.Success,
		"customer_whatsapp", results.CustomerWhatsApp.Success,
	)

	if err := app.jsonRespone(w, http.StatusOK, results); err != nil {
		app.internalServerError(w, r, err)
	}
}

func testOrder() *domain.Order {
	return &domain.Order{
		Number: "ORD-TEST0001",
		Customer: domain.Customer{
			Name:    "Test Customer",
			Phone:   "+2348000000000",
			Address: "12 Test Street, Ikeja",
		},
		Items: []domain.OrderLine{
			{Name: "Jollof Rice", Price: 3500, Quantity: 2},
			{Name: "Chicken Suya", Price: 2500, Quantity: 1},
		},
		Subtotal:    9500,
		DeliveryFee: 1500,
		Total:       11000,
		Status:      domain.OrderStatusPending,
		OrderType:   domain.OrderTypeDelivery,
		CreatedAt:   time.Now(),
	}
}
