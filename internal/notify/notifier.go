package notify

import (
	"context"

	"github.com/yuhyam95/meenos-menu/internal/domain"
	"go.uber.org/zap"
)

// Config selects which of the four channels a fan-out attempts. Customer
// channels additionally require a destination address.
type Config struct {
	AdminEmail                  string
	AdminPhone                  string
	EnableEmail                 bool
	EnableWhatsApp              bool
	EnableCustomerNotifications bool
	CustomerEmail               string
	CustomerPhone               string
}

// Result reports one channel's outcome. A channel that was never
// attempted (disabled, or no destination known) has Success false and an
// empty Error; an attempted failure carries the transport error.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type Results struct {
	AdminEmail       Result `json:"email"`
	AdminWhatsApp    Result `json:"whatsapp"`
	CustomerEmail    Result `json:"customer_email"`
	CustomerWhatsApp Result `json:"customer_whatsapp"`
}

type EmailSender interface {
	Send(ctx context.Context, to, subject, htmlBody, textBody string) error
}

type WhatsAppSender interface {
	Send(ctx context.Context, to, message string) error
}

type Notifier struct {
	email    EmailSender
	whatsapp WhatsAppSender
	logger   *zap.SugaredLogger
}

func New(email EmailSender, whatsapp WhatsAppSender, logger *zap.SugaredLogger) *Notifier {
	return &Notifier{
		email:    email,
		whatsapp: whatsapp,
		logger:   logger,
	}
}

// SendOrderNotifications fans an order out to up to four channels.
// Channels are attempted independently: a failure on one never prevents
// the others, and nothing here is allowed to fail the order itself.
func (n *Notifier) SendOrderNotifications(ctx context.Context, order *domain.Order, cfg Config) Results {
	var results Results

	if cfg.EnableEmail {
		subject, html, text := adminOrderEmail(order)
		results.AdminEmail = n.attemptEmail(ctx, cfg.AdminEmail, subject, html, text)
	}

	if cfg.EnableWhatsApp {
		results.AdminWhatsApp = n.attemptWhatsApp(ctx, cfg.AdminPhone, adminOrderMessage(order))
	}

	if cfg.EnableCustomerNotifications && cfg.CustomerEmail != "" {
		subject, html, text := customerOrderEmail(order)
		results.CustomerEmail = n.attemptEmail(ctx, cfg.CustomerEmail, subject, html, text)
	}

	if cfg.EnableCustomerNotifications && cfg.CustomerPhone != "" {
		results.CustomerWhatsApp = n.attemptWhatsApp(ctx, cfg.CustomerPhone, customerOrderMessage(order))
	}

	return results
}

func (n *Notifier) attemptEmail(ctx context.Context, to, subject, html, text string) Result {
	if err := n.email.Send(ctx, to, subject, html, text); err != nil {
		n.logger.Errorw("email notification failed", "to", to, "error", err)
		return Result{Success: false, Error: err.Error()}
	}

	n.logger.Infow("email notification sent", "to", to)
	return Result{Success: true}
}

func (n *Notifier) attemptWhatsApp(ctx context.Context, to, message string) Result {
	if err := n.whatsapp.Send(ctx, to, message); err != nil {
		n.logger.Errorw("whatsapp notification failed", "to", to, "error", err)
		return Result{Success: false, Error: err.Error()}
	}

	n.logger.Infow("whatsapp notification sent", "to", to)
	return Result{Success: true}
}
