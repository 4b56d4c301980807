package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yuhyam95/meenos-menu/internal/domain"
	"github.com/yuhyam95/meenos-menu/internal/notify"
	"github.com/yuhyam95/meenos-menu/internal/queue"
	"github.com/yuhyam95/meenos-menu/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// OrderNotificationWorker consumes order-created events and runs the
// notification fan-out. Per-channel failures are recorded, never
// retried: only failures before the fan-out (decode, order lookup) are
// surfaced to the broker for redelivery.
type OrderNotificationWorker struct {
	orderRepo repo.OrderRepository
	auditRepo repo.NotificationAuditRepository
	notifier  *notify.Notifier
	config    notify.Config
	broker    queue.Broker
	logger    *zap.SugaredLogger
	ctx       context.Context
	cancel    context.CancelFunc
}

func NewOrderNotificationWorker(
	orderRepo repo.OrderRepository,
	auditRepo repo.NotificationAuditRepository,
	notifier *notify.Notifier,
	config notify.Config,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *OrderNotificationWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &OrderNotificationWorker{
		orderRepo: orderRepo,
		auditRepo: auditRepo,
		notifier:  notifier,
		config:    config,
		broker:    broker,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (w *OrderNotificationWorker) Start() error {
	w.logger.Info("starting order notification worker")

	return w.broker.Subscribe(w.ctx, queue.QueueOrderNotifications, w.handleMessage)
}

func (w *OrderNotificationWorker) Stop() {
	w.logger.Info("stopping order notification worker")
	w.cancel()
}

func (w *OrderNotificationWorker) handleMessage(ctx context.Context, message []byte) error {
	var event domain.OrderCreatedEvent
	if err := json.Unmarshal(message, &event); err != nil {
		w.logger.Errorw("failed to unmarshal order event", "error", err)
		return fmt.Errorf("failed to unmarshal order event: %w", err)
	}

	orderID, err := primitive.ObjectIDFromHex(event.OrderID)
	if err != nil {
		w.logger.Errorw("invalid order id in event", "order_id", event.OrderID, "error", err)
		return fmt.Errorf("invalid order id: %w", err)
	}

	order, err := w.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		w.logger.Errorw("failed to load order for notification", "order_id", event.OrderID, "error", err)
		return err
	}

	cfg := w.config
	if cfg.CustomerPhone == "" {
		cfg.CustomerPhone = order.Customer.Phone
	}

	results := w.notifier.SendOrderNotifications(ctx, order, cfg)

	w.logger.Infow("order notifications dispatched",
		"number", order.Number,
		"admin_email", results.AdminEmail.Success,
		"admin_whatsapp", results.AdminWhatsApp.Success,
		"customer_email", results.CustomerEmail.Success,
		"customer_whatsapp", results.CustomerWhatsApp.Success,
	)

	audit := &domain.NotificationAudit{
		OrderID:          event.OrderID,
		AdminEmail:       outcome(cfg.EnableEmail, results.AdminEmail),
		AdminWhatsApp:    outcome(cfg.EnableWhatsApp, results.AdminWhatsApp),
		CustomerEmail:    outcome(cfg.EnableCustomerNotifications && cfg.CustomerEmail != "", results.CustomerEmail),
		CustomerWhatsApp: outcome(cfg.EnableCustomerNotifications && cfg.CustomerPhone != "", results.CustomerWhatsApp),
		Timestamp:        order.CreatedAt,
	}
	if err := w.auditRepo.Create(ctx, audit); err != nil {
		w.logger.Errorw("failed to store notification audit", "order_id", event.OrderID, "error", err)
	}

	return nil
}

func outcome(attempted bool, result notify.Result) domain.ChannelOutcome {
	return domain.ChannelOutcome{
		Attempted: attempted,
		Success:   result.Success,
		Error:     result.Error,
	}
}
