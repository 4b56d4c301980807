package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuhyam95/meenos-menu/internal/domain"
	"github.com/yuhyam95/meenos-menu/internal/notify"
	"github.com/yuhyam95/meenos-menu/internal/queue"
	"github.com/yuhyam95/meenos-menu/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type stubOrderRepo struct {
	order *domain.Order
}

func (r *stubOrderRepo) Create(context.Context, *domain.Order) error { return nil }

func (r *stubOrderRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Order, error) {
	if r.order == nil || r.order.ID != id {
		return nil, repo.ErrNotFound
	}
	return r.order, nil
}

func (r *stubOrderRepo) GetByNumber(context.Context, string) (*domain.Order, error) {
	return nil, repo.ErrNotFound
}

func (r *stubOrderRepo) List(context.Context) ([]domain.Order, error) { return nil, nil }

func (r *stubOrderRepo) UpdateStatus(context.Context, primitive.ObjectID, domain.OrderStatus) error {
	return nil
}

func (r *stubOrderRepo) MarkPaymentAcknowledged(context.Context, primitive.ObjectID) error {
	return nil
}

type stubAuditRepo struct {
	audits []*domain.NotificationAudit
}

func (r *stubAuditRepo) Create(_ context.Context, audit *domain.NotificationAudit) error {
	r.audits = append(r.audits, audit)
	return nil
}

func (r *stubAuditRepo) GetByOrderID(context.Context, string) (*domain.NotificationAudit, error) {
	return nil, repo.ErrNotFound
}

type stubBroker struct{}

func (stubBroker) Publish(context.Context, string, []byte) error { return nil }

func (stubBroker) Subscribe(context.Context, string, queue.MessageHandler) error { return nil }

func (stubBroker) Close() error { return nil }

type stubEmail struct{ err error }

func (s stubEmail) Send(context.Context, string, string, string, string) error { return s.err }

type stubWhatsApp struct {
	sent []string
	err  error
}

func (s *stubWhatsApp) Send(_ context.Context, to, _ string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, to)
	return nil
}

func newTestWorker(order *domain.Order, cfg notify.Config, email notify.EmailSender, whatsapp notify.WhatsAppSender) (*OrderNotificationWorker, *stubAuditRepo) {
	logger := zap.NewNop().Sugar()
	audits := &stubAuditRepo{}
	w := NewOrderNotificationWorker(
		&stubOrderRepo{order: order},
		audits,
		notify.New(email, whatsapp, logger),
		cfg,
		stubBroker{},
		logger,
	)
	return w, audits
}

func eventFor(order *domain.Order) []byte {
	payload, _ := json.Marshal(domain.OrderCreatedEvent{
		OrderID:   order.ID.Hex(),
		Number:    order.Number,
		Timestamp: order.CreatedAt,
	})
	return payload
}

func testOrder() *domain.Order {
	return &domain.Order{
		ID:     primitive.NewObjectID(),
		Number: "ORD-ABC12345",
		Customer: domain.Customer{
			Name:  "Ada",
			Phone: "+2348000000001",
		},
		Items:     []domain.OrderLine{{Name: "Jollof Rice", Price: 2500, Quantity: 2}},
		Subtotal:  5000,
		Total:     5000,
		Status:    domain.OrderStatusPending,
		OrderType: domain.OrderTypePickup,
		CreatedAt: time.Now(),
	}
}

func TestHandleMessageRecordsAudit(t *testing.T) {
	order := testOrder()
	whatsapp := &stubWhatsApp{}
	w, audits := newTestWorker(order, notify.Config{
		AdminEmail:                  "admin@example.com",
		AdminPhone:                  "+2348000000000",
		EnableEmail:                 true,
		EnableWhatsApp:              true,
		EnableCustomerNotifications: true,
	}, stubEmail{}, whatsapp)

	err := w.handleMessage(context.Background(), eventFor(order))
	require.NoError(t, err)

	require.Len(t, audits.audits, 1)
	audit := audits.audits[0]

	assert.Equal(t, order.ID.Hex(), audit.OrderID)
	assert.True(t, audit.AdminEmail.Attempted)
	assert.True(t, audit.AdminEmail.Success)
	assert.True(t, audit.AdminWhatsApp.Success)

	// no customer email configured, so that channel was never attempted
	assert.False(t, audit.CustomerEmail.Attempted)
	assert.Empty(t, audit.CustomerEmail.Error)

	// customer whatsapp falls back to the phone on the order
	assert.True(t, audit.CustomerWhatsApp.Attempted)
	assert.Contains(t, whatsapp.sent, "+2348000000001")
}

func TestHandleMessageChannelFailureIsNotRetried(t *testing.T) {
	order := testOrder()
	w, audits := newTestWorker(order, notify.Config{
		AdminEmail:  "admin@example.com",
		EnableEmail: true,
	}, stubEmail{err: errors.New("provider down")}, &stubWhatsApp{})

	err := w.handleMessage(context.Background(), eventFor(order))
	require.NoError(t, err, "channel failures must not trigger queue redelivery")

	require.Len(t, audits.audits, 1)
	assert.True(t, audits.audits[0].AdminEmail.Attempted)
	assert.False(t, audits.audits[0].AdminEmail.Success)
	assert.Equal(t, "provider down", audits.audits[0].AdminEmail.Error)
}

func TestHandleMessageUnknownOrderIsRetried(t *testing.T) {
	order := testOrder()
	w, _ := newTestWorker(nil, notify.Config{}, stubEmail{}, &stubWhatsApp{})

	err := w.handleMessage(context.Background(), eventFor(order))
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestHandleMessageBadPayload(t *testing.T) {
	w, _ := newTestWorker(nil, notify.Config{}, stubEmail{}, &stubWhatsApp{})

	err := w.handleMessage(context.Background(), []byte("{not json"))
	assert.Error(t, err)
}
