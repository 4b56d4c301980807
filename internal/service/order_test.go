package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuhyam95/meenos-menu/internal/domain"
	"github.com/yuhyam95/meenos-menu/internal/queue"
	"github.com/yuhyam95/meenos-menu/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeOrderRepo struct {
	orders    map[primitive.ObjectID]*domain.Order
	createErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[primitive.ObjectID]*domain.Order)}
}

func (r *fakeOrderRepo) Create(_ context.Context, order *domain.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	order.ID = primitive.NewObjectID()
	order.CreatedAt = time.Now()
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return order, nil
}

func (r *fakeOrderRepo) GetByNumber(_ context.Context, number string) (*domain.Order, error) {
	for _, order := range r.orders {
		if order.Number == number {
			return order, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *fakeOrderRepo) List(_ context.Context) ([]domain.Order, error) {
	orders := make([]domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orders = append(orders, *order)
	}
	return orders, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status domain.OrderStatus) error {
	order, ok := r.orders[id]
	if !ok {
		return repo.ErrNotFound
	}
	order.Status = status
	return nil
}

func (r *fakeOrderRepo) MarkPaymentAcknowledged(_ context.Context, id primitive.ObjectID) error {
	order, ok := r.orders[id]
	if !ok {
		return repo.ErrNotFound
	}
	now := time.Now()
	order.PaymentAcknowledgedAt = &now
	return nil
}

type fakeDeliveryRepo struct {
	locations map[primitive.ObjectID]*domain.DeliveryLocation
}

func newFakeDeliveryRepo(locations ...*domain.DeliveryLocation) *fakeDeliveryRepo {
	r := &fakeDeliveryRepo{locations: make(map[primitive.ObjectID]*domain.DeliveryLocation)}
	for _, loc := range locations {
		r.locations[loc.ID] = loc
	}
	return r
}

func (r *fakeDeliveryRepo) Create(_ context.Context, location *domain.DeliveryLocation) error {
	r.locations[location.ID] = location
	return nil
}

func (r *fakeDeliveryRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.DeliveryLocation, error) {
	loc, ok := r.locations[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return loc, nil
}

func (r *fakeDeliveryRepo) List(_ context.Context) ([]domain.DeliveryLocation, error) {
	locations := make([]domain.DeliveryLocation, 0, len(r.locations))
	for _, loc := range r.locations {
		locations = append(locations, *loc)
	}
	return locations, nil
}

func (r *fakeDeliveryRepo) Update(_ context.Context, location *domain.DeliveryLocation) error {
	r.locations[location.ID] = location
	return nil
}

func (r *fakeDeliveryRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(r.locations, id)
	return nil
}

type fakeStatusAuditRepo struct {
	audits []*domain.OrderStatusAudit
}

func (r *fakeStatusAuditRepo) Create(_ context.Context, audit *domain.OrderStatusAudit) error {
	r.audits = append(r.audits, audit)
	return nil
}

func (r *fakeStatusAuditRepo) GetByOrderID(_ context.Context, orderID string, _ int) ([]domain.OrderStatusAudit, error) {
	var out []domain.OrderStatusAudit
	for _, a := range r.audits {
		if a.OrderID == orderID {
			out = append(out, *a)
		}
	}
	return out, nil
}

type fakeBroker struct {
	published  [][]byte
	publishErr error
}

func (b *fakeBroker) Publish(_ context.Context, _ string, message []byte) error {
	if b.publishErr != nil {
		return b.publishErr
	}
	b.published = append(b.published, message)
	return nil
}

func (b *fakeBroker) Subscribe(_ context.Context, _ string, _ queue.MessageHandler) error {
	return nil
}

func (b *fakeBroker) Close() error { return nil }

type orderFixture struct {
	svc       *OrderService
	cartSvc   *CartService
	orderRepo *fakeOrderRepo
	cartRepo  *fakeCartRepo
	broker    *fakeBroker
	audits    *fakeStatusAuditRepo
	item      *domain.FoodItem
	location  *domain.DeliveryLocation
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	item := &domain.FoodItem{ID: primitive.NewObjectID(), Name: "Jollof Rice", Price: 2500, Quantity: 10}
	location := &domain.DeliveryLocation{ID: primitive.NewObjectID(), Name: "Ikeja", Price: 1000}

	cartRepo := newFakeCartRepo()
	cartSvc := newTestCartService(cartRepo, newFakeItemRepo(item))

	orderRepo := newFakeOrderRepo()
	broker := &fakeBroker{}
	audits := &fakeStatusAuditRepo{}

	svc := NewOrderService(
		orderRepo,
		newFakeDeliveryRepo(location),
		audits,
		cartSvc,
		broker,
		zap.NewNop().Sugar(),
	)

	return &orderFixture{
		svc:       svc,
		cartSvc:   cartSvc,
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		broker:    broker,
		audits:    audits,
		item:      item,
		location:  location,
	}
}

func (f *orderFixture) fillCart(t *testing.T, units int) {
	t.Helper()
	for i := 0; i < units; i++ {
		_, _, err := f.cartSvc.AddItem(context.Background(), "cart-1", f.item.ID)
		require.NoError(t, err)
	}
}

func TestPlaceOrderPickup(t *testing.T) {
	f := newOrderFixture(t)
	f.fillCart(t, 2)

	order, err := f.svc.PlaceOrder(context.Background(), CheckoutInput{
		CartID:    "cart-1",
		Name:      "Ada",
		Phone:     "+2348000000001",
		OrderType: domain.OrderTypePickup,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, 5000.0, order.Subtotal)
	assert.Equal(t, 0.0, order.DeliveryFee)
	assert.Equal(t, 5000.0, order.Total)
	assert.Empty(t, order.Customer.Address)
	assert.Contains(t, order.Number, "ORD-")
}

func TestPlaceOrderDeliveryComposesAddressAndFee(t *testing.T) {
	f := newOrderFixture(t)
	f.fillCart(t, 2)

	order, err := f.svc.PlaceOrder(context.Background(), CheckoutInput{
		CartID:             "cart-1",
		Name:               "Ada",
		Phone:              "+2348000000001",
		OrderType:          domain.OrderTypeDelivery,
		Address:            "5 Allen Avenue",
		DeliveryLocationID: f.location.ID.Hex(),
	})
	require.NoError(t, err)

	assert.Equal(t, "5 Allen Avenue, Ikeja", order.Customer.Address)
	assert.Equal(t, 1000.0, order.DeliveryFee)
	assert.Equal(t, 6000.0, order.Total)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.svc.PlaceOrder(context.Background(), CheckoutInput{
		CartID:    "cart-1",
		Name:      "Ada",
		Phone:     "+2348000000001",
		OrderType: domain.OrderTypePickup,
	})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderValidation(t *testing.T) {
	f := newOrderFixture(t)
	f.fillCart(t, 1)

	cases := map[string]CheckoutInput{
		"missing name":     {CartID: "cart-1", Phone: "+234", OrderType: domain.OrderTypePickup},
		"missing phone":    {CartID: "cart-1", Name: "Ada", OrderType: domain.OrderTypePickup},
		"bad order type":   {CartID: "cart-1", Name: "Ada", Phone: "+234", OrderType: "courier"},
		"delivery address": {CartID: "cart-1", Name: "Ada", Phone: "+234", OrderType: domain.OrderTypeDelivery},
	}

	for name, in := range cases {
		_, err := f.svc.PlaceOrder(context.Background(), in)
		assert.ErrorIs(t, err, ErrInvalidInput, name)
	}
}

func TestPlaceOrderKeepsCart(t *testing.T) {
	f := newOrderFixture(t)
	f.fillCart(t, 2)

	_, err := f.svc.PlaceOrder(context.Background(), CheckoutInput{
		CartID:    "cart-1",
		Name:      "Ada",
		Phone:     "+2348000000001",
		OrderType: domain.OrderTypePickup,
	})
	require.NoError(t, err)

	cart, err := f.cartSvc.Get(context.Background(), "cart-1")
	require.NoError(t, err)
	assert.NotEmpty(t, cart.Lines, "cart survives until payment is acknowledged")
}

func TestPlaceOrderPublishFailureIsSwallowed(t *testing.T) {
	f := newOrderFixture(t)
	f.fillCart(t, 1)
	f.broker.publishErr = errors.New("broker down")

	order, err := f.svc.PlaceOrder(context.Background(), CheckoutInput{
		CartID:    "cart-1",
		Name:      "Ada",
		Phone:     "+2348000000001",
		OrderType: domain.OrderTypePickup,
	})
	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestPlaceOrderPublishesEvent(t *testing.T) {
	f := newOrderFixture(t)
	f.fillCart(t, 1)

	_, err := f.svc.PlaceOrder(context.Background(), CheckoutInput{
		CartID:    "cart-1",
		Name:      "Ada",
		Phone:     "+2348000000001",
		OrderType: domain.OrderTypePickup,
	})
	require.NoError(t, err)
	assert.Len(t, f.broker.published, 1)
}

func TestConfirmPaymentClearsCartOnce(t *testing.T) {
	f := newOrderFixture(t)
	f.fillCart(t, 2)
	ctx := context.Background()

	order, err := f.svc.PlaceOrder(ctx, CheckoutInput{
		CartID:    "cart-1",
		Name:      "Ada",
		Phone:     "+2348000000001",
		OrderType: domain.OrderTypePickup,
	})
	require.NoError(t, err)

	confirmed, err := f.svc.ConfirmPayment(ctx, order.Number, "cart-1")
	require.NoError(t, err)
	require.NotNil(t, confirmed.PaymentAcknowledgedAt)

	cart, err := f.cartSvc.Get(ctx, "cart-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)

	// second ack is a no-op
	again, err := f.svc.ConfirmPayment(ctx, order.Number, "cart-1")
	require.NoError(t, err)
	assert.Equal(t, confirmed.PaymentAcknowledgedAt, again.PaymentAcknowledgedAt)
}

func TestConfirmPaymentUnknownOrder(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.svc.ConfirmPayment(context.Background(), "ORD-MISSING1", "cart-1")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestUpdateStatusRecordsAudit(t *testing.T) {
	f := newOrderFixture(t)
	f.fillCart(t, 1)
	ctx := context.Background()

	order, err := f.svc.PlaceOrder(ctx, CheckoutInput{
		CartID:    "cart-1",
		Name:      "Ada",
		Phone:     "+2348000000001",
		OrderType: domain.OrderTypePickup,
	})
	require.NoError(t, err)

	updated, err := f.svc.UpdateStatus(ctx, order.ID, domain.OrderStatusInProgress, "user-1")
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusInProgress, updated.Status)
	require.Len(t, f.audits.audits, 1)
	assert.Equal(t, domain.OrderStatusPending, f.audits.audits[0].OldStatus)
	assert.Equal(t, domain.OrderStatusInProgress, f.audits.audits[0].NewStatus)
	assert.Equal(t, "user-1", f.audits.audits[0].UserID)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.svc.UpdateStatus(context.Background(), primitive.NewObjectID(), "Vanished", "user-1")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
