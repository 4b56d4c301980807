package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/yuhyam95/meenos-menu/internal/domain"
	"github.com/yuhyam95/meenos-menu/internal/queue"
	"github.com/yuhyam95/meenos-menu/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrInvalidInput  = errors.New("missing required checkout fields")
	ErrInvalidStatus = errors.New("invalid order status")
)

type CheckoutInput struct {
	CartID             string
	Name               string
	Phone              string
	OrderType          domain.OrderType
	Address            string
	DeliveryLocationID string
	Notes              string
}

type OrderService struct {
	orderRepo    repo.OrderRepository
	deliveryRepo repo.DeliveryLocationRepository
	auditRepo    repo.OrderStatusAuditRepository
	cartService  *CartService
	broker       queue.Broker
	logger       *zap.SugaredLogger
}

func NewOrderService(
	orderRepo repo.OrderRepository,
	deliveryRepo repo.DeliveryLocationRepository,
	auditRepo repo.OrderStatusAuditRepository,
	cartService *CartService,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		deliveryRepo: deliveryRepo,
		auditRepo:    auditRepo,
		cartService:  cartService,
		broker:       broker,
		logger:       logger,
	}
}

// PlaceOrder turns the cart plus checkout input into a persisted Pending
// order. The cart is NOT cleared here: that happens only once the
// customer acknowledges the payment instructions. The notification
// fan-out is triggered by publishing an order-created event; a publish
// failure is logged and swallowed, it never fails the order.
func (s *OrderService) PlaceOrder(ctx context.Context, in CheckoutInput) (*domain.Order, error) {
	if err := validateCheckout(in); err != nil {
		return nil, err
	}

	cart, err := s.cartService.Get(ctx, in.CartID)
	if err != nil {
		return nil, err
	}
	if len(cart.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	fee := 0.0
	address := ""
	if in.OrderType == domain.OrderTypeDelivery {
		locationName := ""
		if locID, err := primitive.ObjectIDFromHex(in.DeliveryLocationID); err == nil {
			location, err := s.deliveryRepo.GetByID(ctx, locID)
			if err == nil {
				fee = location.Price
				locationName = location.Name
			}
		}
		address = fmt.Sprintf("%s, %s", in.Address, locationName)
	}

	items := make([]domain.OrderLine, 0, len(cart.Lines))
	subtotal := decimal.Zero
	for _, line := range cart.Lines {
		items = append(items, domain.OrderLine{
			ItemID:   line.ItemID,
			Name:     line.Name,
			Price:    line.Price,
			Quantity: line.Quantity,
		})
		sub := decimal.NewFromFloat(line.Price).Mul(decimal.NewFromInt(int64(line.Quantity)))
		subtotal = subtotal.Add(sub)
	}

	total := subtotal.Add(decimal.NewFromFloat(fee))
	subtotalF, _ := subtotal.Float64()
	totalF, _ := total.Float64()

	order := &domain.Order{
		Number: newOrderNumber(),
		Customer: domain.Customer{
			Name:    in.Name,
			Phone:   in.Phone,
			Address: address,
		},
		Items:       items,
		Subtotal:    subtotalF,
		DeliveryFee: fee,
		Total:       totalF,
		Status:      domain.OrderStatusPending,
		OrderType:   in.OrderType,
		Notes:       strings.TrimSpace(in.Notes),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.publishOrderCreated(ctx, order)

	s.logger.Infow("order placed", "number", order.Number, "order_type", order.OrderType, "total", order.Total)

	return order, nil
}

// ConfirmPayment records the customer's payment acknowledgment and clears
// the cart. Acknowledging an already acknowledged order is a no-op, so
// the cart clear cannot double-fire.
func (s *OrderService) ConfirmPayment(ctx context.Context, orderNumber, cartID string) (*domain.Order, error) {
	order, err := s.orderRepo.GetByNumber(ctx, orderNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order.PaymentAcknowledgedAt != nil {
		return order, nil
	}

	if err := s.orderRepo.MarkPaymentAcknowledged(ctx, order.ID); err != nil {
		return nil, fmt.Errorf("failed to acknowledge payment: %w", err)
	}
	now := time.Now()
	order.PaymentAcknowledgedAt = &now

	if _, err := s.cartService.Clear(ctx, cartID); err != nil {
		// The order is confirmed either way; a stale cart self-heals on
		// the next mutation.
		s.logger.Errorw("failed to clear cart after payment", "cart_id", cartID, "error", err)
	}

	return order, nil
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

// UpdateStatus applies an admin status change and records an audit
// entry. Concurrent updates are last-writer-wins.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID primitive.ObjectID, status domain.OrderStatus, userID string) (*domain.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	oldStatus := order.Status
	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	order.Status = status

	audit := &domain.OrderStatusAudit{
		OrderID:   orderID.Hex(),
		OldStatus: oldStatus,
		NewStatus: status,
		UserID:    userID,
	}
	if err := s.auditRepo.Create(ctx, audit); err != nil {
		s.logger.Errorw("failed to create status audit", "order_id", orderID.Hex(), "error", err)
	}

	s.logger.Infow("order status updated", "order_id", orderID.Hex(), "old_status", oldStatus, "new_status", status)

	return order, nil
}

func (s *OrderService) publishOrderCreated(ctx context.Context, order *domain.Order) {
	event := domain.OrderCreatedEvent{
		OrderID:   order.ID.Hex(),
		Number:    order.Number,
		Timestamp: order.CreatedAt,
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		s.logger.Errorw("failed to marshal order event", "number", order.Number, "error", err)
		return
	}

	if err := s.broker.Publish(ctx, queue.QueueOrderNotifications, eventBytes); err != nil {
		s.logger.Errorw("failed to publish order event", "number", order.Number, "error", err)
	}
}

func validateCheckout(in CheckoutInput) error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Phone) == "" {
		return ErrInvalidInput
	}
	switch in.OrderType {
	case domain.OrderTypePickup:
	case domain.OrderTypeDelivery:
		if strings.TrimSpace(in.Address) == "" || in.DeliveryLocationID == "" {
			return ErrInvalidInput
		}
	default:
		return ErrInvalidInput
	}
	return nil
}

func newOrderNumber() string {
	id := strings.ToUpper(uuid.NewString())
	return "ORD-" + strings.ReplaceAll(id, "-", "")[:8]
}
