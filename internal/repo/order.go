package repo

import (
	"context"

	"github.com/yuhyam95/meenos-menu/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error)
	GetByNumber(ctx context.Context, number string) (*domain.Order, error)
	// List returns orders sorted newest-first.
	List(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.OrderStatus) error
	MarkPaymentAcknowledged(ctx context.Context, id primitive.ObjectID) error
}

type OrderStatusAuditRepository interface {
	Create(ctx context.Context, audit *domain.OrderStatusAudit) error
	GetByOrderID(ctx context.Context, orderID string, limit int) ([]domain.OrderStatusAudit, error)
}

type NotificationAuditRepository interface {
	Create(ctx context.Context, audit *domain.NotificationAudit) error
	GetByOrderID(ctx context.Context, orderID string) (*domain.NotificationAudit, error)
}
