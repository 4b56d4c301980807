package repo

import (
	"context"

	"github.com/yuhyam95/meenos-menu/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FoodItemRepository interface {
	Create(ctx context.Context, item *domain.FoodItem) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.FoodItem, error)
	List(ctx context.Context) ([]domain.FoodItem, error)
	Update(ctx context.Context, item *domain.FoodItem) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type FoodCategoryRepository interface {
	Create(ctx context.Context, category *domain.FoodCategory) error
	List(ctx context.Context) ([]domain.FoodCategory, error)
	Update(ctx context.Context, category *domain.FoodCategory) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type DeliveryLocationRepository interface {
	Create(ctx context.Context, location *domain.DeliveryLocation) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.DeliveryLocation, error)
	List(ctx context.Context) ([]domain.DeliveryLocation, error)
	Update(ctx context.Context, location *domain.DeliveryLocation) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
