package repo

import (
	"context"

	"github.com/yuhyam95/meenos-menu/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type StoreSettingRepository interface {
	// Get returns the singleton settings document, ErrNotFound if the
	// store has never been configured.
	Get(ctx context.Context) (*domain.StoreSetting, error)
	Upsert(ctx context.Context, setting *domain.StoreSetting) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	// GetByLogin matches either email or phone, mirroring the login form.
	GetByLogin(ctx context.Context, login string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
