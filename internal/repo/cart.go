package repo

import (
	"context"

	"github.com/yuhyam95/meenos-menu/internal/domain"
)

type CartRepository interface {
	// Get returns ErrNotFound for an unknown cart ID and
	// ErrCorruptSnapshot for a document that no longer decodes.
	Get(ctx context.Context, cartID string) (*domain.Cart, error)
	// Save upserts the full cart snapshot.
	Save(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, cartID string) error
}
