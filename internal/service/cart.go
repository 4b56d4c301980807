package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/yuhyam95/meenos-menu/internal/domain"
	"github.com/yuhyam95/meenos-menu/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Notice describes the user-visible outcome of a cart mutation. Stock
// rejections are notices, never errors: the cart is left unchanged (or
// clamped) and the caller surfaces the message.
type Notice string

const (
	NoticeAdded        Notice = "added"
	NoticeUpdated      Notice = "updated"
	NoticeRemoved      Notice = "removed"
	NoticeCleared      Notice = "cleared"
	NoticeOutOfStock   Notice = "out_of_stock"
	NoticeStockLimited Notice = "stock_limited"
)

var ErrItemNotInCart = errors.New("item not in cart")

type CartService struct {
	cartRepo repo.CartRepository
	itemRepo repo.FoodItemRepository
	logger   *zap.SugaredLogger
}

func NewCartService(
	cartRepo repo.CartRepository,
	itemRepo repo.FoodItemRepository,
	logger *zap.SugaredLogger,
) *CartService {
	return &CartService{
		cartRepo: cartRepo,
		itemRepo: itemRepo,
		logger:   logger,
	}
}

// Get loads a cart snapshot, migrating legacy shapes to the current
// schema. Unknown IDs and undecodable snapshots both resolve to a fresh
// empty cart rather than an error.
func (s *CartService) Get(ctx context.Context, cartID string) (*domain.Cart, error) {
	cart, err := s.cartRepo.Get(ctx, cartID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return s.emptyCart(cartID), nil
		}
		if errors.Is(err, repo.ErrCorruptSnapshot) {
			s.logger.Warnw("resetting corrupt cart snapshot", "cart_id", cartID)
			fresh := s.emptyCart(cartID)
			if err := s.cartRepo.Save(ctx, fresh); err != nil {
				return nil, fmt.Errorf("failed to reset cart: %w", err)
			}
			return fresh, nil
		}
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	cart.Normalize()

	return cart, nil
}

// AddItem puts one unit of a menu item into the cart. The item's current
// stock is recorded as the line's ceiling on first add; increments past
// the ceiling are refused and leave the cart unchanged.
func (s *CartService) AddItem(ctx context.Context, cartID string, itemID primitive.ObjectID) (*domain.Cart, Notice, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get menu item: %w", err)
	}

	cart, err := s.Get(ctx, cartID)
	if err != nil {
		return nil, "", err
	}

	if item.Quantity == 0 {
		return cart, NoticeOutOfStock, nil
	}

	line := cart.Line(item.ID.Hex())
	if line != nil {
		if line.Quantity+1 > line.Ceiling {
			return cart, NoticeStockLimited, nil
		}
		line.Quantity++
	} else {
		cart.Lines = append(cart.Lines, domain.CartLine{
			ItemID:   item.ID.Hex(),
			Name:     item.Name,
			Price:    item.Price,
			ImageURL: item.ImageURL,
			Category: item.Category,
			Quantity: 1,
			Ceiling:  item.Quantity,
		})
	}

	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, "", fmt.Errorf("failed to save cart: %w", err)
	}

	return cart, NoticeAdded, nil
}

// UpdateQuantity sets a line's quantity. Zero or negative removes the
// line; a request past the ceiling clamps to the ceiling.
func (s *CartService) UpdateQuantity(ctx context.Context, cartID, itemID string, quantity int) (*domain.Cart, Notice, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, cartID, itemID)
	}

	cart, err := s.Get(ctx, cartID)
	if err != nil {
		return nil, "", err
	}

	line := cart.Line(itemID)
	if line == nil {
		return cart, "", ErrItemNotInCart
	}

	notice := NoticeUpdated
	if quantity > line.Ceiling {
		line.Quantity = line.Ceiling
		notice = NoticeStockLimited
	} else {
		line.Quantity = quantity
	}

	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, "", fmt.Errorf("failed to save cart: %w", err)
	}

	return cart, notice, nil
}

func (s *CartService) RemoveItem(ctx context.Context, cartID, itemID string) (*domain.Cart, Notice, error) {
	cart, err := s.Get(ctx, cartID)
	if err != nil {
		return nil, "", err
	}

	cart.RemoveLine(itemID)

	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, "", fmt.Errorf("failed to save cart: %w", err)
	}

	return cart, NoticeRemoved, nil
}

func (s *CartService) Clear(ctx context.Context, cartID string) (*domain.Cart, error) {
	cart := s.emptyCart(cartID)

	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	return cart, nil
}

func (s *CartService) emptyCart(cartID string) *domain.Cart {
	return &domain.Cart{
		ID:            cartID,
		SchemaVersion: domain.CartSchemaVersion,
		Lines:         []domain.CartLine{},
	}
}
