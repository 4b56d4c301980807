package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuhyam95/meenos-menu/internal/domain"
	"github.com/yuhyam95/meenos-menu/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeCartRepo struct {
	carts   map[string]*domain.Cart
	getErr  error
	saveErr error
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[string]*domain.Cart)}
}

func (r *fakeCartRepo) Get(_ context.Context, cartID string) (*domain.Cart, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	cart, ok := r.carts[cartID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	copied := *cart
	copied.Lines = append([]domain.CartLine(nil), cart.Lines...)
	return &copied, nil
}

func (r *fakeCartRepo) Save(_ context.Context, cart *domain.Cart) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	copied := *cart
	copied.Lines = append([]domain.CartLine(nil), cart.Lines...)
	r.carts[cart.ID] = &copied
	return nil
}

func (r *fakeCartRepo) Delete(_ context.Context, cartID string) error {
	delete(r.carts, cartID)
	return nil
}

type fakeItemRepo struct {
	items map[primitive.ObjectID]*domain.FoodItem
}

func newFakeItemRepo(items ...*domain.FoodItem) *fakeItemRepo {
	r := &fakeItemRepo{items: make(map[primitive.ObjectID]*domain.FoodItem)}
	for _, item := range items {
		r.items[item.ID] = item
	}
	return r
}

func (r *fakeItemRepo) Create(_ context.Context, item *domain.FoodItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.FoodItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return item, nil
}

func (r *fakeItemRepo) List(_ context.Context) ([]domain.FoodItem, error) {
	items := make([]domain.FoodItem, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, *item)
	}
	return items, nil
}

func (r *fakeItemRepo) Update(_ context.Context, item *domain.FoodItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(r.items, id)
	return nil
}

func newTestCartService(cartRepo repo.CartRepository, itemRepo repo.FoodItemRepository) *CartService {
	return NewCartService(cartRepo, itemRepo, zap.NewNop().Sugar())
}

func TestGetUnknownCartReturnsEmpty(t *testing.T) {
	svc := newTestCartService(newFakeCartRepo(), newFakeItemRepo())

	cart, err := svc.Get(context.Background(), "cart-1")
	require.NoError(t, err)

	assert.Equal(t, "cart-1", cart.ID)
	assert.Empty(t, cart.Lines)
	assert.Equal(t, domain.CartSchemaVersion, cart.SchemaVersion)
}

func TestGetResetsCorruptSnapshot(t *testing.T) {
	cartRepo := newFakeCartRepo()
	cartRepo.getErr = repo.ErrCorruptSnapshot
	svc := newTestCartService(cartRepo, newFakeItemRepo())

	cart, err := svc.Get(context.Background(), "cart-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}

func TestAddItemOutOfStock(t *testing.T) {
	item := &domain.FoodItem{ID: primitive.NewObjectID(), Name: "Jollof Rice", Price: 3500, Quantity: 0}
	cartRepo := newFakeCartRepo()
	svc := newTestCartService(cartRepo, newFakeItemRepo(item))

	cart, notice, err := svc.AddItem(context.Background(), "cart-1", item.ID)
	require.NoError(t, err)

	assert.Equal(t, NoticeOutOfStock, notice)
	assert.Empty(t, cart.Lines)
	assert.Empty(t, cartRepo.carts, "a rejected add must not persist anything")
}

func TestAddItemRecordsCeiling(t *testing.T) {
	item := &domain.FoodItem{ID: primitive.NewObjectID(), Name: "Jollof Rice", Price: 3500, Quantity: 5}
	svc := newTestCartService(newFakeCartRepo(), newFakeItemRepo(item))

	cart, notice, err := svc.AddItem(context.Background(), "cart-1", item.ID)
	require.NoError(t, err)

	assert.Equal(t, NoticeAdded, notice)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
	assert.Equal(t, 5, cart.Lines[0].Ceiling)
}

func TestAddItemRefusedPastCeiling(t *testing.T) {
	item := &domain.FoodItem{ID: primitive.NewObjectID(), Name: "Chicken Suya", Price: 2500, Quantity: 2}
	svc := newTestCartService(newFakeCartRepo(), newFakeItemRepo(item))
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, notice, err := svc.AddItem(ctx, "cart-1", item.ID)
		require.NoError(t, err)
		assert.Equal(t, NoticeAdded, notice)
	}

	cart, notice, err := svc.AddItem(ctx, "cart-1", item.ID)
	require.NoError(t, err)

	assert.Equal(t, NoticeStockLimited, notice)
	assert.Equal(t, 2, cart.Lines[0].Quantity, "refused add leaves the cart unchanged")
}

func TestAddItemCeilingSurvivesRestock(t *testing.T) {
	item := &domain.FoodItem{ID: primitive.NewObjectID(), Name: "Chicken Suya", Price: 2500, Quantity: 1}
	itemRepo := newFakeItemRepo(item)
	svc := newTestCartService(newFakeCartRepo(), itemRepo)
	ctx := context.Background()

	_, _, err := svc.AddItem(ctx, "cart-1", item.ID)
	require.NoError(t, err)

	// restocking after the snapshot does not lift the recorded ceiling
	item.Quantity = 10

	cart, notice, err := svc.AddItem(ctx, "cart-1", item.ID)
	require.NoError(t, err)
	assert.Equal(t, NoticeStockLimited, notice)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
}

func TestUpdateQuantityClampsToCeiling(t *testing.T) {
	item := &domain.FoodItem{ID: primitive.NewObjectID(), Name: "Jollof Rice", Price: 3500, Quantity: 3}
	svc := newTestCartService(newFakeCartRepo(), newFakeItemRepo(item))
	ctx := context.Background()

	_, _, err := svc.AddItem(ctx, "cart-1", item.ID)
	require.NoError(t, err)

	cart, notice, err := svc.UpdateQuantity(ctx, "cart-1", item.ID.Hex(), 99)
	require.NoError(t, err)

	assert.Equal(t, NoticeStockLimited, notice)
	assert.Equal(t, 3, cart.Lines[0].Quantity)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	item := &domain.FoodItem{ID: primitive.NewObjectID(), Name: "Jollof Rice", Price: 3500, Quantity: 3}
	svc := newTestCartService(newFakeCartRepo(), newFakeItemRepo(item))
	ctx := context.Background()

	_, _, err := svc.AddItem(ctx, "cart-1", item.ID)
	require.NoError(t, err)

	cart, notice, err := svc.UpdateQuantity(ctx, "cart-1", item.ID.Hex(), 0)
	require.NoError(t, err)

	assert.Equal(t, NoticeRemoved, notice)
	assert.Empty(t, cart.Lines)
}

func TestUpdateQuantityUnknownLine(t *testing.T) {
	svc := newTestCartService(newFakeCartRepo(), newFakeItemRepo())

	_, _, err := svc.UpdateQuantity(context.Background(), "cart-1", "missing", 2)
	assert.ErrorIs(t, err, ErrItemNotInCart)
}

func TestClearEmptiesCart(t *testing.T) {
	item := &domain.FoodItem{ID: primitive.NewObjectID(), Name: "Jollof Rice", Price: 3500, Quantity: 3}
	cartRepo := newFakeCartRepo()
	svc := newTestCartService(cartRepo, newFakeItemRepo(item))
	ctx := context.Background()

	_, _, err := svc.AddItem(ctx, "cart-1", item.ID)
	require.NoError(t, err)

	cart, err := svc.Clear(ctx, "cart-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)

	stored, err := svc.Get(ctx, "cart-1")
	require.NoError(t, err)
	assert.Empty(t, stored.Lines)
}

func TestAddItemPropagatesSaveFailure(t *testing.T) {
	item := &domain.FoodItem{ID: primitive.NewObjectID(), Name: "Jollof Rice", Price: 3500, Quantity: 3}
	cartRepo := newFakeCartRepo()
	cartRepo.saveErr = errors.New("write concern failed")
	svc := newTestCartService(cartRepo, newFakeItemRepo(item))

	_, _, err := svc.AddItem(context.Background(), "cart-1", item.ID)
	assert.Error(t, err)
}
