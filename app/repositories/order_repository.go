package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rahulkhanna/dukaan/app/models"
	"github.com/rahulkhanna/dukaan/pkg/store"
)

// OrdersCollection is the record store collection for orders.
const OrdersCollection = "orders"

// OrderRepository handles record store operations for Order.
type OrderRepository struct {
	store store.Store
	now   func() time.Time
}

func NewOrderRepository(st store.Store) *OrderRepository {
	return &OrderRepository{store: st, now: time.Now}
}

func (r *OrderRepository) All(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.store.FindAll(ctx, OrdersCollection, &orders)
	return orders, err
}

func (r *OrderRepository) Find(ctx context.Context, id primitive.ObjectID) (models.Order, error) {
	var order models.Order
	err := r.store.FindByID(ctx, OrdersCollection, id, &order)
	return order, err
}

// Create assigns a fresh id and stamps created_at exactly once.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	order.ID = primitive.NewObjectID()
	order.CreatedAt = r.now().UTC().Truncate(time.Millisecond)
	return r.store.Insert(ctx, OrdersCollection, order)
}

// Replace overwrites the references of an existing order. created_at is
// immutable: the stored timestamp is carried over regardless of what
// the caller passes.
func (r *OrderRepository) Replace(ctx context.Context, id primitive.ObjectID, order *models.Order) error {
	existing, err := r.Find(ctx, id)
	if err != nil {
		return err
	}
	order.ID = id
	order.CreatedAt = existing.CreatedAt
	return r.store.Replace(ctx, OrdersCollection, id, order)
}

func (r *OrderRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return r.store.Delete(ctx, OrdersCollection, id)
}
