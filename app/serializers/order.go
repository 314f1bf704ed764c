package serializers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rahulkhanna/dukaan/app/models"
	"github.com/rahulkhanna/dukaan/app/repositories"
	"github.com/rahulkhanna/dukaan/pkg/resource"
	"github.com/rahulkhanna/dukaan/pkg/store"
)

// OrderInput is the write representation of an order: a single user id
// and an ordered list of product ids.
type OrderInput struct {
	User     string   `json:"user"     validate:"required,objectid"`
	Products []string `json:"products"`
}

// OrderSerializer resolves submitted references on write and expands
// stored references into nested bodies on read.
type OrderSerializer struct {
	users    *repositories.UserRepository
	products *repositories.ProductRepository
	userSer  *UserSerializer
	prodSer  *ProductSerializer
}

func NewOrderSerializer(users *repositories.UserRepository, products *repositories.ProductRepository) *OrderSerializer {
	return &OrderSerializer{
		users:    users,
		products: products,
		userSer:  NewUserSerializer(),
		prodSer:  NewProductSerializer(),
	}
}

// Resolve turns validated input into an Order record, checking every
// reference against the store. A missing or malformed id rejects the
// write; the error map names each offending identifier rather than
// silently storing a null reference.
func (s *OrderSerializer) Resolve(ctx context.Context, in OrderInput) (models.Order, map[string]string, error) {
	errs := make(map[string]string)
	var order models.Order

	userID, err := primitive.ObjectIDFromHex(in.User)
	if err == nil {
		_, err = s.users.Find(ctx, userID)
	}
	switch {
	case err == nil:
		order.UserID = userID
	case errors.Is(err, store.ErrNotFound):
		errs["user"] = fmt.Sprintf("The user %s does not exist.", in.User)
	default:
		return models.Order{}, nil, err
	}

	order.ProductIDs = make([]primitive.ObjectID, 0, len(in.Products))
	var offending []string
	for _, raw := range in.Products {
		productID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			offending = append(offending, raw)
			continue
		}
		if _, err := s.products.Find(ctx, productID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				offending = append(offending, raw)
				continue
			}
			return models.Order{}, nil, err
		}
		order.ProductIDs = append(order.ProductIDs, productID)
	}
	if len(offending) > 0 {
		errs["products"] = fmt.Sprintf("The following products do not exist: %s.", strings.Join(offending, ", "))
	}

	if len(errs) > 0 {
		return models.Order{}, errs, nil
	}
	return order, nil, nil
}

// ToArray expands the stored references into full nested bodies. A
// dangling reference (the record was deleted after the order was
// placed) expands to null, keeping product list positions intact.
func (s *OrderSerializer) ToArray(ctx context.Context, o models.Order) (resource.Map, error) {
	var user interface{}
	u, err := s.users.Find(ctx, o.UserID)
	switch {
	case err == nil:
		user = s.userSer.ToArray(u)
	case errors.Is(err, store.ErrNotFound):
		user = nil
	default:
		return nil, err
	}

	products := make([]interface{}, 0, len(o.ProductIDs))
	for _, id := range o.ProductIDs {
		p, err := s.products.Find(ctx, id)
		switch {
		case err == nil:
			products = append(products, s.prodSer.ToArray(p))
		case errors.Is(err, store.ErrNotFound):
			products = append(products, nil)
		default:
			return nil, err
		}
	}

	return resource.Map{
		"id":         o.ID.Hex(),
		"user":       user,
		"products":   products,
		"created_at": o.CreatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}
