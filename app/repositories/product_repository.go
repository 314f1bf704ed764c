package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rahulkhanna/dukaan/app/models"
	"github.com/rahulkhanna/dukaan/pkg/store"
)

// ProductsCollection is the record store collection for products.
const ProductsCollection = "products"

// ProductRepository handles record store operations for Product.
type ProductRepository struct {
	store store.Store
}

func NewProductRepository(st store.Store) *ProductRepository {
	return &ProductRepository{store: st}
}

func (r *ProductRepository) All(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.store.FindAll(ctx, ProductsCollection, &products)
	return products, err
}

func (r *ProductRepository) Find(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	var product models.Product
	err := r.store.FindByID(ctx, ProductsCollection, id, &product)
	return product, err
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	product.ID = primitive.NewObjectID()
	return r.store.Insert(ctx, ProductsCollection, product)
}

func (r *ProductRepository) Replace(ctx context.Context, id primitive.ObjectID, product *models.Product) error {
	product.ID = id
	return r.store.Replace(ctx, ProductsCollection, id, product)
}

func (r *ProductRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return r.store.Delete(ctx, ProductsCollection, id)
}
