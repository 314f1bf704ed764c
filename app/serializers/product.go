package serializers

import (
	"github.com/rahulkhanna/dukaan/app/models"
	"github.com/rahulkhanna/dukaan/pkg/resource"
)

// ProductInput is the write representation of a product. Price is a
// pointer so that an explicit 0 satisfies `required` while a missing
// key does not.
type ProductInput struct {
	Name        string   `json:"name"  validate:"required,max=255"`
	Description string   `json:"description" validate:"nullable,max=2000"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
}

// ProductSerializer maps products between wire and record form.
type ProductSerializer struct{}

func NewProductSerializer() *ProductSerializer { return &ProductSerializer{} }

func (s *ProductSerializer) ToModel(in ProductInput) models.Product {
	return models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
	}
}

func (s *ProductSerializer) ToArray(p models.Product) resource.Map {
	return resource.Map{
		"id":          p.ID.Hex(),
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
	}
}
