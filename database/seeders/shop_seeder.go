package seeders

import (
	"context"
	"errors"

	"github.com/rahulkhanna/dukaan/app/models"
	"github.com/rahulkhanna/dukaan/app/repositories"
	"github.com/rahulkhanna/dukaan/app/serializers"
	"github.com/rahulkhanna/dukaan/pkg/store"
)

func init() {
	Register("shop", SeedShop)
}

// SeedShop inserts a couple of demo users and products. Username
// collisions on re-run are skipped; products are inserted as given.
func SeedShop(ctx context.Context, st store.Store) error {
	users := repositories.NewUserRepository(st)
	products := repositories.NewProductRepository(st)
	userSer := serializers.NewUserSerializer()

	demoUsers := []serializers.UserInput{
		{Username: "asha", Email: "asha@example.com", Password: "change-me-please"},
		{Username: "ravi", Email: "ravi@example.com", Password: "change-me-please"},
	}
	for _, in := range demoUsers {
		user, err := userSer.ToModel(in)
		if err != nil {
			return err
		}
		if err := users.Create(ctx, &user); err != nil {
			var dup *store.DuplicateKeyError
			if errors.As(err, &dup) {
				continue // already seeded
			}
			return err
		}
	}

	demoProducts := []models.Product{
		{Name: "Laptop", Description: "High-end gaming laptop", Price: 1999.99},
		{Name: "Mouse", Description: "Wireless mouse", Price: 24.50},
		{Name: "Keyboard", Description: "", Price: 79.00},
	}
	for i := range demoProducts {
		if err := products.Create(ctx, &demoProducts[i]); err != nil {
			return err
		}
	}

	return nil
}
