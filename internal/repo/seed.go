package repo

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/localshop/internal/hash"
	"github.com/Skotchmaster/localshop/internal/models"
)

func DefaultUsers() []models.User {
	return []models.User{
		{ID: 1, Name: "John Doe", Email: "john@gmail.com", Password: "123456", IsAdmin: false},
		{ID: 2, Name: "Admin", Email: "admin@gmail.com", Password: "admin123", IsAdmin: true},
	}
}

func DefaultProducts() []models.Product {
	return []models.Product{
		{
			ID:          1,
			Name:        "Galaxy S25 Ultra",
			Price:       129999,
			Description: "The latest AI-powered flagship with titanium frame and Snapdragon 8 Gen 4.",
			Image:       "https://images.samsung.com/is/image/samsung/p6pim/in/2401/gallery/in-galaxy-s24-s928-sm-s928bztqins-539573349?$650_519_PNG$",
		},
	}
}

// Seed writes the default users, catalog and an empty cart for every entry
// that is absent. Existing entries are never touched.
func (r *StoreRepo) Seed(ctx context.Context, hasher hash.Hasher) error {
	ok, err := r.exists(ctx, models.UsersKey)
	if err != nil {
		return err
	}
	if !ok {
		users := DefaultUsers()
		for i := range users {
			stored, err := hasher.Hash(users[i].Password)
			if err != nil {
				return fmt.Errorf("hash seed password: %w", err)
			}
			users[i].Password = stored
		}
		if err := r.SaveUsers(ctx, users); err != nil {
			return err
		}
	}

	ok, err = r.exists(ctx, models.ProductsKey)
	if err != nil {
		return err
	}
	if !ok {
		if err := r.SaveProducts(ctx, DefaultProducts()); err != nil {
			return err
		}
	}

	ok, err = r.exists(ctx, models.CartKey)
	if err != nil {
		return err
	}
	if !ok {
		if err := r.SaveCart(ctx, nil); err != nil {
			return err
		}
	}
	return nil
}
