package repo

import (
	"context"

	"github.com/Skotchmaster/localshop/internal/models"
)

func (r *StoreRepo) Cart(ctx context.Context) ([]models.CartItem, error) {
	items := []models.CartItem{}
	if _, err := r.load(ctx, models.CartKey, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *StoreRepo) SaveCart(ctx context.Context, items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}
	return r.save(ctx, models.CartKey, items)
}
