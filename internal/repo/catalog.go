package repo

import (
	"context"

	"github.com/Skotchmaster/localshop/internal/models"
)

func (r *StoreRepo) Products(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	if _, err := r.load(ctx, models.ProductsKey, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *StoreRepo) SaveProducts(ctx context.Context, products []models.Product) error {
	if products == nil {
		products = []models.Product{}
	}
	return r.save(ctx, models.ProductsKey, products)
}
