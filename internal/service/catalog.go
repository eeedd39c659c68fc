package service

import (
	"context"

	"github.com/Skotchmaster/localshop/internal/models"
	"github.com/Skotchmaster/localshop/internal/repo"
)

type CatalogService struct {
	Repo *repo.StoreRepo
}

// FindByID returns nil when no product has id.
func (s *CatalogService) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	products, err := s.Repo.Products(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, nil
}

func (s *CatalogService) List(ctx context.Context) ([]models.Product, error) {
	return s.Repo.Products(ctx)
}
