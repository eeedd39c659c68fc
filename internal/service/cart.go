package service

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/localshop/internal/events"
	"github.com/Skotchmaster/localshop/internal/logging"
	"github.com/Skotchmaster/localshop/internal/models"
	"github.com/Skotchmaster/localshop/internal/repo"
)

type CartService struct {
	Repo      *repo.StoreRepo
	Auth      *AuthService
	Catalog   *CatalogService
	Publisher events.Publisher
}

// AddItem puts one unit of productID into the cart. A product already in the
// cart gets its quantity bumped; a new one is snapshotted with quantity 1.
// Nothing is written unless a session is active and the product exists.
func (s *CartService) AddItem(ctx context.Context, productID int64) (*models.CartItem, error) {
	l := logging.FromContext(ctx).With("svc", "cart.add", "product_id", productID)

	user, err := s.Auth.RequireSession(ctx)
	if err != nil {
		l.Warn("add_to_cart_error", "error", err)
		return nil, err
	}

	product, err := s.Catalog.FindByID(ctx, productID)
	if err != nil {
		l.Error("add_to_cart_error", "reason", "cannot read products", "error", err)
		return nil, err
	}
	if product == nil {
		l.Warn("add_to_cart_error", "reason", "product not found")
		return nil, fmt.Errorf("product %d: %w", productID, ErrProductNotFound)
	}

	items, err := s.Repo.Cart(ctx)
	if err != nil {
		l.Error("add_to_cart_error", "reason", "cannot read cart", "error", err)
		return nil, err
	}

	idx := -1
	for i := range items {
		if items[i].ID == productID {
			idx = i
			break
		}
	}
	if idx >= 0 {
		items[idx].Quantity++
	} else {
		items = append(items, models.CartItem{Product: *product, Quantity: 1})
		idx = len(items) - 1
	}

	if err := s.Repo.SaveCart(ctx, items); err != nil {
		l.Error("add_to_cart_error", "reason", "cannot save cart", "error", err)
		return nil, err
	}

	item := items[idx]
	publish(ctx, s.Publisher, events.TopicCart, fmt.Sprint(user.ID), map[string]any{
		"type":      "cart_item_added",
		"userID":    user.ID,
		"productID": productID,
		"quantity":  item.Quantity,
	})
	l.Info("item added successfully to cart", "quantity", item.Quantity)
	return &item, nil
}

func (s *CartService) TotalQuantity(ctx context.Context) (int, error) {
	items, err := s.Repo.Cart(ctx)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, it := range items {
		total += it.Quantity
	}
	return total, nil
}

// Snapshot returns the cart lines in insertion order.
func (s *CartService) Snapshot(ctx context.Context) ([]models.CartItem, error) {
	return s.Repo.Cart(ctx)
}
