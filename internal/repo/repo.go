package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Skotchmaster/localshop/internal/kvstore"
)

// StoreRepo reads and writes the JSON entries of one client store.
type StoreRepo struct {
	Store kvstore.Store
}

func New(store kvstore.Store) *StoreRepo {
	return &StoreRepo{Store: store}
}

func (r *StoreRepo) load(ctx context.Context, key string, dst any) (bool, error) {
	raw, ok, err := r.Store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	if !ok || raw == "" || raw == "null" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (r *StoreRepo) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.Store.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (r *StoreRepo) exists(ctx context.Context, key string) (bool, error) {
	_, ok, err := r.Store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	return ok, nil
}
