package repo

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/localshop/internal/models"
)

// Users returns the directory; an absent entry reads as empty.
func (r *StoreRepo) Users(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if _, err := r.load(ctx, models.UsersKey, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *StoreRepo) SaveUsers(ctx context.Context, users []models.User) error {
	if users == nil {
		users = []models.User{}
	}
	return r.save(ctx, models.UsersKey, users)
}

// Session returns the logged-in snapshot or nil.
func (r *StoreRepo) Session(ctx context.Context) (*models.User, error) {
	var u models.User
	ok, err := r.load(ctx, models.LoggedInUserKey, &u)
	if err != nil || !ok {
		return nil, err
	}
	return &u, nil
}

func (r *StoreRepo) SaveSession(ctx context.Context, u models.User) error {
	return r.save(ctx, models.LoggedInUserKey, u)
}

func (r *StoreRepo) DeleteSession(ctx context.Context) error {
	if err := r.Store.Remove(ctx, models.LoggedInUserKey); err != nil {
		return fmt.Errorf("remove %s: %w", models.LoggedInUserKey, err)
	}
	return nil
}
