package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/localshop/internal/events"
	"github.com/Skotchmaster/localshop/internal/hash"
	"github.com/Skotchmaster/localshop/internal/kvstore"
	"github.com/Skotchmaster/localshop/internal/repo"
)

type testEnv struct {
	Store  *kvstore.Memory
	Shop   *Shop
	Events *events.Recorder
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := kvstore.NewMemory()
	rec := &events.Recorder{}
	clock := time.UnixMilli(1_700_000_000_000)
	shop := NewShop(store, Options{
		Hasher:    hash.Plain{},
		Publisher: rec,
		Now:       func() time.Time { return clock },
	})
	require.NoError(t, repo.New(store).Seed(context.Background(), hash.Plain{}))
	return &testEnv{Store: store, Shop: shop, Events: rec}
}

func (env *testEnv) raw(t *testing.T, key string) (string, bool) {
	t.Helper()
	v, ok, err := env.Store.Get(context.Background(), key)
	require.NoError(t, err)
	return v, ok
}

type failingPublisher struct{}

func (failingPublisher) Publish(context.Context, string, string, map[string]any) error {
	return errors.New("broker down")
}
func (failingPublisher) Close() error { return nil }
