package service

import (
	"context"
	"time"

	"github.com/Skotchmaster/localshop/internal/events"
	"github.com/Skotchmaster/localshop/internal/hash"
	"github.com/Skotchmaster/localshop/internal/kvstore"
	"github.com/Skotchmaster/localshop/internal/logging"
	"github.com/Skotchmaster/localshop/internal/repo"
)

// Shop wires the three core services over one client store.
type Shop struct {
	Auth    *AuthService
	Catalog *CatalogService
	Cart    *CartService
}

type Options struct {
	Hasher    hash.Hasher
	Publisher events.Publisher
	Now       func() time.Time
}

func NewShop(store kvstore.Store, opts Options) *Shop {
	if opts.Hasher == nil {
		opts.Hasher = hash.Plain{}
	}
	if opts.Publisher == nil {
		opts.Publisher = events.Noop{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	r := repo.New(store)
	auth := &AuthService{Repo: r, Hasher: opts.Hasher, Publisher: opts.Publisher, Now: opts.Now}
	catalog := &CatalogService{Repo: r}
	return &Shop{
		Auth:    auth,
		Catalog: catalog,
		Cart:    &CartService{Repo: r, Auth: auth, Catalog: catalog, Publisher: opts.Publisher},
	}
}

// publish sends an event and only logs a failure.
func publish(ctx context.Context, p events.Publisher, topic, key string, event map[string]any) {
	if err := p.Publish(ctx, topic, key, event); err != nil {
		logging.FromContext(ctx).Error("publish_event_error", "topic", topic, "type", event["type"], "error", err)
	}
}
