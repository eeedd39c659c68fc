package kvstore

import "context"

// Store is a durable mapping from string keys to serialized values.
// A missing key is reported through ok, never through err.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

type Prefixed struct {
	Store  Store
	Prefix string
}

// WithPrefix returns a view of s where every key lives under prefix.
func WithPrefix(s Store, prefix string) *Prefixed {
	return &Prefixed{Store: s, Prefix: prefix}
}

func (p *Prefixed) Get(ctx context.Context, key string) (string, bool, error) {
	return p.Store.Get(ctx, p.Prefix+key)
}

func (p *Prefixed) Set(ctx context.Context, key, value string) error {
	return p.Store.Set(ctx, p.Prefix+key, value)
}

func (p *Prefixed) Remove(ctx context.Context, key string) error {
	return p.Store.Remove(ctx, p.Prefix+key)
}
