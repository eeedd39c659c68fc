package client

import (
	"hash/fnv"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/localshop/internal/hash"
	"github.com/Skotchmaster/localshop/internal/kvstore"
	"github.com/Skotchmaster/localshop/internal/logging"
	"github.com/Skotchmaster/localshop/internal/repo"
	"github.com/Skotchmaster/localshop/internal/tokens"
)

const (
	CookieName = "clientToken"

	ctxClientID = "client_id"
	ctxStore    = "client_store"

	lockStripes = 64
)

// Scope gives every browser client its own namespace in a shared store.
// Requests of one client run one at a time; the core assumes a single writer.
type Scope struct {
	Store  kvstore.Store
	Secret []byte
	TTL    time.Duration
	Hasher hash.Hasher

	locks [lockStripes]sync.Mutex
}

func NewScope(store kvstore.Store, secret []byte, ttl time.Duration, hasher hash.Hasher) *Scope {
	if hasher == nil {
		hasher = hash.Plain{}
	}
	return &Scope{Store: store, Secret: secret, TTL: ttl, Hasher: hasher}
}

func Prefix(clientID string) string {
	return "client:" + clientID + ":"
}

func (s *Scope) lockFor(clientID string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(clientID))
	return &s.locks[h.Sum32()%lockStripes]
}

func (s *Scope) resolve(c echo.Context) (string, error) {
	if ck, err := c.Cookie(CookieName); err == nil && ck.Value != "" {
		if claims, err := tokens.ClientClaimsFromToken(ck.Value, s.Secret); err == nil {
			return claims.Subject, nil
		}
	}

	id := tokens.NewClientID()
	exp := time.Now().Add(s.TTL)
	tok, err := tokens.CreateClientToken(id, exp, s.Secret)
	if err != nil {
		return "", err
	}
	c.SetCookie(CreateCookie(CookieName, tok, "/", exp))
	return id, nil
}

func (s *Scope) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		clientID, err := s.resolve(c)
		if err != nil {
			logging.FromContext(ctx).Error("client_scope_error", "reason", "cannot issue client token", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
		}

		l := logging.FromContext(ctx).With("client_id", clientID)
		ctx = logging.IntoContext(ctx, l)
		c.SetRequest(c.Request().WithContext(ctx))

		lock := s.lockFor(clientID)
		lock.Lock()
		defer lock.Unlock()

		store := kvstore.WithPrefix(s.Store, Prefix(clientID))
		if err := repo.New(store).Seed(ctx, s.Hasher); err != nil {
			l.Error("client_scope_error", "reason", "cannot seed client store", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
		}

		c.Set(ctxClientID, clientID)
		c.Set(ctxStore, store)
		return next(c)
	}
}

func ClientID(c echo.Context) string {
	id, _ := c.Get(ctxClientID).(string)
	return id
}

// StoreFrom returns the client's namespaced store set by Middleware.
func StoreFrom(c echo.Context) kvstore.Store {
	s, _ := c.Get(ctxStore).(kvstore.Store)
	return s
}

func CreateCookie(name, value, path string, exp time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Expires:  exp,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}
