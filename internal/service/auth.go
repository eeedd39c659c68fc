package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Skotchmaster/localshop/internal/events"
	"github.com/Skotchmaster/localshop/internal/hash"
	"github.com/Skotchmaster/localshop/internal/logging"
	"github.com/Skotchmaster/localshop/internal/models"
	"github.com/Skotchmaster/localshop/internal/repo"
)

// AuthService owns the user directory and the client's session.
type AuthService struct {
	Repo      *repo.StoreRepo
	Hasher    hash.Hasher
	Publisher events.Publisher
	Now       func() time.Time
}

// nextID derives an id from the clock, bumped past every existing id.
func (s *AuthService) nextID(users []models.User) int64 {
	id := s.Now().UnixMilli()
	for _, u := range users {
		if u.ID >= id {
			id = u.ID + 1
		}
	}
	return id
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("name, email and password are required: %w", ErrValidation)
	}

	users, err := s.Repo.Users(ctx)
	if err != nil {
		l.Error("register_error", "reason", "cannot read users", "error", err)
		return nil, err
	}

	for _, u := range users {
		if u.Email == email {
			l.Warn("register_error", "reason", "email already exists")
			return nil, ErrDuplicateEmail
		}
	}

	stored, err := s.Hasher.Hash(password)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := models.User{
		ID:       s.nextID(users),
		Name:     name,
		Email:    email,
		Password: stored,
		IsAdmin:  false,
	}
	users = append(users, user)

	if err := s.Repo.SaveUsers(ctx, users); err != nil {
		l.Error("register_error", "reason", "cannot save users", "error", err)
		return nil, err
	}

	publish(ctx, s.Publisher, events.TopicUser, fmt.Sprint(user.ID), map[string]any{
		"type":   "user_registered",
		"userID": user.ID,
	})
	l.Info("register_success", "user_id", user.ID)
	return &user, nil
}

// Login stores a snapshot of the matching user as the session. Later
// changes to the directory are not reflected until the next login.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	users, err := s.Repo.Users(ctx)
	if err != nil {
		l.Error("login_error", "reason", "cannot read users", "error", err)
		return nil, err
	}

	for _, u := range users {
		if u.Email != email || !s.Hasher.Compare(u.Password, password) {
			continue
		}
		if err := s.Repo.SaveSession(ctx, u); err != nil {
			l.Error("login_error", "reason", "cannot save session", "error", err)
			return nil, err
		}
		publish(ctx, s.Publisher, events.TopicUser, fmt.Sprint(u.ID), map[string]any{
			"type":   "user_logged_in",
			"userID": u.ID,
		})
		l.Info("login_success", "user_id", u.ID)
		user := u
		return &user, nil
	}

	l.Warn("login_failed", "reason", "invalid email or password")
	return nil, ErrInvalidCredentials
}

func (s *AuthService) Logout(ctx context.Context) error {
	current, _ := s.Repo.Session(ctx)
	if err := s.Repo.DeleteSession(ctx); err != nil {
		logging.FromContext(ctx).Error("logout_error", "svc", "auth.logout", "error", err)
		return err
	}
	if current != nil {
		publish(ctx, s.Publisher, events.TopicUser, fmt.Sprint(current.ID), map[string]any{
			"type":   "user_logged_out",
			"userID": current.ID,
		})
	}
	return nil
}

// CurrentSession returns nil when nobody is logged in.
func (s *AuthService) CurrentSession(ctx context.Context) (*models.User, error) {
	return s.Repo.Session(ctx)
}

func (s *AuthService) RequireSession(ctx context.Context) (*models.User, error) {
	u, err := s.CurrentSession(ctx)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNoSession
	}
	return u, nil
}

func (s *AuthService) RequireAdmin(ctx context.Context) (*models.User, error) {
	u, err := s.RequireSession(ctx)
	if err != nil {
		return nil, err
	}
	if !u.IsAdmin {
		return nil, ErrNotAdmin
	}
	return u, nil
}
