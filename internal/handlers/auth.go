package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/localshop/internal/logging"
	"github.com/Skotchmaster/localshop/internal/service"
	"github.com/Skotchmaster/localshop/internal/transport"
)

type AuthHandler struct {
	Responder
	Opts service.Options
}

func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "error", err)
		return h.respond(c, http.StatusBadRequest, Response{Status: "error", Message: "invalid body"})
	}

	user, err := shopFrom(c, h.Opts).Auth.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		return h.fail(c, l, "register_error", err, "")
	}

	l.Info("register_successful", "user_id", user.ID)
	return h.ok(c, http.StatusCreated, "Registration successful! Please login.", transport.NewUserResponse(user))
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return h.respond(c, http.StatusBadRequest, Response{Status: "error", Message: "invalid body"})
	}

	user, err := shopFrom(c, h.Opts).Auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		return h.fail(c, l, "login_failed", err, "")
	}

	l.Info("login_successful", "user_id", user.ID)
	return h.ok(c, http.StatusOK, "", transport.NewUserResponse(user))
}

func (h *AuthHandler) LogOut(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_logout")

	if err := shopFrom(c, h.Opts).Auth.Logout(ctx); err != nil {
		return h.fail(c, l, "logout_failed", err, "")
	}

	l.Info("successful_logout")
	return h.respond(c, http.StatusOK, Response{Status: "ok", Redirect: PageLogin})
}

// Session reports the logged-in user; data is null when there is none.
func (h *AuthHandler) Session(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "session_current")

	user, err := shopFrom(c, h.Opts).Auth.CurrentSession(ctx)
	if err != nil {
		return h.fail(c, l, "session_error", err, "")
	}
	return c.JSON(http.StatusOK, Response{Status: "ok", Data: transport.NewUserResponse(user)})
}

func (h *AuthHandler) RequireSession(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "session_require")

	user, err := shopFrom(c, h.Opts).Auth.RequireSession(ctx)
	if err != nil {
		return h.fail(c, l, "require_session_failed", err, "Please login")
	}
	return h.ok(c, http.StatusOK, "", transport.NewUserResponse(user))
}

func (h *AuthHandler) RequireAdmin(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "session_admin")

	user, err := shopFrom(c, h.Opts).Auth.RequireAdmin(ctx)
	if err != nil {
		return h.fail(c, l, "require_admin_failed", err, "Access denied. Admins only.")
	}
	return h.ok(c, http.StatusOK, "", transport.NewUserResponse(user))
}
