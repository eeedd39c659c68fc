package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/localshop/internal/notify"
	"github.com/Skotchmaster/localshop/internal/service"
)

const (
	PageLogin = "login.html"
	PageIndex = "index.html"

	redirectDelay = time.Second
)

type Response struct {
	Status          string `json:"status"`
	Message         string `json:"message,omitempty"`
	DisplayMS       int64  `json:"display_ms,omitempty"`
	Redirect        string `json:"redirect,omitempty"`
	RedirectAfterMS int64  `json:"redirect_after_ms,omitempty"`
	Data            any    `json:"data,omitempty"`
}

type failure struct {
	Code     int
	Message  string
	Redirect string
}

// mapError turns a core failure into what the page shows. noSessionMsg lets
// each route word the login prompt its own way.
func mapError(err error, noSessionMsg string) failure {
	switch {
	case errors.Is(err, service.ErrValidation):
		return failure{Code: http.StatusBadRequest, Message: "Please fill in all fields"}
	case errors.Is(err, service.ErrDuplicateEmail):
		return failure{Code: http.StatusConflict, Message: "Email already exists!"}
	case errors.Is(err, service.ErrInvalidCredentials):
		return failure{Code: http.StatusUnauthorized, Message: "Invalid email or password"}
	case errors.Is(err, service.ErrNoSession):
		return failure{Code: http.StatusUnauthorized, Message: noSessionMsg, Redirect: PageLogin}
	case errors.Is(err, service.ErrNotAdmin):
		return failure{Code: http.StatusForbidden, Message: "Access denied. Admins only.", Redirect: PageIndex}
	case errors.Is(err, service.ErrProductNotFound):
		return failure{Code: http.StatusNotFound, Message: "Product not found"}
	default:
		return failure{Code: http.StatusInternalServerError, Message: "Something went wrong"}
	}
}

// Responder writes the JSON envelope and mirrors every message to the
// notification sink.
type Responder struct {
	Sink notify.Sink
}

func (r *Responder) respond(c echo.Context, code int, resp Response) error {
	if resp.Message != "" {
		m := notify.New(resp.Message)
		resp.DisplayMS = m.Duration.Milliseconds()
		r.Sink.Notify(c.Request().Context(), m)
	}
	return c.JSON(code, resp)
}

func (r *Responder) ok(c echo.Context, code int, message string, data any) error {
	return r.respond(c, code, Response{Status: "ok", Message: message, Data: data})
}

func (r *Responder) fail(c echo.Context, l *slog.Logger, event string, err error, noSessionMsg string) error {
	f := mapError(err, noSessionMsg)
	if f.Code >= http.StatusInternalServerError {
		l.Error(event, "status", f.Code, "error", err)
	} else {
		l.Warn(event, "status", f.Code, "error", err)
	}
	resp := Response{Status: "error", Message: f.Message}
	if f.Redirect != "" {
		resp.Redirect = f.Redirect
		resp.RedirectAfterMS = redirectDelay.Milliseconds()
	}
	return r.respond(c, f.Code, resp)
}
