package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/localshop/internal/logging"
	"github.com/Skotchmaster/localshop/internal/service"
	"github.com/Skotchmaster/localshop/internal/transport"
)

type CartHandler struct {
	Responder
	Opts service.Options
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart_add")

	var req transport.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "error", err)
		return h.respond(c, http.StatusBadRequest, Response{Status: "error", Message: "invalid body"})
	}

	item, err := shopFrom(c, h.Opts).Cart.AddItem(ctx, req.ProductID)
	if err != nil {
		return h.fail(c, l, "add_to_cart_error", err, "Please login to add items to cart")
	}

	l.Info("add_to_cart_successful", "product_id", item.ID, "quantity", item.Quantity)
	return h.ok(c, http.StatusOK, "Added to cart!", item)
}

func (h *CartHandler) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart_get")

	items, err := shopFrom(c, h.Opts).Cart.Snapshot(ctx)
	if err != nil {
		return h.fail(c, l, "get_cart_error", err, "")
	}
	return c.JSON(http.StatusOK, Response{Status: "ok", Data: items})
}

// Count feeds the navbar badge.
func (h *CartHandler) Count(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart_count")

	n, err := shopFrom(c, h.Opts).Cart.TotalQuantity(ctx)
	if err != nil {
		return h.fail(c, l, "cart_count_error", err, "")
	}
	return c.JSON(http.StatusOK, Response{Status: "ok", Data: transport.CartCountResponse{Count: n}})
}
