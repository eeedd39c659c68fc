package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/localshop/internal/logging"
	"github.com/Skotchmaster/localshop/internal/service"
	"github.com/Skotchmaster/localshop/internal/util"
)

type ProductHandler struct {
	Responder
	Opts service.Options
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product_list")

	products, err := shopFrom(c, h.Opts).Catalog.List(ctx)
	if err != nil {
		return h.fail(c, l, "list_products_error", err, "")
	}

	// Without ?page the whole catalog is returned, as the shop page expects.
	if c.QueryParam("page") != "" {
		page, _ := strconv.Atoi(c.QueryParam("page"))
		size, _ := strconv.Atoi(c.QueryParam("size"))
		products = util.Page(products, page, size)
	}
	return c.JSON(http.StatusOK, Response{Status: "ok", Data: products})
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product_get")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		l.Warn("get_product_error", "status", 400, "reason", "bad id", "error", err)
		return h.respond(c, http.StatusBadRequest, Response{Status: "error", Message: "invalid product id"})
	}

	p, err := shopFrom(c, h.Opts).Catalog.FindByID(ctx, id)
	if err != nil {
		return h.fail(c, l, "get_product_error", err, "")
	}
	if p == nil {
		return h.fail(c, l, "get_product_error", service.ErrProductNotFound, "")
	}
	return c.JSON(http.StatusOK, Response{Status: "ok", Data: p})
}
