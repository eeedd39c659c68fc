package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/localshop/internal/middleware/client"
	"github.com/Skotchmaster/localshop/internal/service"
)

// shopFrom builds the core over the calling client's namespaced store.
func shopFrom(c echo.Context, opts service.Options) *service.Shop {
	return service.NewShop(client.StoreFrom(c), opts)
}
