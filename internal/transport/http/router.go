package httpserver

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/localshop/internal/handlers"
	"github.com/Skotchmaster/localshop/internal/middleware/client"
)

type Deps struct {
	Scope          *client.Scope
	AuthHandler    *handlers.AuthHandler
	ProductHandler *handlers.ProductHandler
	CartHandler    *handlers.CartHandler
	Ready          func(ctx context.Context) error
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error {
		if d.Ready != nil {
			if err := d.Ready(c.Request().Context()); err != nil {
				return c.NoContent(503)
			}
		}
		return c.NoContent(200)
	})

	api := e.Group("/api", d.Scope.Middleware)

	api.POST("/register", d.AuthHandler.Register)
	api.POST("/login", d.AuthHandler.Login)
	api.POST("/logout", d.AuthHandler.LogOut)

	session := api.Group("/session")

	session.GET("", d.AuthHandler.Session)
	session.GET("/require", d.AuthHandler.RequireSession)
	session.GET("/admin", d.AuthHandler.RequireAdmin)

	products := api.Group("/products")

	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)

	cart := api.Group("/cart")

	cart.GET("", d.CartHandler.GetCart)
	cart.GET("/count", d.CartHandler.Count)
	cart.POST("/items", d.CartHandler.AddToCart)
}
