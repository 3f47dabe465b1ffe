package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	ProductHandler    *ProductHandler
	ShopHandler       *ShopHandler
	CartHandler       *CartHandler
	CheckoutHandler   *CheckoutHandler
	NewsletterHandler *NewsletterHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	v1 := e.Group("/api/v1")

	v1.GET("/products", d.ProductHandler.GetProducts)
	v1.GET("/products/featured", d.ProductHandler.GetFeatured)
	v1.GET("/products/:id", d.ProductHandler.GetProduct)
	v1.GET("/categories", d.ProductHandler.GetCategories)

	v1.GET("/shop", d.ShopHandler.Browse)

	cart := v1.Group("/cart")
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("/items", d.CartHandler.AddItem)
	cart.PATCH("/items/:key", d.CartHandler.UpdateQuantity)
	cart.DELETE("/items/:key", d.CartHandler.RemoveItem)
	cart.DELETE("", d.CartHandler.ClearCart)
	cart.POST("/toggle", d.CartHandler.TogglePanel)
	cart.POST("/open", d.CartHandler.OpenPanel)
	cart.POST("/close", d.CartHandler.ClosePanel)

	co := v1.Group("/checkout")
	co.GET("", d.CheckoutHandler.GetState)
	co.POST("/information", d.CheckoutHandler.SubmitInformation)
	co.POST("/shipping", d.CheckoutHandler.SelectShipping)
	co.POST("/back", d.CheckoutHandler.Back)
	co.POST("/submit", d.CheckoutHandler.Submit)
	co.POST("/reset", d.CheckoutHandler.Reset)

	v1.POST("/newsletter", d.NewsletterHandler.Subscribe)
}
