package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/abhiburugu8586/StudentMart/internal/handlers"
	authmw "github.com/abhiburugu8586/StudentMart/internal/middleware/auth"
	"github.com/abhiburugu8586/StudentMart/internal/service"
)

type Deps struct {
	DB             *gorm.DB
	AuthService    *service.AuthService
	AuthHandler    *handlers.AuthHandler
	ProductHandler *handlers.ProductHandler
	CartHandler    *handlers.CartHandler
	OrderHandler   *handlers.OrderHandler
	SearchHandler  *handlers.SearchHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	v1 := e.Group("/api/v1")

	v1.POST("/register", d.AuthHandler.Register)
	v1.POST("/login", d.AuthHandler.Login)
	v1.POST("/refresh", d.AuthHandler.Refresh)
	v1.POST("/logout", d.AuthHandler.Logout)
	v1.GET("/search", d.SearchHandler.Search)

	v1.GET("/products", d.ProductHandler.GetProducts)
	v1.GET("/products/:id", d.ProductHandler.GetProduct)
	v1.GET("/categories", d.ProductHandler.GetCategories)

	user := v1.Group("", authmw.RequireUser(d.AuthService))

	user.POST("/products", d.ProductHandler.CreateProduct)
	user.PATCH("/products/:id", d.ProductHandler.UpdateProduct)
	user.DELETE("/products/:id", d.ProductHandler.DeleteProduct)

	user.GET("/cart", d.CartHandler.GetCart)
	user.POST("/cart", d.CartHandler.AddToCart)
	user.PATCH("/cart/:id", d.CartHandler.UpdateQuantity)
	user.DELETE("/cart", d.CartHandler.ClearCart)
	user.POST("/checkout", d.CartHandler.Checkout)

	user.GET("/orders", d.OrderHandler.ListOrders)
	user.GET("/orders/:id", d.OrderHandler.GetOrder)

	admin := v1.Group("/admin", authmw.RequireUser(d.AuthService), authmw.AdminOnly)

	admin.POST("/categories", d.ProductHandler.CreateCategory)
}
