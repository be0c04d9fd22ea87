package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/BradleyLewis08/uniform-store/internal/handler"
	"github.com/BradleyLewis08/uniform-store/internal/middleware"
	"github.com/BradleyLewis08/uniform-store/internal/model"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance. Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth wires the account endpoints. Registration and login are
// public; logout and the profile endpoint require a valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	e.GET("/register", a.RegisterForm)
	e.POST("/register", a.Register)
	e.GET("/login", a.LoginForm)
	e.POST("/login", a.Login)
	e.POST("/refresh", a.Refresh)

	auth := e.Group("")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole(model.RoleCustomer, model.RoleAdmin))
	// The original site exposed logout as a link, hence GET alongside POST.
	auth.GET("/logout", a.Logout)
	auth.POST("/logout", a.Logout)
	auth.GET("/me", a.Me)
}

// RegisterShop wires the authenticated customer surface: catalog
// browsing, search, ordering and the completion action. Both roles may
// browse; the completion endpoint branches on role internally via the
// workflow. The catalog list sits behind the response cache and the
// order endpoints behind the rate limiter; both middlewares degrade to
// pass-throughs without Redis.
func RegisterShop(e *echo.Echo, cat *handler.CatalogHandler, ord *handler.OrderHandler, jwtSecret string, cacheMW, limitMW echo.MiddlewareFunc) {
	g := e.Group("")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleCustomer, model.RoleAdmin))

	// /display is identical for every user and safe to cache.
	// /display/:item is NOT cached: it records the caller's selection.
	g.GET("/display", cat.Display, cacheMW)
	g.GET("/display/:item", cat.DisplayItem)
	g.GET("/search", cat.Search)
	g.POST("/search", cat.Search)

	g.GET("/order", ord.ShowSelection)
	g.POST("/order", ord.PlaceOrder, limitMW)
	g.GET("/orders", ord.MyOrders)

	g.GET("/complete/:order", ord.Complete)
	g.POST("/complete/:order", ord.Complete)
}

// RegisterAdmin wires the admin-only management surface behind the admin
// role gate.
func RegisterAdmin(e *echo.Echo, adm *handler.AdminHandler, jwtSecret string) {
	g := e.Group("/admin")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleAdmin))

	g.GET("", adm.Dashboard)
	g.GET("/orders", adm.AllOrders)
	g.GET("/orders/:id", adm.GetOrder)
	g.GET("/products", adm.Products)
	g.POST("/products", adm.AddProduct)
	g.GET("/stocks/:item", adm.StockForm)
	g.POST("/stocks/:item", adm.Restock)
}
