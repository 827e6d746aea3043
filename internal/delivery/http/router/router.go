// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	UserHandler        *handler.UserHandler
	StaffHandler       *handler.StaffHandler
	ProductHandler     *handler.ProductHandler
	CartHandler        *handler.CartHandler
	OrderHandler       *handler.OrderHandler
	AssetHandler       *handler.AssetHandler
	IdentityMiddleware *middleware.IdentityMiddleware
	LoginRateLimiter   echo.MiddlewareFunc `name:"loginRateLimiter"`
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	userHandler      *handler.UserHandler
	staffHandler     *handler.StaffHandler
	productHandler   *handler.ProductHandler
	cartHandler      *handler.CartHandler
	orderHandler     *handler.OrderHandler
	assetHandler     *handler.AssetHandler
	identity         *middleware.IdentityMiddleware
	loginRateLimiter echo.MiddlewareFunc
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		userHandler:      params.UserHandler,
		staffHandler:     params.StaffHandler,
		productHandler:   params.ProductHandler,
		cartHandler:      params.CartHandler,
		orderHandler:     params.OrderHandler,
		assetHandler:     params.AssetHandler,
		identity:         params.IdentityMiddleware,
		loginRateLimiter: params.LoginRateLimiter,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Static segments such as /orders/all and /staff/stats win over :id params in echo's router.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/assets/images/*", r.assetHandler.Image)

	api := e.Group("/api")

	// Auth routes
	api.POST("/users", r.authHandler.SignUp)
	api.POST("/login", r.authHandler.Login, r.loginRateLimiter)
	api.POST("/staff/login", r.authHandler.StaffLogin, r.loginRateLimiter)

	// User profile, no marker enforced
	api.GET("/users/:userId", r.userHandler.GetProfile)
	api.PUT("/users/:userId", r.userHandler.UpdateProfile)

	// Catalog
	api.GET("/products", r.productHandler.List)
	api.GET("/products/:productId", r.productHandler.Get)
	api.POST("/products", r.productHandler.Create, r.identity.RequireStaff)
	api.GET("/search", r.productHandler.Search)

	// Cart
	api.GET("/cart", r.cartHandler.Get, r.identity.RequireUser)
	api.POST("/cart", r.cartHandler.Add)
	api.DELETE("/cart", r.cartHandler.Clear, r.identity.RequireUser)
	api.PUT("/cart-items/:productId", r.cartHandler.Update)
	api.DELETE("/cart-items/:productId", r.cartHandler.Remove)

	// Orders
	api.POST("/checkout", r.orderHandler.Checkout)
	api.GET("/orders", r.orderHandler.ListForUser, r.identity.RequireUser)
	api.GET("/orders/all", r.orderHandler.ListAll, r.identity.RequireStaff)
	api.GET("/orders/:orderId", r.orderHandler.Get, r.identity.RequireUserOrStaff)
	api.GET("/orders/:orderId/qrcode", r.orderHandler.ReceiptQRCode, r.identity.RequireUserOrStaff)
	api.PUT("/orders/:orderId", r.orderHandler.UpdateStatus, r.identity.RequireStaff)

	// Staff management. RequireStaff sits on each route so unmatched /staff paths still 404.
	staffGroup := api.Group("/staff")
	{
		staffGroup.GET("", r.staffHandler.List, r.identity.RequireStaff)
		staffGroup.POST("", r.staffHandler.Create, r.identity.RequireStaff)
		staffGroup.GET("/stats", r.staffHandler.Stats, r.identity.RequireStaff)
		staffGroup.GET("/:staffId", r.staffHandler.Get, r.identity.RequireStaff)
		staffGroup.PUT("/:staffId", r.staffHandler.Update, r.identity.RequireStaff)
		staffGroup.DELETE("/:staffId", r.staffHandler.Delete, r.identity.RequireStaff)
	}
}
