// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"imprisio/internal/delivery/http/middleware"
	"imprisio/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	ProfileHandler      *handler.ProfileHandler
	AddressHandler      *handler.AddressHandler
	OrderHandler        *handler.OrderHandler
	CatalogHandler      *handler.CatalogHandler
	PromotionHandler    *handler.PromotionHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware

	e.GET("/health", handler.HealthCheck)

	// Session and registration.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/client", r.params.AccountHandler.RegisterClient)
		authGroup.POST("/register/printer", r.params.AccountHandler.RegisterPrinter)
		authGroup.POST("/login", r.params.AccountHandler.Login)
		authGroup.POST("/refresh", r.params.AccountHandler.Refresh)
		authGroup.POST("/logout", r.params.AccountHandler.Logout)
		authGroup.GET("/me", r.params.AccountHandler.Me, auth.Authenticate)
	}

	// Public catalog: shop directory, categories, promotions per shop.
	e.GET("/printers", r.params.CatalogHandler.ListPrinters)
	e.GET("/printers/:id", r.params.CatalogHandler.GetPrinter)
	e.GET("/printers/:id/promotions", r.params.PromotionHandler.ListByPrinter)
	e.GET("/categories", r.params.CatalogHandler.ListCategories)
	e.GET("/categories/:id/services", r.params.CatalogHandler.ListServicesByCategory)

	// Profile of the authenticated account.
	profileGroup := e.Group("/profile", auth.Authenticate)
	{
		profileGroup.GET("", r.params.ProfileHandler.GetProfile)
		profileGroup.PUT("", r.params.ProfileHandler.UpdateProfile)
		profileGroup.POST("/avatar", r.params.ProfileHandler.UploadAvatar)
		profileGroup.PUT("/shop", r.params.ProfileHandler.UpdateShop)
		profileGroup.POST("/shop/images/:kind", r.params.ProfileHandler.UploadShopImage)
	}

	// Delivery addresses.
	addressGroup := e.Group("/addresses", auth.Authenticate)
	{
		addressGroup.GET("", r.params.AddressHandler.List)
		addressGroup.POST("", r.params.AddressHandler.Create)
		addressGroup.PUT("/:id", r.params.AddressHandler.Update)
		addressGroup.DELETE("/:id", r.params.AddressHandler.Delete)
	}

	// Orders. Reads are role-scoped inside the use case; the status mutation
	// additionally requires a print shop.
	orderGroup := e.Group("/orders", auth.Authenticate)
	{
		orderGroup.POST("", r.params.OrderHandler.Place)
		orderGroup.GET("", r.params.OrderHandler.List)
		orderGroup.GET("/:id", r.params.OrderHandler.Get)
		orderGroup.GET("/:id/qrcode", r.params.OrderHandler.PickupQRCode)
		orderGroup.PATCH("/:id/status", r.params.OrderHandler.UpdateStatus, auth.RequirePrinter)
	}

	// Printer-side catalog and promotion management.
	myGroup := e.Group("/my", auth.Authenticate, auth.RequirePrinter)
	{
		myGroup.GET("/services", r.params.CatalogHandler.ListOwnServices)
		myGroup.POST("/services", r.params.CatalogHandler.AddService)
		myGroup.PUT("/services/:id", r.params.CatalogHandler.UpdateService)
		myGroup.DELETE("/services/:id", r.params.CatalogHandler.DeleteService)
		myGroup.POST("/services/:id/image", r.params.CatalogHandler.UploadServiceImage)
		myGroup.GET("/promotions", r.params.PromotionHandler.ListOwn)
		myGroup.POST("/promotions", r.params.PromotionHandler.Create)
		myGroup.DELETE("/promotions/:id", r.params.PromotionHandler.Delete)
	}

	// In-app notifications.
	notificationGroup := e.Group("/notifications", auth.Authenticate)
	{
		notificationGroup.GET("", r.params.NotificationHandler.List)
		notificationGroup.POST("/:id/read", r.params.NotificationHandler.MarkAsRead)
		notificationGroup.POST("/read-all", r.params.NotificationHandler.MarkAllAsRead)
		notificationGroup.DELETE("/:id", r.params.NotificationHandler.Remove)
		notificationGroup.DELETE("", r.params.NotificationHandler.Clear)
	}
}
