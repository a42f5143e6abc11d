package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/eststy/eststy/internal/middleware"
)

// RegisterRoutes mounts the storefront API on e.
func RegisterRoutes(e *echo.Echo, h *Handler, metrics *middleware.Metrics) {
	api := e.Group("/api/v1")

	// Catalog
	api.GET("/products", h.ListProducts)
	api.GET("/products/:id", h.GetProduct)
	api.GET("/sellers/:id", h.GetSeller)
	api.GET("/sellers/:id/products", h.ListSellerProducts)
	api.GET("/search/history", h.SearchHistory)
	api.DELETE("/search/history", h.ClearSearchHistory)
	api.GET("/recommendations", h.Recommendations)

	// Cart
	api.GET("/cart", h.GetCart)
	api.POST("/cart/items", h.AddToCart)
	api.PATCH("/cart/items/:id", h.UpdateCartItem)
	api.DELETE("/cart/items/:id", h.RemoveCartItem)
	api.DELETE("/cart", h.ClearCart)

	// Wishlist
	api.GET("/wishlist", h.GetWishlist)
	api.POST("/wishlist/:productID/toggle", h.ToggleWishlist)
	api.PATCH("/wishlist/:id", h.SetWishlistPriority)

	// Orders
	api.POST("/orders", h.PlaceOrder)
	api.GET("/orders", h.ListOrders)
	api.GET("/orders/:id", h.GetOrder)
	api.PATCH("/orders/:id/status", h.UpdateOrderStatus)
	api.POST("/orders/:id/cancel", h.CancelOrder)

	// Notifications
	api.GET("/notifications", h.ListNotifications)
	api.POST("/notifications/:id/read", h.MarkNotificationRead)
	api.POST("/notifications/read-all", h.MarkAllNotificationsRead)

	// Account
	api.POST("/auth/register", h.Register)
	api.POST("/auth/sign-in", h.SignIn)
	api.POST("/auth/sign-out", h.SignOut)
	api.GET("/me", h.CurrentUser)
	api.PATCH("/me", h.UpdateProfile)
	api.POST("/me/addresses", h.AddAddress)
	api.POST("/me/payment-methods", h.AddPaymentMethod)

	// Operational endpoints
	e.GET("/health", Health)
	if metrics != nil {
		e.GET("/metrics", metrics.Handler())
	}
}
