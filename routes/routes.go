package routes

import (
	"github.com/Bapiggott/BigBoy-sub001/handlers"
	"github.com/Bapiggott/BigBoy-sub001/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Auth ───────────────────────────────────────────────────────
	auth := r.Group("/auth")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
		auth.POST("/google", handlers.GoogleLogin)
		auth.GET("/me", middleware.AuthRequired(), handlers.GetProfile)
	}

	// ── Public catalog & locations ─────────────────────────────────
	r.GET("/menu", handlers.GetMenu)
	r.GET("/menu/categories", handlers.ListCategories)
	r.GET("/menu/items/:id", handlers.GetMenuItem)
	r.GET("/locations", handlers.ListLocations)
	r.GET("/locations/:id", handlers.GetLocation)
	r.GET("/order-lifecycle", handlers.GetOrderLifecycle)

	// ── Orders (guest orders allowed on placement/lookup/cancel) ───
	orders := r.Group("/orders")
	{
		orders.POST("", middleware.OptionalAuth(), handlers.PlaceOrder)
		orders.GET("", middleware.AuthRequired(), handlers.GetMyOrders)
		orders.GET("/:id", middleware.OptionalAuth(), handlers.GetOrder)
		orders.PUT("/:id/cancel", middleware.OptionalAuth(), handlers.CancelOrder)
	}

	// ── Rewards ────────────────────────────────────────────────────
	rewards := r.Group("/rewards")
	{
		rewards.GET("", middleware.OptionalAuth(), handlers.ListRewards)
		rewards.POST("/:id/redeem", middleware.AuthRequired(), handlers.RedeemReward)
		rewards.GET("/my", middleware.AuthRequired(), handlers.GetMyRewards)
	}

	// ── Account resources ──────────────────────────────────────────
	account := r.Group("/")
	account.Use(middleware.AuthRequired())
	{
		account.GET("/favorites", handlers.ListFavorites)
		account.POST("/favorites", handlers.AddFavorite)
		account.DELETE("/favorites/:itemId", handlers.RemoveFavorite)

		account.GET("/addresses", handlers.ListAddresses)
		account.POST("/addresses", handlers.AddAddress)
		account.PUT("/addresses/:id", handlers.UpdateAddress)
		account.DELETE("/addresses/:id", handlers.RemoveAddress)

		account.GET("/preferences", handlers.GetPreferences)
		account.PUT("/preferences", handlers.UpdatePreferences)
	}

	// ── Admin ──────────────────────────────────────────────────────
	admin := r.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.GET("/stats", handlers.AdminGetStats)
		admin.GET("/orders", handlers.AdminGetAllOrders)
		admin.PUT("/orders/:id/status", handlers.AdminSetOrderStatus)
		admin.GET("/users", handlers.AdminGetAllUsers)
		admin.POST("/users/:id/points", handlers.AdminAdjustPoints)
		admin.PUT("/users/:id/tier", handlers.AdminSetTier)
	}
}
