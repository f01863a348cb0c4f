package server

import (
	handler "silent-auction/services/auction/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers the router mounts.
type Handlers struct {
	Session       *handler.SessionHandler
	Room          *handler.RoomHandler
	Bids          *handler.BidHandler
	Watchlist     *handler.WatchlistHandler
	Notifications *handler.NotificationsHandler
	Admin         *handler.AdminHandler
	Stream        *handler.StreamHandler
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(h Handlers) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	router.POST("/register", h.Session.RegisterHandler)
	router.GET("/session", h.Session.CurrentSessionHandler)
	router.POST("/logout", h.Session.LogoutHandler)

	items := router.Group("/items")
	{
		items.GET("", h.Room.ListItemsHandler)
		items.GET("/:item_id", h.Room.ItemDetailHandler)
		items.GET("/:item_id/suggest", h.Bids.SuggestBidHandler)
		items.POST("/:item_id/bids", h.Bids.ProposeBidHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("/:proposal_id/confirm", h.Bids.ConfirmBidHandler)
		bids.DELETE("/:proposal_id", h.Bids.CancelBidHandler)
	}

	watch := router.Group("/watchlist")
	{
		watch.GET("", h.Watchlist.ListWatchlistHandler)
		watch.DELETE("/:item_id", h.Watchlist.RemoveWatchlistHandler)
	}

	notices := router.Group("/notifications")
	{
		notices.GET("", h.Notifications.ListNotificationsHandler)
		notices.DELETE("/:id", h.Notifications.DismissNotificationHandler)
	}

	router.GET("/stream", h.Stream.LiveHandler)

	adminGroup := router.Group("/admin/items")
	{
		adminGroup.GET("", h.Admin.ListItemsHandler)
		adminGroup.POST("", h.Admin.CreateItemHandler)
		adminGroup.GET("/:item_id", h.Admin.GetItemHandler)
		adminGroup.PUT("/:item_id", h.Admin.UpdateItemHandler)
		adminGroup.DELETE("/:item_id", h.Admin.DeleteItemHandler)
	}

	return router
}
