package httpserver

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"notification-client/internal/middleware"
)

const Api = "/api/v1"

func (srv *HTTPServer) mapHandlers() {
	srv.gin.Use(srv.mw.Recovery(), middleware.CORS(srv.cors), srv.mw.Locale())

	// Health check endpoints
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(promhttp.HandlerFor(srv.gatherer, promhttp.HandlerOpts{})))

	api := srv.gin.Group(Api)

	feed := api.Group("/feed")
	feed.GET("", srv.getFeed)
	feed.POST("/more", srv.loadMore)
	feed.PUT("/visibility", srv.setVisibility)
	feed.PATCH("/read", srv.readAlerts)

	toast := api.Group("/toast")
	toast.GET("", srv.getToast)
	toast.DELETE("/:id", srv.dismissToast)

	api.POST("/friend-requests/:requestId/:action", srv.respondFriendRequest)
}
