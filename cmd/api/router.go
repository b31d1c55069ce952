package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authdelivery "plek-backend/internal/auth/delivery"
)

// SetupRoutes registers every endpoint under the /v1 prefix. Auth
// endpoints and the reset flow are public; everything else sits behind
// the token gate.
func SetupRoutes(r *gin.Engine, h *Handler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	v1.Use(RequireJSON())

	gate := authdelivery.AuthMiddleware(h.verifier)

	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.authHandler.Login)
		auth.POST("/register", h.authHandler.Register)
		auth.POST("/token", h.authHandler.TokenLogin)
		auth.GET("/me", gate, h.authHandler.Me)
	}

	users := v1.Group("/users")
	users.Use(gate)
	{
		users.GET("", h.userHandler.GetUsers)
		users.POST("", h.userHandler.CreateUser)
		users.DELETE("", h.userHandler.DeleteUser)
		users.POST("/photo", h.userHandler.UpdatePhoto)
		users.GET("/:uid", h.userHandler.GetUser)
		users.PUT("/:uid", h.userHandler.UpdateUser)
		users.DELETE("/:uid", h.userHandler.DeleteUser)
		users.POST("/:uid/onboarding", h.userHandler.SetOnboarding)
	}

	notifications := v1.Group("/notifications")
	notifications.Use(gate)
	{
		notifications.GET("", h.notifHandler.GetNotifications)
		notifications.GET("/unread", h.notifHandler.GetUnreadCount)
		notifications.POST("/read-all", h.notifHandler.MarkAllAsRead)
		notifications.POST("/:id/read", h.notifHandler.MarkAsRead)
		notifications.DELETE("/:id", h.notifHandler.DeleteNotification)
	}

	devices := v1.Group("/devices")
	devices.Use(gate)
	{
		devices.POST("", h.notifHandler.RegisterDevice)
		devices.DELETE("/:token", h.notifHandler.UnregisterDevice)
	}

	password := v1.Group("/password")
	{
		password.POST("/reset-request", h.passwordHandler.RequestReset)
		password.POST("/reset", h.passwordHandler.ResetPassword)
		password.POST("/change", gate, h.passwordHandler.ChangePassword)
	}
}
