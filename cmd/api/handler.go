package api

import (
	"github.com/gin-gonic/gin"

	authdelivery "plek-backend/internal/auth/delivery"
	authusecase "plek-backend/internal/auth/usecase"
	notifdelivery "plek-backend/internal/notification/delivery"
	notifusecase "plek-backend/internal/notification/usecase"
	passdelivery "plek-backend/internal/password/delivery"
	passusecase "plek-backend/internal/password/usecase"
	userdelivery "plek-backend/internal/user/delivery"
	userusecase "plek-backend/internal/user/usecase"
)

type Handler struct {
	verifier        authdelivery.TokenVerifier
	authHandler     *authdelivery.AuthHandler
	userHandler     *userdelivery.UserHandler
	notifHandler    *notifdelivery.NotificationHandler
	passwordHandler *passdelivery.PasswordHandler
}

func NewHandler(verifier authdelivery.TokenVerifier, authUc authusecase.AuthUsecase, userUc userusecase.UserUsecase, notifUc notifusecase.NotificationUsecase, passUc passusecase.PasswordUsecase) *Handler {
	return &Handler{
		verifier:        verifier,
		authHandler:     authdelivery.NewAuthHandler(authUc),
		userHandler:     userdelivery.NewUserHandler(userUc),
		notifHandler:    notifdelivery.NewNotificationHandler(notifUc),
		passwordHandler: passdelivery.NewPasswordHandler(passUc),
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h)

	return r.Run(addr)
}
