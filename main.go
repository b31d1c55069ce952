package main

import (
	"context"
	"log"

	api "plek-backend/cmd/api"
	authUsecase "plek-backend/internal/auth/usecase"
	notifRepo "plek-backend/internal/notification/repository"
	notifUsecase "plek-backend/internal/notification/usecase"
	passRepo "plek-backend/internal/password/repository"
	passUsecase "plek-backend/internal/password/usecase"
	userRepo "plek-backend/internal/user/repository"
	userUsecase "plek-backend/internal/user/usecase"
	"plek-backend/pkg/blob"
	"plek-backend/pkg/config"
	"plek-backend/pkg/fcm"
	"plek-backend/pkg/firebase"
	"plek-backend/pkg/identity"
	"plek-backend/pkg/mailer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	ctx := context.Background()

	// Initialize platform clients
	clients, err := firebase.NewClients(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to initialize Firebase clients:", err)
	}
	defer clients.Firestore.Close()

	// Blob storage is optional; the photo endpoints fail per-request
	// without it.
	var uploader userUsecase.ImageUploader
	if cfg.FirebaseStorageBucket != "" {
		bucket, err := firebase.NewStorageBucket(ctx, cfg)
		if err != nil {
			log.Printf("[WARN] Failed to initialize storage bucket (image uploads disabled): %v", err)
		} else {
			uploader = blob.NewService(bucket)
		}
	} else {
		log.Printf("[WARN] FIREBASE_STORAGE_BUCKET not configured, image uploads disabled")
	}

	// Initialize gateways
	identityService := identity.NewService(clients.Auth, cfg.FirebaseWebAPIKey)
	fcmClient := fcm.NewClient(clients.Messaging)
	mailService := mailer.NewService(cfg)

	// Initialize repositories (dependency injection)
	userRepository := userRepo.NewUserRepository(clients.Firestore)
	notifRepository := notifRepo.NewNotificationRepository(clients.Database)
	tokenRepository := notifRepo.NewDeviceTokenRepository(clients.Firestore)
	resetRepository := passRepo.NewPasswordResetRepository(clients.Firestore)

	// Initialize use cases (dependency injection)
	userUc := userUsecase.NewUserUsecase(userRepository, identityService, uploader)
	notifUc := notifUsecase.NewNotificationUsecase(notifRepository, tokenRepository, fcmClient, mailService)
	authUc := authUsecase.NewAuthUsecase(identityService, userUc, notifUc)
	passUc := passUsecase.NewPasswordUsecase(resetRepository, identityService, mailService, notifUc, userUc, cfg.ResetBaseURL, cfg.ResetTokenExpiry)

	// Initialize HTTP handler
	handler := api.NewHandler(identityService, authUc, userUc, notifUc, passUc)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
