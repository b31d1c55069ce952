package firebase

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/db"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"plek-backend/pkg/config"
)

// Clients bundles the platform service handles the application uses.
// Everything downstream of the request pipeline talks to one of these.
type Clients struct {
	Auth      *auth.Client
	Firestore *firestore.Client
	Database  *db.Client
	Messaging *messaging.Client
}

// NewClients initializes the Firebase Admin app and derives the service
// clients from it using the provided credentials file.
func NewClients(ctx context.Context, cfg *config.Config) (*Clients, error) {
	var opts []option.ClientOption
	if cfg.FirebaseCredentials != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.FirebaseCredentials))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.FirebaseProjectID,
		DatabaseURL:   cfg.FirebaseDatabaseURL,
		StorageBucket: cfg.FirebaseStorageBucket,
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get auth client: %w", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get firestore client: %w", err)
	}

	dbClient, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get realtime database client: %w", err)
	}

	msgClient, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &Clients{
		Auth:      authClient,
		Firestore: fsClient,
		Database:  dbClient,
		Messaging: msgClient,
	}, nil
}

// NewStorageBucket returns the blob bucket handle for profile images and
// user uploads. Kept separate from NewClients because tests exercise the
// pipeline without a bucket configured.
func NewStorageBucket(ctx context.Context, cfg *config.Config) (*StorageBucket, error) {
	var opts []option.ClientOption
	if cfg.FirebaseCredentials != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.FirebaseCredentials))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.FirebaseProjectID,
		StorageBucket: cfg.FirebaseStorageBucket,
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	storageClient, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get storage client: %w", err)
	}

	bucket, err := storageClient.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("failed to get default bucket: %w", err)
	}

	return &StorageBucket{Handle: bucket, Name: cfg.FirebaseStorageBucket}, nil
}
