package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	notifdomain "plek-backend/internal/notification/domain"
)

const deviceTokensCollection = "device_tokens"

// DeviceTokenRepository defines the interface for device token operations
type DeviceTokenRepository interface {
	Save(ctx context.Context, token *notifdomain.DeviceToken) error
	Get(ctx context.Context, token string) (*notifdomain.DeviceToken, error)
	GetByUserID(ctx context.Context, userID string) ([]*notifdomain.DeviceToken, error)
	Delete(ctx context.Context, token string) error
	DeleteByUserID(ctx context.Context, userID string) error
}

// deviceTokenRepository implements DeviceTokenRepository on the
// platform document store
type deviceTokenRepository struct {
	client *firestore.Client
}

// NewDeviceTokenRepository creates a new instance of deviceTokenRepository
func NewDeviceTokenRepository(client *firestore.Client) DeviceTokenRepository {
	return &deviceTokenRepository{
		client: client,
	}
}

// Save upserts a token. The token string is the document key, so
// re-registering moves ownership instead of duplicating the record.
func (r *deviceTokenRepository) Save(ctx context.Context, token *notifdomain.DeviceToken) error {
	now := time.Now().UTC()
	token.CreatedAt = now
	token.UpdatedAt = now
	token.IsActive = true
	_, err := r.client.Collection(deviceTokensCollection).Doc(token.Token).Set(ctx, token)
	return err
}

func (r *deviceTokenRepository) Get(ctx context.Context, token string) (*notifdomain.DeviceToken, error) {
	doc, err := r.client.Collection(deviceTokensCollection).Doc(token).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var record notifdomain.DeviceToken
	if err := doc.DataTo(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *deviceTokenRepository) GetByUserID(ctx context.Context, userID string) ([]*notifdomain.DeviceToken, error) {
	iter := r.client.Collection(deviceTokensCollection).
		Where("user_id", "==", userID).
		Where("is_active", "==", true).
		Documents(ctx)
	defer iter.Stop()

	var tokens []*notifdomain.DeviceToken
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var record notifdomain.DeviceToken
		if err := doc.DataTo(&record); err != nil {
			return nil, err
		}
		tokens = append(tokens, &record)
	}
	return tokens, nil
}

func (r *deviceTokenRepository) Delete(ctx context.Context, token string) error {
	_, err := r.client.Collection(deviceTokensCollection).Doc(token).Delete(ctx)
	return err
}

func (r *deviceTokenRepository) DeleteByUserID(ctx context.Context, userID string) error {
	iter := r.client.Collection(deviceTokensCollection).Where("user_id", "==", userID).Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return err
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return err
		}
	}
	return nil
}
