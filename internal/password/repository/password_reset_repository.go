package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	passdomain "plek-backend/internal/password/domain"
)

const passwordResetsCollection = "password_resets"

// PasswordResetRepository defines the interface for reset token storage
type PasswordResetRepository interface {
	Create(ctx context.Context, reset *passdomain.PasswordReset) error
	GetByToken(ctx context.Context, token string) (*passdomain.PasswordReset, error)
	GetActiveByEmail(ctx context.Context, email string) (*passdomain.PasswordReset, error)
	MarkAsUsed(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// passwordResetRepository implements PasswordResetRepository on the
// platform document store
type passwordResetRepository struct {
	client *firestore.Client
}

// NewPasswordResetRepository creates a new instance of passwordResetRepository
func NewPasswordResetRepository(client *firestore.Client) PasswordResetRepository {
	return &passwordResetRepository{
		client: client,
	}
}

func (r *passwordResetRepository) Create(ctx context.Context, reset *passdomain.PasswordReset) error {
	reset.ID = uuid.New().String()
	reset.CreatedAt = time.Now().UTC()
	_, err := r.client.Collection(passwordResetsCollection).Doc(reset.ID).Set(ctx, reset)
	return err
}

func (r *passwordResetRepository) GetByToken(ctx context.Context, token string) (*passdomain.PasswordReset, error) {
	iter := r.client.Collection(passwordResetsCollection).Where("token", "==", token).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var reset passdomain.PasswordReset
	if err := doc.DataTo(&reset); err != nil {
		return nil, err
	}
	reset.ID = doc.Ref.ID
	return &reset, nil
}

// GetActiveByEmail returns an unused, unexpired reset for the email, or
// nil. Expiry is filtered in code so the query needs no composite index.
func (r *passwordResetRepository) GetActiveByEmail(ctx context.Context, email string) (*passdomain.PasswordReset, error) {
	iter := r.client.Collection(passwordResetsCollection).
		Where("email", "==", email).
		Where("used", "==", false).
		Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}

		var reset passdomain.PasswordReset
		if err := doc.DataTo(&reset); err != nil {
			return nil, err
		}
		if reset.IsExpired() {
			continue
		}
		reset.ID = doc.Ref.ID
		return &reset, nil
	}
}

func (r *passwordResetRepository) MarkAsUsed(ctx context.Context, id string) error {
	_, err := r.client.Collection(passwordResetsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "used", Value: true},
		{Path: "used_at", Value: time.Now().UTC()},
	})
	return err
}

func (r *passwordResetRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(passwordResetsCollection).Doc(id).Delete(ctx)
	return err
}
