package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	userdomain "plek-backend/internal/user/domain"
)

const usersCollection = "users"

// UserRepository defines the interface for user document operations
type UserRepository interface {
	Create(ctx context.Context, user *userdomain.User) error
	GetByUID(ctx context.Context, uid string) (*userdomain.User, error)
	GetByEmail(ctx context.Context, email string) (*userdomain.User, error)
	GetAll(ctx context.Context) ([]*userdomain.User, error)
	Update(ctx context.Context, uid string, fields map[string]any) (*userdomain.User, error)
	Delete(ctx context.Context, uid string) error
}

// userRepository implements UserRepository on the platform document store
type userRepository struct {
	client *firestore.Client
}

// NewUserRepository creates a new instance of userRepository
func NewUserRepository(client *firestore.Client) UserRepository {
	return &userRepository{
		client: client,
	}
}

func (r *userRepository) Create(ctx context.Context, user *userdomain.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	// The identity-provider UID is the document key.
	_, err := r.client.Collection(usersCollection).Doc(user.ID).Set(ctx, user)
	return err
}

func (r *userRepository) GetByUID(ctx context.Context, uid string) (*userdomain.User, error) {
	doc, err := r.client.Collection(usersCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var user userdomain.User
	if err := doc.DataTo(&user); err != nil {
		return nil, err
	}
	user.ID = doc.Ref.ID
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*userdomain.User, error) {
	iter := r.client.Collection(usersCollection).Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user userdomain.User
	if err := doc.DataTo(&user); err != nil {
		return nil, err
	}
	user.ID = doc.Ref.ID
	return &user, nil
}

func (r *userRepository) GetAll(ctx context.Context) ([]*userdomain.User, error) {
	iter := r.client.Collection(usersCollection).Documents(ctx)
	defer iter.Stop()

	var users []*userdomain.User
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var user userdomain.User
		if err := doc.DataTo(&user); err != nil {
			return nil, err
		}
		user.ID = doc.Ref.ID
		users = append(users, &user)
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, uid string, fields map[string]any) (*userdomain.User, error) {
	fields["updated_at"] = time.Now().UTC()

	_, err := r.client.Collection(usersCollection).Doc(uid).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return nil, err
	}
	return r.GetByUID(ctx, uid)
}

func (r *userRepository) Delete(ctx context.Context, uid string) error {
	_, err := r.client.Collection(usersCollection).Doc(uid).Delete(ctx)
	return err
}
