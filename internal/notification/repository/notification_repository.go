package repository

import (
	"context"
	"sort"
	"time"

	"firebase.google.com/go/v4/db"

	notifdomain "plek-backend/internal/notification/domain"
)

const notificationsPath = "notifications"

// NotificationRepository defines the interface for notification storage
type NotificationRepository interface {
	Create(ctx context.Context, notification *notifdomain.Notification) error
	GetByID(ctx context.Context, id string) (*notifdomain.Notification, error)
	GetByUserID(ctx context.Context, userID string, limit, offset int, unreadOnly bool) ([]*notifdomain.Notification, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	MarkAsRead(ctx context.Context, id string) error
	MarkAllAsRead(ctx context.Context, userID string) (int, error)
	Delete(ctx context.Context, id string) error
}

// notificationRepository implements NotificationRepository on the
// realtime database
type notificationRepository struct {
	ref *db.Ref
}

// NewNotificationRepository creates a new instance of notificationRepository
func NewNotificationRepository(client *db.Client) NotificationRepository {
	return &notificationRepository{
		ref: client.NewRef(notificationsPath),
	}
}

func (r *notificationRepository) Create(ctx context.Context, notification *notifdomain.Notification) error {
	notification.CreatedAt = time.Now().UTC()
	notification.Read = false

	// The store assigns the push key; never persist the id inside the value.
	notification.ID = ""
	newRef, err := r.ref.Push(ctx, notification)
	if err != nil {
		return err
	}
	notification.ID = newRef.Key
	return nil
}

func (r *notificationRepository) GetByID(ctx context.Context, id string) (*notifdomain.Notification, error) {
	var notification notifdomain.Notification
	if err := r.ref.Child(id).Get(ctx, &notification); err != nil {
		return nil, err
	}
	// A missing key leaves the zero value; every stored record carries
	// its owner.
	if notification.UserID == "" {
		return nil, nil
	}
	notification.ID = id
	return &notification, nil
}

func (r *notificationRepository) getAllForUser(ctx context.Context, userID string) (map[string]notifdomain.Notification, error) {
	var records map[string]notifdomain.Notification
	err := r.ref.OrderByChild("user_id").EqualTo(userID).Get(ctx, &records)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *notificationRepository) GetByUserID(ctx context.Context, userID string, limit, offset int, unreadOnly bool) ([]*notifdomain.Notification, error) {
	records, err := r.getAllForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	notifications := make([]*notifdomain.Notification, 0, len(records))
	for id, record := range records {
		if unreadOnly && record.Read {
			continue
		}
		n := record
		n.ID = id
		notifications = append(notifications, &n)
	}

	// Newest first.
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})

	return paginate(notifications, limit, offset), nil
}

// paginate applies limit and offset to the sorted slice. Negative
// values are treated as zero.
func paginate(notifications []*notifdomain.Notification, limit, offset int) []*notifdomain.Notification {
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}
	if offset >= len(notifications) {
		return []*notifdomain.Notification{}
	}
	end := offset + limit
	if end > len(notifications) {
		end = len(notifications)
	}
	return notifications[offset:end]
}

func (r *notificationRepository) UnreadCount(ctx context.Context, userID string) (int, error) {
	records, err := r.getAllForUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, record := range records {
		if !record.Read {
			count++
		}
	}
	return count, nil
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id string) error {
	return r.ref.Child(id).Update(ctx, map[string]any{
		"read":    true,
		"read_at": time.Now().UTC().Format(time.RFC3339),
	})
}

func (r *notificationRepository) MarkAllAsRead(ctx context.Context, userID string) (int, error) {
	records, err := r.getAllForUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	readAt := time.Now().UTC().Format(time.RFC3339)
	count := 0
	for id, record := range records {
		if record.Read {
			continue
		}
		if err := r.ref.Child(id).Update(ctx, map[string]any{
			"read":    true,
			"read_at": readAt,
		}); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func (r *notificationRepository) Delete(ctx context.Context, id string) error {
	return r.ref.Child(id).Delete(ctx)
}
