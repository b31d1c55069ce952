package usecase

import (
	"context"

	notifdomain "plek-backend/internal/notification/domain"
	notifdto "plek-backend/internal/notification/dto"
	userdomain "plek-backend/internal/user/domain"

	"plek-backend/pkg/fcm"
)

// NotificationUsecase drives the notification and device handlers and
// performs the event fanout.
type NotificationUsecase interface {
	List(ctx context.Context, userID string, limit, offset int, unreadOnly bool) ([]*notifdomain.Notification, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	MarkAsRead(ctx context.Context, userID, notificationID string) error
	MarkAllAsRead(ctx context.Context, userID string) (int, error)
	Delete(ctx context.Context, userID, notificationID string) error

	RegisterDevice(ctx context.Context, userID string, req *notifdto.RegisterDeviceRequest) (*notifdomain.DeviceToken, error)
	UnregisterDevice(ctx context.Context, userID, token string) error

	// Notify writes one notification record, then broadcasts it to the
	// push and email gateways. The record write decides the returned
	// error; gateway failures are logged and swallowed.
	Notify(ctx context.Context, user *userdomain.User, title, body, notificationType string, data map[string]string) (*notifdomain.Notification, error)
}

// PushGateway delivers one push to a set of device tokens and reports
// the tokens that are no longer deliverable.
type PushGateway interface {
	SendToDevices(ctx context.Context, tokens []string, push fcm.Push) ([]string, error)
}

// EmailGateway mirrors a notification to the owner's inbox.
type EmailGateway interface {
	SendNotificationEmail(ctx context.Context, toEmail, title, body string) error
}
