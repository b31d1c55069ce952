package usecase

import (
	"context"
	"log"
	"sync"

	notifdomain "plek-backend/internal/notification/domain"
	notifdto "plek-backend/internal/notification/dto"
	"plek-backend/internal/notification/repository"
	userdomain "plek-backend/internal/user/domain"
	"plek-backend/pkg/apperr"
	"plek-backend/pkg/fcm"
)

// notificationUsecase implements NotificationUsecase
type notificationUsecase struct {
	notifRepo repository.NotificationRepository
	tokenRepo repository.DeviceTokenRepository
	push      PushGateway
	email     EmailGateway
}

// NewNotificationUsecase creates a new instance of notificationUsecase.
// Push and email gateways are optional; a nil gateway is skipped.
func NewNotificationUsecase(notifRepo repository.NotificationRepository, tokenRepo repository.DeviceTokenRepository, push PushGateway, email EmailGateway) NotificationUsecase {
	return &notificationUsecase{
		notifRepo: notifRepo,
		tokenRepo: tokenRepo,
		push:      push,
		email:     email,
	}
}

func (u *notificationUsecase) List(ctx context.Context, userID string, limit, offset int, unreadOnly bool) ([]*notifdomain.Notification, error) {
	return u.notifRepo.GetByUserID(ctx, userID, limit, offset, unreadOnly)
}

func (u *notificationUsecase) UnreadCount(ctx context.Context, userID string) (int, error) {
	return u.notifRepo.UnreadCount(ctx, userID)
}

// getOwned fetches a notification and enforces the owner check.
func (u *notificationUsecase) getOwned(ctx context.Context, userID, notificationID string) (*notifdomain.Notification, error) {
	notification, err := u.notifRepo.GetByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		return nil, apperr.NotFound("notification not found")
	}
	if notification.UserID != userID {
		return nil, apperr.Forbidden("cannot access notification for another user")
	}
	return notification, nil
}

func (u *notificationUsecase) MarkAsRead(ctx context.Context, userID, notificationID string) error {
	if _, err := u.getOwned(ctx, userID, notificationID); err != nil {
		return err
	}
	// Idempotent: re-marking an already-read notification succeeds.
	return u.notifRepo.MarkAsRead(ctx, notificationID)
}

func (u *notificationUsecase) MarkAllAsRead(ctx context.Context, userID string) (int, error) {
	return u.notifRepo.MarkAllAsRead(ctx, userID)
}

func (u *notificationUsecase) Delete(ctx context.Context, userID, notificationID string) error {
	if _, err := u.getOwned(ctx, userID, notificationID); err != nil {
		return err
	}
	return u.notifRepo.Delete(ctx, notificationID)
}

func (u *notificationUsecase) RegisterDevice(ctx context.Context, userID string, req *notifdto.RegisterDeviceRequest) (*notifdomain.DeviceToken, error) {
	if req.DeviceToken == "" {
		return nil, apperr.Validation("device token is required")
	}
	if req.DeviceType != "ios" && req.DeviceType != "android" {
		return nil, apperr.Validation("valid device type is required (ios or android)")
	}

	deviceName := req.DeviceName
	if deviceName == "" {
		deviceName = "Unknown Device"
	}

	token := &notifdomain.DeviceToken{
		UserID:     userID,
		Token:      req.DeviceToken,
		DeviceType: req.DeviceType,
		DeviceName: deviceName,
	}
	if err := u.tokenRepo.Save(ctx, token); err != nil {
		return nil, err
	}

	log.Printf("[Notification] Device registered for user %s", userID)
	return token, nil
}

func (u *notificationUsecase) UnregisterDevice(ctx context.Context, userID, token string) error {
	if token == "" {
		return apperr.Validation("device token is required")
	}

	record, err := u.tokenRepo.Get(ctx, token)
	if err != nil {
		return err
	}
	if record == nil {
		return apperr.NotFound("device not found")
	}
	if record.UserID != userID {
		return apperr.Forbidden("cannot unregister a device for another user")
	}

	return u.tokenRepo.Delete(ctx, token)
}

func (u *notificationUsecase) Notify(ctx context.Context, user *userdomain.User, title, body, notificationType string, data map[string]string) (*notifdomain.Notification, error) {
	notification := &notifdomain.Notification{
		UserID: user.ID,
		Title:  title,
		Body:   body,
		Type:   notificationType,
		Data:   data,
	}
	if err := u.notifRepo.Create(ctx, notification); err != nil {
		return nil, err
	}

	// Best-effort broadcast: the two gateway calls are independent and
	// neither cancels the other. Failures are logged, never propagated.
	var wg sync.WaitGroup

	if u.push != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			u.sendPush(ctx, user.ID, notification)
		}()
	}

	if u.email != nil && user.Email != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := u.email.SendNotificationEmail(ctx, user.Email, title, body); err != nil {
				log.Printf("[Notification] Email delivery failed for user %s: %v", user.ID, err)
			}
		}()
	}

	wg.Wait()
	return notification, nil
}

func (u *notificationUsecase) sendPush(ctx context.Context, userID string, notification *notifdomain.Notification) {
	devices, err := u.tokenRepo.GetByUserID(ctx, userID)
	if err != nil {
		log.Printf("[Notification] Failed to load device tokens for user %s: %v", userID, err)
		return
	}
	if len(devices) == 0 {
		return
	}

	tokens := make([]string, 0, len(devices))
	for _, d := range devices {
		tokens = append(tokens, d.Token)
	}

	failed, err := u.push.SendToDevices(ctx, tokens, fcm.Push{
		Title: notification.Title,
		Body:  notification.Body,
		Data:  notification.Data,
	})
	if err != nil {
		log.Printf("[Notification] Push delivery failed for user %s: %v", userID, err)
		return
	}

	// Prune tokens the gateway reported dead.
	for _, token := range failed {
		if err := u.tokenRepo.Delete(ctx, token); err != nil {
			log.Printf("[Notification] Failed to prune dead token: %v", err)
		}
	}
}
