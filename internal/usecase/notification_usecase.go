package usecase

import (
	"context"
	"errors"

	"delivery_hub/internal/domain/entities"
	"delivery_hub/internal/usecase/interfaces"
)

var ErrNotificationNotFound = errors.New("notification not found")

// INotificationUseCase manages the notification center. The unread count is
// always derived from the read flags, never stored, and marking something
// read is idempotent.

type INotificationUseCase interface {
	List(ctx context.Context, sessionID string) ([]entities.Notification, int, error)
	MarkRead(ctx context.Context, sessionID, notificationID string) (entities.Notification, error)
	MarkAllRead(ctx context.Context, sessionID string) (int, error)
}

type NotificationUseCase struct {
	sessions interfaces.ISessionRepository
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(sessions interfaces.ISessionRepository) *NotificationUseCase {
	return &NotificationUseCase{sessions: sessions}
}

// List returns the session's notifications and the derived unread count.
func (u *NotificationUseCase) List(ctx context.Context, sessionID string) ([]entities.Notification, int, error) {
	s, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, 0, err
	}
	if s.ID == "" {
		return nil, 0, ErrSessionNotFound
	}
	return s.Notifications, s.UnreadCount(), nil
}

// MarkRead flips one notification to read. Re-marking a read one is a
// no-op success; the flag never flips back.
func (u *NotificationUseCase) MarkRead(ctx context.Context, sessionID, notificationID string) (entities.Notification, error) {
	var marked entities.Notification

	s, err := u.sessions.Update(ctx, sessionID, func(s *entities.Session) error {
		for i := range s.Notifications {
			if s.Notifications[i].ID != notificationID {
				continue
			}
			s.Notifications[i].Read = true
			marked = s.Notifications[i]
			return nil
		}
		return ErrNotificationNotFound
	})
	if err != nil {
		return entities.Notification{}, err
	}
	if s.ID == "" {
		return entities.Notification{}, ErrSessionNotFound
	}
	return marked, nil
}

// MarkAllRead flips every notification and reports how many were unread.
func (u *NotificationUseCase) MarkAllRead(ctx context.Context, sessionID string) (int, error) {
	flipped := 0

	s, err := u.sessions.Update(ctx, sessionID, func(s *entities.Session) error {
		for i := range s.Notifications {
			if !s.Notifications[i].Read {
				s.Notifications[i].Read = true
				flipped++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if s.ID == "" {
		return 0, ErrSessionNotFound
	}
	return flipped, nil
}
