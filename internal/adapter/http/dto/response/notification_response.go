package response

import (
	"time"

	"delivery_hub/internal/domain/entities"
)

type NotificationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		Timestamp: n.Timestamp,
		Read:      n.Read,
	}
}

// NotificationListResponse carries the list plus the derived unread badge
// count.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unread_count"`
}

func FromNotifications(notes []entities.Notification, unread int) NotificationListResponse {
	out := make([]NotificationResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, FromNotification(n))
	}
	return NotificationListResponse{Notifications: out, UnreadCount: unread}
}
