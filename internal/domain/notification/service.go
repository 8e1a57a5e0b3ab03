package notification

import (
	"context"
)

// SSEEvent is a server-sent event payload for a recipient's stream.
type SSEEvent struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Service defines the notification service interface
type Service interface {
	// Queue notification (async processing via background workers)
	QueueNotification(ctx context.Context, req CreateNotificationRequest) error
	QueueBulkNotification(ctx context.Context, reqs []CreateNotificationRequest) error

	// Direct operations
	GetNotifications(ctx context.Context, recipientID string, page, pageSize int, unreadOnly bool) (*NotificationListResponse, error)
	GetUnreadCount(ctx context.Context, recipientID string) (int, error)
	MarkAsRead(ctx context.Context, recipientID string, req MarkAsReadRequest) error
	MarkAllAsRead(ctx context.Context, recipientID string) error
	Delete(ctx context.Context, recipientID string, notificationID string) error

	// SSE subscription
	Subscribe(ctx context.Context, recipientID string) (<-chan SSEEvent, func())

	// Lifecycle
	Stop()
}
