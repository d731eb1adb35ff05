package service

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/mtlprog/proposedesk/internal/domain"
)

// NotificationSource is the notification part of the REST API.
type NotificationSource interface {
	ListNotifications(ctx context.Context) ([]domain.Notification, error)
	GetNotification(ctx context.Context, id int64) (*domain.Notification, error)
	MarkNotificationRead(ctx context.Context, recipientID int64) error
	NotifyUser(ctx context.Context, userID int64, message string) error
}

// NotificationService proxies notifications of the REST API. Nothing is cached.
type NotificationService struct {
	source NotificationSource
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(source NotificationSource) *NotificationService {
	return &NotificationService{source: source}
}

// List returns notifications newest first, optionally only the unread ones.
func (s *NotificationService) List(ctx context.Context, unreadOnly bool) ([]domain.Notification, error) {
	all, err := s.source.ListNotifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	out := make([]domain.Notification, 0, len(all))
	for _, n := range all {
		if unreadOnly && !n.Unread() {
			continue
		}
		out = append(out, n)
	}
	slices.SortStableFunc(out, func(a, b domain.Notification) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return out, nil
}

// Get returns a single notification.
func (s *NotificationService) Get(ctx context.Context, id int64) (*domain.Notification, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id %d", domain.ErrNotificationNotFound, id)
	}
	n, err := s.source.GetNotification(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get notification %d: %w", id, err)
	}
	return n, nil
}

// MarkRead marks the recipient row of a notification as read.
func (s *NotificationService) MarkRead(ctx context.Context, recipientID int64) error {
	if recipientID <= 0 {
		return fmt.Errorf("%w: recipient %d", domain.ErrNotificationNotFound, recipientID)
	}
	if err := s.source.MarkNotificationRead(ctx, recipientID); err != nil {
		return fmt.Errorf("mark notification %d read: %w", recipientID, err)
	}
	slog.Debug("notification marked read", "recipient_id", recipientID)
	return nil
}

// Notify sends message to a user.
func (s *NotificationService) Notify(ctx context.Context, userID int64, message string) error {
	if userID <= 0 {
		return fmt.Errorf("%w: id %d", domain.ErrUserNotFound, userID)
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return domain.ErrEmptyMessage
	}
	if err := s.source.NotifyUser(ctx, userID, message); err != nil {
		return fmt.Errorf("notify user %d: %w", userID, err)
	}
	slog.Info("user notified", "user_id", userID, "length", len(message))
	return nil
}
