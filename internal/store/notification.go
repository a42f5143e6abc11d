package store

import (
	"github.com/google/uuid"

	"github.com/eststy/eststy/internal/domain"
	"github.com/eststy/eststy/internal/events"
)

// AddNotification prepends a new unread notification to the feed.
func (s *Store) AddNotification(title, message string, kind domain.NotificationType) domain.Notification {
	s.mu.Lock()

	n := domain.Notification{
		ID:        uuid.New(),
		Type:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: s.opts.Now(),
	}
	s.notifications = append([]domain.Notification{n}, s.notifications...)

	payload := events.NotificationAddedPayload{
		NotificationID: n.ID,
		Kind:           string(kind),
		Unread:         s.unreadCountLocked(),
	}
	s.mu.Unlock()

	s.publish(events.TypeNotificationAdded, payload)
	return n
}

// MarkNotificationRead marks a single notification as read.
func (s *Store) MarkNotificationRead(notificationID uuid.UUID) error {
	s.mu.Lock()

	idx := -1
	for i := range s.notifications {
		if s.notifications[i].ID == notificationID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return domain.ErrNotificationNotFound
	}

	s.notifications[idx].Read = true
	unread := s.unreadCountLocked()
	s.mu.Unlock()

	s.publish(events.TypeNotificationsRead, events.NotificationsReadPayload{Unread: unread})
	return nil
}

// MarkAllNotificationsRead marks every notification as read.
func (s *Store) MarkAllNotificationsRead() {
	s.mu.Lock()
	for i := range s.notifications {
		s.notifications[i].Read = true
	}
	s.mu.Unlock()

	s.publish(events.TypeNotificationsRead, events.NotificationsReadPayload{Unread: 0})
}

// Notifications returns the feed, most recent first.
func (s *Store) Notifications() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Notification(nil), s.notifications...)
}

// UnreadNotificationCount is derived from the feed, never stored.
func (s *Store) UnreadNotificationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unreadCountLocked()
}

func (s *Store) unreadCountLocked() int {
	count := 0
	for i := range s.notifications {
		if !s.notifications[i].Read {
			count++
		}
	}
	return count
}
