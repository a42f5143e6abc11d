package store_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eststy/eststy/internal/domain"
	"github.com/eststy/eststy/internal/events"
	"github.com/eststy/eststy/internal/store"
)

func TestNotificationsFeed(t *testing.T) {
	s := newTestStore(store.Options{})

	s.AddNotification("Spring sale", "Up to 20% off ceramics this week.", domain.NotificationTypePromotion)
	s.AddNotification("Welcome", "Thanks for joining Eststy.", domain.NotificationTypeSystem)

	feed := s.Notifications()
	require.Len(t, feed, 2)
	assert.Equal(t, "Welcome", feed[0].Title, "feed is most recent first")
	assert.Equal(t, "Spring sale", feed[1].Title)
}

func TestUnreadCountIsDerived(t *testing.T) {
	s := newTestStore(store.Options{})
	assert.Zero(t, s.UnreadNotificationCount())

	first := s.AddNotification("One", "first", domain.NotificationTypeSystem)
	s.AddNotification("Two", "second", domain.NotificationTypeSystem)
	assert.Equal(t, 2, s.UnreadNotificationCount())

	require.NoError(t, s.MarkNotificationRead(first.ID))
	assert.Equal(t, 1, s.UnreadNotificationCount())

	// Marking the same entry again changes nothing.
	require.NoError(t, s.MarkNotificationRead(first.ID))
	assert.Equal(t, 1, s.UnreadNotificationCount())
}

func TestMarkNotificationReadUnknown(t *testing.T) {
	s := newTestStore(store.Options{})

	err := s.MarkNotificationRead(uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotificationNotFound)
}

func TestMarkAllNotificationsRead(t *testing.T) {
	s := newTestStore(store.Options{})
	s.AddNotification("One", "first", domain.NotificationTypeSystem)
	s.AddNotification("Two", "second", domain.NotificationTypeOrder)

	rec := recordEvents(s)
	s.MarkAllNotificationsRead()

	assert.Zero(t, s.UnreadNotificationCount())
	for _, n := range s.Notifications() {
		assert.True(t, n.Read)
	}

	require.Equal(t, 1, rec.count(events.TypeNotificationsRead))
	payload, ok := rec.events[0].Payload.(events.NotificationsReadPayload)
	require.True(t, ok)
	assert.Zero(t, payload.Unread)
}
