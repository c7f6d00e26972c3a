package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesAllSubscribers(t *testing.T) {
	hub := NewHub()

	firstID, first := hub.Subscribe()
	secondID, second := hub.Subscribe()
	defer hub.Unsubscribe(firstID)
	defer hub.Unsubscribe(secondID)

	published := hub.Publish(LevelSuccess, "contacts", "contact deleted")

	for _, channel := range []<-chan Notification{first, second} {
		select {
		case received := <-channel:
			assert.Equal(t, published.ID, received.ID)
			assert.Equal(t, LevelSuccess, received.Level)
			assert.Equal(t, "contacts", received.Resource)
		default:
			t.Fatal("subscriber did not receive the notification")
		}
	}
}

func TestHub_UnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()

	id, channel := hub.Subscribe()
	hub.Unsubscribe(id)

	_, open := <-channel
	assert.False(t, open)

	// publishing afterwards must not panic on the closed channel
	hub.Publish(LevelError, "products", "update failed")
}

func TestHub_SlowSubscriberDoesNotBlockPublish(t *testing.T) {
	hub := NewHub()

	id, channel := hub.Subscribe()
	defer hub.Unsubscribe(id)

	for i := 0; i < subscriberBuffer+8; i++ {
		hub.Publish(LevelSuccess, "orders", "status updated")
	}

	// overflowing messages are dropped, not queued
	require.Len(t, channel, subscriberBuffer)
}
