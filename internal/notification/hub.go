package notification

import (
	"time"

	"github.com/google/uuid"
	"github.com/mealdesk/admin-gateway/internal/hashmap"
)

// Level classifies a notification
type Level string

// The two levels every mutation outcome maps onto
const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification represents a single transient, individually dismissible message.
// Every mutation outcome produces exactly one of these.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Level     Level     `json:"level"`
	Resource  string    `json:"resource"`
	Message   string    `json:"message"`
	CreatedAt int64     `json:"created_at"`
}

const subscriberBuffer = 16

// Hub fans notifications out to all current subscribers.
// Delivery order across concurrently published messages is not guaranteed, and a slow
// subscriber loses messages rather than blocking the publisher.
type Hub struct {
	subscribers *hashmap.NormalMap[uuid.UUID, chan Notification]
}

// NewHub creates a new notification hub without subscribers
func NewHub() *Hub {
	return &Hub{
		subscribers: hashmap.NewNormal[uuid.UUID, chan Notification](),
	}
}

// Publish builds a notification and delivers it to every current subscriber
func (hub *Hub) Publish(level Level, resource, message string) Notification {
	obj := Notification{
		ID:        uuid.New(),
		Level:     level,
		Resource:  resource,
		Message:   message,
		CreatedAt: time.Now().Unix(),
	}

	hub.subscribers.BootstrappedManipulation(func(underlying map[uuid.UUID]chan Notification) {
		for _, subscriber := range underlying {
			select {
			case subscriber <- obj:
			default:
			}
		}
	})

	return obj
}

// Subscribe registers a new subscriber and returns its ID together with its channel.
// The caller has to call Unsubscribe with the returned ID as soon as it is done.
func (hub *Hub) Subscribe() (uuid.UUID, <-chan Notification) {
	id := uuid.New()
	channel := make(chan Notification, subscriberBuffer)
	hub.subscribers.Set(id, channel)
	return id, channel
}

// Unsubscribe removes a subscriber and closes its channel
func (hub *Hub) Unsubscribe(id uuid.UUID) {
	hub.subscribers.BootstrappedManipulation(func(underlying map[uuid.UUID]chan Notification) {
		if channel, ok := underlying[id]; ok {
			close(channel)
			delete(underlying, id)
		}
	})
}
