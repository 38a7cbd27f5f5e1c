package service

import (
	"context"
	"time"
)

// UserEventType names a user lifecycle transition.
type UserEventType string

const (
	UserEventCreated UserEventType = "user.created"
	UserEventDeleted UserEventType = "user.deleted"
)

// UserEvent is published after a user lifecycle transition so that services owning
// workouts and nutrition data can react.
type UserEvent struct {
	RequestID  string        `json:"request_id,omitempty"` // For distributed tracing
	Type       UserEventType `json:"type"`
	UserID     string        `json:"user_id"`
	Username   string        `json:"username"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishUserEvent publishes a user lifecycle event
	PublishUserEvent(ctx context.Context, event *UserEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
