package service

import (
	"context"
	"time"
)

// FeedbackEvent is the payload handed to the email relay.
type FeedbackEvent struct {
	FeedbackID  string    `json:"feedback_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
	RequestID   string    `json:"request_id,omitempty"`
}

// EventPublisher delivers feedback events to the relay channel.
type EventPublisher interface {
	PublishFeedbackEvent(ctx context.Context, event *FeedbackEvent) error
	Close() error
}
