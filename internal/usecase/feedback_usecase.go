package usecase

import (
	"context"

	"studyhub/internal/domain/entity"
)

// FeedbackInput is the contact form payload.
type FeedbackInput struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=5,max=4000"`
}

// FeedbackUsecase relays feedback to the maintainers.
type FeedbackUsecase interface {
	Submit(ctx context.Context, input FeedbackInput) (*entity.Feedback, error)
}
