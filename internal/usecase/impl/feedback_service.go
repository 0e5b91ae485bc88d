package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "studyhub/internal/delivery/context"
	"studyhub/internal/domain/entity"
	domainerrors "studyhub/internal/domain/errors"
	"studyhub/internal/domain/service"
	"studyhub/internal/usecase"

	"github.com/google/uuid"
)

// feedbackService implements the FeedbackUsecase interface.
type feedbackService struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewFeedbackService is the constructor for feedbackService.
func NewFeedbackService(publisher service.EventPublisher, logger *slog.Logger) usecase.FeedbackUsecase {
	return &feedbackService{
		publisher: publisher,
		logger:    logger,
	}
}

// Submit hands the feedback to the email relay.
func (srv *feedbackService) Submit(ctx context.Context, input usecase.FeedbackInput) (*entity.Feedback, error) {
	feedback := &entity.Feedback{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(input.Name),
		Email:       strings.TrimSpace(input.Email),
		Message:     strings.TrimSpace(input.Message),
		SubmittedAt: time.Now().UTC(),
	}
	if feedback.Name == "" || feedback.Email == "" || feedback.Message == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("name, email and message are required")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	event := &service.FeedbackEvent{
		FeedbackID:  feedback.ID,
		Name:        feedback.Name,
		Email:       feedback.Email,
		Message:     feedback.Message,
		SubmittedAt: feedback.SubmittedAt,
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
	}
	if err := srv.publisher.PublishFeedbackEvent(ctx, event); err != nil {
		logger.Error("Failed to publish feedback", slog.String("feedback_id", feedback.ID), slog.Any("error", err))

		return nil, domainerrors.ErrFeedbackNotDelivered.WrapMessage(err.Error())
	}

	logger.Info("Feedback published", slog.String("feedback_id", feedback.ID))

	return feedback, nil
}
