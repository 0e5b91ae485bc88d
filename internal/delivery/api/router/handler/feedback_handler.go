package handler

import (
	"net/http"

	"studyhub/internal/delivery/api/response"
	"studyhub/internal/delivery/api/validator"
	"studyhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FeedbackHandlerParams holds dependencies for FeedbackHandler, injected by Fx.
type FeedbackHandlerParams struct {
	fx.In

	FeedbackUC usecase.FeedbackUsecase
}

// FeedbackHandler accepts the contact form.
type FeedbackHandler struct {
	feedbackUC usecase.FeedbackUsecase
}

// NewFeedbackHandler is the constructor for FeedbackHandler
func NewFeedbackHandler(params FeedbackHandlerParams) *FeedbackHandler {
	return &FeedbackHandler{feedbackUC: params.FeedbackUC}
}

// Submit validates the message and hands it to the relay.
func (h *FeedbackHandler) Submit(c echo.Context) error {
	var req usecase.FeedbackInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid feedback", nil)
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Input validation failed", validator.FieldErrors(err))
	}

	feedback, err := h.feedbackUC.Submit(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, feedback)
}
