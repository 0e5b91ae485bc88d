package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"studyhub/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localSubscription = "projects/local/subscriptions/feedback-mailer"

	// maxErrorBody is how much of a failing relay response ends up in the error.
	maxErrorBody = 512
)

// localHTTPPublisher posts push-format messages straight to a relay running locally.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
		now:        time.Now,
	}
}

// PublishFeedbackEvent posts the event as a push message and expects a 2xx.
func (p *localHTTPPublisher) PublishFeedbackEvent(ctx context.Context, event *service.FeedbackEvent) error {
	msg, err := encodeFeedback(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(msg.push(localSubscription, p.now()))
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "post to %s", p.endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return errors.Errorf("relay returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	p.logger.DebugContext(ctx, "[LocalPubSub] Feedback delivered",
		slog.String("endpoint", p.endpoint),
		slog.String("feedback_id", msg.ID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}
