package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studyhub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvent() *service.FeedbackEvent {
	return &service.FeedbackEvent{
		FeedbackID:  "fb-1",
		Name:        "Asha",
		Email:       "asha@example.edu",
		Message:     "The CSE notes link is broken",
		SubmittedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		RequestID:   "req-42",
	}
}

func TestLocalHTTPPublisher_PushesEnvelope(t *testing.T) {
	var (
		got       PushMessage
		requestID string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	p := NewLocalHTTPPublisher(srv.URL, slog.Default())
	require.NoError(t, p.PublishFeedbackEvent(context.Background(), sampleEvent()))

	assert.Equal(t, "req-42", requestID)
	assert.Equal(t, "fb-1", got.Message.MessageID)
	assert.Equal(t, "feedback.submitted", got.Message.Attributes["event_type"])
	assert.Equal(t, "req-42", got.Message.Attributes["request_id"])

	raw, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)
	var event service.FeedbackEvent
	require.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, "The CSE notes link is broken", event.Message)
	assert.Equal(t, "asha@example.edu", event.Email)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("mailer unavailable\n"))
	}))
	defer srv.Close()

	err := NewLocalHTTPPublisher(srv.URL, slog.Default()).PublishFeedbackEvent(context.Background(), sampleEvent())

	assert.ErrorContains(t, err, "relay returned 502: mailer unavailable")
}

func TestEncodeFeedback(t *testing.T) {
	t.Run("omits empty request id", func(t *testing.T) {
		event := sampleEvent()
		event.RequestID = ""

		msg, err := encodeFeedback(event)
		require.NoError(t, err)

		assert.NotContains(t, msg.Attributes, "request_id")
		assert.Equal(t, "fb-1", msg.Attributes["feedback_id"])
		assert.Equal(t, "fb-1", msg.ID)
	})

	t.Run("rejects event without id", func(t *testing.T) {
		_, err := encodeFeedback(&service.FeedbackEvent{Message: "hi"})

		assert.Error(t, err)
	})

	t.Run("push envelope", func(t *testing.T) {
		msg, err := encodeFeedback(sampleEvent())
		require.NoError(t, err)

		push := msg.push("subs/x", time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("IST", 19800)))

		assert.Equal(t, "subs/x", push.Subscription)
		assert.Equal(t, "2026-03-01T06:30:00Z", push.Message.PublishTime)
		assert.Equal(t, base64.StdEncoding.EncodeToString(msg.Data), push.Message.Data)
	})
}
