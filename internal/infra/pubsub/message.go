package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"studyhub/internal/domain/service"

	"github.com/pkg/errors"
)

// feedbackEventType lets the relay subscription filter on attributes.event_type.
const feedbackEventType = "feedback.submitted"

// feedbackMessage is a FeedbackEvent encoded once for any transport.
type feedbackMessage struct {
	ID         string
	Data       []byte
	Attributes map[string]string
}

func encodeFeedback(event *service.FeedbackEvent) (*feedbackMessage, error) {
	if event == nil || event.FeedbackID == "" {
		return nil, errors.New("feedback event without id")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode feedback event")
	}

	attributes := map[string]string{
		"event_type":  feedbackEventType,
		"feedback_id": event.FeedbackID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return &feedbackMessage{ID: event.FeedbackID, Data: data, Attributes: attributes}, nil
}

// PushMessage is the body Pub/Sub sends to push subscriptions; the local publisher sends the same shape.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

func (m *feedbackMessage) push(subscription string, now time.Time) PushMessage {
	var out PushMessage
	out.Subscription = subscription
	out.Message.Data = base64.StdEncoding.EncodeToString(m.Data)
	out.Message.Attributes = m.Attributes
	out.Message.MessageID = m.ID
	out.Message.PublishTime = now.UTC().Format(time.RFC3339)

	return out
}
