package pubsub

import (
	"context"
	"log/slog"
	"time"

	"studyhub/config"
	"studyhub/internal/domain/constants"
	"studyhub/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/fx"
)

const providerNoop = "noop"

var feedbackPublishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "studyhub_feedback_published_total",
	Help: "Feedback events handed to the relay by provider and outcome.",
}, []string{"provider", "outcome"})

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the relay transport from pubsub.provider. No provider
// means feedback is accepted and dropped with a warning.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger.With(slog.String("component", "feedback_publisher"))

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, feedback will be dropped")

		return instrument(&noopPublisher{logger: logger}, providerNoop), nil
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	var (
		inner service.EventPublisher
		err   error
	)
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		inner = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)
	case constants.PubSubProviderGoogle:
		inner, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}
	}

	logger.Info("Feedback publisher ready",
		slog.String("provider", cfg.Provider),
		slog.String("topic_id", cfg.TopicID),
		slog.String("endpoint", cfg.LocalEndpoint),
	)

	publisher := instrument(inner, cfg.Provider)
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func validate(cfg *config.PubSubConfig) error {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("local endpoint is required for local provider")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return errors.New("topic ID is required for google provider")
		}
	default:
		return errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	return nil
}

// publishTimeout bounds a single publish so a stuck relay cannot hold the request open.
const publishTimeout = 10 * time.Second

// instrumentedPublisher counts outcomes per provider and bounds each publish.
type instrumentedPublisher struct {
	next     service.EventPublisher
	provider string
}

func instrument(next service.EventPublisher, provider string) *instrumentedPublisher {
	return &instrumentedPublisher{next: next, provider: provider}
}

func (p *instrumentedPublisher) PublishFeedbackEvent(ctx context.Context, event *service.FeedbackEvent) error {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := p.next.PublishFeedbackEvent(ctx, event); err != nil {
		feedbackPublishedTotal.WithLabelValues(p.provider, "failed").Inc()

		return err
	}
	feedbackPublishedTotal.WithLabelValues(p.provider, "ok").Inc()

	return nil
}

func (p *instrumentedPublisher) Close() error {
	return p.next.Close()
}

// noopPublisher accepts feedback when no relay is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishFeedbackEvent(ctx context.Context, event *service.FeedbackEvent) error {
	p.logger.WarnContext(ctx, "Feedback relay disabled, dropping message",
		slog.String("feedback_id", event.FeedbackID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}
