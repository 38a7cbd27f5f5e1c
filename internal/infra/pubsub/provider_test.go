package pubsub

import (
	"context"
	"testing"

	"fittrack/config"
	"fittrack/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, cfg *config.PubSubConfig) PublisherParams {
	return PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: cfg},
		Logger: discardLogger(),
	}
}

func TestNewEventPublisher_Noop(t *testing.T) {
	for _, cfg := range []*config.PubSubConfig{nil, {}} {
		publisher, err := NewEventPublisher(newParams(t, cfg))
		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, publisher)
		assert.NoError(t, publisher.PublishUserEvent(context.Background(), &service.UserEvent{Type: service.UserEventCreated}))
		assert.NoError(t, publisher.Close())
	}
}

func TestNewEventPublisher_Local(t *testing.T) {
	params := newParams(t, &config.PubSubConfig{Provider: ProviderLocal, LocalEndpoint: "http://localhost:9/push"})

	publisher, err := NewEventPublisher(params)
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)

	lc := params.Lc.(*fxtest.Lifecycle)
	lc.RequireStart().RequireStop()
}

func TestNewEventPublisher_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.PubSubConfig
	}{
		{"local without endpoint", &config.PubSubConfig{Provider: ProviderLocal}},
		{"google without project", &config.PubSubConfig{Provider: ProviderGoogle, TopicID: "users"}},
		{"google without topic", &config.PubSubConfig{Provider: ProviderGoogle, ProjectID: "p"}},
		{"unknown provider", &config.PubSubConfig{Provider: "kafka"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEventPublisher(newParams(t, tt.cfg))
			assert.Error(t, err)
		})
	}
}
