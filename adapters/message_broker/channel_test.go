package message_broker

import (
	"context"
	"testing"

	"github.com/safeguard-ai/agentic/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishSubscribeRoundTrip(t *testing.T) {
	broker := NewChannelBroker()
	defer broker.Close()

	ctx := context.Background()
	messages, err := broker.Subscribe(ctx, domain.TurnTopic, "voice")
	require.NoError(t, err)

	require.NoError(t, broker.Publish(ctx, domain.TurnTopic, "voice", []byte(`{"mode":"voice"}`)))

	msg := <-messages
	assert.Equal(t, domain.TurnTopic, msg.Topic)
	assert.Equal(t, "voice", msg.RoutingKey)
	assert.Equal(t, []byte(`{"mode":"voice"}`), msg.Payload)
}

func TestPublishToFullTopicFails(t *testing.T) {
	broker := NewChannelBroker()
	defer broker.Close()

	ctx := context.Background()
	for i := 0; i < topicBuffer; i++ {
		require.NoError(t, broker.Publish(ctx, domain.TurnTopic, "adaptive", []byte("x")))
	}

	assert.Error(t, broker.Publish(ctx, domain.TurnTopic, "adaptive", []byte("overflow")))
}

func TestRoutingKeysAreIsolated(t *testing.T) {
	broker := NewChannelBroker()
	defer broker.Close()

	ctx := context.Background()
	voice, err := broker.Subscribe(ctx, domain.TurnTopic, "voice")
	require.NoError(t, err)

	require.NoError(t, broker.Publish(ctx, domain.TurnTopic, "adaptive", []byte("x")))

	select {
	case <-voice:
		t.Fatal("voice subscriber received an adaptive message")
	default:
	}
}

func TestClosedBrokerRejectsPublish(t *testing.T) {
	broker := NewChannelBroker()
	require.NoError(t, broker.Close())

	assert.Error(t, broker.Publish(context.Background(), domain.TurnTopic, "voice", []byte("x")))

	// Closing twice is a no-op.
	assert.NoError(t, broker.Close())
}
