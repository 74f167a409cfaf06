package message_broker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/safeguard-ai/agentic/domain"
	"github.com/safeguard-ai/agentic/utils/log"
	"go.uber.org/zap"
)

const topicBuffer = 100

// ChannelBroker is a chan-backed MessageBroker. It carries completed
// simulation turns from the HTTP handlers to the websocket feed inside one
// process; nothing crosses a network.
type ChannelBroker struct {
	topics map[string]chan domain.Message
	mu     sync.Mutex
	closed bool
}

func NewChannelBroker() *ChannelBroker {
	return &ChannelBroker{
		topics: make(map[string]chan domain.Message),
	}
}

func makeKey(topic, routingKey string) string {
	return topic + ":" + routingKey
}

// channel returns the channel for a topic/routing key, creating it lazily.
func (b *ChannelBroker) channel(topic, routingKey string) (chan domain.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, fmt.Errorf("message broker is closed")
	}

	key := makeKey(topic, routingKey)
	ch, ok := b.topics[key]
	if !ok {
		ch = make(chan domain.Message, topicBuffer)
		b.topics[key] = ch
	}
	return ch, nil
}

func (b *ChannelBroker) Publish(ctx context.Context, topic string, routingKey string, message []byte) error {
	ch, err := b.channel(topic, routingKey)
	if err != nil {
		return err
	}

	msg := domain.Message{
		Topic:      topic,
		RoutingKey: routingKey,
		Payload:    message,
		Timestamp:  time.Now(),
	}

	select {
	case ch <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		// Feed subscribers fell behind; the turn is dropped, the request is not.
		return fmt.Errorf("topic channel is full: %s:%s", topic, routingKey)
	}
}

func (b *ChannelBroker) Subscribe(ctx context.Context, topic string, routingKey string) (<-chan domain.Message, error) {
	ch, err := b.channel(topic, routingKey)
	if err != nil {
		return nil, err
	}

	log.WithCtx(ctx).Info("subscribed to topic",
		zap.String("topic", topic), zap.String("routing_key", routingKey))
	return ch, nil
}

func (b *ChannelBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	for _, ch := range b.topics {
		close(ch)
	}
	b.topics = make(map[string]chan domain.Message)

	log.With().Info("message broker closed")
	return nil
}
