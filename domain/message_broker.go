package domain

import (
	"context"
	"time"
)

// TurnTopic carries completed simulation turns to the live feed.
const TurnTopic = "simulation.turns"

// MessageBroker is the in-process pub/sub bridging request handlers and the
// websocket feed.
type MessageBroker interface {
	// Publish sends a message to a topic with a routing key.
	Publish(ctx context.Context, topic string, routingKey string, message []byte) error

	// Subscribe listens for messages on a topic and routing key.
	Subscribe(ctx context.Context, topic string, routingKey string) (<-chan Message, error)

	// Close shuts the broker down.
	Close() error
}

// Message is one delivery from the broker.
type Message struct {
	Topic      string
	RoutingKey string
	Payload    []byte
	Timestamp  time.Time
}

// TurnEvent is the payload published for every completed simulation turn,
// consumed by the live observer feed.
type TurnEvent struct {
	Mode       string    `json:"mode"` // "adaptive" or "voice"
	CrimeType  string    `json:"crime_type,omitempty"`
	NextSpeech string    `json:"next_speech,omitempty"`
	AIMessage  string    `json:"ai_message,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
