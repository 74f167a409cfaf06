package websocket

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/safeguard-ai/agentic/domain"
	"github.com/safeguard-ai/agentic/utils/log"
	"go.uber.org/zap"
)

// Server is the live turn feed: it subscribes to completed simulation turns
// on the in-process broker and broadcasts them to every connected observer
// (the product's monitoring view).
type Server struct {
	upgrader websocket.Upgrader
	broker   domain.MessageBroker
	hub      *Hub
}

func NewServer(broker domain.MessageBroker) *Server {
	server := &Server{
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		broker:   broker,
		hub:      NewHub(),
	}

	go server.startTurnListener()

	return server
}

func (s *Server) RunHub() {
	s.hub.Run()
}

func (s *Server) Hub() *Hub {
	return s.hub
}

// startTurnListener forwards broker turn events to the hub. Handlers publish
// under the mode as routing key; the feed wants both modes, so it subscribes
// to each.
func (s *Server) startTurnListener() {
	ctx := context.Background()

	for _, mode := range []string{"adaptive", "voice"} {
		messages, err := s.broker.Subscribe(ctx, domain.TurnTopic, mode)
		if err != nil {
			log.WithCtx(ctx).Error("subscribing to turn topic failed",
				zap.String("mode", mode), zap.Error(err))
			continue
		}
		go s.forward(ctx, messages)
	}

	log.WithCtx(ctx).Info("turn feed listening")
}

func (s *Server) forward(ctx context.Context, messages <-chan domain.Message) {
	for {
		select {
		case msg, ok := <-messages:
			if !ok {
				return
			}

			var event domain.TurnEvent
			if err := json.Unmarshal(msg.Payload, &event); err != nil {
				log.WithCtx(ctx).Error("unmarshaling turn event", zap.Error(err))
				continue
			}

			frame, err := json.Marshal(map[string]interface{}{
				"type":        "turn",
				"mode":        event.Mode,
				"crime_type":  event.CrimeType,
				"next_speech": event.NextSpeech,
				"ai_message":  event.AIMessage,
				"timestamp":   event.Timestamp,
			})
			if err != nil {
				log.WithCtx(ctx).Error("marshaling feed frame", zap.Error(err))
				continue
			}

			s.hub.Broadcast(frame)

		case <-ctx.Done():
			return
		}
	}
}
