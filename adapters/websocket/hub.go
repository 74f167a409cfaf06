package websocket

import (
	"github.com/safeguard-ai/agentic/utils/log"
)

// Hub tracks live feed connections and fans turn events out to them. All map
// access happens on the run loop; registration and broadcast are channel
// sends so the forwarder goroutines never touch the client set directly.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
	}
}

// Run starts the hub loop.
func (h *Hub) Run() {
	go h.run()
}

func (h *Hub) run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			log.WithCtx(client.ctx).Debug("feed client registered")

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.Close()
				log.WithCtx(client.ctx).Debug("feed client unregistered")
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				if !client.IsClosed() {
					client.SendMessage(message)
				}
			}
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Broadcast queues a frame for every connected observer. Drops the frame
// when the hub is saturated; the feed is best-effort.
func (h *Hub) Broadcast(message []byte) {
	select {
	case h.broadcast <- message:
	default:
	}
}
