package stream

import (
	"context"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Hub fans location updates out to websocket subscribers, keyed by event id.
// A redis pub/sub channel per event carries updates across nodes.
type Hub struct {
	redis   *redis.Client
	clients map[string]map[*Client]struct{}
	mu      sync.RWMutex
}

type Client struct {
	EventID string
	Send    chan []byte
}

func NewHub(redisClient *redis.Client) *Hub {
	h := &Hub{
		redis:   redisClient,
		clients: map[string]map[*Client]struct{}{},
	}

	if redisClient != nil {
		go h.subscribeRedis()
	}
	return h
}

func (h *Hub) Register(eventID string) *Client {
	client := &Client{
		EventID: eventID,
		Send:    make(chan []byte, 64),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[eventID] == nil {
		h.clients[eventID] = map[*Client]struct{}{}
	}
	h.clients[eventID][client] = struct{}{}
	return client
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if eventClients, ok := h.clients[client.EventID]; ok {
		delete(eventClients, client)
		if len(eventClients) == 0 {
			delete(h.clients, client.EventID)
		}
	}
	close(client.Send)
}

// Broadcast delivers a payload to local subscribers and publishes it for
// other nodes. Slow clients are skipped rather than blocked on.
func (h *Hub) Broadcast(eventID string, payload []byte) {
	h.mu.RLock()
	clients := h.clients[eventID]
	h.mu.RUnlock()

	for client := range clients {
		select {
		case client.Send <- payload:
		default:
		}
	}

	if h.redis != nil {
		err := h.redis.Publish(context.Background(), redisChannel(eventID), payload).Err()
		if err != nil {
			log.Printf("redis publish error: %v", err)
		}
	}
}

func (h *Hub) subscribeRedis() {
	ctx := context.Background()
	pubsub := h.redis.PSubscribe(ctx, "events:*:location")
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		eventID := eventIDFromChannel(msg.Channel)
		h.mu.RLock()
		clients := h.clients[eventID]
		h.mu.RUnlock()
		for client := range clients {
			select {
			case client.Send <- []byte(msg.Payload):
			default:
			}
		}
	}
}

func redisChannel(eventID string) string {
	return "events:" + eventID + ":location"
}

func eventIDFromChannel(ch string) string {
	// events:{event}:location
	const prefix = "events:"
	const suffix = ":location"
	if len(ch) <= len(prefix)+len(suffix) {
		return ""
	}
	return ch[len(prefix) : len(ch)-len(suffix)]
}
