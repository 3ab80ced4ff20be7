package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"company-profile-be/internal/pkg/logger"
	"company-profile-be/pkg/events"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const clusterChannel = "admin_content_events"

// Hub fans content events out to every connected admin session. With Redis
// configured, events reach sessions held by other instances as well.
type Hub struct {
	// Sessions per admin; one admin may hold several tabs.
	sessions map[uuid.UUID][]*session

	register   chan *session
	unregister chan *session

	mu sync.RWMutex

	// Redis connection for cross-instance fan-out. Nil runs single-instance.
	rdb *redis.Client

	// Identifies this instance so it skips its own Redis echoes.
	origin string

	logger logger.ILogger
}

type clusterMessage struct {
	Origin  string          `json:"origin"`
	Message json.RawMessage `json:"message"`
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *session),
		unregister: make(chan *session),
		sessions:   make(map[uuid.UUID][]*session),
		rdb:        rdb,
		origin:     uuid.NewString(),
		logger:     log,
	}
}

func (h *Hub) Run(ctx context.Context) {
	if h.rdb != nil {
		go h.subscribeToRedis(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return

		case s := <-h.register:
			h.mu.Lock()
			h.sessions[s.userID] = append(h.sessions[s.userID], s)
			h.mu.Unlock()
			h.logger.Info("Hub", "Admin session attached", map[string]interface{}{"user_id": s.userID})

		case s := <-h.unregister:
			h.remove(s)
		}
	}
}

// remove detaches s once; later calls for the same session are no-ops.
func (h *Hub) remove(s *session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	list := h.sessions[s.userID]
	for i, candidate := range list {
		if candidate != s {
			continue
		}
		list = append(list[:i], list[i+1:]...)
		close(s.send)
		if len(list) == 0 {
			delete(h.sessions, s.userID)
		} else {
			h.sessions[s.userID] = list
		}
		h.logger.Info("Hub", "Admin session detached", map[string]interface{}{"user_id": s.userID, "remaining": len(list)})
		return
	}
}

// SessionCount returns the number of live local sessions.
func (h *Hub) SessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, list := range h.sessions {
		n += len(list)
	}
	return n
}

// Broadcast delivers the event to all local sessions and publishes it to
// the other instances.
func (h *Hub) Broadcast(event events.Event) {
	data, err := json.Marshal(map[string]interface{}{
		"type":        event.EventType(),
		"data":        event.Payload(),
		"occurred_at": event.Timestamp(),
	})
	if err != nil {
		h.logger.Error("Hub", "Failed to encode event", map[string]interface{}{"error": err.Error(), "type": event.EventType()})
		return
	}

	h.deliverLocal(data)

	if h.rdb != nil {
		payload, _ := json.Marshal(clusterMessage{Origin: h.origin, Message: data})
		if err := h.rdb.Publish(context.Background(), clusterChannel, payload).Err(); err != nil {
			h.logger.Warn("Hub", "Redis publish failed", map[string]interface{}{"error": err.Error()})
		}
	}
}

func (h *Hub) deliverLocal(data []byte) {
	var slow []*session

	h.mu.RLock()
	for _, list := range h.sessions {
		for _, s := range list {
			select {
			case s.send <- data:
			default:
				slow = append(slow, s)
			}
		}
	}
	h.mu.RUnlock()

	// Slow sessions are dropped; the dashboard reconnects and refetches.
	for _, s := range slow {
		h.logger.Warn("Hub", "Send buffer full, dropping admin session", map[string]interface{}{"user_id": s.userID})
		h.remove(s)
	}
}

func (h *Hub) subscribeToRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload clusterMessage
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			h.logger.Warn("Hub", "Redis msg parse error", map[string]interface{}{"error": err.Error()})
			continue
		}
		if payload.Origin == h.origin {
			continue
		}
		h.deliverLocal(payload.Message)
	}
}
