package websocket

import (
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const (
	writeTimeout    = 10 * time.Second
	idleTimeout     = 60 * time.Second
	keepAlivePeriod = idleTimeout * 9 / 10
	sendBuffer      = 256
	// Admins only answer pings, so inbound frames stay tiny.
	inboundLimit = 512
)

// session is one admin tab attached to the hub.
type session struct {
	hub    *Hub
	conn   *websocket.Conn
	userID uuid.UUID
	send   chan []byte
}

// Serve attaches conn to the hub and blocks until the peer disconnects.
func (h *Hub) Serve(conn *websocket.Conn, userID uuid.UUID) {
	s := &session{hub: h, conn: conn, userID: userID, send: make(chan []byte, sendBuffer)}
	h.register <- s

	go s.forward()
	s.drain()
}

// drain discards inbound frames and detaches the session on the first read error.
func (s *session) drain() {
	defer func() {
		s.hub.unregister <- s
		_ = s.conn.Close()
	}()

	s.conn.SetReadLimit(inboundLimit)
	_ = s.conn.SetReadDeadline(time.Now().Add(idleTimeout))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(idleTimeout))
	})

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.hub.logger.Warn("Hub", "Admin socket closed unexpectedly", map[string]interface{}{
					"user_id": s.userID,
					"error":   err.Error(),
				})
			}
			return
		}
	}
}

// forward writes queued events and keep-alive pings until send is closed.
func (s *session) forward() {
	ticker := time.NewTicker(keepAlivePeriod)
	defer func() {
		ticker.Stop()
		_ = s.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				_ = s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
