package handler

import (
	"strings"

	"company-profile-be/internal/model"
	"company-profile-be/internal/pkg/apperr"
	"company-profile-be/internal/pkg/logger"
	"company-profile-be/internal/pkg/serverutils"
	internalWS "company-profile-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// NotificationHandler upgrades authenticated admin sessions to the live
// content feed.
type NotificationHandler struct {
	hub       *internalWS.Hub
	jwtSecret string
	logger    logger.ILogger
}

func NewNotificationHandler(hub *internalWS.Hub, jwtSecret string, log logger.ILogger) *NotificationHandler {
	return &NotificationHandler{
		hub:       hub,
		jwtSecret: jwtSecret,
		logger:    log,
	}
}

// ServeWs authenticates the handshake and hands the connection to the hub.
// Browsers cannot set headers on a websocket handshake, so the token may
// come from the query string.
func (h *NotificationHandler) ServeWs(c *fiber.Ctx) error {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		tokenStr = strings.TrimPrefix(c.Get("Authorization"), "Bearer ")
	}
	if tokenStr == "" {
		return apperr.Unauthorized("missing token")
	}

	claims, err := serverutils.ParseToken(h.jwtSecret, tokenStr)
	if err != nil {
		h.logger.Warn("NotificationHandler", "Invalid token in websocket handshake", map[string]interface{}{"error": err.Error()})
		return apperr.Unauthorized(err.Error())
	}
	if claims.Role != model.UserRoleAdmin && claims.Role != model.UserRoleEditor {
		return apperr.Forbidden("access denied: insufficient role")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return apperr.Unauthorized("invalid token subject")
	}

	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("NotificationHandler", "Starting WebSocket session", map[string]interface{}{"user_id": userID})
		h.hub.Serve(conn, userID)
		h.logger.Info("NotificationHandler", "WebSocket session ended", map[string]interface{}{"user_id": userID})
	})(c)
}

// RegisterRoutes must run before the JWT-guarded admin group is mounted,
// since the handshake authenticates itself.
func (h *NotificationHandler) RegisterRoutes(api fiber.Router) {
	api.Get("/admin/ws", h.ServeWs)
}
