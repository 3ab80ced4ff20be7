package serverutils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"company-profile-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "unit-test-secret"

func TestSignAndParseToken(t *testing.T) {
	token, expiresAt, err := SignToken(secret, "u-1", "a@example.com", "editor", time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := ParseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, "editor", claims.Role)

	_, err = ParseToken("other-secret", token)
	assert.Error(t, err)

	expired, _, err := SignToken(secret, "u-1", "a@example.com", "editor", -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(secret, expired)
	assert.Error(t, err)
}

func TestJwtMiddlewareAndRoles(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(logger.NewNopLogger(), false))
	admin := app.Group("/admin", NewJwtMiddleware(secret))
	admin.Get("/me", func(ctx *fiber.Ctx) error {
		return ctx.SendString(CurrentEmail(ctx) + "|" + CurrentUserID(ctx))
	})
	admin.Delete("/thing", RequireRoles("admin"), func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusNoContent)
	})

	editor, _, err := SignToken(secret, "u-2", "ed@example.com", "editor", time.Hour)
	require.NoError(t, err)
	root, _, err := SignToken(secret, "u-1", "root@example.com", "admin", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		method string
		path   string
		header string
		want   int
	}{
		{name: "no header", method: http.MethodGet, path: "/admin/me", want: 401},
		{name: "not bearer", method: http.MethodGet, path: "/admin/me", header: "Basic abc", want: 401},
		{name: "bad token", method: http.MethodGet, path: "/admin/me", header: "Bearer abc", want: 401},
		{name: "editor reads", method: http.MethodGet, path: "/admin/me", header: "Bearer " + editor, want: 200},
		{name: "editor deletes", method: http.MethodDelete, path: "/admin/thing", header: "Bearer " + editor, want: 403},
		{name: "admin deletes", method: http.MethodDelete, path: "/admin/thing", header: "Bearer " + root, want: 204},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
