package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"company-profile-be/internal/dto"
	"company-profile-be/internal/mapper"
	"company-profile-be/internal/model"
	"company-profile-be/internal/pkg/logger"
	"company-profile-be/internal/pkg/serverutils"
	"company-profile-be/internal/pkg/storage"
	"company-profile-be/internal/repository/memory"
	"company-profile-be/internal/repository/unitofwork"
	"company-profile-be/internal/resource"
	"company-profile-be/internal/service"
	"company-profile-be/pkg/cache"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "controller-test-secret"

type testApp struct {
	app         *fiber.App
	adminToken  string
	editorToken string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	factory := unitofwork.NewMemoryRepositoryFactory(memory.NewDatabase())
	log := logger.NewNopLogger()

	deps := service.ResourceServiceDeps{
		Factory:  factory,
		Storage:  storage.New(storage.NewLocalBackend(t.TempDir(), "/uploads"), storage.Options{MaxSizeBytes: 1 << 20}),
		Cache:    cache.NewLocalEngine(time.Minute),
		CacheTTL: time.Minute,
		Logger:   log,
	}

	controllers := []IResourceController{
		NewResourceController[model.Product, dto.CreateProductRequest, dto.UpdateProductRequest](
			service.NewResourceService[model.Product](resource.Products, deps), mapper.NewProductMapper()),
		NewResourceController[model.News, dto.CreateNewsRequest, dto.UpdateNewsRequest](
			service.NewResourceService[model.News](resource.News, deps), mapper.NewNewsMapper()),
		NewResourceController[model.Contact, dto.CreateContactRequest, dto.UpdateContactRequest](
			service.NewResourceService[model.Contact](resource.Contacts, deps), mapper.NewContactMapper()),
	}

	authService := service.NewAuthService(factory, testSecret, time.Hour, log)
	ctx := t.Context()
	admin, _, err := authService.EnsureUser(ctx, "admin@example.com", "admin-pass", "Admin", model.UserRoleAdmin)
	require.NoError(t, err)
	editor, _, err := authService.EnsureUser(ctx, "editor@example.com", "editor-pass", "Editor", model.UserRoleEditor)
	require.NoError(t, err)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			return serverutils.WriteError(ctx, err, log, false)
		},
	})
	app.Use(serverutils.ErrorHandlerMiddleware(log, false))

	api := app.Group("/api")
	auth := serverutils.NewJwtMiddleware(testSecret)
	NewAuthController(authService).RegisterRoutes(api, auth)
	for _, c := range controllers {
		c.RegisterPublicRoutes(api)
	}
	adminGroup := api.Group("/admin", auth)
	NewUserController(service.NewUserService(factory, log)).RegisterRoutes(adminGroup)
	for _, c := range controllers {
		c.RegisterAdminRoutes(adminGroup)
	}

	sign := func(u *model.User) string {
		token, _, err := serverutils.SignToken(testSecret, u.Id.String(), u.Email, u.Role, time.Hour)
		require.NoError(t, err)
		return token
	}
	return &testApp{app: app, adminToken: sign(admin), editorToken: sign(editor)}
}

type envelope struct {
	Success     bool              `json:"success"`
	Message     string            `json:"message"`
	Data        json.RawMessage   `json:"data"`
	Count       int64             `json:"count"`
	TotalPages  int               `json:"totalPages"`
	CurrentPage int               `json:"currentPage"`
	Errors      map[string]string `json:"errors"`
}

func (a *testApp) do(t *testing.T, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return a.send(t, req, token)
}

func (a *testApp) send(t *testing.T, req *http.Request, token string) (int, envelope) {
	t.Helper()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestWidgetScenario(t *testing.T) {
	a := newTestApp(t)

	status, env := a.do(t, http.MethodPost, "/api/admin/products", a.adminToken, map[string]interface{}{
		"name": "Widget", "slug": "widget", "is_active": true,
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	created := decode[model.Product](t, env.Data)
	assert.NotZero(t, created.Id)

	status, env = a.do(t, http.MethodGet, "/api/products/slug/widget", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, created.Id, decode[model.Product](t, env.Data).Id)

	status, _ = a.do(t, http.MethodPut, fmt.Sprintf("/api/admin/products/%d", created.Id), a.adminToken, map[string]interface{}{"is_active": false})
	require.Equal(t, http.StatusOK, status)

	status, env = a.do(t, http.MethodGet, "/api/admin/products?is_active=true", a.adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(0), env.Count)
	assert.JSONEq(t, "[]", string(env.Data))

	status, _ = a.do(t, http.MethodGet, "/api/products/slug/widget", "", nil)
	assert.Equal(t, http.StatusNotFound, status, "inactive products are hidden from the public")

	status, _ = a.do(t, http.MethodDelete, fmt.Sprintf("/api/admin/products/%d", created.Id), a.adminToken, nil)
	require.Equal(t, http.StatusOK, status)

	status, env = a.do(t, http.MethodGet, fmt.Sprintf("/api/admin/products/%d", created.Id), a.adminToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Success)
	assert.Equal(t, "Product not found", env.Message)
}

func TestAdminListPagination(t *testing.T) {
	a := newTestApp(t)
	for i := 1; i <= 25; i++ {
		status, env := a.do(t, http.MethodPost, "/api/admin/products", a.editorToken, map[string]interface{}{
			"name": fmt.Sprintf("Item %d", i), "order_number": i,
		})
		require.Equal(t, http.StatusCreated, status, env.Message)
	}

	tests := []struct {
		query       string
		wantLen     int
		wantPages   int
		wantCurrent int
	}{
		{query: "", wantLen: 10, wantPages: 3, wantCurrent: 1},
		{query: "?page=3&limit=10", wantLen: 5, wantPages: 3, wantCurrent: 3},
		{query: "?page=4&limit=10", wantLen: 0, wantPages: 3, wantCurrent: 4},
		{query: "?limit=500", wantLen: 25, wantPages: 1, wantCurrent: 1},
		{query: "?page=abc&limit=-3", wantLen: 10, wantPages: 3, wantCurrent: 1},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			status, env := a.do(t, http.MethodGet, "/api/admin/products"+tt.query, a.adminToken, nil)
			require.Equal(t, http.StatusOK, status)
			assert.Equal(t, int64(25), env.Count)
			assert.Equal(t, tt.wantPages, env.TotalPages)
			assert.Equal(t, tt.wantCurrent, env.CurrentPage)
			assert.Len(t, decode[[]model.Product](t, env.Data), tt.wantLen)
		})
	}
}

func TestPublicListIsUnpaginatedAndFiltered(t *testing.T) {
	a := newTestApp(t)
	for i, active := range []bool{true, true, false} {
		status, _ := a.do(t, http.MethodPost, "/api/admin/products", a.adminToken, map[string]interface{}{
			"name": fmt.Sprintf("P%d", i), "is_active": active,
		})
		require.Equal(t, http.StatusCreated, status)
	}

	status, env := a.do(t, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(2), env.Count)
	assert.Equal(t, 1, env.TotalPages)
	assert.Len(t, decode[[]model.Product](t, env.Data), 2)
}

func TestMalformedQueryNeverFailsList(t *testing.T) {
	a := newTestApp(t)

	for name, featured := range map[string]bool{"plain": false, "starred": true} {
		status, _ := a.do(t, http.MethodPost, "/api/admin/products", a.adminToken, map[string]interface{}{
			"name": name, "is_featured": featured,
		})
		require.Equal(t, http.StatusCreated, status)
	}

	tests := []struct {
		query string
		want  []string
	}{
		{query: "is_featured=1", want: []string{"plain"}},
		{query: "is_featured=yes", want: []string{"plain"}},
		{query: "is_featured=true", want: []string{"starred"}},
		{query: "is_featured=true&page=abc&limit=-3", want: []string{"starred"}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			for _, path := range []string{"/api/products?", "/api/admin/products?"} {
				status, env := a.do(t, http.MethodGet, path+tt.query, a.adminToken, nil)
				require.Equal(t, http.StatusOK, status, path)
				assert.True(t, env.Success)

				var names []string
				for _, p := range decode[[]model.Product](t, env.Data) {
					names = append(names, p.Name)
				}
				assert.Equal(t, tt.want, names, path)
			}
		})
	}

	status, _ := a.do(t, http.MethodGet, "/api/admin/products/abc", a.adminToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestUnpaginatedPublicListReportsFirstPage(t *testing.T) {
	a := newTestApp(t)

	status, _ := a.do(t, http.MethodPost, "/api/admin/products", a.adminToken, map[string]interface{}{"name": "Solo"})
	require.Equal(t, http.StatusCreated, status)

	status, env := a.do(t, http.MethodGet, "/api/products?page=2", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(1), env.Count)
	assert.Equal(t, 1, env.CurrentPage)
	assert.Equal(t, 1, env.TotalPages)
	assert.Len(t, decode[[]model.Product](t, env.Data), 1)
}

func TestCreateValidationAndConflicts(t *testing.T) {
	a := newTestApp(t)

	status, env := a.do(t, http.MethodPost, "/api/admin/products", a.adminToken, map[string]interface{}{
		"slug": "Not A Slug", "features": []string{""},
	})
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "is required", env.Errors["name"])
	assert.Contains(t, env.Errors, "slug")
	assert.Contains(t, env.Errors, "features[0]")

	status, _ = a.do(t, http.MethodPost, "/api/admin/products", a.adminToken, map[string]interface{}{"name": "A", "slug": "same"})
	require.Equal(t, http.StatusCreated, status)

	status, env = a.do(t, http.MethodPost, "/api/admin/products", a.adminToken, map[string]interface{}{"name": "B", "slug": "same"})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "unique", env.Errors["slug"])
}

func TestAuthorization(t *testing.T) {
	a := newTestApp(t)

	status, _ := a.do(t, http.MethodGet, "/api/admin/products", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = a.do(t, http.MethodGet, "/api/admin/products", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, env := a.do(t, http.MethodPost, "/api/contacts", "", map[string]interface{}{
		"name": "Ana", "email": "ana@example.com", "subject": "Hi", "message": "Hello",
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	contact := decode[model.Contact](t, env.Data)

	status, _ = a.do(t, http.MethodDelete, fmt.Sprintf("/api/admin/contacts/%d", contact.Id), a.editorToken, nil)
	assert.Equal(t, http.StatusForbidden, status, "only admins delete contacts")

	status, _ = a.do(t, http.MethodGet, "/api/contacts", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, status, "contacts are not publicly listed")
}

func TestContactWorkflow(t *testing.T) {
	a := newTestApp(t)

	status, env := a.do(t, http.MethodPost, "/api/contacts", "", map[string]interface{}{
		"name": "Ana", "email": "ANA@Example.com", "subject": "Quote", "message": "Please call",
	})
	require.Equal(t, http.StatusCreated, status)
	contact := decode[model.Contact](t, env.Data)
	assert.Equal(t, model.ContactStatusNew, contact.Status)
	assert.Equal(t, "ana@example.com", contact.Email)

	path := fmt.Sprintf("/api/admin/contacts/%d/status", contact.Id)

	status, env = a.do(t, http.MethodPatch, path, a.editorToken, map[string]string{"status": "replied"})
	require.Equal(t, http.StatusOK, status, env.Message)
	replied := decode[model.Contact](t, env.Data)
	require.NotNil(t, replied.RepliedBy)
	assert.Equal(t, "editor@example.com", *replied.RepliedBy)

	status, env = a.do(t, http.MethodPatch, path, a.editorToken, map[string]string{"status": "new"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "cannot change from replied to new", env.Errors["status"])

	status, env = a.do(t, http.MethodPatch, path, a.editorToken, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "is required", env.Errors["status"])
}

func TestNewsPublishAndViews(t *testing.T) {
	a := newTestApp(t)

	status, env := a.do(t, http.MethodPost, "/api/admin/news", a.adminToken, map[string]interface{}{"title": "Big Launch"})
	require.Equal(t, http.StatusCreated, status)
	news := decode[model.News](t, env.Data)
	assert.Equal(t, "big-launch", news.Slug)

	status, _ = a.do(t, http.MethodGet, "/api/news/slug/big-launch", "", nil)
	assert.Equal(t, http.StatusNotFound, status, "drafts are hidden")

	status, env = a.do(t, http.MethodPatch, fmt.Sprintf("/api/admin/news/%d/publish", news.Id), a.adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "News published", env.Message)
	assert.True(t, decode[model.News](t, env.Data).IsPublished)

	for want := int64(1); want <= 2; want++ {
		status, env = a.do(t, http.MethodGet, "/api/news/slug/big-launch", "", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, want, decode[model.News](t, env.Data).Views)
	}

	status, env = a.do(t, http.MethodGet, fmt.Sprintf("/api/admin/news/%d", news.Id), a.adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(2), decode[model.News](t, env.Data).Views)
}

func TestMultipartCreate(t *testing.T) {
	a := newTestApp(t)

	var img bytes.Buffer
	require.NoError(t, imaging.Encode(&img, imaging.New(4, 4, color.NRGBA{G: 255, A: 255}), imaging.PNG))

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("data", `{"name":"Camera","features":["zoom"]}`))
	part, err := w.CreateFormFile("image", "camera.png")
	require.NoError(t, err)
	_, err = part.Write(img.Bytes())
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/products", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())

	status, env := a.send(t, req, a.adminToken)
	require.Equal(t, http.StatusCreated, status, env.Message)
	p := decode[model.Product](t, env.Data)
	assert.Equal(t, "camera", p.Slug)
	assert.True(t, strings.HasPrefix(p.ImageUrl, "/uploads/products/"))
	assert.Equal(t, []string{"zoom"}, []string(p.Features))
}

func TestLoginAndMe(t *testing.T) {
	a := newTestApp(t)

	status, env := a.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "admin@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "invalid email or password", env.Message)

	status, env = a.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "admin@example.com", "password": "admin-pass"})
	require.Equal(t, http.StatusOK, status)
	login := decode[dto.LoginResponse](t, env.Data)
	require.NotEmpty(t, login.Token)

	status, env = a.do(t, http.MethodGet, "/api/auth/me", login.Token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "admin@example.com", decode[dto.UserResponse](t, env.Data).Email)
}

func TestContactFormIsRateLimited(t *testing.T) {
	a := newTestApp(t)
	body := map[string]interface{}{"name": "Ana", "email": "ana@example.com", "subject": "Hi", "message": "Hello"}

	for i := 0; i < 3; i++ {
		status, _ := a.do(t, http.MethodPost, "/api/contacts", "", body)
		require.Equal(t, http.StatusCreated, status)
	}
	status, env := a.do(t, http.MethodPost, "/api/contacts", "", body)
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.False(t, env.Success)
}

func TestUserManagementIsAdminOnly(t *testing.T) {
	a := newTestApp(t)

	status, _ := a.do(t, http.MethodGet, "/api/admin/users", a.editorToken, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, env := a.do(t, http.MethodGet, "/api/admin/users", a.adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(2), env.Count)

	status, env = a.do(t, http.MethodPost, "/api/admin/users", a.adminToken, map[string]string{
		"email": "new@example.com", "password": "short", "full_name": "New", "role": "owner",
	})
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "must be at least 8 characters", env.Errors["password"])
	assert.Equal(t, "must be one of: admin, editor", env.Errors["role"])

	status, _ = a.do(t, http.MethodGet, "/api/admin/users/not-a-uuid", a.adminToken, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = a.do(t, http.MethodPut, "/api/admin/profile/password", a.editorToken, map[string]string{
		"current_password": "editor-pass", "new_password": "editor-pass-2",
	})
	assert.Equal(t, http.StatusOK, status)
}

func TestCreateThenGetReturnsNormalisedFields(t *testing.T) {
	a := newTestApp(t)

	status, env := a.do(t, http.MethodPost, "/api/admin/products", a.adminToken, map[string]interface{}{
		"name": "  Widget  ", "category": " tools ", "features": []string{" fast "},
	})
	require.Equal(t, http.StatusCreated, status)
	created := decode[model.Product](t, env.Data)
	assert.Equal(t, "Widget", created.Name)
	assert.Equal(t, "tools", created.Category)

	status, env = a.do(t, http.MethodGet, fmt.Sprintf("/api/admin/products/%d", created.Id), a.adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	found := decode[model.Product](t, env.Data)
	assert.Equal(t, created.Name, found.Name)
	assert.Equal(t, created.Category, found.Category)
	assert.Equal(t, created.Features, found.Features)
}
