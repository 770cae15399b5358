package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlaserp/backend/internal/business"
	"github.com/atlaserp/backend/internal/config"
	"github.com/atlaserp/backend/internal/core/services"
	"github.com/atlaserp/backend/internal/infrastructure/logger"
	"github.com/atlaserp/backend/internal/transport/http/dto"
)

const testCookie = "session"

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	log := logger.NewNop()

	identity, err := services.NewIdentityService(services.IdentityServiceConfig{
		Logger: log,
		Bootstrap: services.BootstrapUser{
			Username:   "admin",
			Credential: "admin",
			Department: "HQ",
		},
	})
	require.NoError(t, err)

	registry, err := services.NewRegistryService(business.Catalog())
	require.NoError(t, err)

	dispatcher := services.NewDispatchService(services.DispatchServiceConfig{
		Workers: 4,
		Logger:  log,
	})

	cfg := &config.Config{}
	cfg.Auth.CookieName = testCookie
	cfg.Static.Dir = t.TempDir()

	app := fiber.New()
	SetupRoutes(app, RouterConfig{
		Logger:     log,
		Config:     cfg,
		Identity:   identity,
		Registry:   registry,
		Dispatcher: dispatcher,
	})
	return app
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return out
}

func login(t *testing.T, app *fiber.App, username, password string) *http.Cookie {
	t.Helper()
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/login", map[string]string{
		"username": username,
		"password": password,
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	for _, c := range resp.Cookies() {
		if c.Name == testCookie {
			require.NotEmpty(t, c.Value)
			return c
		}
	}
	t.Fatal("no session cookie in login response")
	return nil
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/login", map[string]string{
		"username": "admin",
		"password": "wrong",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, dto.CodeUnauthenticated, body.Code)
}

func TestLoginLogoutLifecycle(t *testing.T) {
	app := newTestApp(t)

	cookie := login(t, app, "admin", "admin")

	// Live session resolves.
	req := jsonRequest(t, http.MethodGet, "/api/me", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	me := decodeBody[dto.MeResponse](t, resp)
	assert.Equal(t, "admin", me.Username)
	assert.Equal(t, "HQ", me.Department)
	assert.NotEmpty(t, me.Modules)

	// Logout revokes it.
	req = jsonRequest(t, http.MethodPost, "/api/logout", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req = jsonRequest(t, http.MethodGet, "/api/me", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMeWithoutSessionIsUnauthenticated(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/me", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRunBatchReturnsOrderedResults(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app, "admin", "admin")

	req := jsonRequest(t, http.MethodPost, "/api/run", map[string]any{
		"tasks": []string{"iam:create_user", "hrm:payroll", "finance:expense"},
	})
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[dto.RunBatchResponse](t, resp)
	assert.Equal(t, "admin", body.User)
	require.Len(t, body.Results, 3)
	for _, id := range []string{"iam:create_user", "hrm:payroll", "finance:expense"} {
		assert.Contains(t, body.Results, id)
		assert.NotNil(t, body.Results[id])
	}
}

func TestRunBatchWithoutSession(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/run", map[string]any{
		"tasks": []string{"iam:create_user"},
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRunBatchEnumeratesUnknownTasks(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app, "admin", "admin")

	req := jsonRequest(t, http.MethodPost, "/api/run", map[string]any{
		"tasks": []string{"iam:create_user", "b:missing", "z:missing"},
	})
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, dto.CodeUnknownTasks, body.Code)
	assert.Equal(t, []string{"b:missing", "z:missing"}, body.TaskIDs)
}

func TestRunBatchForbiddenForUngrantedModule(t *testing.T) {
	app := newTestApp(t)
	adminCookie := login(t, app, "admin", "admin")

	// Provision a user limited to the office module.
	req := jsonRequest(t, http.MethodPost, "/api/users", map[string]any{
		"username": "clerk",
		"password": "pw",
		"modules":  []string{"office"},
	})
	req.AddCookie(adminCookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	clerkCookie := login(t, app, "clerk", "pw")

	req = jsonRequest(t, http.MethodPost, "/api/run", map[string]any{
		"tasks": []string{"document:edit", "hrm:payroll", "finance:expense"},
	})
	req.AddCookie(clerkCookie)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, dto.CodeForbiddenTasks, body.Code)
	assert.Equal(t, []string{"hrm:payroll", "finance:expense"}, body.TaskIDs)
}

func TestGrantModulesTakesEffectOnLiveSession(t *testing.T) {
	app := newTestApp(t)
	adminCookie := login(t, app, "admin", "admin")

	req := jsonRequest(t, http.MethodPost, "/api/users", map[string]any{
		"username": "eve",
		"password": "pw",
		"modules":  []string{"office"},
	})
	req.AddCookie(adminCookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	eveCookie := login(t, app, "eve", "pw")

	runFinance := func() int {
		req := jsonRequest(t, http.MethodPost, "/api/run", map[string]any{
			"tasks": []string{"finance:expense"},
		})
		req.AddCookie(eveCookie)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, http.StatusForbidden, runFinance())

	req = jsonRequest(t, http.MethodPut, "/api/users/eve/modules", map[string]any{
		"modules": []string{"finance"},
	})
	req.AddCookie(adminCookie)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, http.StatusOK, runFinance())
}

func TestCreateUserRequiresAdmin(t *testing.T) {
	app := newTestApp(t)
	adminCookie := login(t, app, "admin", "admin")

	req := jsonRequest(t, http.MethodPost, "/api/users", map[string]any{
		"username": "frank",
		"password": "pw",
	})
	req.AddCookie(adminCookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	frankCookie := login(t, app, "frank", "pw")

	req = jsonRequest(t, http.MethodPost, "/api/users", map[string]any{
		"username": "mallory",
		"password": "pw",
	})
	req.AddCookie(frankCookie)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, dto.CodeForbidden, body.Code)
}

func TestMalformedBodyIsDistinctClientError(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app, "admin", "admin")

	req := httptest.NewRequest(http.MethodPost, "/api/run", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, dto.CodeMalformedRequest, body.Code)
}
