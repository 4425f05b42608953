package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-admin/internal/core/auth"
	"catalog-admin/internal/core/config"
	"catalog-admin/internal/transport/http/ez"
	mdw "catalog-admin/internal/transport/http/middleware"
)

type demoModule struct{}

func (demoModule) Mount(public, protected ez.EZ) {
	ez.RegisterAction(public, ez.Action[struct{}, string]{
		Method:  http.MethodGet,
		Path:    "/ping",
		Binder:  ez.BindNone,
		Handler: func(*gin.Context, *struct{}) (string, error) { return "pong", nil },
	})
	ez.RegisterAction(protected, ez.Action[struct{}, string]{
		Method: http.MethodGet,
		Path:   "/whoami",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (string, error) {
			return c.GetString(mdw.KeyUserID), nil
		},
	})
}

type envelope struct {
	ErrorCode    int             `json:"errorCode"`
	ErrorMessage string          `json:"errorMessage"`
	Data         json.RawMessage `json:"data"`
}

func newEngine(t *testing.T, required bool) (*gin.Engine, *auth.JWTer, *auth.Denylist) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	mr := miniredis.RunT(t)
	jw := &auth.JWTer{Secret: []byte("s"), Issuer: "test", TTL: time.Hour}
	deny := &auth.Denylist{RDB: redis.NewClient(&redis.Options{Addr: mr.Addr()}), JWT: jw}
	r := NewAPIEngine(Deps{
		HTTP:         config.HTTP{RateLimitRPS: 100, RateLimitBurst: 100, MaxConcurrent: 10, MaxBodyMB: 1, RequestTimeoutSec: 5},
		JWT:          jw,
		Deny:         deny,
		Cookie:       "jwt",
		AuthRequired: required,
		UploadDir:    t.TempDir(),
	}, demoModule{})
	return r, jw, deny
}

func get(t *testing.T, r http.Handler, path string, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func TestPublicRoutes(t *testing.T) {
	r, _, _ := newEngine(t, true)

	w, _ := get(t, r, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, env := get(t, r, "/api/v1/ping", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `"pong"`, string(env.Data))
	assert.NotEmpty(t, w.Header().Get(mdw.KeyRequestID))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	w, _ = get(t, r, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "catalog_http_requests_total")
}

func TestProtectedRoutes(t *testing.T) {
	r, jw, deny := newEngine(t, true)

	w, env := get(t, r, "/api/v1/whoami", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, http.StatusUnauthorized, env.ErrorCode)

	w, env = get(t, r, "/api/v1/whoami", "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid token", env.ErrorMessage)

	tok, err := jw.Issue("alice", []string{"admin"})
	require.NoError(t, err)
	w, env = get(t, r, "/api/v1/whoami", tok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `"alice"`, string(env.Data))

	require.NoError(t, deny.Revoke(context.Background(), tok))
	w, env = get(t, r, "/api/v1/whoami", tok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "token revoked", env.ErrorMessage)
}

func TestAuthDisabled(t *testing.T) {
	r, _, _ := newEngine(t, false)
	w, _ := get(t, r, "/api/v1/whoami", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthPingFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewAPIEngine(Deps{Ping: func() error { return assert.AnError }})
	w, _ := get(t, r, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

type ordered struct {
	name string
	prio int
	log  *[]string
}

func (o ordered) Mount(ez.EZ, ez.EZ) { *o.log = append(*o.log, o.name) }
func (o ordered) Priority() int      { return o.prio }

func TestRegistryOrder(t *testing.T) {
	var got []string
	var reg Registry
	reg.Register(ordered{"b", 20, &got}, nil, ordered{"a", 10, &got}, ordered{"c", 20, &got})
	assert.Equal(t, 3, reg.Len())

	g := ez.New(gin.New().Group("/"), nil)
	reg.MountAll(g, g)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}
