package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func engine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	return r
}

func hit(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRateLimit(t *testing.T) {
	r := engine(RateLimit(0.0001, 1))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	assert.Equal(t, http.StatusNoContent, hit(r, "/x").Code)
	w := hit(r, "/x")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), `"errorCode":429`)
}

func TestRateLimitPerIP(t *testing.T) {
	r := engine(RateLimitPerIP(0.0001, 1))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	assert.Equal(t, http.StatusNoContent, hit(r, "/x").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(r, "/x").Code)
}

func TestRecovery(t *testing.T) {
	r := engine(Recovery(zap.NewNop()))
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	w := hit(r, "/boom")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"errorCode":500,"errorMessage":"Error Occurs","data":{}}`, w.Body.String())
}

func TestTimeout(t *testing.T) {
	r := engine(Timeout(10 * time.Millisecond))
	r.GET("/slow", func(c *gin.Context) {
		<-c.Request.Context().Done()
	})

	w := hit(r, "/slow")
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Contains(t, w.Body.String(), `"errorCode":504`)
}

func TestRequestIDPropagates(t *testing.T) {
	r := engine(RequestID(zap.NewNop()))
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(KeyRequestID)) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(KeyRequestID, "abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get(KeyRequestID))
	assert.Equal(t, "abc", w.Body.String())

	w = hit(r, "/x")
	assert.NotEmpty(t, w.Header().Get(KeyRequestID))
}

func TestIPLimitersEvictIdleBuckets(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	set := newIPLimiters(1, 1, time.Minute)
	set.now = func() time.Time { return now }

	for _, ip := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		set.get(ip)
	}
	assert.Equal(t, 3, set.size())

	// 半程时仍活跃的 IP 不应被清掉
	now = now.Add(30 * time.Second)
	set.get("10.0.0.1")
	assert.Equal(t, 3, set.size())

	now = now.Add(45 * time.Second)
	set.get("10.0.0.9")
	assert.Equal(t, 2, set.size())

	now = now.Add(2 * time.Minute)
	set.get("10.0.0.9")
	assert.Equal(t, 1, set.size())
}

func TestIPLimitersKeepStateWhileActive(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	set := newIPLimiters(0.0001, 1, time.Minute)
	set.now = func() time.Time { return now }

	assert.True(t, set.get("1.1.1.1").Allow())
	now = now.Add(10 * time.Second)
	assert.False(t, set.get("1.1.1.1").Allow())
}

func TestIdleTTL(t *testing.T) {
	assert.Equal(t, time.Minute, idleTTL(10, 5))
	assert.Equal(t, 10*time.Minute, idleTTL(0.1, 60))
}

func TestRequestIDRejectsUnsafeHeader(t *testing.T) {
	r := engine(RequestID(zap.NewNop()))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for _, bad := range []string{strings.Repeat("a", 65), "has space"} {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(KeyRequestID, bad)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		got := w.Header().Get(KeyRequestID)
		assert.NotEqual(t, bad, got)
		assert.NotEmpty(t, got)
	}
}

func TestAccessLogCarriesRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := zap.New(core)
	r := engine(RequestID(l), AccessLog(l))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(KeyRequestID, "rid-1")
	r.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("HTTP").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "rid-1", entries[0].ContextMap()["rid"])
}

func TestLoggerFromFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	l := zap.NewNop()
	assert.Same(t, l, LoggerFrom(c, l))
	assert.NotNil(t, LoggerFrom(c, nil))
}
