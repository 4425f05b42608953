package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	resp "catalog-admin/internal/transport/http/response"
)

func tooMany(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, resp.Error(http.StatusTooManyRequests, "too many requests"))
}

// RateLimit 全局令牌桶限速
func RateLimit(rps rate.Limit, burst int) gin.HandlerFunc {
	lim := rate.NewLimiter(rps, burst)
	return func(c *gin.Context) {
		if lim.Allow() {
			c.Next()
			return
		}
		tooMany(c)
	}
}

// RateLimitPerIP 每 IP 一个桶；用于登录这类容易被爆破的接口
func RateLimitPerIP(rps rate.Limit, burst int) gin.HandlerFunc {
	set := newIPLimiters(rps, burst, idleTTL(rps, burst))
	return func(c *gin.Context) {
		if set.get(c.ClientIP()).Allow() {
			c.Next()
			return
		}
		tooMany(c)
	}
}

// idleTTL 桶空闲到能回满的时间后即可丢弃，至少一分钟
func idleTTL(rps rate.Limit, burst int) time.Duration {
	ttl := time.Minute
	if rps > 0 {
		if full := time.Duration(float64(burst) / float64(rps) * float64(time.Second)); full > ttl {
			ttl = full
		}
	}
	return ttl
}

type ipBucket struct {
	lim  *rate.Limiter
	seen time.Time
}

// ipLimiters 空闲超过 idle 的桶在下次访问时被清掉，map 大小受活跃 IP 数约束
type ipLimiters struct {
	mu        sync.Mutex
	rps       rate.Limit
	burst     int
	idle      time.Duration
	now       func() time.Time
	buckets   map[string]*ipBucket
	lastSweep time.Time
}

func newIPLimiters(rps rate.Limit, burst int, idle time.Duration) *ipLimiters {
	return &ipLimiters{
		rps:     rps,
		burst:   burst,
		idle:    idle,
		now:     time.Now,
		buckets: make(map[string]*ipBucket),
	}
}

func (s *ipLimiters) get(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= s.idle {
		for k, b := range s.buckets {
			if now.Sub(b.seen) >= s.idle {
				delete(s.buckets, k)
			}
		}
		s.lastSweep = now
	}
	b, ok := s.buckets[ip]
	if !ok {
		b = &ipBucket{lim: rate.NewLimiter(s.rps, s.burst)}
		s.buckets[ip] = b
	}
	b.seen = now
	return b.lim
}

func (s *ipLimiters) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buckets)
}
