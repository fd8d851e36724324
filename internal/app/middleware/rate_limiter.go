package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"resident-records-service/internal/error/code"
	"resident-records-service/internal/error/response"
)

// Limit types.
const (
	LimitByIP       = "ip"
	LimitByPath     = "path"
	LimitByCombined = "combined"
	LimitByCustom   = "custom"
)

// RateLimiterConfig configures RateLimiter
type RateLimiterConfig struct {
	Rate       float64                   // requests per second
	Burst      int                       // bucket size
	ExpiryTime time.Duration             // idle limiters are dropped after this
	LimitType  string                    // ip, path, combined or custom
	KeyFunc    func(*gin.Context) string // used by LimitByCustom
}

// DefaultRateLimiterConfig is applied to missing fields
var DefaultRateLimiterConfig = RateLimiterConfig{
	Rate:       10,
	Burst:      20,
	ExpiryTime: 1 * time.Hour,
	LimitType:  LimitByIP,
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterSet keeps one token bucket per key
type limiterSet struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	rate     rate.Limit
	burst    int
	expiry   time.Duration
	lastGC   time.Time
}

func newLimiterSet(cfg RateLimiterConfig) *limiterSet {
	return &limiterSet{
		limiters: make(map[string]*limiterEntry),
		rate:     rate.Limit(cfg.Rate),
		burst:    cfg.Burst,
		expiry:   cfg.ExpiryTime,
		lastGC:   time.Now(),
	}
}

// allow takes a token from key's bucket
func (s *limiterSet) allow(key string) bool {
	now := time.Now()

	s.mu.Lock()
	if s.expiry > 0 && now.Sub(s.lastGC) > s.expiry {
		for k, e := range s.limiters {
			if now.Sub(e.lastSeen) > s.expiry {
				delete(s.limiters, k)
			}
		}
		s.lastGC = now
	}

	entry, exists := s.limiters[key]
	if !exists {
		entry = &limiterEntry{limiter: rate.NewLimiter(s.rate, s.burst)}
		s.limiters[key] = entry
	}
	entry.lastSeen = now
	s.mu.Unlock()

	return entry.limiter.AllowN(now, 1)
}

// RateLimiter creates a token bucket rate limiting middleware
func RateLimiter(config ...RateLimiterConfig) gin.HandlerFunc {
	var cfg RateLimiterConfig
	if len(config) > 0 {
		cfg = config[0]
	} else {
		cfg = DefaultRateLimiterConfig
	}

	if cfg.Rate <= 0 {
		cfg.Rate = DefaultRateLimiterConfig.Rate
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultRateLimiterConfig.Burst
	}
	if cfg.LimitType == "" {
		cfg.LimitType = DefaultRateLimiterConfig.LimitType
	}
	if cfg.ExpiryTime == 0 {
		cfg.ExpiryTime = DefaultRateLimiterConfig.ExpiryTime
	}

	limiters := newLimiterSet(cfg)

	return func(c *gin.Context) {
		var key string
		switch cfg.LimitType {
		case LimitByPath:
			key = c.Request.URL.Path
		case LimitByCombined:
			key = c.ClientIP() + ":" + c.Request.URL.Path
		case LimitByCustom:
			if cfg.KeyFunc != nil {
				key = cfg.KeyFunc(c)
			} else {
				key = c.ClientIP()
			}
		default:
			key = c.ClientIP()
		}

		if !limiters.allow(key) {
			response.Fail(c, code.ErrTooManyRequests)
			c.Abort()
			return
		}

		c.Next()
	}
}

// IPRateLimiter limits per client IP
func IPRateLimiter(rps float64, burst int) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{Rate: rps, Burst: burst, LimitType: LimitByIP})
}

// PathRateLimiter limits per request path
func PathRateLimiter(rps float64, burst int) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{Rate: rps, Burst: burst, LimitType: LimitByPath})
}

// CombinedRateLimiter limits per client IP and path
func CombinedRateLimiter(rps float64, burst int) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{Rate: rps, Burst: burst, LimitType: LimitByCombined})
}
