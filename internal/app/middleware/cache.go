package middleware

import (
	"bytes"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resident-records-service/internal/domain/services"
)

// CacheKeyPrefix namespaces response cache keys.
const CacheKeyPrefix = "cache:"

// CacheHeader reports HIT or MISS on cached routes.
const CacheHeader = "X-Cache"

// CacheConfig configures Cache
type CacheConfig struct {
	Expiration time.Duration             // entry lifetime
	KeyFunc    func(*gin.Context) string // defaults to CacheKey of path and query
}

// DefaultCacheConfig is applied to missing fields
var DefaultCacheConfig = CacheConfig{
	Expiration: 5 * time.Minute,
	KeyFunc:    defaultKeyFunc,
}

// CacheKey returns the key prefix shared by every cached variant of path.
func CacheKey(path string) string {
	return CacheKeyPrefix + path
}

// defaultKeyFunc keys on the path plus the sorted query
func defaultKeyFunc(c *gin.Context) string {
	query := c.Request.URL.Query()
	keys := make([]string, 0, len(query))
	for key := range query {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(CacheKey(c.Request.URL.Path))
	b.WriteByte('?')
	for _, key := range keys {
		values := query[key]
		sort.Strings(values)
		for _, value := range values {
			b.WriteString(key + "=" + value + "&")
		}
	}
	return b.String()
}

// Cache serves repeated GET requests from store. Only 200 responses are kept.
func Cache(store services.InterfaceCacheStore, config ...CacheConfig) gin.HandlerFunc {
	var cfg CacheConfig
	if len(config) > 0 {
		cfg = config[0]
	} else {
		cfg = DefaultCacheConfig
	}
	if cfg.Expiration <= 0 {
		cfg.Expiration = DefaultCacheConfig.Expiration
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = DefaultCacheConfig.KeyFunc
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := cfg.KeyFunc(c)
		if content, found := store.Get(c.Request.Context(), key); found {
			c.Header(CacheHeader, "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", content)
			c.Abort()
			return
		}

		c.Header(CacheHeader, "MISS")
		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = writer

		c.Next()

		if writer.Status() == http.StatusOK {
			store.Set(c.Request.Context(), key, writer.body.Bytes(), cfg.Expiration)
		}
	}
}

// responseWriter copies the body while writing it
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
