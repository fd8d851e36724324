package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"resident-records-service/internal/domain/repository"
	"resident-records-service/internal/domain/services"
	"resident-records-service/internal/domain/services/container"
	"resident-records-service/internal/infrastructure/config"
	"resident-records-service/internal/test/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// downStore fails every ping with a driver style error
type downStore struct {
	*repository.GormStore
}

func (downStore) Ping(context.Context) error {
	return errors.New("dial tcp db.internal:3306: connect: connection refused (user=root)")
}

type healthBody struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func performHealth(t *testing.T, c *container.ServiceContainer) (*httptest.ResponseRecorder, healthBody) {
	t.Helper()
	r := gin.New()
	r.GET("/api/health", NewHealthCheckController(c).Health)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	var body healthBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return w, body
}

func TestHealth(t *testing.T) {
	cfg := &config.Config{JWTSecretKey: "test-secret"}

	t.Run("store down", func(t *testing.T) {
		c := container.NewServiceContainer(downStore{testutil.NewTestStore(t)}, cfg)
		w, body := performHealth(t, c)

		if w.Code != http.StatusServiceUnavailable || body.Status != "unhealthy" {
			t.Fatalf("got %d %s", w.Code, w.Body.String())
		}
		if body.Checks["store"] != checkUnavailable {
			t.Fatalf("store check = %q", body.Checks["store"])
		}
		if strings.Contains(w.Body.String(), "db.internal") {
			t.Fatalf("driver error leaked: %s", w.Body.String())
		}
	})

	t.Run("redis down after start", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
		t.Cleanup(func() { _ = client.Close() })

		c := container.NewServiceContainer(testutil.NewTestStore(t), cfg,
			container.WithRedis(services.NewRedisServiceWithClient(client)))
		mr.Close()

		w, body := performHealth(t, c)
		if w.Code != http.StatusOK {
			t.Fatalf("redis should not fail readiness, got %d", w.Code)
		}
		if body.Checks["store"] != "ok" || body.Checks["redis"] != checkUnavailable {
			t.Fatalf("checks = %v", body.Checks)
		}
		if strings.Contains(w.Body.String(), mr.Addr()) {
			t.Fatalf("redis address leaked: %s", w.Body.String())
		}
	})
}
