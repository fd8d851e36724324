package routes

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"resident-records-service/internal/app/middleware"
	"resident-records-service/internal/domain/models"
	"resident-records-service/internal/domain/services/container"
	"resident-records-service/internal/infrastructure/config"
	"resident-records-service/internal/test/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	cfg := &config.Config{
		JWTSecretKey:     "test-secret",
		SessionTTL:       time.Hour,
		QRTokenTTL:       24 * time.Hour,
		PublicBaseURL:    "http://localhost:5000",
		CORSAllowOrigins: []string{"*"},
	}
	serviceContainer := container.NewServiceContainer(testutil.NewTestStore(t), cfg)
	return &testServer{t: t, router: SetupRouter(serviceContainer, cfg)}
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			s.t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dest); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

// session registers an account with role and returns its token
func (s *testServer) session(email, role string) string {
	s.t.Helper()
	w := s.do(http.MethodPost, "/register", "", map[string]string{
		"email": email, "password": "secret", "role": role,
	})
	if w.Code != http.StatusOK {
		s.t.Fatalf("register %s: %d %s", email, w.Code, w.Body.String())
	}

	w = s.do(http.MethodPost, "/login", "", map[string]string{
		"email": email, "password": "secret", "role": role,
	})
	if w.Code != http.StatusOK {
		s.t.Fatalf("login %s: %d %s", email, w.Code, w.Body.String())
	}
	var result struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	decode(s.t, w, &result)
	if !result.Success || result.Token == "" {
		s.t.Fatalf("login returned %s", w.Body.String())
	}
	return result.Token
}

func TestResidentLifecycle(t *testing.T) {
	s := newTestServer(t)
	token := s.session("staff@x.com", models.RoleStaff)

	w := s.do(http.MethodPost, "/residents", token, testutil.ResidentJSON("R1"))
	if w.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", w.Code, w.Body.String())
	}

	w = s.do(http.MethodPost, "/residents", token, testutil.ResidentJSON("R1"))
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate create: %d %s", w.Code, w.Body.String())
	}

	w = s.do(http.MethodPost, "/residents", token, map[string]interface{}{"id": "R2"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("incomplete create: %d %s", w.Code, w.Body.String())
	}

	w = s.do(http.MethodGet, "/residents", token, nil)
	var residents []models.Resident
	decode(t, w, &residents)
	if len(residents) != 1 || residents[0].ID != "R1" {
		t.Fatalf("list: %s", w.Body.String())
	}

	w = s.do(http.MethodPut, "/residents/R1", token, map[string]interface{}{"age": 40, "id": "ignored"})
	if w.Code != http.StatusOK {
		t.Fatalf("update: %d %s", w.Code, w.Body.String())
	}

	w = s.do(http.MethodGet, "/residents/R1", token, nil)
	var resident models.Resident
	decode(t, w, &resident)
	if resident.Age != "40" || resident.Firstname != "Juan" {
		t.Fatalf("after update: %s", w.Body.String())
	}

	w = s.do(http.MethodGet, "/api/verify-resident/R1", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("verify resident: %d %s", w.Code, w.Body.String())
	}
	var verified map[string]interface{}
	decode(t, w, &verified)
	summary, _ := verified["resident"].(map[string]interface{})
	if verified["verified"] != true || summary["firstname"] != "Juan" {
		t.Fatalf("verify resident: %s", w.Body.String())
	}
	if _, leaked := summary["pnumber"]; leaked {
		t.Fatalf("summary exposes contact data: %s", w.Body.String())
	}

	w = s.do(http.MethodDelete, "/residents/R1", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: %d %s", w.Code, w.Body.String())
	}
	w = s.do(http.MethodDelete, "/residents/R1", token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete: %d %s", w.Code, w.Body.String())
	}

	w = s.do(http.MethodGet, "/api/verify-resident/R1", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("verify deleted resident: %d %s", w.Code, w.Body.String())
	}
}

func TestResidentReadsAreCachedUntilWrite(t *testing.T) {
	s := newTestServer(t)
	token := s.session("staff@x.com", models.RoleStaff)

	if w := s.do(http.MethodGet, "/residents", token, nil); w.Header().Get(middleware.CacheHeader) != "MISS" {
		t.Fatalf("first read: %q", w.Header().Get(middleware.CacheHeader))
	}
	if w := s.do(http.MethodGet, "/residents", token, nil); w.Header().Get(middleware.CacheHeader) != "HIT" {
		t.Fatalf("second read: %q", w.Header().Get(middleware.CacheHeader))
	}

	if w := s.do(http.MethodPost, "/residents", token, testutil.ResidentJSON("R1")); w.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", w.Code, w.Body.String())
	}

	w := s.do(http.MethodGet, "/residents", token, nil)
	if w.Header().Get(middleware.CacheHeader) != "MISS" {
		t.Fatalf("read after write: %q", w.Header().Get(middleware.CacheHeader))
	}
	var residents []models.Resident
	decode(t, w, &residents)
	if len(residents) != 1 {
		t.Fatalf("stale list after write: %s", w.Body.String())
	}

	w = s.do(http.MethodGet, "/residents/stats", token, nil)
	var stats map[string]interface{}
	decode(t, w, &stats)
	if stats["totalResidents"] != float64(1) {
		t.Fatalf("stats: %s", w.Body.String())
	}
}

func TestAuthentication(t *testing.T) {
	s := newTestServer(t)
	adminToken := s.session("admin@x.com", models.RoleAdmin)
	staffToken := s.session("staff@x.com", models.RoleStaff)

	t.Run("duplicate registration is a soft failure", func(t *testing.T) {
		w := s.do(http.MethodPost, "/register", "", map[string]string{"email": "admin@x.com", "password": "other"})
		var result map[string]interface{}
		decode(t, w, &result)
		if w.Code != http.StatusOK || result["success"] != false || result["message"] != "User already exists" {
			t.Fatalf("duplicate register: %d %s", w.Code, w.Body.String())
		}
	})

	tests := []struct {
		name     string
		email    string
		password string
		role     string
		want     int
	}{
		{"wrong role", "admin@x.com", "secret", models.RoleStaff, http.StatusForbidden},
		{"missing role", "admin@x.com", "secret", "", http.StatusBadRequest},
		{"wrong password", "admin@x.com", "nope", models.RoleAdmin, http.StatusUnauthorized},
		{"unknown email", "ghost@x.com", "secret", models.RoleAdmin, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(http.MethodPost, "/login", "", map[string]string{
				"email": tt.email, "password": tt.password, "role": tt.role,
			})
			if w.Code != tt.want {
				t.Fatalf("login: got %d, want %d: %s", w.Code, tt.want, w.Body.String())
			}
			var body map[string]interface{}
			decode(t, w, &body)
			if body["success"] != false {
				t.Fatalf("expected success=false: %s", w.Body.String())
			}
		})
	}

	t.Run("sessions", func(t *testing.T) {
		if w := s.do(http.MethodGet, "/residents", "", nil); w.Code != http.StatusUnauthorized {
			t.Fatalf("no token: %d", w.Code)
		}
		if w := s.do(http.MethodGet, "/users", staffToken, nil); w.Code != http.StatusForbidden {
			t.Fatalf("staff listing users: %d", w.Code)
		}

		w := s.do(http.MethodGet, "/users", adminToken, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("admin listing users: %d %s", w.Code, w.Body.String())
		}
		if bytes.Contains(w.Body.Bytes(), []byte("password")) {
			t.Fatalf("user list exposes passwords: %s", w.Body.String())
		}
		var users []models.Account
		decode(t, w, &users)
		if len(users) != 2 {
			t.Fatalf("expected 2 users, got %d", len(users))
		}
	})
}

func TestQRFlow(t *testing.T) {
	s := newTestServer(t)
	token := s.session("staff@x.com", models.RoleStaff)
	if w := s.do(http.MethodPost, "/residents", token, testutil.ResidentJSON("R1")); w.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", w.Code, w.Body.String())
	}

	w := s.do(http.MethodPost, "/api/residents/R1/qr-token", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("issue: %d %s", w.Code, w.Body.String())
	}
	var issued struct {
		Token      string    `json:"token"`
		Expiration time.Time `json:"expiration"`
	}
	decode(t, w, &issued)
	if issued.Token == "" || !issued.Expiration.After(time.Now().Add(23*time.Hour)) {
		t.Fatalf("issued: %s", w.Body.String())
	}

	if w := s.do(http.MethodPost, "/api/residents/missing/qr-token", token, nil); w.Code != http.StatusNotFound {
		t.Fatalf("issue for unknown resident: %d", w.Code)
	}

	w = s.do(http.MethodGet, "/api/verify-qr/"+issued.Token, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("verify: %d %s", w.Code, w.Body.String())
	}
	if w := s.do(http.MethodGet, "/api/verify-qr/unknown", "", nil); w.Code != http.StatusNotFound {
		t.Fatalf("verify unknown token: %d", w.Code)
	}

	t.Run("qr image", func(t *testing.T) {
		for _, path := range []string{
			"/api/residents/R1/qr-code",
			"/api/residents/R1/qr-code?type=token&size=128",
		} {
			w := s.do(http.MethodGet, path, token, nil)
			if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "image/png" {
				t.Fatalf("%s: %d %s", path, w.Code, w.Header().Get("Content-Type"))
			}
			if _, err := png.Decode(bytes.NewReader(w.Body.Bytes())); err != nil {
				t.Fatalf("%s: invalid png: %v", path, err)
			}
		}

		if w := s.do(http.MethodGet, "/api/residents/R1/qr-code?size=big", token, nil); w.Code != http.StatusBadRequest {
			t.Fatalf("bad size: %d", w.Code)
		}
		if w := s.do(http.MethodGet, "/api/residents/R1/qr-code?type=vcard", token, nil); w.Code != http.StatusBadRequest {
			t.Fatalf("bad type: %d", w.Code)
		}
		if w := s.do(http.MethodGet, "/api/residents/R1/qr-code", "", nil); w.Code != http.StatusUnauthorized {
			t.Fatalf("anonymous qr image: %d", w.Code)
		}
	})
}

func TestLogScanAndHealth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/log-scan", "", map[string]string{
		"residentId": "R1", "purpose": "clinic visit", "location": "barangay hall",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("log scan: %d %s", w.Code, w.Body.String())
	}
	if w := s.do(http.MethodPost, "/api/log-scan", "", nil); w.Code != http.StatusCreated {
		t.Fatalf("log scan without body: %d %s", w.Code, w.Body.String())
	}

	if w := s.do(http.MethodGet, "/api/ping", "", nil); w.Code != http.StatusOK {
		t.Fatalf("ping: %d", w.Code)
	}

	w = s.do(http.MethodGet, "/api/health", "", nil)
	var health struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	decode(t, w, &health)
	if w.Code != http.StatusOK || health.Checks["store"] != "ok" || health.Checks["redis"] != "disabled" {
		t.Fatalf("health: %d %s", w.Code, w.Body.String())
	}
}
