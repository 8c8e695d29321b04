package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/tastehub/menuapi/internal/logging"
	"github.com/tastehub/menuapi/internal/server/config"
	"github.com/tastehub/menuapi/internal/server/menus"
	"github.com/tastehub/menuapi/internal/server/repositories/repomanager"
	"github.com/tastehub/menuapi/internal/server/users"
)

// newTestServer wires the real services over in-memory repositories, so
// handler tests cover the whole request path below the socket.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	rm := repomanager.NewInMemoryRepositoryManager()
	cfg := &config.Config{
		SecretKey:                   "test-secret",
		AccessTokenValidityDuration: time.Hour,
	}

	us := users.NewService(nil, rm, cfg)
	ms := menus.NewService(nil, rm, cfg)

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	return NewServer("127.0.0.1:0", logger, us, ms, cfg.SecretKey)
}

// signup registers a user and returns a usable bearer token.
func signup(t *testing.T, s *Server, email string) string {
	t.Helper()

	rr := doJSON(t, s, http.MethodPost, "/api/users/register", "", map[string]string{
		"email": email, "password": "test123",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, s, http.MethodPost, "/api/users/login", "", map[string]string{
		"email": email, "password": "test123",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	decodeBody(t, rr, &resp)
	if resp.AccessToken == "" {
		t.Fatalf("empty access token")
	}
	return resp.AccessToken
}

func doJSON(t *testing.T, s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	return rr
}

func doRaw(t *testing.T, s *Server, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
}

func menuPath(id int64) string {
	return "/api/menus/" + strconv.FormatInt(id, 10)
}

func sampleMenuBody() map[string]any {
	return map[string]any{
		"title":        "Sample menu",
		"time_minutes": 30,
		"price":        "15.00",
		"description":  "This is a sample menu.",
	}
}

func createSampleMenu(t *testing.T, s *Server, token string) int64 {
	t.Helper()

	rr := doJSON(t, s, http.MethodPost, "/api/menus", token, sampleMenuBody())
	if rr.Code != http.StatusCreated {
		t.Fatalf("create failed: %d %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		ID int64 `json:"id"`
	}
	decodeBody(t, rr, &resp)
	return resp.ID
}
