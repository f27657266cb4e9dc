package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/funnelchart/pkg/cache"
	"github.com/matzehuels/funnelchart/pkg/observability"
	"github.com/matzehuels/funnelchart/pkg/pipeline"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger := log.New(io.Discard)
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error: %v", err)
	}
	return New(Config{
		Runner: pipeline.NewRunner(fc, nil, logger),
		Logger: logger,
	})
}

func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/healthz", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body healthBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Status != "ok" || body.Build.Version == "" {
		t.Errorf("unexpected health body: %+v", body)
	}
}

func TestRenderSVG(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/v1/render?width=400&height=300",
		`{"values": [100, 50, 25], "labels": ["Visits", "Carts", "Orders"]}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	if rec.Header().Get(HeaderRequestID) == "" {
		t.Error("missing request ID header")
	}
	if !strings.HasPrefix(rec.Body.String(), `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 400 300"`) {
		t.Errorf("unexpected body: %.80s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Visits") {
		t.Error("label missing from svg")
	}
}

func TestRenderFormats(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		format      string
		contentType string
		prefix      string
	}{
		{"json", "application/json", "{"},
		{"png", "image/png", "\x89PNG"},
		{"pdf", "application/pdf", "%PDF"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/v1/render?width=200&height=100&scale=1&format="+tt.format,
				`{"values": [3, 2, 1]}`)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); ct != tt.contentType {
				t.Errorf("Content-Type = %q, want %q", ct, tt.contentType)
			}
			if !strings.HasPrefix(rec.Body.String(), tt.prefix) {
				t.Errorf("body starts with %.8q, want %q", rec.Body.String(), tt.prefix)
			}
		})
	}
}

func TestRenderCacheHeader(t *testing.T) {
	s := newTestServer(t)
	target := "/v1/render?width=300&height=200"
	body := `{"values": [10, 5]}`

	first := do(t, s, http.MethodPost, target, body)
	second := do(t, s, http.MethodPost, target, body)

	if got := first.Header().Get("X-Cache"); got != "miss" {
		t.Errorf("first X-Cache = %q, want miss", got)
	}
	if got := second.Header().Get("X-Cache"); got != "hit" {
		t.Errorf("second X-Cache = %q, want hit", got)
	}
	if first.Body.String() != second.Body.String() {
		t.Error("cached response differs")
	}
	if first.Header().Get("ETag") == "" || first.Header().Get("ETag") != second.Header().Get("ETag") {
		t.Error("ETag should be stable across requests")
	}
}

func TestRenderClientErrors(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		name   string
		target string
		body   string
		code   string
	}{
		{"missing values", "/v1/render", `{"labels": ["a"]}`, "INVALID_CONFIG"},
		{"empty values", "/v1/render", `{"values": []}`, "INVALID_CONFIG"},
		{"bad json", "/v1/render", `{"values": [1,`, "INVALID_INPUT"},
		{"unknown format", "/v1/render?format=gif", `{"values": [1]}`, "INVALID_FORMAT"},
		{"bad width", "/v1/render?width=wide", `{"values": [1]}`, "INVALID_DIMENSION"},
		{"negative height", "/v1/render?height=-5", `{"values": [1]}`, "INVALID_DIMENSION"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, tt.target, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (body %s)", rec.Code, rec.Body.String())
			}
			body := decodeError(t, rec)
			if body.Error.Code != tt.code {
				t.Errorf("code = %q, want %q", body.Error.Code, tt.code)
			}
			if body.RequestID == "" || body.RequestID != rec.Header().Get(HeaderRequestID) {
				t.Errorf("request ID %q does not match header %q", body.RequestID, rec.Header().Get(HeaderRequestID))
			}
		})
	}
}

func TestRenderMissingValuesMessage(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/v1/render", `{}`)
	body := decodeError(t, rec)
	if body.Error.Message != "a values setting must be provided" {
		t.Errorf("message = %q", body.Error.Message)
	}
}

func TestRequestIDPropagation(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(HeaderRequestID, "trace-42")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if got := rec.Header().Get(HeaderRequestID); got != "trace-42" {
		t.Errorf("request ID = %q, want trace-42", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(HeaderRequestID, "bad id\nwith newline")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if got := rec.Header().Get(HeaderRequestID); got == "" || strings.ContainsAny(got, " \n") {
		t.Errorf("malformed request ID should be replaced, got %q", got)
	}
}

func TestNotFoundAndMethod(t *testing.T) {
	s := newTestServer(t)

	if rec := do(t, s, http.MethodGet, "/nope", ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown route status = %d, want 404", rec.Code)
	}
	if rec := do(t, s, http.MethodGet, "/v1/render", ""); rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET /v1/render status = %d, want 405", rec.Code)
	}
}

func TestBodyLimit(t *testing.T) {
	s := New(Config{Logger: log.New(io.Discard), MaxBodyBytes: 16})
	rec := do(t, s, http.MethodPost, "/v1/render", `{"values": [1, 2, 3, 4, 5, 6, 7, 8]}`)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", rec.Code)
	}
	body := decodeError(t, rec)
	if body.Error.Code != "PAYLOAD_TOO_LARGE" {
		t.Errorf("code = %q, want PAYLOAD_TOO_LARGE", body.Error.Code)
	}
	if !strings.Contains(body.Error.Message, "16 bytes") {
		t.Errorf("message = %q, want the limit", body.Error.Message)
	}

	// a body within the limit but with bad JSON is still a 400
	rec = do(t, s, http.MethodPost, "/v1/render", `{"values":`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed body status = %d, want 400", rec.Code)
	}
}

type httpHooks struct {
	mu       sync.Mutex
	requests int
	statuses []int
}

func (h *httpHooks) OnRequest(context.Context, string, string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.requests++
}

func (h *httpHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.statuses = append(h.statuses, status)
}

func TestHTTPHooks(t *testing.T) {
	hooks := &httpHooks{}
	observability.SetHTTPHooks(hooks)
	t.Cleanup(observability.Reset)

	s := newTestServer(t)
	do(t, s, http.MethodGet, "/healthz", "")
	do(t, s, http.MethodPost, "/v1/render", `{}`)

	if hooks.requests != 2 {
		t.Errorf("requests = %d, want 2", hooks.requests)
	}
	if len(hooks.statuses) != 2 || hooks.statuses[0] != 200 || hooks.statuses[1] != 400 {
		t.Errorf("statuses = %v, want [200 400]", hooks.statuses)
	}
}

func TestServeShutdown(t *testing.T) {
	s := New(Config{Addr: "127.0.0.1:0", Logger: log.New(io.Discard)})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx) }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe() error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
