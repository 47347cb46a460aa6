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
	"github.com/google/uuid"

	"github.com/matzehuels/scadgen/pkg/cache"
	"github.com/matzehuels/scadgen/pkg/errors"
	"github.com/matzehuels/scadgen/pkg/observability"
	"github.com/matzehuels/scadgen/pkg/pipeline"
)

const sampleModel = `
[[object]]
kind = "difference"
  [[object.children]]
  kind = "cube"
  params = { size = 10 }
  [[object.children]]
  kind = "sphere"
  params = { r = 6 }
`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	logger := log.New(io.Discard)
	runner := pipeline.NewRunner(c, cache.NewScopedKeyer(nil, "http:"), logger)
	return New(runner, logger)
}

func post(t *testing.T, s *Server, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/toml")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestRender(t *testing.T) {
	s := newTestServer(t)

	rec := post(t, s, "/v1/render", sampleModel)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	want := "difference() {\n  cube(size = 10);\n  sphere(r = 6);\n}\n"
	if got := rec.Body.String(); got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q", ct)
	}
	if _, err := uuid.Parse(rec.Header().Get("X-Render-ID")); err != nil {
		t.Errorf("X-Render-ID is not a UUID: %v", err)
	}
	if got := rec.Header().Get("X-Cache"); got != "miss" {
		t.Errorf("X-Cache = %q, want miss", got)
	}

	again := post(t, s, "/v1/render", sampleModel)
	if got := again.Header().Get("X-Cache"); got != "hit" {
		t.Errorf("second X-Cache = %q, want hit", got)
	}
	if again.Header().Get("X-Render-ID") == rec.Header().Get("X-Render-ID") {
		t.Error("render IDs should differ per request")
	}
}

func TestRenderErrors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		body   string
		status int
		code   errors.Code
	}{
		{
			name:   "dimension mismatch",
			body:   "[[object]]\nkind = \"linear_extrude\"\nparams = { height = 1 }\n  [[object.children]]\n  kind = \"cube\"\n  params = { size = 1 }\n",
			status: http.StatusUnprocessableEntity,
			code:   errors.ErrCodeDimensionMismatch,
		},
		{
			name:   "unknown shape",
			body:   "[[object]]\nkind = \"teapot\"\n",
			status: http.StatusUnprocessableEntity,
			code:   errors.ErrCodeUnknownShape,
		},
		{
			name:   "syntax",
			body:   "[[object",
			status: http.StatusUnprocessableEntity,
			code:   errors.ErrCodeInvalidFormat,
		},
		{
			name:   "too large",
			body:   strings.Repeat("#", MaxBodyBytes+1),
			status: http.StatusRequestEntityTooLarge,
			code:   errors.ErrCodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, s, "/v1/render", tt.body)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.status, rec.Body)
			}
			var body errorBody
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatal(err)
			}
			if body.Code != tt.code {
				t.Errorf("code = %s, want %s", body.Code, tt.code)
			}
			if body.RenderID == "" || body.Message == "" {
				t.Errorf("incomplete error body: %+v", body)
			}
		})
	}
}

func TestRenderErrorNamesObject(t *testing.T) {
	s := newTestServer(t)
	rec := post(t, s, "/v1/render", "[[object]]\nkind = \"cube\"\nparams = { size = 1 }\n\n[[object]]\nkind = \"cube\"\n")

	var body errorBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(body.Message, "object[1]") {
		t.Errorf("message = %q, want object path prefix", body.Message)
	}
}

func TestRenderContentType(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/v1/render", strings.NewReader(sampleModel))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnsupportedMediaType {
		t.Errorf("status = %d, want 415", rec.Code)
	}
}

func TestTree(t *testing.T) {
	s := newTestServer(t)

	rec := post(t, s, "/v1/tree?detailed=true", sampleModel)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/vnd.graphviz") {
		t.Errorf("Content-Type = %q", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{"digraph G {", "difference()", "sphere(r = 6)", "3D"} {
		if !strings.Contains(body, want) {
			t.Errorf("DOT output missing %q", want)
		}
	}

	for _, q := range []string{"?format=scad", "?format=png", "?detailed=maybe"} {
		if rec := post(t, s, "/v1/tree"+q, sampleModel); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", q, rec.Code)
		}
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body healthBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Status != "ok" || body.Build.Version == "" {
		t.Errorf("body = %+v", body)
	}
}

type recordingHTTPHooks struct {
	observability.NoopHTTPHooks
	mu       sync.Mutex
	routes   []string
	statuses []int
}

func (h *recordingHTTPHooks) OnRequest(_ context.Context, _, route string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.routes = append(h.routes, route)
}

func (h *recordingHTTPHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.statuses = append(h.statuses, status)
}

func TestHTTPHooks(t *testing.T) {
	hooks := &recordingHTTPHooks{}
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	s := newTestServer(t)
	post(t, s, "/v1/render", sampleModel)
	post(t, s, "/v1/render", "[[object]]\nkind = \"teapot\"\n")

	if strings.Join(hooks.routes, ",") != "/v1/render,/v1/render" {
		t.Errorf("routes = %v", hooks.routes)
	}
	if len(hooks.statuses) != 2 || hooks.statuses[0] != 200 || hooks.statuses[1] != 422 {
		t.Errorf("statuses = %v", hooks.statuses)
	}
}

func TestListenAndServeShutdown(t *testing.T) {
	s := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe() = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
