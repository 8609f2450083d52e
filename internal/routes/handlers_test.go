package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync"
	"testing"

	"github.com/oseayemenre/alexandria/internal/config"
	"github.com/oseayemenre/alexandria/internal/shared"
)

type logEntry struct {
	level string
	msg   string
	args  []any
}

type testLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *testLogger) add(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, msg: msg, args: args})
}

func (l *testLogger) Debug(msg string, args ...any) { l.add("debug", msg, args) }
func (l *testLogger) Info(msg string, args ...any)  { l.add("info", msg, args) }
func (l *testLogger) Warn(msg string, args ...any)  { l.add("warn", msg, args) }
func (l *testLogger) Error(msg string, args ...any) { l.add("error", msg, args) }

func newTestServer(l *testLogger) (*shared.Server, http.Handler) {
	server := &shared.Server{
		Logger: l,
		Config: &config.Config{
			Env:             "dev",
			Port:            8080,
			Allowed_origins: "http://localhost:5173",
		},
	}

	return server, Mount(server)
}

func TestHandlers(t *testing.T) {
	_, handler := newTestServer(&testLogger{})

	tests := []struct {
		name         string
		method       string
		path         string
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name:         "it should report that the api is running",
			method:       http.MethodGet,
			path:         "/",
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"message": "API is running"},
		},
		{
			name:         "it should report healthy",
			method:       http.MethodGet,
			path:         "/health",
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"status": "healthy"},
		},
		{
			name:         "it should return 404 for an unknown route",
			method:       http.MethodGet,
			path:         "/library",
			expectedCode: http.StatusNotFound,
			expectedBody: map[string]string{"error": "route not found"},
		},
		{
			name:         "it should return 405 for a wrong method",
			method:       http.MethodPost,
			path:         "/health",
			expectedCode: http.StatusMethodNotAllowed,
			expectedBody: map[string]string{"error": "method not allowed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			if rr.Code != tt.expectedCode {
				t.Fatalf("expected %d, got %d", tt.expectedCode, rr.Code)
			}

			if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
				t.Fatalf("expected application/json, got %s", ct)
			}

			var got map[string]string

			if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
				t.Fatalf("error unmarshalling response: %v", err)
			}

			if !reflect.DeepEqual(got, tt.expectedBody) {
				t.Fatalf("expected %+v, got %+v", tt.expectedBody, got)
			}
		})
	}
}

func TestRecoverer(t *testing.T) {
	l := &testLogger{}
	server, handler := newTestServer(l)

	server.Router.Get("/panic", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d, got %d", http.StatusInternalServerError, rr.Code)
	}

	var logged bool
	for _, e := range l.entries {
		if e.level != "info" || e.msg != "request" {
			continue
		}

		for _, a := range e.args {
			if attr, ok := a.(interface{ String() string }); ok && attr.String() == "status=500" {
				logged = true
			}
		}
	}

	if !logged {
		t.Fatal("expected the panicking request to be logged with status 500")
	}
}
