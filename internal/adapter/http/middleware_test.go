package adapthttp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"bmistation/internal/logger"
)

func TestLoggingMiddleware(t *testing.T) {
	s := &Server{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("OK"))
	})
	handler := s.loggingMiddleware(next)

	core, logs := observer.New(zap.InfoLevel)
	req := httptest.NewRequest(http.MethodGet, "/test-path", nil)
	req = req.WithContext(logger.WithLogger(req.Context(), zap.New(core)))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusTeapot {
		t.Errorf("expected status %d, got %d", http.StatusTeapot, w.Code)
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["method"] != "GET" || fields["path"] != "/test-path" || fields["status"] != int64(http.StatusTeapot) {
		t.Errorf("log entry missing expected fields: %v", fields)
	}
}
