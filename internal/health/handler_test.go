package health

import (
	"context"
	"errors"
	"hotelbooking/pkg/logger"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
)

type mockPinger struct {
	err error
}

func (m mockPinger) Ping(ctx context.Context) error { return m.err }

func (m mockPinger) StorageName() string { return "postgres" }

func serve(p Pinger, path string) *httptest.ResponseRecorder {
	router := httprouter.New()
	NewHealthHandler(p, logger.Discard()).RegisterRoutes(router)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	rec := serve(mockPinger{err: errors.New("down")}, "/health")
	if rec.Code != http.StatusOK {
		t.Errorf("liveness must not depend on storage, got %d", rec.Code)
	}
}

func TestReady(t *testing.T) {
	rec := serve(mockPinger{}, "/ready")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"storage":"postgres"`) {
		t.Errorf("unexpected ready response %d %s", rec.Code, rec.Body.String())
	}

	rec = serve(mockPinger{err: errors.New("down")}, "/ready")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rec.Code)
	}
}
