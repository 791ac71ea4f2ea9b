package handler

import (
	"context"
	"errors"
	apperrors "hotelbooking/pkg/errors"
	"hotelbooking/pkg/logger"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
)

type mockAdminService struct {
	seedErr  error
	resetErr error
	seeded   int
	reset    int
}

func (m *mockAdminService) Seed(ctx context.Context) error {
	m.seeded++
	return m.seedErr
}

func (m *mockAdminService) Reset(ctx context.Context) error {
	m.reset++
	return m.resetErr
}

func TestAdminRoutes(t *testing.T) {
	svc := &mockAdminService{}
	router := httprouter.New()
	NewAdminHandler(svc, logger.Discard()).RegisterRoutes(router)

	for _, path := range []string{"/api/v1/admin/seed", "/api/v1/admin/reset"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, nil))
		if rec.Code != http.StatusNoContent {
			t.Errorf("%s: expected 204, got %d", path, rec.Code)
		}
	}
	if svc.seeded != 1 || svc.reset != 1 {
		t.Errorf("expected one call each, got seed=%d reset=%d", svc.seeded, svc.reset)
	}
}

func TestAdminRoutes_Failure(t *testing.T) {
	svc := &mockAdminService{seedErr: apperrors.Internal("Failed to seed hotels", errors.New("down"))}
	router := httprouter.New()
	NewAdminHandler(svc, logger.Discard()).RegisterRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/seed", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}
