package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"shopdb/internal/handler"
	"shopdb/internal/middleware"
	"shopdb/internal/server"
	"shopdb/internal/usecase"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestServer() http.Handler {
	h := server.Handlers{
		Admin:   handler.NewAdminHandler(usecase.NewAdminUsecase(nil, nil, nil, nil, nil, nil)),
		Catalog: handler.NewCatalogHandler(usecase.NewCatalogUsecase(nil)),
	}
	return server.New(zap.NewNop(), "secret", h)
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(middleware.HeaderRequestID))
}

func TestAdminGroupRequiresToken(t *testing.T) {
	paths := []struct{ method, path string }{
		{http.MethodGet, "/admin/admins"},
		{http.MethodPost, "/admin/admins"},
		{http.MethodDelete, "/admin/admins/a@x.io"},
		{http.MethodGet, "/admin/orders/1"},
	}
	srv := newTestServer()
	for _, p := range paths {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(p.method, p.path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, p.method+" "+p.path)
	}
}
