package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"page_insights_backend/internal/account"
	"page_insights_backend/internal/auth"
	"page_insights_backend/internal/config"
	"page_insights_backend/internal/graph"
	"page_insights_backend/internal/insights"
	"page_insights_backend/internal/jobs"
	"page_insights_backend/internal/site"
	"page_insights_backend/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

type emptyRepository struct{}

func (emptyRepository) Create(context.Context, *user.User) error { return nil }
func (emptyRepository) FindAll(context.Context) ([]user.User, error) {
	return []user.User{}, nil
}
func (emptyRepository) FindByIDAndUpdate(context.Context, string, map[string]string) (*user.User, error) {
	return nil, user.ErrNotFound
}

func newTestServer(t *testing.T, pingErr error) *Server {
	t.Helper()
	static := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(static, "index.html"), []byte("<html>app</html>"), 0o644))

	cfg := &config.Config{
		GinMode:             "test",
		ServerPort:          "0",
		StaticDir:           static,
		FacebookAppID:       "app-id",
		FacebookAppSecret:   "app-secret",
		FacebookRedirectURI: "https://localhost:3001/auth/facebook/callback",
		FacebookAuthURL:     "https://www.facebook.com/v18.0/dialog/oauth",
		FacebookTokenURL:    "https://graph.facebook.com/v10.0/oauth/access_token",
		GraphAPIBaseURL:     "https://graph.facebook.com",
		GraphAPIVersion:     "v16.0",
	}
	logger := zap.NewNop()
	db := stubPinger{err: pingErr}
	graphClient := graph.NewClient(cfg, logger)

	srv, err := NewServer(
		cfg,
		logger,
		db,
		auth.NewHandler(auth.NewOAuthService(cfg, logger), logger),
		account.NewHandler(graphClient, logger),
		insights.NewHandler(insights.NewService(graphClient, logger), logger),
		user.NewHandler(user.NewService(emptyRepository{}, logger), logger),
		site.NewHandler(cfg, logger),
		jobs.NewConnectionMonitor(db, logger, cfg),
	)
	require.NoError(t, err)
	return srv
}

func serve(srv *Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := serve(newTestServer(t, nil), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"UP","database":"connected"}`, w.Body.String())

	w = serve(newTestServer(t, errors.New("no primary")), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{
		"code":"SERVICE_UNAVAILABLE",
		"message":"The server is currently unable to handle the request.",
		"details":{"status":"DOWN","database":"unreachable"}
	}`, w.Body.String())
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		method     string
		target     string
		wantStatus int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/privacy-policy", http.StatusOK},
		{http.MethodGet, "/terms-of-service", http.StatusOK},
		{http.MethodGet, "/auth/facebook", http.StatusFound},
		{http.MethodGet, "/api/users", http.StatusOK},
		{http.MethodPut, "/api/users/unknown", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			w := serve(srv, httptest.NewRequest(tt.method, tt.target, nil))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestUnknownRoutesRenderJSONErrors(t *testing.T) {
	srv := newTestServer(t, nil)

	w := serve(srv, httptest.NewRequest(http.MethodGet, "/does-not-exist", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"NOT_FOUND"`)

	w = serve(srv, httptest.NewRequest(http.MethodDelete, "/api/users", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"METHOD_NOT_ALLOWED"`)
}

func TestCORS(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/privacy-policy", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	w := serve(srv, req)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/users", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w = serve(srv, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestRequestIDEchoed(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := serve(srv, req)
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
}
