package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomkeim/sitekit/internal/redirect"
)

func newSiteDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "fabric-wheels-deployment"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>home</html>"), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "fabric-wheels-deployment", "index.html"),
		[]byte("<html>post</html>"), 0o644))
	return dir
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	table, err := redirect.NewTable(map[string]string{
		"/blog/fabric-wheels-deployment": "/fabric-wheels-deployment/",
	})
	require.NoError(t, err)

	srv, err := New(Options{SiteDir: newSiteDir(t), Redirects: table})
	require.NoError(t, err)
	return srv
}

func TestNew_RequiresSiteDir(t *testing.T) {
	_, err := New(Options{SiteDir: filepath.Join(t.TempDir(), "missing")})
	require.Error(t, err)
}

func TestHandler_ServesPages(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), "home")
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestHandler_AppliesRedirects(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blog/fabric-wheels-deployment", nil))

	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/fabric-wheels-deployment/", rec.Header().Get("Location"))
}

func TestHandler_UnmatchedPathFallsThroughTo404(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/never-existed", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_HealthAndMetrics(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Drive one redirect through, then check the counter shows up.
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blog/fabric-wheels-deployment", nil))

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), "sitekit_redirects_total 1")
}

func TestRun_GracefulShutdown(t *testing.T) {
	table, err := redirect.NewTable(nil)
	require.NoError(t, err)

	srv, err := New(Options{SiteDir: newSiteDir(t), Addr: "127.0.0.1:0", Redirects: table})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestWatcher_InvokesCallbackOnChange(t *testing.T) {
	dir := t.TempDir()
	ran := make(chan struct{}, 1)

	w := NewWatcher(dir, func(context.Context) {
		select {
		case ran <- struct{}{}:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() { _ = w.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "post.md"), []byte("---\n---\n"), 0o644))

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher never fired")
	}
}

func TestShouldIgnoreEvent(t *testing.T) {
	assert.True(t, shouldIgnoreEvent("/tmp/.hidden.md"))
	assert.True(t, shouldIgnoreEvent("/tmp/#draft.md#"))
	assert.True(t, shouldIgnoreEvent("/tmp/post.md.swp"))
	assert.True(t, shouldIgnoreEvent("/tmp/post.md~"))
	assert.False(t, shouldIgnoreEvent("/tmp/post.md"))
}
