package redirect

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable_RejectsEmptyPaths(t *testing.T) {
	_, err := NewTable(map[string]string{"": "/new/"})
	require.Error(t, err)

	_, err = NewTable(map[string]string{"/old": ""})
	require.Error(t, err)
}

func TestResolve_ExactMatchOnly(t *testing.T) {
	table, err := NewTable(map[string]string{
		"/blog/fabric-wheels-deployment": "/fabric-wheels-deployment/",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())

	target, ok := table.Resolve("/blog/fabric-wheels-deployment")
	require.True(t, ok)
	assert.Equal(t, "/fabric-wheels-deployment/", target)

	// No normalization of any kind.
	for _, miss := range []string{
		"/blog/fabric-wheels-deployment/",
		"/Blog/fabric-wheels-deployment",
		"/blog/fabric-wheels-deployment2",
		"/",
	} {
		_, ok := table.Resolve(miss)
		assert.False(t, ok, miss)
	}
}

func TestHandler_RedirectsPermanently(t *testing.T) {
	table, err := NewTable(map[string]string{
		"/blog/fabric-wheels-deployment": "/fabric-wheels-deployment/",
	})
	require.NoError(t, err)

	fallthroughHit := false
	h := table.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fallthroughHit = true
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blog/fabric-wheels-deployment", nil))

	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/fabric-wheels-deployment/", rec.Header().Get("Location"))
	assert.False(t, fallthroughHit)
}

func TestHandler_FallsThroughOnMiss(t *testing.T) {
	table, err := NewTable(map[string]string{"/old": "/new/"})
	require.NoError(t, err)

	h := table.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/never-mapped", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
