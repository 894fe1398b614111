package netx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadToFile_WritesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("png-bytes"))
	}))
	t.Cleanup(srv.Close)

	dest := filepath.Join(t.TempDir(), "img_1.png")
	require.NoError(t, DownloadToFile(context.Background(), srv.Client(), srv.URL+"/img_1.png", dest))

	b, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(b))
}

func TestDownloadToFile_Non2xxFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	dest := filepath.Join(t.TempDir(), "missing.png")
	err := DownloadToFile(context.Background(), srv.Client(), srv.URL+"/missing.png", dest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "download failed")

	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr), "file must not be created on HTTP error")
}
