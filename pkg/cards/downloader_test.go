package cards

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureCards_LocalCache(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(sample))
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "cards.collectible.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	err := NewDownloader(nil).EnsureCards(context.Background(), path, srv.URL)
	require.NoError(t, err)
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestEnsureCards_Download(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "json2hmc", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sample))
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "cards.collectible.json")
	err := NewDownloader(nil).EnsureCards(context.Background(), path, srv.URL)
	require.NoError(t, err)

	records, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestEnsureCards_BadResponses(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "Not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
		},
		{
			name: "Not an array",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"error": "rate limited"}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			dir := t.TempDir()
			path := filepath.Join(dir, "cards.collectible.json")
			err := NewDownloader(nil).EnsureCards(context.Background(), path, srv.URL)
			require.Error(t, err)

			_, statErr := os.Stat(path)
			assert.True(t, os.IsNotExist(statErr))

			leftovers, _ := os.ReadDir(dir)
			assert.Empty(t, leftovers)
		})
	}
}
