package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsmostafa/papersum/internal/logger"
)

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://arxiv.org/abs/2507.19457"))
	assert.True(t, IsURL("http://example.com/paper.pdf"))
	assert.False(t, IsURL("papers/attention.pdf"))
	assert.False(t, IsURL("/tmp/https.pdf"))
}

func TestArxivPDFURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"abstract link", "https://arxiv.org/abs/2507.19457", "https://arxiv.org/pdf/2507.19457", false},
		{"pdf link", "https://arxiv.org/pdf/2507.19457", "https://arxiv.org/pdf/2507.19457", false},
		{"versioned", "https://arxiv.org/abs/2507.19457v2", "https://arxiv.org/pdf/2507.19457v2", false},
		{"export mirror", "http://export.arxiv.org/abs/1706.03762", "http://export.arxiv.org/pdf/1706.03762", false},
		{"other host", "https://example.com/abs/1234", "", true},
		{"lookalike host", "https://notarxiv.org/abs/1234", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ArxivPDFURL(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArxivID(t *testing.T) {
	assert.Equal(t, "2507.19457", ArxivID("https://arxiv.org/abs/2507.19457"))
	assert.Equal(t, "2507.19457v2", ArxivID("https://arxiv.org/pdf/2507.19457v2/"))
	assert.Equal(t, "1706.03762", ArxivID("https://arxiv.org/pdf/1706.03762.pdf"))
	assert.Equal(t, "", ArxivID("https://arxiv.org"))
}

func newTestDownloader() *Downloader {
	return NewDownloader(Options{
		Timeout:  5 * time.Second,
		Attempts: 3,
		Delay:    time.Millisecond,
		Logger:   logger.Discard(),
	})
}

func TestDownload(t *testing.T) {
	body := "%PDF-1.4 test body"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pdf/2507.19457", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	path, err := newTestDownloader().Download(context.Background(), srv.URL+"/pdf/2507.19457")
	require.NoError(t, err)
	defer os.Remove(path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, body, string(got))
	assert.Contains(t, path, ".pdf")
}

func TestDownloadRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("%PDF"))
	}))
	defer srv.Close()

	path, err := newTestDownloader().Download(context.Background(), srv.URL+"/pdf/1")
	require.NoError(t, err)
	defer os.Remove(path)

	assert.Equal(t, int32(2), calls.Load())
}

func TestDownloadDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestDownloader().Download(context.Background(), srv.URL+"/pdf/missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Equal(t, int32(1), calls.Load())
}

func TestDownloadCanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("%PDF"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestDownloader().Download(ctx, srv.URL+"/pdf/1")
	require.Error(t, err)
}
