// Package fetch resolves remote paper URLs and downloads them to temporary
// files.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	charmlog "github.com/charmbracelet/log"
	"github.com/go-resty/resty/v2"

	"github.com/itsmostafa/papersum/internal/version"
)

// ErrUnsupportedURL is returned for remote inputs that are not arXiv links.
var ErrUnsupportedURL = errors.New("only arXiv URLs are supported")

// IsURL reports whether input looks like an http(s) URL rather than a path.
func IsURL(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

// ArxivPDFURL converts an arXiv abstract or PDF link to its PDF link.
// https://arxiv.org/abs/2507.19457 becomes https://arxiv.org/pdf/2507.19457.
func ArxivPDFURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	host := strings.ToLower(u.Hostname())
	if host != "arxiv.org" && !strings.HasSuffix(host, ".arxiv.org") {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedURL, raw)
	}
	u.Path = strings.Replace(u.Path, "/abs/", "/pdf/", 1)
	return u.String(), nil
}

// ArxivID returns the last path segment of an arXiv link, which is the
// paper identifier (with version, if given).
func ArxivID(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Path == "" {
		return ""
	}
	id := path.Base(strings.TrimSuffix(u.Path, "/"))
	id = strings.TrimSuffix(id, ".pdf")
	if id == "." || id == "/" {
		return ""
	}
	return id
}

// Options configures a Downloader.
type Options struct {
	Timeout  time.Duration
	Attempts uint
	Delay    time.Duration
	Logger   *charmlog.Logger
}

// Downloader fetches PDFs over HTTP with retries.
type Downloader struct {
	client   *resty.Client
	attempts uint
	delay    time.Duration
	log      *charmlog.Logger
}

// NewDownloader creates a Downloader. Zero options fall back to a 60s
// timeout, 3 attempts and a 1s base delay.
func NewDownloader(opts Options) *Downloader {
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	if opts.Attempts == 0 {
		opts.Attempts = 3
	}
	if opts.Delay <= 0 {
		opts.Delay = time.Second
	}
	if opts.Logger == nil {
		opts.Logger = charmlog.Default()
	}

	client := resty.New().
		SetTimeout(opts.Timeout).
		SetHeader("Accept", "application/pdf").
		SetHeader("User-Agent", "papersum/"+version.Short())

	return &Downloader{
		client:   client,
		attempts: opts.Attempts,
		delay:    opts.Delay,
		log:      opts.Logger,
	}
}

// Download saves the document at rawURL to a new temporary .pdf file and
// returns its path. The caller removes the file.
func (d *Downloader) Download(ctx context.Context, rawURL string) (string, error) {
	f, err := os.CreateTemp("", "papersum-download-*.pdf")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := f.Name()
	f.Close()

	d.log.Info("Downloading", "url", rawURL)

	err = retry.Do(
		func() error {
			resp, err := d.client.R().
				SetContext(ctx).
				SetOutput(tempPath).
				Get(rawURL)
			if err != nil {
				return err
			}
			if resp.StatusCode() >= http.StatusBadRequest && resp.StatusCode() < http.StatusInternalServerError {
				return retry.Unrecoverable(fmt.Errorf("download failed: %s", resp.Status()))
			}
			if resp.IsError() {
				return fmt.Errorf("download failed: %s", resp.Status())
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(d.attempts),
		retry.Delay(d.delay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			d.log.Warn("Retrying download", "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("downloading %s: %w", rawURL, err)
	}

	return tempPath, nil
}
