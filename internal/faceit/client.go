// Package faceit is a thin client for the FACEIT Data API v4. A Client holds
// the credential and settings; every stats lookup opens its own Session so
// connections are released when the lookup finishes.
package faceit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultBaseURL is the root endpoint for the FACEIT Data API v4.
const DefaultBaseURL = "https://open.faceit.com/data/v4"

// maxBodySize caps how much of an upstream response is read (4MB)
const maxBodySize = 4 << 20

var (
	ErrNotFound = errors.New("faceit: not found")
	ErrUpstream = errors.New("faceit: upstream error")
)

// StatusError is returned for any non-200 upstream response. It matches
// ErrUpstream, and ErrNotFound as well when the status is 404.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("faceit: GET %s: HTTP %d", e.URL, e.StatusCode)
}

func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrUpstream:
		return true
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// ClientConfig configures the API client. Token is required.
type ClientConfig struct {
	BaseURL string
	Token   string
	// Timeout bounds each individual upstream request.
	Timeout time.Duration
	Logger  *zap.Logger
}

// Client is a FACEIT API client. It is safe for concurrent use and holds no
// connections itself.
type Client struct {
	baseURL string
	token   string
	timeout time.Duration
	logger  *zap.SugaredLogger
}

// NewClient returns a client authenticated with cfg.Token.
func NewClient(cfg ClientConfig) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Client{
		baseURL: baseURL,
		token:   strings.TrimSpace(cfg.Token),
		timeout: cfg.Timeout,
		logger:  cfg.Logger.Sugar(),
	}
}

// Session owns a private connection pool. Close it when the lookup is done.
type Session struct {
	client    *Client
	transport *http.Transport
	http      *http.Client
}

// NewSession opens a session with a fresh transport.
func (c *Client) NewSession() *Session {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	return &Session{
		client:    c,
		transport: transport,
		http:      &http.Client{Timeout: c.timeout, Transport: transport},
	}
}

// Close releases the session's idle connections.
func (s *Session) Close() {
	s.transport.CloseIdleConnections()
}

// Fetch performs an authenticated GET of path and decodes the JSON body into
// out. A non-200 status is logged and the body is still decoded when it is
// JSON, but the returned error is a *StatusError. An empty body leaves out
// untouched. endpoint labels the request in metrics.
func (s *Session) Fetch(ctx context.Context, endpoint, path string, out interface{}) error {
	url := s.client.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.client.token)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.http.Do(req)
	upstreamDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		upstreamRequests.WithLabelValues(endpoint, "error").Inc()
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()
	upstreamRequests.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("GET %s: read body: %w", path, err)
	}

	var statusErr error
	if resp.StatusCode != http.StatusOK {
		s.client.logger.Warnw("Upstream request failed", "url", url, "status", resp.StatusCode)
		statusErr = &StatusError{StatusCode: resp.StatusCode, URL: url}
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return statusErr
	}
	if err := json.Unmarshal(body, out); err != nil {
		if statusErr != nil {
			return statusErr
		}
		return fmt.Errorf("GET %s: decode: %w", path, err)
	}
	return statusErr
}
