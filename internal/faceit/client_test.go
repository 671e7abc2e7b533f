package faceit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(ClientConfig{
		BaseURL: srv.URL + "/",
		Token:   "secret-token",
		Timeout: 2 * time.Second,
		Logger:  zap.NewNop(),
	})
}

func TestFetch_SetsBearerToken(t *testing.T) {
	var gotAuth, gotAccept string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{"player_id": "P1"}`))
	})

	sess := c.NewSession()
	defer sess.Close()

	p, err := sess.GetPlayer(context.Background(), "s1mple")
	if err != nil {
		t.Fatalf("GetPlayer: %v", err)
	}
	if p.PlayerID != "P1" {
		t.Errorf("PlayerID = %q, want P1", p.PlayerID)
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q", gotAccept)
	}
}

func TestEndpointPaths(t *testing.T) {
	tests := []struct {
		name     string
		call     func(s *Session) error
		wantPath string
		wantRaw  string
	}{
		{
			name: "player by nickname is query escaped",
			call: func(s *Session) error {
				_, err := s.GetPlayer(context.Background(), "a b&c")
				return err
			},
			wantPath: "/players",
			wantRaw:  "nickname=a+b%26c",
		},
		{
			name: "history",
			call: func(s *Session) error {
				_, err := s.GetMatchHistory(context.Background(), "P1", "cs2", 20)
				return err
			},
			wantPath: "/players/P1/history",
			wantRaw:  "game=cs2&limit=20",
		},
		{
			name: "match stats",
			call: func(s *Session) error {
				_, err := s.GetMatchStats(context.Background(), "1-abc")
				return err
			},
			wantPath: "/matches/1-abc/stats",
		},
		{
			name: "ranking",
			call: func(s *Session) error {
				_, err := s.GetPlayerRanking(context.Background(), "cs2", "EU", "P1")
				return err
			},
			wantPath: "/rankings/games/cs2/regions/EU/players/P1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath, gotRaw string
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotRaw = r.URL.RawQuery
				w.Write([]byte(`{}`))
			})
			sess := c.NewSession()
			defer sess.Close()

			if err := tt.call(sess); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gotPath != tt.wantPath {
				t.Errorf("path = %q, want %q", gotPath, tt.wantPath)
			}
			if gotRaw != tt.wantRaw {
				t.Errorf("query = %q, want %q", gotRaw, tt.wantRaw)
			}
		})
	}
}

func TestFetch_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"errors": [{"message": "The resource was not found."}]}`))
	})
	sess := c.NewSession()
	defer sess.Close()

	_, err := sess.GetPlayer(context.Background(), "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("expected ErrUpstream to match as well, got %v", err)
	}
}

func TestFetch_ServerErrorStillDecodesBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"position": 7}`))
	})
	sess := c.NewSession()
	defer sess.Close()

	var out struct {
		Position int `json:"position"`
	}
	err := sess.Fetch(context.Background(), "test", "/anything", &out)

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("StatusCode = %d", statusErr.StatusCode)
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("503 must not match ErrNotFound")
	}
	if out.Position != 7 {
		t.Errorf("body not decoded, Position = %d", out.Position)
	}
}

func TestFetch_EmptyBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	sess := c.NewSession()
	defer sess.Close()

	p, err := sess.GetPlayer(context.Background(), "quiet")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.PlayerID != "" {
		t.Errorf("expected empty player, got %+v", p)
	}
}

func TestFetch_MalformedJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>oops</html>`))
	})
	sess := c.NewSession()
	defer sess.Close()

	if _, err := sess.GetMatchStats(context.Background(), "m1"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{BaseURL: srv.URL, Token: "t", Timeout: 50 * time.Millisecond})
	sess := c.NewSession()
	defer sess.Close()

	start := time.Now()
	if _, err := sess.GetPlayer(context.Background(), "slow"); err == nil {
		t.Fatal("expected timeout error")
	}
	if time.Since(start) > 900*time.Millisecond {
		t.Errorf("request was not bounded by the client timeout")
	}
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(ClientConfig{Token: " tok "})
	if c.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q", c.baseURL)
	}
	if c.token != "tok" {
		t.Errorf("token = %q", c.token)
	}
	if c.timeout != 10*time.Second {
		t.Errorf("timeout = %v", c.timeout)
	}
}
