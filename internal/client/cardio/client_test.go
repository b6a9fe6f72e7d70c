package cardio

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/otterbagel/cardiolog/internal/xhttp"
)

type staticKeySource string

func (s staticKeySource) APIKey(_ context.Context) (string, error) {
	return string(s), nil
}

type failingKeySource struct{ err error }

func (s failingKeySource) APIKey(_ context.Context) (string, error) {
	return "", s.err
}

func newTestClient(t *testing.T, keys KeySource, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(keys, WithBaseURL(srv.URL), WithSessionID("test-session"))
}

func TestRequestHeaders(t *testing.T) {
	t.Parallel()

	var gotKey, gotSession, gotAccept string
	client := newTestClient(t, staticKeySource("k1"), func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get(xhttp.XAPIKey)
		gotSession = r.Header.Get(xhttp.XSessionID)
		gotAccept = r.Header.Get(xhttp.Accept)
		w.Write([]byte(`{"id":"u1","timezone":"UTC"}`))
	})

	if _, err := client.User.Get(t.Context(), "u1"); err != nil {
		t.Fatalf("User.Get() error = %v", err)
	}
	if gotKey != "k1" {
		t.Errorf("%s = %q, want %q", xhttp.XAPIKey, gotKey, "k1")
	}
	if gotSession != "test-session" {
		t.Errorf("%s = %q, want %q", xhttp.XSessionID, gotSession, "test-session")
	}
	if gotAccept != xhttp.ApplicationJSON {
		t.Errorf("%s = %q, want %q", xhttp.Accept, gotAccept, xhttp.ApplicationJSON)
	}
}

func TestMissingKeyFailsBeforeRequest(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("no key stored")
	var requests atomic.Int64
	client := newTestClient(t, failingKeySource{err: sentinel}, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	})

	_, err := client.User.Get(t.Context(), "u1")
	if !errors.Is(err, sentinel) {
		t.Fatalf("User.Get() error = %v, want wrapped %v", err, sentinel)
	}
	if n := requests.Load(); n != 0 {
		t.Errorf("server received %d requests, want 0", n)
	}
}

func TestLogicalErrorEnvelope(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, staticKeySource("k1"), func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"bad key"}`))
	})

	_, err := client.User.Get(t.Context(), "u1")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("User.Get() error = %v, want *APIError", err)
	}
	if apiErr.Message != "bad key" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "bad key")
	}
	if apiErr.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, http.StatusOK)
	}
}

func TestHTTPErrorStatus(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, staticKeySource("k1"), func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid api key"}`))
	})

	_, err := client.Connection.Status(t.Context(), "u1")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Connection.Status() error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, http.StatusUnauthorized)
	}
	if apiErr.Message != "invalid api key" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "invalid api key")
	}
}

func TestConnectionStatus(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, staticKeySource("k1"), func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/connected/u1" {
			t.Errorf("path = %q, want %q", r.URL.Path, "/connected/u1")
		}
		w.Write([]byte(`{"connected":true}`))
	})

	connected, err := client.Connection.Status(t.Context(), "u1")
	if err != nil {
		t.Fatalf("Connection.Status() error = %v", err)
	}
	if !connected {
		t.Error("Connection.Status() = false, want true")
	}
}

func TestConnect(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath string
	client := newTestClient(t, staticKeySource("k1"), func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	})

	if err := client.Connection.Connect(t.Context(), "u1"); err != nil {
		t.Fatalf("Connection.Connect() error = %v", err)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("method = %q, want %q", gotMethod, http.MethodPost)
	}
	if gotPath != "/connect/u1" {
		t.Errorf("path = %q, want %q", gotPath, "/connect/u1")
	}
}

func TestTotalsParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		call      func(ctx context.Context, client *Client) (*Totals, error)
		wantQuery map[string]string
	}{
		{
			name: "day totals carry year week and day",
			call: func(ctx context.Context, client *Client) (*Totals, error) {
				return client.Totals.Day(ctx, "u1", DayParams{Year: 2026, Week: 36, Day: 2})
			},
			wantQuery: map[string]string{"year": "2026", "week": "36", "day": "2"},
		},
		{
			name: "week totals omit day",
			call: func(ctx context.Context, client *Client) (*Totals, error) {
				return client.Totals.Week(ctx, "u1", WeekParams{Year: 2026, Week: 36})
			},
			wantQuery: map[string]string{"year": "2026", "week": "36"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotQuery map[string]string
			client := newTestClient(t, staticKeySource("k1"), func(w http.ResponseWriter, r *http.Request) {
				gotQuery = make(map[string]string)
				for k, v := range r.URL.Query() {
					gotQuery[k] = v[0]
				}
				w.Write([]byte(`{"points":12.7,"active_seconds":125}`))
			})

			totals, err := tt.call(t.Context(), client)
			if err != nil {
				t.Fatalf("totals call error = %v", err)
			}
			if diff := cmp.Diff(tt.wantQuery, gotQuery); diff != "" {
				t.Errorf("query params mismatch (-want +got):\n%s", diff)
			}

			want := &Totals{Points: 12.7, ActiveSeconds: 125}
			if diff := cmp.Diff(want, totals); diff != "" {
				t.Errorf("totals mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
