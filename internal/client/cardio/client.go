package cardio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	go_json "github.com/goccy/go-json"

	"github.com/otterbagel/cardiolog/internal/xhttp"
	"github.com/otterbagel/cardiolog/internal/xslog"
)

// KeySource supplies the API key for each request. Implementations are
// expected to return credstore.ErrNoAPIKey (or their own sentinel) when
// no key is stored, so the call fails before any network I/O.
type KeySource interface {
	APIKey(ctx context.Context) (string, error)
}

type Client struct {
	User       UserService
	Connection ConnectionService
	Totals     TotalsService

	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func New(keys KeySource, opts ...Option) *Client {
	const baseURL = "https://cardiologger.otterbagel.com/v1"

	cfg := &clientConfig{
		baseURL: baseURL,
		keys:    keys,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	transport := &cardioTransport{
		base:      xhttp.NewTransport(),
		keys:      cfg.keys,
		sessionID: cfg.sessionID,
	}

	c := &Client{
		baseURL:    cfg.baseURL,
		httpClient: &http.Client{Transport: transport, Timeout: cfg.timeout},
		logger:     cfg.logger,
	}

	c.User = &userService{client: c}
	c.Connection = &connectionService{client: c}
	c.Totals = &totalsService{client: c}

	return c
}

type clientConfig struct {
	baseURL   string
	keys      KeySource
	logger    *slog.Logger
	sessionID string
	timeout   time.Duration
}

type Option func(*clientConfig)

func WithBaseURL(baseURL string) Option {
	return func(cfg *clientConfig) { cfg.baseURL = baseURL }
}

func WithSessionID(sessionID string) Option {
	return func(cfg *clientConfig) { cfg.sessionID = sessionID }
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *clientConfig) { cfg.logger = logger }
}

func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) { cfg.timeout = d }
}

func (c *Client) do(ctx context.Context, method string, path string, query url.Values, result any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		apiErr := parseAPIError(resp)
		c.logger.DebugContext(ctx, "request failed",
			xslog.Endpoint(path),
			xslog.Error(apiErr))
		return apiErr
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	// the service reports application-level failures as 200s carrying
	// an error field; those count as failed calls
	if err := logicalError(resp.StatusCode, body); err != nil {
		return err
	}

	if result != nil {
		if err := go_json.NewDecoder(bytes.NewReader(body)).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w\nbody: %s", err, string(body))
		}
	}

	return nil
}

type cardioTransport struct {
	base      http.RoundTripper
	keys      KeySource
	sessionID string
}

var _ http.RoundTripper = (*cardioTransport)(nil)

func (t *cardioTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	key, err := t.keys.APIKey(req.Context())
	if err != nil {
		return nil, fmt.Errorf("getting api key: %w", err)
	}

	req.Header.Set(xhttp.XAPIKey, key)
	req.Header.Set(xhttp.Accept, xhttp.ApplicationJSON)

	if t.sessionID != "" {
		req.Header.Set(xhttp.XSessionID, t.sessionID)
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}
	return resp, nil
}
