package xhttp

import (
	"fmt"
	"net/http"

	"github.com/otterbagel/cardiolog/internal/version"
)

type cardiologTransport struct {
	base http.RoundTripper
}

var _ http.RoundTripper = (*cardiologTransport)(nil)

func (t *cardiologTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", "cardiolog/"+version.Get())
	req.Header.Set(version.Header, version.Get())
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

// NewTransport returns an http.RoundTripper with standard cardiolog headers.
func NewTransport() http.RoundTripper {
	return &cardiologTransport{base: http.DefaultTransport}
}
