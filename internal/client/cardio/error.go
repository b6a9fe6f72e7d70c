package cardio

import (
	"fmt"
	"io"
	"net/http"

	go_json "github.com/goccy/go-json"
)

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("cardiologger api: %d %s", e.StatusCode, e.Message)
}

func parseAPIError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    resp.Status,
		}
	}

	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}

	if err := go_json.Unmarshal(body, &errResp); err != nil {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	msg := errResp.Error
	if msg == "" {
		msg = errResp.Message
	}
	if msg == "" {
		msg = resp.Status
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    msg,
	}
}

// logicalError detects the HTTP-success-but-logical-error convention: a
// well-formed 2xx body carrying a non-empty error field is a failed call.
func logicalError(statusCode int, body []byte) error {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := go_json.Unmarshal(body, &envelope); err != nil {
		return nil
	}
	if envelope.Error == "" {
		return nil
	}
	return &APIError{
		StatusCode: statusCode,
		Message:    envelope.Error,
	}
}
