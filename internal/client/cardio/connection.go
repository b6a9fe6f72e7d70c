package cardio

import (
	"context"
	"net/http"
)

type connectionService struct {
	client *Client
}

func (s *connectionService) Status(ctx context.Context, userID string) (bool, error) {
	route := "/connected/" + userID

	var status ConnectionStatus
	if err := s.client.do(ctx, http.MethodGet, route, nil, &status); err != nil {
		return false, err
	}
	return status.Connected, nil
}

func (s *connectionService) Connect(ctx context.Context, userID string) error {
	route := "/connect/" + userID
	return s.client.do(ctx, http.MethodPost, route, nil, nil)
}
