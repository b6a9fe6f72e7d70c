package cardio

import (
	"context"
	"net/http"
)

type totalsService struct {
	client *Client
}

func (s *totalsService) Day(ctx context.Context, userID string, params DayParams) (*Totals, error) {
	route := "/user-cardio-totals/" + userID

	var totals Totals
	if err := s.client.do(ctx, http.MethodGet, route, params.values(), &totals); err != nil {
		return nil, err
	}
	return &totals, nil
}

func (s *totalsService) Week(ctx context.Context, userID string, params WeekParams) (*Totals, error) {
	route := "/user-cardio-totals/" + userID

	var totals Totals
	if err := s.client.do(ctx, http.MethodGet, route, params.values(), &totals); err != nil {
		return nil, err
	}
	return &totals, nil
}
