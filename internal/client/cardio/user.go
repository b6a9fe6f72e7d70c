package cardio

import (
	"context"
	"net/http"
)

type userService struct {
	client *Client
}

func (s *userService) Get(ctx context.Context, id string) (*User, error) {
	route := "/users/" + id

	var user User
	if err := s.client.do(ctx, http.MethodGet, route, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
