package cardio

import "context"

type UserService interface {
	Get(ctx context.Context, id string) (*User, error)
}

type ConnectionService interface {
	Status(ctx context.Context, userID string) (bool, error)
	Connect(ctx context.Context, userID string) error
}

type TotalsService interface {
	Day(ctx context.Context, userID string, params DayParams) (*Totals, error)
	Week(ctx context.Context, userID string, params WeekParams) (*Totals, error)
}
