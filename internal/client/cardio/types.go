package cardio

type User struct {
	ID       string `json:"id"`
	Timezone string `json:"timezone"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

type ConnectionStatus struct {
	Connected bool `json:"connected"`
}

// Totals are cumulative over the requested scope (a day or a week).
// Points arrive with fractional precision; display flooring is the
// presentation layer's concern.
type Totals struct {
	Points        float64 `json:"points"`
	ActiveSeconds float64 `json:"active_seconds"`
}
