package clock

import (
	"testing"
	"time"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		now      time.Time
		timezone string
		fallback string
		want     Stamp
	}{
		{
			name:     "midyear tuesday in UTC",
			now:      time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC),
			timezone: "UTC",
			fallback: "UTC",
			want:     Stamp{Year: 2026, Week: 36, Day: 2},
		},
		{
			name:     "zone conversion crosses the day boundary",
			now:      time.Date(2026, time.September, 1, 0, 30, 0, 0, time.UTC),
			timezone: "America/New_York",
			fallback: "UTC",
			want:     Stamp{Year: 2026, Week: 36, Day: 1},
		},
		{
			name:     "sunday maps to ISO day 7",
			now:      time.Date(2026, time.September, 6, 12, 0, 0, 0, time.UTC),
			timezone: "UTC",
			fallback: "UTC",
			want:     Stamp{Year: 2026, Week: 36, Day: 7},
		},
		{
			name:     "january first belonging to week 1",
			now:      time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
			timezone: "UTC",
			fallback: "UTC",
			want:     Stamp{Year: 2026, Week: 1, Day: 4},
		},
		{
			name:     "january first keeps calendar year with previous week number",
			now:      time.Date(2027, time.January, 1, 12, 0, 0, 0, time.UTC),
			timezone: "UTC",
			fallback: "UTC",
			want:     Stamp{Year: 2027, Week: 53, Day: 5},
		},
		{
			name:     "late december keeps calendar year with week 1",
			now:      time.Date(2025, time.December, 29, 12, 0, 0, 0, time.UTC),
			timezone: "UTC",
			fallback: "UTC",
			want:     Stamp{Year: 2025, Week: 1, Day: 1},
		},
		{
			name:     "first monday starts the new ISO year",
			now:      time.Date(2027, time.January, 4, 12, 0, 0, 0, time.UTC),
			timezone: "UTC",
			fallback: "UTC",
			want:     Stamp{Year: 2027, Week: 1, Day: 1},
		},
		{
			name:     "empty zone uses fallback",
			now:      time.Date(2026, time.September, 1, 0, 30, 0, 0, time.UTC),
			timezone: "",
			fallback: "America/New_York",
			want:     Stamp{Year: 2026, Week: 36, Day: 1},
		},
		{
			name:     "unknown zone uses fallback",
			now:      time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC),
			timezone: "Not/AZone",
			fallback: "UTC",
			want:     Stamp{Year: 2026, Week: 36, Day: 2},
		},
		{
			name:     "unknown zone and fallback default to UTC",
			now:      time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC),
			timezone: "Not/AZone",
			fallback: "Also/NotAZone",
			want:     Stamp{Year: 2026, Week: 36, Day: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Resolve(tt.now, tt.timezone, tt.fallback)
			if got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
