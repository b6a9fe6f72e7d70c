package cardio

import (
	"net/url"
	"strconv"
)

// WeekParams scope a totals request to one ISO week.
type WeekParams struct {
	Year int
	Week int
}

func (p WeekParams) values() url.Values {
	v := make(url.Values)
	v.Set("year", strconv.Itoa(p.Year))
	v.Set("week", strconv.Itoa(p.Week))
	return v
}

// DayParams additionally scope to one ISO weekday (Mon=1..Sun=7).
type DayParams struct {
	Year int
	Week int
	Day  int
}

func (p DayParams) values() url.Values {
	v := WeekParams{Year: p.Year, Week: p.Week}.values()
	v.Set("day", strconv.Itoa(p.Day))
	return v
}
