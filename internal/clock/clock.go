// Package clock resolves "now" into the calendar coordinates the
// totals endpoints are scoped by: calendar year, ISO week, and ISO
// weekday in the user's timezone.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

var _ Clock = SystemClock{}

func (SystemClock) Now() time.Time { return time.Now() }

// Stamp is one resolved moment. Year is the calendar year in the
// resolved zone, not the ISO week-numbering year; around a year
// boundary the pair is mismatched, e.g. 2027-01-01 resolves to year
// 2027 with week 53. Day is the ISO weekday, Mon=1..Sun=7.
type Stamp struct {
	Year int
	Week int
	Day  int
}

// Resolve converts now into the given IANA zone and derives the
// calendar coordinates the totals endpoints are queried with. An empty
// or unknown zone falls back to fallback, and an unknown fallback to
// UTC.
func Resolve(now time.Time, timezone, fallback string) Stamp {
	loc := loadLocation(timezone)
	if loc == nil {
		loc = loadLocation(fallback)
	}
	if loc == nil {
		loc = time.UTC
	}

	local := now.In(loc)
	_, week := local.ISOWeek()

	return Stamp{
		Year: local.Year(),
		Week: week,
		Day:  isoWeekday(local.Weekday()),
	}
}

func loadLocation(name string) *time.Location {
	if name == "" {
		return nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil
	}
	return loc
}

// isoWeekday maps Go's Sunday-based weekday onto ISO numbering.
func isoWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}
	return int(d)
}
