package model

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for arrival and departure dates.
const DateLayout = "2006-01-02"

// Overlaps reports whether the stay [arrival1, departure1) intersects
// [arrival2, departure2). The departure day is not occupied, so a stay that
// ends on the day another begins does not overlap it.
func Overlaps(arrival1, departure1, arrival2, departure2 time.Time) bool {
	return arrival1.Before(departure2) && departure1.After(arrival2)
}

// DateOf truncates t to midnight UTC of its calendar day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a UTC date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

type DateRange struct {
	Arrival   time.Time
	Departure time.Time
}

func NewDateRange(arrival, departure time.Time) DateRange {
	return DateRange{
		Arrival:   DateOf(arrival),
		Departure: DateOf(departure),
	}
}

func (r DateRange) Overlaps(other DateRange) bool {
	return Overlaps(r.Arrival, r.Departure, other.Arrival, other.Departure)
}

// Nights is the number of nights between arrival and departure.
func (r DateRange) Nights() int {
	return int(r.Departure.Sub(r.Arrival).Hours() / 24)
}

func (r DateRange) String() string {
	return fmt.Sprintf("[%s, %s)", FormatDate(r.Arrival), FormatDate(r.Departure))
}
