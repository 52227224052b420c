package utils

import "time"

const dateLayout = "2006-01-02"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, 0, t.Location())
}

// ParseDateFrom parses a YYYY-MM-DD string into an inclusive lower bound at
// midnight.
func ParseDateFrom(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return BeginningOfDay(t), nil
}

// ParseDateTo parses a YYYY-MM-DD string into an inclusive upper bound at
// 23:59:59 of that calendar day.
func ParseDateTo(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return EndOfDay(t), nil
}

// ParseDateTime accepts RFC3339 timestamps as well as the naive
// "2006-01-02T15:04:05" form booking forms send.
func ParseDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", s)
}

// FirstOfMonth returns midnight on the first calendar day of t's month.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
