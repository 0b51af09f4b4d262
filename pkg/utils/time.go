package utils

import "time"

// DayFormat is the calendar-date layout used throughout the service
const DayFormat = "2006-01-02"

// NowRFC3339 returns the current time in RFC3339 format
func NowRFC3339() string {
	return time.Now().Format(time.RFC3339)
}

// ParseRFC3339 parses a time string in RFC3339 format
func ParseRFC3339(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// Today returns the current date as a YYYY-MM-DD string
func Today() string {
	return FormatDay(time.Now())
}

// FormatDay formats a time as a YYYY-MM-DD string
func FormatDay(t time.Time) string {
	return t.Format(DayFormat)
}

// ParseDay parses a YYYY-MM-DD string
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayFormat, s)
}

// IsDay reports whether s is a well-formed YYYY-MM-DD string
func IsDay(s string) bool {
	_, err := ParseDay(s)
	return err == nil
}

// WeekStart returns the first day of the week containing t
func WeekStart(t time.Time, start time.Weekday) time.Time {
	offset := int(t.Weekday()) - int(start)
	if offset < 0 {
		offset += 7
	}
	return t.AddDate(0, 0, -offset)
}

// DayLabel returns the three-letter weekday label for t
func DayLabel(t time.Time) string {
	return t.Weekday().String()[:3]
}
