package utils

import (
	"fmt"
	"time"

	"github.com/quilljournal/quill/internal/constants"
)

// DayOf normalizes an instant to its calendar-date string (YYYY-MM-DD),
// discarding the time-of-day component.
func DayOf(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDay parses a calendar-date string in the standard format (YYYY-MM-DD).
func ParseDay(day string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", day, err)
	}
	return t, nil
}

// ValidateDay reports whether the string is a valid calendar date in the
// standard format.
func ValidateDay(day string) bool {
	_, err := time.Parse(constants.DateFormat, day)
	return err == nil
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// TodayInTimezone returns today's date string (YYYY-MM-DD) in the specified
// timezone. This ensures that "today" is determined by the user's configured
// timezone, not the system timezone.
func TodayInTimezone(timezone string) (string, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return "", fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc).Format(constants.DateFormat), nil
}
