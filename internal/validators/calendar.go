package validators

import (
	"regexp"
	"time"
)

var clock24 = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// IsClock24 accepts zero-padded 24-hour HH:MM only.
func IsClock24(s string) bool {
	return clock24.MatchString(s)
}

// IsISODate accepts a real calendar date written as YYYY-MM-DD.
func IsISODate(s string) bool {
	if len(s) != len("2006-01-02") {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
