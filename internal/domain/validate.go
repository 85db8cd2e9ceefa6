package domain

import (
	"fmt"
	"regexp"
	"time"
)

var (
	employeeIDPattern = regexp.MustCompile(`^EMP\d{5}$`)
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern      = regexp.MustCompile(`^\d{10}$`)
)

// ValidEmployeeID reports whether id matches EMP followed by exactly five
// digits. The prefix is case sensitive.
func ValidEmployeeID(id string) bool {
	return employeeIDPattern.MatchString(id)
}

// ValidEmail reports whether s has local@domain shape.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidPhone reports whether s is empty or exactly ten digits. Phone is an
// optional field.
func ValidPhone(s string) bool {
	if s == "" {
		return true
	}
	return phonePattern.MatchString(s)
}

// NextEmployeeID proposes an identifier for the next employee given the
// current collection size. The result is advisory only: it is a client-side
// guess and the store re-checks it for collisions on create.
func NextEmployeeID(count int) string {
	return fmt.Sprintf("EMP%05d", count+1)
}

// DateOnly discards the time-of-day component, keeping the calendar date in
// UTC. Form date fields carry no meaningful time.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
