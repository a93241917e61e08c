package utils

import (
	"fmt"
	"regexp"
	"time"
)

const (
	// DateLayout is the storage layout for calendar dates
	DateLayout = "2006-01-02"

	dateLayoutBR     = "02/01/2006"
	dateTimeLayoutBR = "02/01/2006 15:04:05"
	timeLayoutBR     = "15:04"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail performs the same loose check the console forms use
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// CalculateAge returns the age in whole years at now
func CalculateAge(birthDate, now time.Time) int {
	age := now.Year() - birthDate.Year()
	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// ParseDate accepts YYYY-MM-DD or RFC 3339
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// FormatDate formats t as dd/mm/yyyy
func FormatDate(t time.Time) string {
	return t.Format(dateLayoutBR)
}

// FormatDateTime formats t as dd/mm/yyyy hh:mm:ss
func FormatDateTime(t time.Time) string {
	return t.Format(dateTimeLayoutBR)
}

// FormatTime formats t as hh:mm
func FormatTime(t time.Time) string {
	return t.Format(timeLayoutBR)
}
