package utils

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD) into a UTC midnight
// timestamp. All stay intervals are kept in this form.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD: %w", value, err)
	}
	return t.UTC(), nil
}

// FormatDate renders a stay boundary back to YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// Today returns the current calendar day at UTC midnight, comparable with
// stay boundaries produced by ParseDate.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// GenerateReferenceCode creates a human-facing booking reference.
// Format: RES-YYYYMMDD-HHMMSS-RANDOM
func GenerateReferenceCode() string {
	rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()

	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("RES-%s-%s-%s", datePart, timePart, randomPart)
}
