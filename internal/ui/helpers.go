package ui

import (
	"fmt"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// parseFloat converts a validated form value; validation has already
// rejected non-numeric input, so failures collapse to zero.
func parseFloat(s string) float64 {
	n, _ := strconv.ParseFloat(s, 64)
	return n
}

func parseInt(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// parseDate reads a yyyy-mm-dd value, falling back when empty or
// malformed.
func parseDate(s string, fallback time.Time) time.Time {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t
	}
	if fallback.IsZero() {
		return time.Now().UTC().Truncate(24 * time.Hour)
	}
	return fallback
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func money(f float64) string {
	return fmt.Sprintf("%.2f", f)
}
