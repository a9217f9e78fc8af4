package view

import (
	"fmt"
	"strconv"
	"time"
)

// Pluralize renders n followed by the singular or plural noun.
func Pluralize(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return strconv.Itoa(n) + " " + plural
}

// FileSize renders a byte count in B, KB or MB with one decimal.
func FileSize(bytes int64) string {
	const unit = 1024
	switch {
	case bytes < unit:
		return fmt.Sprintf("%d B", bytes)
	case bytes < unit*unit:
		return fmt.Sprintf("%.1f KB", float64(bytes)/unit)
	default:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(unit*unit))
	}
}

// Date renders t as a short calendar date, e.g. "Mar 1, 2026".
func Date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("Jan 2, 2006")
}
