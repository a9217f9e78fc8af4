package view

import (
	"math"
	"slices"
	"strings"
	"time"

	"go.trai.ch/cram/internal/core/domain"
)

// Band is a coarse rating used to color scores.
type Band string

const (
	// BandGood is 80% and above.
	BandGood Band = "good"
	// BandFair is 60% up to 80%.
	BandFair Band = "fair"
	// BandPoor is below 60%.
	BandPoor Band = "poor"
)

// AttemptSummary aggregates a user's quiz history.
type AttemptSummary struct {
	Total          int
	AveragePercent int
	Last           time.Time
	Attempts       []domain.QuizAttempt
}

// SummarizeAttempts computes totals over attempts. Attempts is returned newest first; the input is not modified.
func SummarizeAttempts(attempts []domain.QuizAttempt) AttemptSummary {
	sorted := slices.Clone(attempts)
	slices.SortStableFunc(sorted, func(a, b domain.QuizAttempt) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	summary := AttemptSummary{Total: len(sorted), Attempts: sorted}
	if len(sorted) == 0 {
		return summary
	}

	var sum float64
	for _, a := range sorted {
		sum += ratio(a.Score, a.TotalQuestions)
	}
	summary.AveragePercent = int(math.Round(sum / float64(len(sorted)) * 100))
	summary.Last = sorted[0].Timestamp
	return summary
}

// Percent returns score as a rounded percentage of total. A zero total yields 0.
func Percent(score, total int) int {
	return int(math.Round(ratio(score, total) * 100))
}

// ScoreBand rates score out of total.
func ScoreBand(score, total int) Band {
	r := ratio(score, total)
	switch {
	case r >= 0.8:
		return BandGood
	case r >= 0.6:
		return BandFair
	default:
		return BandPoor
	}
}

// DifficultyBand normalizes a difficulty label to easy, medium, hard or other.
func DifficultyBand(difficulty string) string {
	switch d := strings.ToLower(strings.TrimSpace(difficulty)); d {
	case "easy", "medium", "hard":
		return d
	default:
		return "other"
	}
}

func ratio(score, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(score) / float64(total)
}
