// Package statistics aggregates review history into per-period reports.
package statistics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/benkyo-app/benkyo/internal/flashcard"
)

// ReviewStatistics holds review counts for a time period
type ReviewStatistics struct {
	Period      string // "2025-01" for monthly
	Reviews     int    // Total reviews recorded in the period
	UniqueCards int    // Distinct cards reviewed in the period
	Failures    int    // Reviews with quality below 3
}

// FailureRate returns the share of failed reviews in the period.
func (s ReviewStatistics) FailureRate() float64 {
	if s.Reviews == 0 {
		return 0
	}
	return float64(s.Failures) / float64(s.Reviews)
}

// AggregateStatistics holds totals across all periods with global unique counts
type AggregateStatistics struct {
	Reviews     int // Total reviews across all periods
	UniqueCards int // Distinct cards reviewed (deduplicated across periods)
	Failures    int // Failed reviews across all periods
}

// StatisticsResult holds both per-period and aggregate statistics
type StatisticsResult struct {
	Periods   []ReviewStatistics
	Aggregate AggregateStatistics
}

// periodData tracks counts per period
type periodData struct {
	reviews     int
	uniqueCards map[string]struct{}
	failures    int
}

// CalculateStatistics aggregates review logs into monthly statistics.
// It accepts optional year and month filters (0 means no filter).
func CalculateStatistics(logs []flashcard.ReviewLog, year, month int) StatisticsResult {
	stats := make(map[string]*periodData)
	globalUniqueCards := make(map[string]struct{})
	var totalFailures int

	for _, log := range logs {
		if log.ReviewedAt.IsZero() {
			continue
		}

		logYear := log.ReviewedAt.Year()
		logMonth := int(log.ReviewedAt.Month())
		if !matchesFilter(logYear, logMonth, year, month) {
			continue
		}

		period := fmt.Sprintf("%d-%02d", logYear, logMonth)
		if stats[period] == nil {
			stats[period] = &periodData{uniqueCards: make(map[string]struct{})}
		}

		cardKey := fmt.Sprintf("%s|%s|%d", log.UserID, log.ContentType, log.ContentID)
		data := stats[period]
		data.reviews++
		data.uniqueCards[cardKey] = struct{}{}
		globalUniqueCards[cardKey] = struct{}{}
		if log.Quality < 3 {
			data.failures++
			totalFailures++
		}
	}

	return buildResult(stats, globalUniqueCards, totalFailures)
}

func matchesFilter(logYear, logMonth, filterYear, filterMonth int) bool {
	if filterYear == 0 {
		return true
	}
	if logYear != filterYear {
		return false
	}
	if filterMonth == 0 {
		return true
	}
	return logMonth == filterMonth
}

func buildResult(stats map[string]*periodData, globalUniqueCards map[string]struct{}, totalFailures int) StatisticsResult {
	periods := make([]ReviewStatistics, 0, len(stats))

	var totalReviews int
	for period, data := range stats {
		periods = append(periods, ReviewStatistics{
			Period:      period,
			Reviews:     data.reviews,
			UniqueCards: len(data.uniqueCards),
			Failures:    data.failures,
		})
		totalReviews += data.reviews
	}

	// Sort by period descending (newest first)
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Period > periods[j].Period
	})

	return StatisticsResult{
		Periods: periods,
		Aggregate: AggregateStatistics{
			Reviews:     totalReviews,
			UniqueCards: len(globalUniqueCards),
			Failures:    totalFailures,
		},
	}
}

// RenderMarkdown formats the result as a markdown report.
func RenderMarkdown(result StatisticsResult) string {
	var b strings.Builder

	b.WriteString("# Review Report\n\n")
	b.WriteString("| Period | Reviews | Unique Cards | Failures | Failure Rate |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, period := range result.Periods {
		fmt.Fprintf(&b, "| %s | %d | %d | %d | %.1f%% |\n",
			period.Period, period.Reviews, period.UniqueCards, period.Failures, period.FailureRate()*100)
	}

	agg := result.Aggregate
	var rate float64
	if agg.Reviews > 0 {
		rate = float64(agg.Failures) / float64(agg.Reviews) * 100
	}
	fmt.Fprintf(&b, "| **Total** | %d | %d | %d | %.1f%% |\n", agg.Reviews, agg.UniqueCards, agg.Failures, rate)

	return b.String()
}
