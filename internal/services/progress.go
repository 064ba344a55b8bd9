package services

import "math"

// lbPerKg is the conversion factor the original application displays with.
// It is intentionally the truncated 2.204, not 2.20462.
const lbPerKg = 2.204

// KgToLb converts to whole pounds.
func KgToLb(kg float64) int {
	return int(math.Round(kg * lbPerKg))
}

// ProgressPercent compares the earliest recorded weight against the latest,
// measured against an implicit goal of losing 10% of the starting weight.
// With fewer than two observations there is no trend and the result is 0.
func ProgressPercent(firstKg, lastKg float64, count int) int {
	if count < 2 || firstKg <= 0 {
		return 0
	}
	goalLoss := firstKg * 0.1
	pct := (firstKg - lastKg) / goalLoss * 100
	pct = math.Max(0, math.Min(100, pct))
	return int(math.Round(pct))
}

// Trend labels the direction between the two most recent weights.
type Trend string

const (
	TrendLosing  Trend = "losing"
	TrendGaining Trend = "gaining"
	TrendStable  Trend = "stable"
)

// WeightTrend takes weights in ascending date order.
func WeightTrend(weights []float64) Trend {
	if len(weights) < 2 {
		return TrendStable
	}
	delta := weights[len(weights)-1] - weights[len(weights)-2]
	switch {
	case delta < 0:
		return TrendLosing
	case delta > 0:
		return TrendGaining
	default:
		return TrendStable
	}
}
