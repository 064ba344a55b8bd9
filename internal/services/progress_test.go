package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKgToLb(t *testing.T) {
	tests := []struct {
		kg   float64
		want int
	}{
		{75.0, 165},
		{100.0, 220},
		{68.2, 150},
		{0, 0},
		{90.5, 199},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, KgToLb(tc.kg), "kg=%v", tc.kg)
	}
}

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		name  string
		first float64
		last  float64
		count int
		want  int
	}{
		{"no entries", 0, 0, 0, 0},
		{"single entry", 80, 80, 1, 0},
		{"halfway to goal", 100, 95, 2, 50},
		{"goal reached", 100, 90, 2, 100},
		{"past goal clamps to 100", 100, 85, 3, 100},
		{"gained weight clamps to 0", 100, 105, 2, 0},
		{"no change", 80, 80, 2, 0},
		{"rounding", 90, 86, 2, 44},
		{"zero starting weight", 0, 0, 2, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ProgressPercent(tc.first, tc.last, tc.count))
		})
	}
}

func TestWeightTrend(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
		want    Trend
	}{
		{"empty", nil, TrendStable},
		{"single", []float64{80}, TrendStable},
		{"losing", []float64{82, 81, 80}, TrendLosing},
		{"gaining", []float64{80, 81}, TrendGaining},
		{"flat tail", []float64{82, 80, 80}, TrendStable},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, WeightTrend(tc.weights))
		})
	}
}
