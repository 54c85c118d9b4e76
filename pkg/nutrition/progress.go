package nutrition

import (
	"math"
)

type Band string

const (
	BandBelow     Band = "below"
	BandNear      Band = "near"
	BandOnTarget  Band = "on_target"
	BandOvershoot Band = "overshoot"
)

const (
	LowThreshold       = 70.0
	HighThreshold      = 90.0
	OvershootThreshold = 110.0
)

// RawPercent is actual/target*100 without clamping; 0 when target <= 0.
func RawPercent(actual, target float64) float64 {
	if target <= 0 || math.IsNaN(target) {
		return 0
	}
	return actual / target * 100
}

// Percent is RawPercent clamped to 100.
func Percent(actual, target float64) float64 {
	return math.Min(RawPercent(actual, target), 100)
}

func ClassifyBand(pct float64) Band {
	switch {
	case pct < LowThreshold:
		return BandBelow
	case pct < HighThreshold:
		return BandNear
	default:
		return BandOnTarget
	}
}

// ClassifyBandWithOvershoot splits the top band at OvershootThreshold. Feed it
// an unclamped percentage or overshoot can never be reached.
func ClassifyBandWithOvershoot(pct float64) Band {
	if pct > OvershootThreshold {
		return BandOvershoot
	}
	return ClassifyBand(pct)
}

func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
