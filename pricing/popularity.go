package pricing

import (
	"math"
	"time"
)

// ViewWindow is the sliding window over which view events count toward an
// offer's popularity factor.
const ViewWindow = 12 * time.Hour

// PopularityFunc maps a view count inside the window to a popularity factor.
type PopularityFunc func(views int64) float64

const (
	logPopularityCap    = 5.0
	linearPopularityCap = 10.0
)

// LogPopularity grows slowly with view volume: min(ln(views+1), 5.0).
// This is the default strategy.
func LogPopularity(views int64) float64 {
	return math.Min(math.Log(float64(views)+1), logPopularityCap)
}

// LinearPopularity adds 0.1 per view on top of a neutral 1.0, capped at
// 10.0 and rounded to two decimals.
func LinearPopularity(views int64) float64 {
	return Round2(math.Min(linearPopularityCap, 1.0+float64(views)*0.1))
}
