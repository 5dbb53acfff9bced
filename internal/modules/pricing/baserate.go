// README: Base-rate strategies, one per pricing mode.
package pricing

import "math"

type baseRateFn func(v Vehicle, hours, distanceKm float64) float64

// baseRateStrategies maps each pricing mode to its charge function. New
// strategies extend this table.
var baseRateStrategies = map[Mode]baseRateFn{
	ModeHourly:   hourlyBaseRate,
	ModeDistance: distanceBaseRate,
}

// hourlyBaseRate charges billable hours at the per-hour rate. The vehicle's
// configured minimum is itself floored at 2 hours, and requested hours cannot
// go below that.
func hourlyBaseRate(v Vehicle, hours, _ float64) float64 {
	minHours := math.Max(2, float64(v.MinHours))
	billable := math.Max(hours, minHours)
	return round2(billable * v.PerHour)
}

// distanceBaseRate charges a baseline of max(25km, vehicle minimum) at
// whichever is larger of the per-km total or one hour at the hourly rate,
// then any distance past the baseline at the per-km rate with no markup.
func distanceBaseRate(v Vehicle, _ float64, distanceKm float64) float64 {
	baseKm := math.Max(25, v.MinDistance)
	base := math.Max(v.PerKm*baseKm, v.PerHour)
	overKm := math.Max(0, distanceKm-baseKm)
	return round2(base + overKm*v.PerKm)
}
