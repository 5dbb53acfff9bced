package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHourlyBaseRate(t *testing.T) {
	tests := []struct {
		name    string
		vehicle Vehicle
		hours   float64
		want    float64
	}{
		{
			name:    "requested hours below vehicle minimum are floored",
			vehicle: Vehicle{PerHour: 85, MinHours: 2},
			hours:   1,
			want:    170,
		},
		{
			name:    "requested hours above minimum bill as requested",
			vehicle: Vehicle{PerHour: 85, MinHours: 2},
			hours:   5,
			want:    425,
		},
		{
			name:    "vehicle minimum below two hours is floored at two",
			vehicle: Vehicle{PerHour: 85, MinHours: 0},
			hours:   1,
			want:    170,
		},
		{
			name:    "three hour minimum wins over zero requested hours",
			vehicle: Vehicle{PerHour: 145, MinHours: 3},
			hours:   0,
			want:    435,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hourlyBaseRate(tt.vehicle, tt.hours, 0)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestDistanceBaseRate(t *testing.T) {
	suv := Vehicle{PerKm: 2.1, PerHour: 110, MinDistance: 25}
	sedan := Vehicle{PerKm: 1.7, PerHour: 85, MinDistance: 25}

	tests := []struct {
		name       string
		vehicle    Vehicle
		distanceKm float64
		want       float64
	}{
		{
			name:       "hourly floor beats per-km baseline, overage at per-km",
			vehicle:    suv,
			distanceKm: 40,
			// baseline = max(25*2.1, 110) = 110; overage = 15*2.1 = 31.5
			want: 141.50,
		},
		{
			name:       "zero distance charges baseline only",
			vehicle:    suv,
			distanceKm: 0,
			want:       110,
		},
		{
			name:       "distance at baseline charges baseline only",
			vehicle:    suv,
			distanceKm: 25,
			want:       110,
		},
		{
			name:       "cheap hourly rate cannot undercut per-km minimum",
			vehicle:    Vehicle{PerKm: 5, PerHour: 60, MinDistance: 25},
			distanceKm: 10,
			// baseline = max(125, 60) = 125
			want: 125,
		},
		{
			name:       "long trip overage",
			vehicle:    sedan,
			distanceKm: 100,
			// baseline = max(42.5, 85) = 85; overage = 75*1.7 = 127.5
			want: 212.50,
		},
		{
			name:       "vehicle minimum below 25km is floored at 25",
			vehicle:    Vehicle{PerKm: 2, PerHour: 10, MinDistance: 5},
			distanceKm: 30,
			// baseline km = 25; baseline = max(50, 10) = 50; overage = 5*2
			want: 60,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := distanceBaseRate(tt.vehicle, 0, tt.distanceKm)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestBaseRateNeverNegative(t *testing.T) {
	vehicles := []Vehicle{
		{},
		{PerKm: 2.1, PerHour: 110, MinDistance: 25, MinHours: 2},
		{PerKm: 0.1, PerHour: 1, MinDistance: 1, MinHours: 1},
	}
	for _, v := range vehicles {
		for _, hours := range []float64{0, 1, 8} {
			for _, km := range []float64{0, 12.345, 500} {
				assert.GreaterOrEqual(t, hourlyBaseRate(v, hours, km), 0.0)
				assert.GreaterOrEqual(t, distanceBaseRate(v, hours, km), 0.0)
			}
		}
	}
}
