package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"livery/internal/modules/pricing"
)

func TestDefaultCatalog(t *testing.T) {
	cat := Default()
	assert.False(t, cat.Empty())

	suv, ok := cat.FindVehicle(2)
	require.True(t, ok)
	assert.Equal(t, "Premium SUV", suv.Label)

	_, ok = cat.FindVehicle(99)
	assert.False(t, ok)

	hourly, ok := cat.FindService(4)
	require.True(t, ok)
	assert.True(t, hourly.IsHourly)
}

// The default catalog's configured Gratuity and Fuel Surcharge must satisfy
// the engine's fallback detection, so quotes built from it never double up
// those rows.
func TestDefaultCatalogDrivesEngine(t *testing.T) {
	cat := Default()
	sedan, ok := cat.FindVehicle(1)
	require.True(t, ok)
	hourly, ok := cat.FindService(4)
	require.True(t, ok)

	eng := pricing.NewEngine(pricing.Input{
		Vehicle:   sedan,
		Service:   hourly,
		LineItems: cat.LineItems,
		Taxes:     cat.Taxes,
	})
	eng.SetHours(2)
	eng.SetContext("base")

	var gratuityRows, fuelRows int
	for _, row := range eng.Rows() {
		switch row.Label {
		case "Gratuity":
			gratuityRows++
			assert.NotNil(t, row.Source, "configured item, not the fallback")
		case "Fuel Surcharge":
			fuelRows++
		}
	}
	assert.Equal(t, 1, gratuityRows)
	assert.Equal(t, 1, fuelRows)
	assert.InDelta(t, 13, eng.CombinedTaxRate(), 1e-9)
}
