package catalog

import "livery/internal/modules/pricing"

// Default returns the built-in catalog used when the database has not been
// seeded. Values mirror the production seed data.
func Default() Catalog {
	return Catalog{
		Vehicles: []pricing.Vehicle{
			{Number: 1, Label: "Executive Sedan", PerKm: 1.7, PerHour: 85, MinHours: 2, MinDistance: 25, MinRate: 170, MaxPassengers: 3, MaxLuggage: 3, IsActive: true},
			{Number: 2, Label: "Premium SUV", PerKm: 2.1, PerHour: 110, MinHours: 2, MinDistance: 25, MinRate: 220, MaxPassengers: 5, MaxLuggage: 5, IsActive: true},
			{Number: 3, Label: "Sprinter Van", PerKm: 2.6, PerHour: 145, MinHours: 3, MinDistance: 30, MinRate: 435, MaxPassengers: 10, MaxLuggage: 10, IsActive: true},
			{Number: 4, Label: "Luxury Coach", PerKm: 3.1, PerHour: 185, MinHours: 3, MinDistance: 30, MinRate: 555, MaxPassengers: 14, MaxLuggage: 12, IsActive: true},
		},
		Services: []pricing.Service{
			{Number: 1, Label: "Point-to-Point", IsHourly: false, IsActive: true},
			{Number: 2, Label: "To Airport", IsHourly: false, IsActive: true},
			{Number: 3, Label: "From Airport", IsHourly: false, IsActive: true},
			{Number: 4, Label: "Hourly / As Directed", IsHourly: true, IsActive: true},
		},
		LineItems: []pricing.LineItem{
			{Number: 2001, Label: "Gratuity", Description: "Suggested gratuity (20%)", IsPercentage: true, IsTaxable: false, IsActive: true, Amount: 20, AppliesTo: "base"},
			{Number: 2002, Label: "Fuel Surcharge", Description: "Fuel surcharge (8%)", IsPercentage: true, IsTaxable: true, IsActive: true, Amount: 8, AppliesTo: "base"},
		},
		Taxes: []pricing.SalesTax{
			{TaxName: "HST", Region: "ON", Amount: 13, IsActive: true},
		},
	}
}
