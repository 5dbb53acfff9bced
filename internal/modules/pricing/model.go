// README: Pricing catalog records and derived quote rows.
package pricing

import "math"

// Mode selects which base-rate strategy applies to a trip.
type Mode string

const (
	ModeHourly   Mode = "HOURLY"
	ModeDistance Mode = "DISTANCE"
)

// Vehicle is the rate card for one vehicle class. Reference data: selected,
// never mutated, by the engine.
type Vehicle struct {
	Number        int     `json:"vehicle_number"`
	Label         string  `json:"label"`
	PerKm         float64 `json:"per_km"`
	PerHour       float64 `json:"per_hour"`
	MinHours      int     `json:"min_hours"`
	MinDistance   float64 `json:"min_distance"`
	MinRate       float64 `json:"min_rate"`
	MaxPassengers int     `json:"max_passengers"`
	MaxLuggage    int     `json:"max_luggage"`
	IsActive      bool    `json:"is_active"`
}

// Service is a service classification; IsHourly picks the pricing mode.
type Service struct {
	Number   int    `json:"service_number"`
	Label    string `json:"label"`
	IsHourly bool   `json:"is_hourly"`
	IsActive bool   `json:"is_active"`
}

// LineItem is a configurable charge rule. Amount is percentage points when
// IsPercentage is set, currency units otherwise. AppliesTo restricts the item
// to a booking context; empty means it always applies.
type LineItem struct {
	Number       int     `json:"item_number"`
	Label        string  `json:"label"`
	Description  string  `json:"description,omitempty"`
	IsPercentage bool    `json:"is_percentage"`
	IsTaxable    bool    `json:"is_taxable"`
	IsActive     bool    `json:"is_active"`
	Amount       float64 `json:"amount"`
	AppliesTo    string  `json:"applies_to,omitempty"`
}

// SalesTax is a named percentage rate. All active rates are summed into one
// combined rate applied per taxable row.
type SalesTax struct {
	TaxName  string  `json:"tax_name"`
	Region   string  `json:"region,omitempty"`
	Amount   float64 `json:"amount"`
	IsActive bool    `json:"is_active"`
}

// Row is one computed line of the itemized quote. Source links back to the
// originating LineItem; synthetic rows (base rate, fallbacks, airport fee)
// have no source.
type Row struct {
	Label   string
	PreTax  float64
	Tax     float64
	Taxable bool
	Source  *LineItem
}

// RowView is the (label, tax, total) shape consumed by quote persistence and
// notification collaborators. Total carries the pre-tax amount for item rows
// and the grand total on the final "Total" row.
type RowView struct {
	Label string  `json:"label"`
	Tax   float64 `json:"tax"`
	Total float64 `json:"total"`
}

// TaxRate is one active tax as reported in snapshots.
type TaxRate struct {
	Name string  `json:"name"`
	Rate float64 `json:"rate"`
}

// Snapshot bundles every derived value for diagnostics and persistence.
type Snapshot struct {
	Mode                Mode      `json:"mode"`
	DistanceKm          float64   `json:"distance_km"`
	Hours               float64   `json:"hours"`
	BaseRate            float64   `json:"base_rate"`
	SubTotal            float64   `json:"sub_total"`
	TaxTotal            float64   `json:"tax_total"`
	Total               float64   `json:"total"`
	Context             string    `json:"context"`
	LineItems           []RowView `json:"line_items"`
	LineItemsWithTotals []RowView `json:"line_items_with_totals"`
	ActiveTaxRates      []TaxRate `json:"active_tax_rates"`
}

// roundTo rounds half away from zero to the given number of decimals.
// Non-finite input collapses to 0 so a bad rate can never poison a quote.
func roundTo(v float64, digits int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	p := math.Pow(10, float64(digits))
	return math.Round(v*p) / p
}

// round2 rounds to currency precision. Applied at the point each sub-amount
// is computed, so displayed rows always sum to displayed totals.
func round2(v float64) float64 {
	return roundTo(v, 2)
}
