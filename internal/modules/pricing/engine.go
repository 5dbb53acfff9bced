// README: Quote pricing engine; recomputes every derived value from current selections.
package pricing

import (
	"context"
	"math"
	"strings"
)

// DistanceResolver obtains the aggregate travel distance for a route. The
// production implementation lives in internal/maps.
type DistanceResolver interface {
	ResolveDistance(ctx context.Context, origin, destination string, waypoints []string) (float64, error)
}

// Input carries the catalog selections an engine starts from. Slices are
// copied; the engine never mutates the caller's data.
type Input struct {
	Vehicle   Vehicle
	Service   Service
	LineItems []LineItem
	Taxes     []SalesTax
	Resolver  DistanceResolver
}

// Engine turns a configured trip into an itemized, tax-correct quote.
//
// It holds no cached computed state: every derived value (base rate, rows,
// totals, views) is recomputed from the current selections on each read, so a
// setter can never leave a stale intermediate behind. The only asynchronous
// step is UpdateDistance; everything else is pure and deterministic.
//
// An Engine serves one quote computation at a time and performs no locking.
// Concurrent computations should each use their own instance.
type Engine struct {
	resolver DistanceResolver

	originalLineItems []LineItem
	originalTaxes     []SalesTax

	vehicle   Vehicle
	service   Service
	lineItems []LineItem
	taxes     []SalesTax

	hours       float64
	origin      string
	destination string
	waypoints   []string
	distanceKm  float64

	contextRef       string
	airportPickupFee float64
}

func NewEngine(in Input) *Engine {
	e := &Engine{
		resolver:          in.Resolver,
		originalLineItems: append([]LineItem(nil), in.LineItems...),
		originalTaxes:     append([]SalesTax(nil), in.Taxes...),
		vehicle:           in.Vehicle,
		service:           in.Service,
	}
	e.lineItems = append([]LineItem(nil), in.LineItems...)
	e.taxes = append([]SalesTax(nil), in.Taxes...)
	return e
}

/* ----------------------------------------------
 * Selection setters
 * ---------------------------------------------- */

func (e *Engine) SetVehicle(v Vehicle) {
	e.vehicle = v
}

func (e *Engine) SetService(s Service) {
	e.service = s
}

// SetHours clamps negative input to zero rather than rejecting it.
func (e *Engine) SetHours(h float64) {
	e.hours = math.Max(0, h)
}

// SetPlaces records the route. The distance is not refreshed until
// UpdateDistance is called.
func (e *Engine) SetPlaces(origin, destination string, waypoints []string) {
	e.origin = origin
	e.destination = destination
	e.waypoints = append([]string(nil), waypoints...)
}

func (e *Engine) SetLineItems(items []LineItem) {
	e.lineItems = append([]LineItem(nil), items...)
}

func (e *Engine) SetTaxes(taxes []SalesTax) {
	e.taxes = append([]SalesTax(nil), taxes...)
}

// SetContext sets the scope tag used to filter configured line items.
func (e *Engine) SetContext(ref string) {
	e.contextRef = ref
}

func (e *Engine) SetAirportPickupFee(amount float64) {
	e.airportPickupFee = math.Max(0, amount)
}

// SetDistance records a resolved distance in kilometers at 3-decimal
// precision. Exposed for callers that resolve the route themselves.
func (e *Engine) SetDistance(km float64) {
	e.distanceKm = roundTo(km, 3)
}

// UpdateDistance resolves the current route through the configured resolver.
// An incomplete route yields zero distance without a provider call. Must
// complete before reads that depend on distance reflect the new route.
func (e *Engine) UpdateDistance(ctx context.Context) error {
	if e.origin == "" || e.destination == "" {
		e.distanceKm = 0
		return nil
	}
	km, err := e.resolver.ResolveDistance(ctx, e.origin, e.destination, e.waypoints)
	if err != nil {
		return err
	}
	e.distanceKm = roundTo(km, 3)
	return nil
}

// Reset restores the original line items and taxes and clears all trip
// selections.
func (e *Engine) Reset() {
	e.origin = ""
	e.destination = ""
	e.waypoints = nil
	e.hours = 0
	e.distanceKm = 0
	e.contextRef = ""
	e.airportPickupFee = 0
	e.lineItems = append([]LineItem(nil), e.originalLineItems...)
	e.taxes = append([]SalesTax(nil), e.originalTaxes...)
}

/* ----------------------------------------------
 * Derived values
 * ---------------------------------------------- */

func (e *Engine) Mode() Mode {
	if e.service.IsHourly {
		return ModeHourly
	}
	return ModeDistance
}

func (e *Engine) Distance() float64 {
	return e.distanceKm
}

func (e *Engine) Hours() float64 {
	return e.hours
}

// BaseRate computes the foundational trip charge for the current mode.
func (e *Engine) BaseRate() float64 {
	strategy := baseRateStrategies[e.Mode()]
	return strategy(e.vehicle, e.hours, e.distanceKm)
}

// Rows assembles the ordered charge rows: the synthetic base-rate row, each
// active in-scope configured item, fallback fuel surcharge and gratuity rows
// when no configured label covers them, and the airport fee when set. Order
// matters for display and audit.
func (e *Engine) Rows() []Row {
	base := e.BaseRate()
	combined := e.CombinedTaxRate()

	rows := []Row{{
		Label:   "Base Rate",
		PreTax:  base,
		Tax:     round2(base * combined / 100),
		Taxable: true,
	}}

	for _, item := range e.lineItems {
		if !item.IsActive {
			continue
		}
		if item.AppliesTo != "" && item.AppliesTo != e.contextRef {
			continue
		}
		amount := item.Amount
		if item.IsPercentage {
			amount = base * item.Amount / 100
		}
		preTax := round2(amount)
		var tax float64
		if item.IsTaxable {
			tax = round2(preTax * combined / 100)
		}
		src := item
		rows = append(rows, Row{
			Label:   item.Label,
			PreTax:  preTax,
			Tax:     tax,
			Taxable: item.IsTaxable,
			Source:  &src,
		})
	}

	// Fallback rows are keyed off a case-insensitive label substring match,
	// kept for compatibility with existing catalog data.
	if !hasLabel(rows, "fuel") {
		preTax := round2(base * 0.08)
		rows = append(rows, Row{
			Label:   "Fuel Surcharge",
			PreTax:  preTax,
			Tax:     round2(preTax * combined / 100),
			Taxable: true,
		})
	}
	if !hasLabel(rows, "gratuity") {
		rows = append(rows, Row{
			Label:  "Gratuity",
			PreTax: round2(base * 0.2),
		})
	}

	if e.airportPickupFee > 0 {
		preTax := round2(e.airportPickupFee)
		rows = append(rows, Row{
			Label:   "GTAA Fee",
			PreTax:  preTax,
			Tax:     round2(preTax * combined / 100),
			Taxable: true,
		})
	}

	return rows
}

func hasLabel(rows []Row, substr string) bool {
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.Label), substr) {
			return true
		}
	}
	return false
}

// SubTotal is the sum of all row pre-tax amounts, fallback rows included.
func (e *Engine) SubTotal() float64 {
	var sum float64
	for _, r := range e.Rows() {
		sum += r.PreTax
	}
	return round2(sum)
}

// TaxTotal is the sum of all row tax amounts.
func (e *Engine) TaxTotal() float64 {
	var sum float64
	for _, r := range e.Rows() {
		sum += r.Tax
	}
	return round2(sum)
}

// TotalAmount is the grand total: subtotal plus tax total.
func (e *Engine) TotalAmount() float64 {
	return round2(e.SubTotal() + e.TaxTotal())
}

// DetailedLineItems mirrors each computed row as a (label, tax, total) view.
func (e *Engine) DetailedLineItems() []RowView {
	rows := e.Rows()
	views := make([]RowView, 0, len(rows))
	for _, r := range rows {
		views = append(views, RowView{
			Label: r.Label,
			Tax:   round2(r.Tax),
			Total: round2(r.PreTax),
		})
	}
	return views
}

// DetailedLineItemsWithTotals extends DetailedLineItems with one row per
// active tax (reconstructed proportionally), a consolidated "Total Tax" row
// when more than one tax is active, and a final "Total" row. This is the view
// quote persistence and notification consumers expect.
func (e *Engine) DetailedLineItemsWithTotals() []RowView {
	views := e.DetailedLineItems()
	taxTotal := e.TaxTotal()

	for _, share := range e.taxBreakdown(taxTotal) {
		views = append(views, RowView{
			Label: share.Tax.TaxName,
			Tax:   share.Amount,
			Total: share.Amount,
		})
	}

	if len(e.ActiveTaxes()) > 1 {
		views = append(views, RowView{
			Label: "Total Tax",
			Tax:   taxTotal,
			Total: taxTotal,
		})
	}

	views = append(views, RowView{
		Label: "Total",
		Tax:   taxTotal,
		Total: e.TotalAmount(),
	})
	return views
}

// Snapshot bundles every derived value plus mode and context for diagnostics
// and persistence.
func (e *Engine) Snapshot() Snapshot {
	active := e.ActiveTaxes()
	rates := make([]TaxRate, 0, len(active))
	for _, t := range active {
		rates = append(rates, TaxRate{Name: t.TaxName, Rate: t.Amount})
	}
	return Snapshot{
		Mode:                e.Mode(),
		DistanceKm:          e.distanceKm,
		Hours:               e.hours,
		BaseRate:            e.BaseRate(),
		SubTotal:            e.SubTotal(),
		TaxTotal:            e.TaxTotal(),
		Total:               e.TotalAmount(),
		Context:             e.contextRef,
		LineItems:           e.DetailedLineItems(),
		LineItemsWithTotals: e.DetailedLineItemsWithTotals(),
		ActiveTaxRates:      rates,
	}
}
