// README: Quote service; runs the pricing engine over catalog data and persists the result.
package quote

import (
	"context"
	"time"

	"github.com/google/uuid"

	"livery/internal/logger"
	"livery/internal/maps"
	"livery/internal/modules/catalog"
	"livery/internal/modules/pricing"
	"livery/internal/types"
)

// RouteResolver resolves a route to an aggregate distance plus display data.
type RouteResolver interface {
	ResolveRoute(ctx context.Context, origin, destination string, waypoints []string) (maps.RouteEstimate, error)
}

// AirportChecker reports whether a place is an airport.
type AirportChecker interface {
	IsAirport(ctx context.Context, placeID string) (bool, error)
}

// CatalogSource supplies the reference data the engine selects from.
type CatalogSource interface {
	Snapshot(ctx context.Context) (catalog.Catalog, error)
}

// QuoteStore persists computed quotes.
type QuoteStore interface {
	Create(ctx context.Context, q *Quote) error
	GetByNumber(ctx context.Context, number int64) (*Quote, error)
}

type Service struct {
	store      QuoteStore
	catalog    CatalogSource
	resolver   RouteResolver
	airports   AirportChecker
	airportFee float64
	log        logger.Logger
}

func NewService(store QuoteStore, cat CatalogSource, resolver RouteResolver, airports AirportChecker, airportFee float64, log logger.Logger) *Service {
	return &Service{
		store:      store,
		catalog:    cat,
		resolver:   resolver,
		airports:   airports,
		airportFee: airportFee,
		log:        log,
	}
}

type CreateCommand struct {
	FirstName    string
	LastName     string
	EmailAddress string
	PhoneNumber  string

	VehicleNumber int
	ServiceNumber int

	SelectedHours      float64
	SelectedPassengers int
	IsRoundTrip        bool

	Origin      string
	Destination string
	Waypoints   []string

	// AirportPickup is set by the form when the pickup place is an airport.
	// When false the origin is still checked against the places API.
	AirportPickup bool

	// Context scopes which configured line items apply. Defaults to "base".
	Context string
}

// Create computes and persists a quote. One engine instance is built per
// call; nothing is shared between concurrent computations.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Quote, error) {
	if cmd.VehicleNumber == 0 || cmd.ServiceNumber == 0 {
		return nil, ErrBadRequest
	}

	cat, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	vehicle, ok := cat.FindVehicle(cmd.VehicleNumber)
	if !ok || !vehicle.IsActive {
		return nil, ErrBadRequest
	}
	service, ok := cat.FindService(cmd.ServiceNumber)
	if !ok || !service.IsActive {
		return nil, ErrBadRequest
	}

	eng := pricing.NewEngine(pricing.Input{
		Vehicle:   vehicle,
		Service:   service,
		LineItems: cat.LineItems,
		Taxes:     cat.Taxes,
	})
	eng.SetHours(cmd.SelectedHours)
	eng.SetPlaces(cmd.Origin, cmd.Destination, cmd.Waypoints)
	scope := cmd.Context
	if scope == "" {
		scope = "base"
	}
	eng.SetContext(scope)

	est, err := s.resolver.ResolveRoute(ctx, cmd.Origin, cmd.Destination, cmd.Waypoints)
	if err != nil {
		return nil, err
	}
	eng.SetDistance(est.DistanceKm)

	if fee := s.resolveAirportFee(ctx, cmd); fee > 0 {
		eng.SetAirportPickupFee(fee)
	}

	snap := eng.Snapshot()
	q := &Quote{
		ID:                 types.ID(uuid.NewString()),
		FirstName:          cmd.FirstName,
		LastName:           cmd.LastName,
		EmailAddress:       cmd.EmailAddress,
		PhoneNumber:        cmd.PhoneNumber,
		VehicleNumber:      vehicle.Number,
		VehicleLabel:       vehicle.Label,
		ServiceNumber:      service.Number,
		ServiceLabel:       service.Label,
		Mode:               snap.Mode,
		SelectedHours:      snap.Hours,
		SelectedPassengers: cmd.SelectedPassengers,
		IsRoundTrip:        cmd.IsRoundTrip,
		Origin:             cmd.Origin,
		Destination:        cmd.Destination,
		Waypoints:          cmd.Waypoints,
		DistanceKm:         snap.DistanceKm,
		DistanceText:       est.DistanceText,
		DurationText:       est.DurationText,
		AirportFee:         airportFeeFromRows(snap.LineItems),
		BaseRate:           snap.BaseRate,
		SubTotal:           snap.SubTotal,
		TaxTotal:           snap.TaxTotal,
		Total:              snap.Total,
		CombinedLineItems:  snap.LineItemsWithTotals,
		CreatedAt:          time.Now().UTC(),
	}
	if err := s.store.Create(ctx, q); err != nil {
		return nil, err
	}
	s.log.Infof("quote %d created: %s to %s, total %.2f", q.Number, q.Origin, q.Destination, q.Total)
	return q, nil
}

func (s *Service) Get(ctx context.Context, number int64) (*Quote, error) {
	return s.store.GetByNumber(ctx, number)
}

// resolveAirportFee decides whether the GTAA fee applies. A places lookup
// failure downgrades to "not an airport" so a quote is never lost to the
// collaborator being down.
func (s *Service) resolveAirportFee(ctx context.Context, cmd CreateCommand) float64 {
	if cmd.AirportPickup {
		return s.airportFee
	}
	if s.airports == nil || cmd.Origin == "" {
		return 0
	}
	isAirport, err := s.airports.IsAirport(ctx, cmd.Origin)
	if err != nil {
		s.log.Warnf("airport lookup failed for %s: %v", cmd.Origin, err)
		return 0
	}
	if isAirport {
		return s.airportFee
	}
	return 0
}

func airportFeeFromRows(rows []pricing.RowView) float64 {
	for _, r := range rows {
		if r.Label == "GTAA Fee" {
			return r.Total
		}
	}
	return 0
}
