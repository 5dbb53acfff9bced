package maps

import (
	"context"
	"fmt"
	"math"
	"time"

	"googlemaps.github.io/maps"
)

// ProviderError wraps any failure talking to the directions provider: transport
// errors, non-OK API statuses, or a payload the client could not decode. It is
// never retried here; callers decide whether to retry or fail the quote.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("directions provider: %v", e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Leg is one provider-returned segment of a route, bounded by two consecutive
// stops. Display fields are passed through untouched for persistence.
type Leg struct {
	DistanceMeters int
	DistanceText   string
	Duration       time.Duration
	DurationText   string
	StartAddress   string
	EndAddress     string
	StartLat       float64
	StartLng       float64
	EndLat         float64
	EndLng         float64
}

// RouteEstimate is the resolved route for a trip. DistanceKm is the sum of all
// legs of the first returned route, rounded to 3 decimals.
type RouteEstimate struct {
	DistanceKm   float64
	Duration     time.Duration
	DistanceText string
	DurationText string
	Summary      string
	Legs         []Leg
}

// RouteService handles interactions with the Google Maps Directions API.
type RouteService struct {
	client *maps.Client
}

// NewRouteService creates a new RouteService with the given API key. Extra
// options are appended after the key (tests use maps.WithBaseURL).
func NewRouteService(apiKey string, opts ...maps.ClientOption) (*RouteService, error) {
	client, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &RouteService{client: client}, nil
}

// ResolveRoute fetches directions between two place IDs, via the given
// waypoint place IDs in order, and sums leg distances into one estimate.
//
// A missing origin or destination is not an error: it returns a zero estimate
// without contacting the provider, so a partially filled form can still show
// incremental quote progress.
func (s *RouteService) ResolveRoute(ctx context.Context, origin, destination string, waypoints []string) (RouteEstimate, error) {
	if origin == "" || destination == "" {
		return RouteEstimate{}, nil
	}

	r := &maps.DirectionsRequest{
		Origin:      "place_id:" + origin,
		Destination: "place_id:" + destination,
		Mode:        maps.TravelModeDriving,
	}
	for _, wp := range waypoints {
		r.Waypoints = append(r.Waypoints, "place_id:"+wp)
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return RouteEstimate{}, &ProviderError{Err: err}
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return RouteEstimate{}, nil
	}

	est := RouteEstimate{Summary: routes[0].Summary}
	var meters int
	for _, leg := range routes[0].Legs {
		meters += leg.Distance.Meters
		est.Duration += leg.Duration
		est.Legs = append(est.Legs, Leg{
			DistanceMeters: leg.Distance.Meters,
			DistanceText:   leg.Distance.HumanReadable,
			Duration:       leg.Duration,
			DurationText:   leg.Duration.String(),
			StartAddress:   leg.StartAddress,
			EndAddress:     leg.EndAddress,
			StartLat:       leg.StartLocation.Lat,
			StartLng:       leg.StartLocation.Lng,
			EndLat:         leg.EndLocation.Lat,
			EndLng:         leg.EndLocation.Lng,
		})
	}

	// 3 decimals keeps enough precision for per-km multiplication before the
	// result is rounded again to currency.
	est.DistanceKm = math.Round(float64(meters)/1000*1000) / 1000
	if len(est.Legs) == 1 {
		est.DistanceText = est.Legs[0].DistanceText
		est.DurationText = est.Legs[0].DurationText
	} else {
		est.DistanceText = fmt.Sprintf("%.1f km", est.DistanceKm)
		est.DurationText = est.Duration.String()
	}
	return est, nil
}

// ResolveDistance is the thin view of ResolveRoute used by the pricing engine,
// which only needs the aggregate distance.
func (s *RouteService) ResolveDistance(ctx context.Context, origin, destination string, waypoints []string) (float64, error) {
	est, err := s.ResolveRoute(ctx, origin, destination, waypoints)
	if err != nil {
		return 0, err
	}
	return est.DistanceKm, nil
}
