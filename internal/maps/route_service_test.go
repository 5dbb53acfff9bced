package maps

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gmaps "googlemaps.github.io/maps"
)

func directionsPayload(legMeters ...int) string {
	legs := ""
	for i, m := range legMeters {
		if i > 0 {
			legs += ","
		}
		legs += fmt.Sprintf(`{
            "distance": {"value": %d, "text": "%d m"},
            "duration": {"value": 600, "text": "10 mins"},
            "start_address": "Stop %d",
            "end_address": "Stop %d",
            "start_location": {"lat": 43.65, "lng": -79.38},
            "end_location": {"lat": 43.68, "lng": -79.30},
            "steps": [],
            "via_waypoint": []
        }`, m, m, i, i+1)
	}
	return fmt.Sprintf(`{
        "status": "OK",
        "geocoded_waypoints": [],
        "routes": [{
            "summary": "ON-401 E",
            "copyrights": "Map data",
            "warnings": [],
            "waypoint_order": [],
            "overview_polyline": {"points": ""},
            "bounds": {
                "northeast": {"lat": 43.7, "lng": -79.2},
                "southwest": {"lat": 43.6, "lng": -79.5}
            },
            "legs": [%s]
        }]
    }`, legs)
}

func newTestService(t *testing.T, handler http.HandlerFunc) (*RouteService, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	svc, err := NewRouteService("test-key", gmaps.WithBaseURL(server.URL))
	require.NoError(t, err)
	return svc, server
}

func TestResolveRoute_SumsAllLegsOfFirstRoute(t *testing.T) {
	var gotWaypoints string
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotWaypoints = r.URL.Query().Get("waypoints")
		fmt.Fprint(w, directionsPayload(12345, 7655))
	})

	est, err := svc.ResolveRoute(context.Background(), "placeA", "placeB", []string{"placeC"})
	require.NoError(t, err)

	// Two legs, one per stop boundary, summed into a single distance.
	assert.InDelta(t, 20.000, est.DistanceKm, 1e-9)
	require.Len(t, est.Legs, 2)
	assert.Equal(t, 12345, est.Legs[0].DistanceMeters)
	assert.Equal(t, "Stop 0", est.Legs[0].StartAddress)
	assert.Equal(t, "ON-401 E", est.Summary)
	assert.Contains(t, gotWaypoints, "place_id:placeC")
}

func TestResolveRoute_RoundsToThreeDecimals(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, directionsPayload(1234, 555))
	})

	est, err := svc.ResolveRoute(context.Background(), "placeA", "placeB", nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.789, est.DistanceKm, 1e-9)
}

func TestResolveRoute_EmptyRouteSkipsProvider(t *testing.T) {
	calls := 0
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, directionsPayload(1000))
	})

	for _, route := range [][2]string{{"", "placeB"}, {"placeA", ""}, {"", ""}} {
		est, err := svc.ResolveRoute(context.Background(), route[0], route[1], nil)
		require.NoError(t, err)
		assert.Zero(t, est.DistanceKm)
	}
	assert.Zero(t, calls, "incomplete routes must not hit the provider")
}

func TestResolveRoute_NoRoutesYieldsZero(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status": "OK", "geocoded_waypoints": [], "routes": []}`)
	})

	est, err := svc.ResolveRoute(context.Background(), "placeA", "placeB", nil)
	require.NoError(t, err)
	assert.Zero(t, est.DistanceKm)
	assert.Empty(t, est.Legs)
}

func TestResolveRoute_ProviderErrorSurfaced(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status": "REQUEST_DENIED", "error_message": "bad key", "routes": []}`)
	})

	_, err := svc.ResolveRoute(context.Background(), "placeA", "placeB", nil)
	require.Error(t, err)

	var provider *ProviderError
	assert.True(t, errors.As(err, &provider))
}

func TestResolveDistance_ThinView(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, directionsPayload(40000))
	})

	km, err := svc.ResolveDistance(context.Background(), "placeA", "placeB", nil)
	require.NoError(t, err)
	assert.InDelta(t, 40.0, km, 1e-9)
}
