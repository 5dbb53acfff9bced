package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// PlaceService handles interactions with the Google Places API.
type PlaceService struct {
	client *maps.Client
}

// NewPlaceService creates a new PlaceService with the given API key.
func NewPlaceService(apiKey string, opts ...maps.ClientOption) (*PlaceService, error) {
	client, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlaceService{client: client}, nil
}

// IsAirport reports whether the place carries the "airport" type. Used to
// decide whether the airport pickup fee applies to a quote.
func (s *PlaceService) IsAirport(ctx context.Context, placeID string) (bool, error) {
	if placeID == "" {
		return false, nil
	}
	resp, err := s.client.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID: placeID,
		Fields:  []maps.PlaceDetailsFieldMask{maps.PlaceDetailsFieldMaskTypes},
	})
	if err != nil {
		return false, &ProviderError{Err: err}
	}
	for _, t := range resp.Types {
		if t == "airport" {
			return true, nil
		}
	}
	return false, nil
}
