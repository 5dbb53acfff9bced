// README: Quote aggregate persisted for downstream notification and booking.
package quote

import (
	"errors"
	"time"

	"livery/internal/modules/pricing"
	"livery/internal/types"
)

var (
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("quote not found")
)

type Quote struct {
	ID     types.ID
	Number int64

	FirstName    string
	LastName     string
	EmailAddress string
	PhoneNumber  string

	VehicleNumber int
	VehicleLabel  string
	ServiceNumber int
	ServiceLabel  string
	Mode          pricing.Mode

	SelectedHours      float64
	SelectedPassengers int
	IsRoundTrip        bool

	Origin      string
	Destination string
	Waypoints   []string

	DistanceKm   float64
	DistanceText string
	DurationText string

	AirportFee float64

	BaseRate float64
	SubTotal float64
	TaxTotal float64
	Total    float64

	// CombinedLineItems is the extended row view, tax rows and final Total
	// row included. Email and SMS templates render it verbatim.
	CombinedLineItems []pricing.RowView

	CreatedAt time.Time
}
