// README: Quote handlers for create/get.
package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"livery/internal/modules/pricing"
	"livery/internal/modules/quote"
)

// QuoteService is the subset of *quote.Service the handler uses.
type QuoteService interface {
	Create(ctx context.Context, cmd quote.CreateCommand) (*quote.Quote, error)
	Get(ctx context.Context, number int64) (*quote.Quote, error)
}

type QuoteHandler struct {
	quotes QuoteService
}

func NewQuoteHandler(svc QuoteService) *QuoteHandler {
	return &QuoteHandler{quotes: svc}
}

type createQuoteReq struct {
	FirstName          string   `json:"first_name"`
	LastName           string   `json:"last_name"`
	EmailAddress       string   `json:"email_address"`
	PhoneNumber        string   `json:"phone_number"`
	VehicleNumber      int      `json:"vehicle_number"`
	ServiceNumber      int      `json:"service_number"`
	SelectedHours      float64  `json:"selected_hours"`
	SelectedPassengers int      `json:"selected_passengers"`
	IsRoundTrip        bool     `json:"is_round_trip"`
	Origin             string   `json:"origin_place_id"`
	Destination        string   `json:"destination_place_id"`
	Waypoints          []string `json:"waypoint_place_ids"`
	AirportPickup      bool     `json:"is_airport_pickup"`
	Context            string   `json:"context"`
}

type quoteResp struct {
	QuoteNumber       int64             `json:"quote_number"`
	VehicleLabel      string            `json:"vehicle_label"`
	ServiceLabel      string            `json:"service_label"`
	Mode              pricing.Mode      `json:"mode"`
	SelectedHours     float64           `json:"selected_hours"`
	DistanceKm        float64           `json:"distance_km"`
	DistanceText      string            `json:"distance_text,omitempty"`
	DurationText      string            `json:"duration_text,omitempty"`
	BaseRate          float64           `json:"base_rate"`
	SubTotal          float64           `json:"quote_subtotal"`
	TaxTotal          float64           `json:"quote_tax_total"`
	Total             float64           `json:"quote_total"`
	CombinedLineItems []pricing.RowView `json:"combined_line_items"`
}

func toQuoteResp(q *quote.Quote) quoteResp {
	return quoteResp{
		QuoteNumber:       q.Number,
		VehicleLabel:      q.VehicleLabel,
		ServiceLabel:      q.ServiceLabel,
		Mode:              q.Mode,
		SelectedHours:     q.SelectedHours,
		DistanceKm:        q.DistanceKm,
		DistanceText:      q.DistanceText,
		DurationText:      q.DurationText,
		BaseRate:          q.BaseRate,
		SubTotal:          q.SubTotal,
		TaxTotal:          q.TaxTotal,
		Total:             q.Total,
		CombinedLineItems: q.CombinedLineItems,
	}
}

func (h *QuoteHandler) Create(c *gin.Context) {
	var req createQuoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.VehicleNumber == 0 || req.ServiceNumber == 0 {
		writeError(c, http.StatusBadRequest, "missing vehicle or service")
		return
	}
	q, err := h.quotes.Create(c.Request.Context(), quote.CreateCommand{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		EmailAddress:       req.EmailAddress,
		PhoneNumber:        req.PhoneNumber,
		VehicleNumber:      req.VehicleNumber,
		ServiceNumber:      req.ServiceNumber,
		SelectedHours:      req.SelectedHours,
		SelectedPassengers: req.SelectedPassengers,
		IsRoundTrip:        req.IsRoundTrip,
		Origin:             req.Origin,
		Destination:        req.Destination,
		Waypoints:          req.Waypoints,
		AirportPickup:      req.AirportPickup,
		Context:            req.Context,
	})
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, toQuoteResp(q))
}

func (h *QuoteHandler) Get(c *gin.Context) {
	number, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil || number <= 0 {
		writeError(c, http.StatusBadRequest, "invalid quote number")
		return
	}
	q, err := h.quotes.Get(c.Request.Context(), number)
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toQuoteResp(q))
}
