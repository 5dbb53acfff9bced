// README: Handler tests for the public quote endpoints.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"livery/internal/http/handlers"
	"livery/internal/maps"
	"livery/internal/modules/quote"
)

// stubQuoteService is a test double for handlers.QuoteService.
type stubQuoteService struct {
	quote *quote.Quote
	err   error
}

func (s *stubQuoteService) Create(_ context.Context, _ quote.CreateCommand) (*quote.Quote, error) {
	return s.quote, s.err
}

func (s *stubQuoteService) Get(_ context.Context, _ int64) (*quote.Quote, error) {
	return s.quote, s.err
}

func buildTestRouter(svc handlers.QuoteService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handlers.NewQuoteHandler(svc)
	r.POST("/api/quotes", h.Create)
	r.GET("/api/quotes/:number", h.Get)
	return r
}

func doRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateQuote_Success(t *testing.T) {
	q := &quote.Quote{
		Number:       3001,
		VehicleLabel: "Premium SUV",
		ServiceLabel: "Point-to-Point",
		Mode:         "DISTANCE",
		BaseRate:     141.50,
		SubTotal:     183.12,
		TaxTotal:     20.17,
		Total:        203.29,
	}
	r := buildTestRouter(&stubQuoteService{quote: q})

	w := doRequest(r, http.MethodPost, "/api/quotes", map[string]any{
		"vehicle_number":       2,
		"service_number":       1,
		"origin_place_id":      "placeA",
		"destination_place_id": "placeB",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 3001, resp["quote_number"])
	assert.EqualValues(t, 203.29, resp["quote_total"])
}

func TestCreateQuote_InvalidJSON(t *testing.T) {
	r := buildTestRouter(&stubQuoteService{})
	req := httptest.NewRequest(http.MethodPost, "/api/quotes", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateQuote_MissingSelections(t *testing.T) {
	r := buildTestRouter(&stubQuoteService{})
	w := doRequest(r, http.MethodPost, "/api/quotes", map[string]any{
		"origin_place_id": "placeA",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateQuote_ProviderDown(t *testing.T) {
	r := buildTestRouter(&stubQuoteService{err: &maps.ProviderError{Err: assert.AnError}})
	w := doRequest(r, http.MethodPost, "/api/quotes", map[string]any{
		"vehicle_number": 2,
		"service_number": 1,
	})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetQuote_NotFound(t *testing.T) {
	r := buildTestRouter(&stubQuoteService{err: quote.ErrNotFound})
	w := doRequest(r, http.MethodGet, "/api/quotes/4242", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetQuote_BadNumber(t *testing.T) {
	r := buildTestRouter(&stubQuoteService{})
	w := doRequest(r, http.MethodGet, "/api/quotes/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
