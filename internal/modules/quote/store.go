// README: Quote store backed by PostgreSQL.
package quote

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"livery/internal/modules/pricing"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Create inserts the quote and fills in its sequence-assigned number.
func (s *Store) Create(ctx context.Context, q *Quote) error {
	rowsJSON, err := json.Marshal(q.CombinedLineItems)
	if err != nil {
		return err
	}
	row := s.db.QueryRow(ctx, `
        INSERT INTO quotes (
            id, first_name, last_name, email_address, phone_number,
            vehicle_number, vehicle_label, service_number, service_label, mode,
            selected_hours, selected_passengers, is_round_trip,
            origin_place_id, destination_place_id, waypoint_place_ids,
            distance_km, distance_text, duration_text, airport_fee,
            base_rate, quote_subtotal, quote_tax_total, quote_total,
            combined_line_items, created_at
        ) VALUES (
            $1, $2, $3, $4, $5,
            $6, $7, $8, $9, $10,
            $11, $12, $13,
            $14, $15, $16,
            $17, $18, $19, $20,
            $21, $22, $23, $24,
            $25, $26
        )
        RETURNING quote_number`,
		string(q.ID), q.FirstName, q.LastName, q.EmailAddress, q.PhoneNumber,
		q.VehicleNumber, q.VehicleLabel, q.ServiceNumber, q.ServiceLabel, string(q.Mode),
		q.SelectedHours, q.SelectedPassengers, q.IsRoundTrip,
		q.Origin, q.Destination, q.Waypoints,
		q.DistanceKm, q.DistanceText, q.DurationText, q.AirportFee,
		q.BaseRate, q.SubTotal, q.TaxTotal, q.Total,
		rowsJSON, q.CreatedAt,
	)
	return row.Scan(&q.Number)
}

func (s *Store) GetByNumber(ctx context.Context, number int64) (*Quote, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, quote_number, first_name, last_name, email_address, phone_number,
               vehicle_number, vehicle_label, service_number, service_label, mode,
               selected_hours, selected_passengers, is_round_trip,
               origin_place_id, destination_place_id, waypoint_place_ids,
               distance_km, COALESCE(distance_text, ''), COALESCE(duration_text, ''), airport_fee,
               base_rate, quote_subtotal, quote_tax_total, quote_total,
               combined_line_items, created_at
        FROM quotes
        WHERE quote_number = $1`, number,
	)

	var q Quote
	var mode string
	var rowsJSON []byte
	err := row.Scan(
		&q.ID, &q.Number, &q.FirstName, &q.LastName, &q.EmailAddress, &q.PhoneNumber,
		&q.VehicleNumber, &q.VehicleLabel, &q.ServiceNumber, &q.ServiceLabel, &mode,
		&q.SelectedHours, &q.SelectedPassengers, &q.IsRoundTrip,
		&q.Origin, &q.Destination, &q.Waypoints,
		&q.DistanceKm, &q.DistanceText, &q.DurationText, &q.AirportFee,
		&q.BaseRate, &q.SubTotal, &q.TaxTotal, &q.Total,
		&rowsJSON, &q.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	q.Mode = pricing.Mode(mode)
	if len(rowsJSON) > 0 {
		if err := json.Unmarshal(rowsJSON, &q.CombinedLineItems); err != nil {
			return nil, err
		}
	}
	return &q, nil
}
