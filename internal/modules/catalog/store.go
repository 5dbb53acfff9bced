// README: Catalog store backed by PostgreSQL.
package catalog

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"livery/internal/modules/pricing"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) ListVehicles(ctx context.Context) ([]pricing.Vehicle, error) {
	rows, err := s.db.Query(ctx, `
        SELECT vehicle_number, label, per_km, per_hour, min_hours, min_distance,
               min_rate, max_passengers, max_luggage, is_active
        FROM vehicles
        ORDER BY vehicle_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []pricing.Vehicle
	for rows.Next() {
		var v pricing.Vehicle
		if err := rows.Scan(
			&v.Number, &v.Label, &v.PerKm, &v.PerHour, &v.MinHours, &v.MinDistance,
			&v.MinRate, &v.MaxPassengers, &v.MaxLuggage, &v.IsActive,
		); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (s *Store) ListServices(ctx context.Context) ([]pricing.Service, error) {
	rows, err := s.db.Query(ctx, `
        SELECT service_number, label, is_hourly, is_active
        FROM services
        ORDER BY service_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []pricing.Service
	for rows.Next() {
		var sv pricing.Service
		if err := rows.Scan(&sv.Number, &sv.Label, &sv.IsHourly, &sv.IsActive); err != nil {
			return nil, err
		}
		services = append(services, sv)
	}
	return services, rows.Err()
}

func (s *Store) ListLineItems(ctx context.Context) ([]pricing.LineItem, error) {
	rows, err := s.db.Query(ctx, `
        SELECT item_number, label, COALESCE(description, ''), is_percentage,
               is_taxable, is_active, amount, COALESCE(applies_to, '')
        FROM line_items
        ORDER BY item_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []pricing.LineItem
	for rows.Next() {
		var li pricing.LineItem
		if err := rows.Scan(
			&li.Number, &li.Label, &li.Description, &li.IsPercentage,
			&li.IsTaxable, &li.IsActive, &li.Amount, &li.AppliesTo,
		); err != nil {
			return nil, err
		}
		items = append(items, li)
	}
	return items, rows.Err()
}

func (s *Store) ListTaxes(ctx context.Context) ([]pricing.SalesTax, error) {
	rows, err := s.db.Query(ctx, `
        SELECT tax_name, COALESCE(region, ''), amount, is_active
        FROM sales_taxes
        ORDER BY tax_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var taxes []pricing.SalesTax
	for rows.Next() {
		var t pricing.SalesTax
		if err := rows.Scan(&t.TaxName, &t.Region, &t.Amount, &t.IsActive); err != nil {
			return nil, err
		}
		taxes = append(taxes, t)
	}
	return taxes, rows.Err()
}
