// README: Read-through catalog cache over the Postgres store.
package catalog

import (
	"context"

	"livery/internal/logger"
	"livery/internal/modules/pricing"
)

// Catalog is the full set of reference data the pricing engine selects from.
type Catalog struct {
	Vehicles  []pricing.Vehicle  `json:"vehicles"`
	Services  []pricing.Service  `json:"services"`
	LineItems []pricing.LineItem `json:"line_items"`
	Taxes     []pricing.SalesTax `json:"taxes"`
}

// Empty reports whether no reference data exists at all.
func (c Catalog) Empty() bool {
	return len(c.Vehicles) == 0 && len(c.Services) == 0 &&
		len(c.LineItems) == 0 && len(c.Taxes) == 0
}

func (c Catalog) FindVehicle(number int) (pricing.Vehicle, bool) {
	for _, v := range c.Vehicles {
		if v.Number == number {
			return v, true
		}
	}
	return pricing.Vehicle{}, false
}

func (c Catalog) FindService(number int) (pricing.Service, bool) {
	for _, s := range c.Services {
		if s.Number == number {
			return s, true
		}
	}
	return pricing.Service{}, false
}

type Service struct {
	store *Store
	cache *Cache
	log   logger.Logger
}

func NewService(store *Store, cache *Cache, log logger.Logger) *Service {
	return &Service{store: store, cache: cache, log: log}
}

// Snapshot returns the current catalog: cache first, then the store, falling
// back to the built-in defaults when the database is unseeded. Cache failures
// degrade to a store read rather than failing the quote.
func (s *Service) Snapshot(ctx context.Context) (Catalog, error) {
	if s.cache != nil {
		cat, hit, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warnf("catalog cache read failed: %v", err)
		} else if hit {
			return cat, nil
		}
	}

	cat, err := s.load(ctx)
	if err != nil {
		return Catalog{}, err
	}
	if cat.Empty() {
		cat = Default()
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cat); err != nil {
			s.log.Warnf("catalog cache write failed: %v", err)
		}
	}
	return cat, nil
}

// Invalidate drops the cached snapshot; the next Snapshot re-reads the store.
func (s *Service) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Invalidate(ctx)
}

func (s *Service) load(ctx context.Context) (Catalog, error) {
	var cat Catalog
	var err error
	if cat.Vehicles, err = s.store.ListVehicles(ctx); err != nil {
		return Catalog{}, err
	}
	if cat.Services, err = s.store.ListServices(ctx); err != nil {
		return Catalog{}, err
	}
	if cat.LineItems, err = s.store.ListLineItems(ctx); err != nil {
		return Catalog{}, err
	}
	if cat.Taxes, err = s.store.ListTaxes(ctx); err != nil {
		return Catalog{}, err
	}
	return cat, nil
}
