package dashboard

import (
	"context"

	"github.com/de-tools/rental-atlas/pkg/models/domain"
)

// Engine produces the filtered view for a filter
type Engine interface {
	Filter(ctx context.Context, f domain.Filter) ([]domain.Rental, error)
}

type memoryEngine struct {
	rentals []domain.Rental
}

// NewMemoryEngine filters an in-memory table. rentals must not be modified afterwards.
func NewMemoryEngine(rentals []domain.Rental) Engine {
	return &memoryEngine{rentals: rentals}
}

func (e *memoryEngine) Filter(_ context.Context, f domain.Filter) ([]domain.Rental, error) {
	return Apply(e.rentals, f), nil
}

// Apply keeps the rentals whose day lies in [f.Start, f.End] and whose season and
// weather labels are both selected. The input order is preserved.
func Apply(rentals []domain.Rental, f domain.Filter) []domain.Rental {
	start := domain.TruncateDay(f.Start)
	end := domain.TruncateDay(f.End)

	seasons := make(map[domain.Season]bool, len(f.Seasons))
	for _, s := range f.SeasonCodes() {
		seasons[s] = true
	}
	weathers := make(map[domain.Weather]bool, len(f.Weathers))
	for _, w := range f.WeatherCodes() {
		weathers[w] = true
	}

	view := make([]domain.Rental, 0)
	if start.After(end) || len(seasons) == 0 || len(weathers) == 0 {
		return view
	}

	for _, r := range rentals {
		if r.Date.Before(start) || r.Date.After(end) {
			continue
		}
		if !seasons[r.Season] || !weathers[r.Weather] {
			continue
		}
		view = append(view, r)
	}
	return view
}
