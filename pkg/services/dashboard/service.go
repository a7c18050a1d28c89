package dashboard

import (
	"context"
	"fmt"
	"sort"

	"github.com/de-tools/rental-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

const Title = "Bike Rentals Dashboard"

// Renderer produces a dashboard for a filter
type Renderer interface {
	DefaultFilter() domain.Filter
	Render(ctx context.Context, f domain.Filter) (*domain.Dashboard, error)
}

type Service struct {
	engine   Engine
	defaults domain.Filter
}

// NewService derives the default filter from rentals and filters through engine.
// A nil engine filters rentals in memory.
func NewService(rentals []domain.Rental, engine Engine) *Service {
	sorted := append([]domain.Rental(nil), rentals...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	if engine == nil {
		engine = NewMemoryEngine(sorted)
	}

	defaults := domain.Filter{
		Seasons:  domain.SeasonNames(),
		Weathers: domain.WeatherNames(),
	}
	if len(sorted) > 0 {
		defaults.Start = sorted[0].Date
		defaults.End = sorted[len(sorted)-1].Date
	}

	return &Service{
		engine:   engine,
		defaults: defaults,
	}
}

// DefaultFilter spans the whole dataset with every label selected.
func (s *Service) DefaultFilter() domain.Filter {
	f := s.defaults
	f.Seasons = append([]string{}, s.defaults.Seasons...)
	f.Weathers = append([]string{}, s.defaults.Weathers...)
	return f
}

func (s *Service) Render(ctx context.Context, f domain.Filter) (*domain.Dashboard, error) {
	logger := zerolog.Ctx(ctx)

	view, err := s.engine.Filter(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("filter rentals: %w", err)
	}

	d := Aggregate(view)
	d.Filter = f

	logger.Debug().
		Time("start", f.Start).
		Time("end", f.End).
		Strs("seasons", f.Seasons).
		Strs("weathers", f.Weathers).
		Int("rows", len(view)).
		Msg("dashboard rendered")

	return d, nil
}

// Aggregate builds every summary and chart of a filtered view.
func Aggregate(view []domain.Rental) *domain.Dashboard {
	weather := WeatherSummary(view)
	season := SeasonSummary(view)
	rfm := RFMSummary(view)

	return &domain.Dashboard{
		Title:    Title,
		Overview: Overview(rfm),
		Weather:  weather,
		Season:   season,
		RFM:      rfm,
		Charts:   []domain.Chart{WeatherChart(weather), SeasonChart(season)},
	}
}
