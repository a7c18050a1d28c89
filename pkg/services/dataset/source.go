package dataset

import (
	"context"

	"github.com/de-tools/rental-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

const (
	SchemeFile = "file"
	SchemeS3   = "s3"
)

// Source reads the complete rental table
type Source interface {
	Load(ctx context.Context) ([]domain.Rental, error)
}

// Load resolves uri through the registry and reads the dataset.
// Every failure is reported as a *domain.DataAccessError.
func Load(ctx context.Context, registry Registry, uri string) ([]domain.Rental, error) {
	logger := zerolog.Ctx(ctx)

	src, err := registry.Create(ctx, uri)
	if err != nil {
		return nil, &domain.DataAccessError{Source: uri, Err: err}
	}

	rentals, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("dataset", uri).
		Int("rows", len(rentals)).
		Msg("dataset loaded")

	return rentals, nil
}
