package dataset

import (
	"fmt"
	"io"
	"time"

	"github.com/de-tools/rental-atlas/pkg/models/domain"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

const (
	ColumnDate    = "dteday"
	ColumnSeason  = "season"
	ColumnWeather = "weathersit"
	ColumnCount   = "cnt"
)

var requiredColumns = []string{ColumnDate, ColumnSeason, ColumnWeather, ColumnCount}

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	time.RFC3339,
}

// Decode reads a CSV table and normalises the date column.
// Columns other than the required ones are ignored.
func Decode(r io.Reader, source string) ([]domain.Rental, error) {
	fail := func(err error) error {
		return &domain.DataAccessError{Source: source, Err: err}
	}

	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(map[string]series.Type{
			ColumnSeason:  series.Int,
			ColumnWeather: series.Int,
			ColumnCount:   series.Int,
		}),
	)
	// A header without rows is rejected here too: there is no date span to default to.
	if df.Err != nil {
		return nil, fail(fmt.Errorf("read csv: %w", df.Err))
	}

	present := make(map[string]bool, df.Ncol())
	for _, name := range df.Names() {
		present[name] = true
	}
	for _, col := range requiredColumns {
		if !present[col] {
			return nil, fail(fmt.Errorf("missing column %q", col))
		}
	}

	dates := df.Col(ColumnDate).Records()
	seasons, err := df.Col(ColumnSeason).Int()
	if err != nil {
		return nil, fail(fmt.Errorf("column %q: %w", ColumnSeason, err))
	}
	weathers, err := df.Col(ColumnWeather).Int()
	if err != nil {
		return nil, fail(fmt.Errorf("column %q: %w", ColumnWeather, err))
	}
	counts, err := df.Col(ColumnCount).Int()
	if err != nil {
		return nil, fail(fmt.Errorf("column %q: %w", ColumnCount, err))
	}

	rentals := make([]domain.Rental, 0, len(dates))
	for i, raw := range dates {
		date, err := ParseDate(raw)
		if err != nil {
			return nil, fail(fmt.Errorf("row %d: %w", i+1, err))
		}
		if counts[i] < 0 {
			return nil, fail(fmt.Errorf("row %d: negative %s %d", i+1, ColumnCount, counts[i]))
		}
		rentals = append(rentals, domain.Rental{
			Date:    date,
			Season:  domain.Season(seasons[i]),
			Weather: domain.Weather(weathers[i]),
			Count:   int64(counts[i]),
		})
	}

	return rentals, nil
}

// ParseDate accepts the layouts found in rental exports and truncates to the day.
func ParseDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return domain.TruncateDay(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", raw)
}
