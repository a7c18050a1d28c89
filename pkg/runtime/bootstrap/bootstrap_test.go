package bootstrap

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/rental-atlas/pkg/models/domain"
	"github.com/de-tools/rental-atlas/pkg/services/config"
	"github.com/de-tools/rental-atlas/pkg/services/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const unsortedCSV = `instant,dteday,season,yr,mnth,holiday,weekday,workingday,weathersit,temp,cnt
3,2011-01-03,1,0,1,0,1,1,1,0.19,1349
1,2011-01-01,1,0,1,0,6,0,2,0.34,985
2,2011-01-02,1,0,1,0,0,0,2,0.36,801
`

func writeDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "day.csv")
	require.NoError(t, os.WriteFile(path, []byte(unsortedCSV), 0o600))
	return path
}

func TestNew(t *testing.T) {
	for _, engine := range []string{"memory", "duckdb"} {
		t.Run(engine, func(t *testing.T) {
			cfg := &config.Config{Dataset: writeDataset(t), Engine: engine}
			cfg.DuckDB.Path = ":memory:"

			app, err := New(context.Background(), cfg, dataset.DefaultRegistry())
			require.NoError(t, err)
			defer func() { assert.NoError(t, app.Close()) }()

			assert.Len(t, app.Rentals, 3)

			f := app.Dashboard.DefaultFilter()
			assert.Equal(t, "2011-01-01", f.Start.Format("2006-01-02"))
			assert.Equal(t, "2011-01-03", f.End.Format("2006-01-02"))

			d, err := app.Dashboard.Render(context.Background(), f)
			require.NoError(t, err)
			assert.Equal(t, int64(3135), d.Overview.Total)
			require.Len(t, d.RFM, 3)
			assert.Equal(t, []int{2, 1, 0}, []int{d.RFM[0].Recency, d.RFM[1].Recency, d.RFM[2].Recency})
			require.Len(t, d.Weather, 2)
			assert.Equal(t, "Clear", d.Weather[0].Name)
			assert.Equal(t, int64(1349), d.Weather[0].Total)
			assert.Equal(t, "Cloudy/Overcast", d.Weather[1].Name)
			assert.Equal(t, int64(1786), d.Weather[1].Total)
			assert.InDelta(t, 100, d.Weather[0].Percentage+d.Weather[1].Percentage, 1e-6)
		})
	}
}

func TestNew_MissingDataset(t *testing.T) {
	cfg := &config.Config{Dataset: filepath.Join(t.TempDir(), "missing.csv"), Engine: "memory"}

	_, err := New(context.Background(), cfg, dataset.DefaultRegistry())
	require.Error(t, err)

	var dataErr *domain.DataAccessError
	assert.True(t, errors.As(err, &dataErr))
}
