package rentals

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/de-tools/rental-atlas/pkg/models/domain"
	"github.com/de-tools/rental-atlas/pkg/services/dashboard"
	"github.com/de-tools/rental-atlas/pkg/store/duckdb"
	_ "github.com/marcboeker/go-duckdb/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db    *sql.DB
	store Store
}

func setupFixture(t *testing.T) *fixture {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ":memory:"})
	require.NoError(t, err)

	store, err := NewStore(db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return &fixture{
		db:    db,
		store: store,
	}
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleRentals() []domain.Rental {
	rentals := make([]domain.Rental, 0, 20)
	start := day("2012-03-01")
	for i := 0; i < 20; i++ {
		rentals = append(rentals, domain.Rental{
			Date:    start.AddDate(0, 0, i),
			Season:  domain.Season(i%4 + 1),
			Weather: domain.Weather((i/3)%4 + 1),
			Count:   int64(1000 + 13*i),
		})
	}
	return rentals
}

func TestNewStore_NilDB(t *testing.T) {
	_, err := NewStore(nil)
	assert.Error(t, err)
}

func TestRentalStore_Replace(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	t.Run("success - load rentals", func(t *testing.T) {
		require.NoError(t, f.store.Replace(ctx, sampleRentals()))

		count, err := f.store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(20), count)
	})

	t.Run("success - replace drops previous rows", func(t *testing.T) {
		require.NoError(t, f.store.Replace(ctx, sampleRentals()[:5]))

		count, err := f.store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(5), count)
	})

	t.Run("success - empty rentals", func(t *testing.T) {
		require.NoError(t, f.store.Replace(ctx, nil))

		count, err := f.store.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestRentalStore_FilterMatchesMemoryEngine(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	rentals := sampleRentals()
	require.NoError(t, f.store.Replace(ctx, rentals))

	memory := dashboard.NewMemoryEngine(rentals)
	filters := map[string]domain.Filter{
		"everything": {
			Start: day("2012-03-01"), End: day("2012-03-20"),
			Seasons: domain.SeasonNames(), Weathers: domain.WeatherNames(),
		},
		"inclusive window": {
			Start: day("2012-03-05"), End: day("2012-03-09"),
			Seasons: domain.SeasonNames(), Weathers: domain.WeatherNames(),
		},
		"labels": {
			Start: day("2012-03-01"), End: day("2012-03-20"),
			Seasons: []string{"Summer", "Winter"}, Weathers: []string{"Clear", "Snow Storm"},
		},
		"inverted": {
			Start: day("2012-03-10"), End: day("2012-03-02"),
			Seasons: domain.SeasonNames(), Weathers: domain.WeatherNames(),
		},
		"nothing selected": {
			Start: day("2012-03-01"), End: day("2012-03-20"),
		},
	}

	for name, filter := range filters {
		t.Run(name, func(t *testing.T) {
			want, err := memory.Filter(ctx, filter)
			require.NoError(t, err)

			got, err := f.store.Filter(ctx, filter)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestRentalStore_FilterQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT dteday, season, weathersit, cnt").
		WillReturnError(errors.New("database is locked"))

	store, err := NewStore(db)
	require.NoError(t, err)

	_, err = store.Filter(context.Background(), domain.Filter{
		Start: day("2012-03-01"), End: day("2012-03-20"),
		Seasons: []string{"Spring"}, Weathers: []string{"Clear"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query rentals: database is locked")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalStore_ReplaceRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM rentals").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectPrepare("INSERT INTO rentals").
		ExpectExec().
		WillReturnError(errors.New("constraint violated"))
	mock.ExpectRollback()

	store, err := NewStore(db)
	require.NoError(t, err)

	err = store.Replace(context.Background(), sampleRentals()[:1])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert rental 2012-03-01")
	assert.NoError(t, mock.ExpectationsWereMet())
}
