package rentals

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/rental-atlas/pkg/models/domain"
	"github.com/de-tools/rental-atlas/pkg/store/duckdb"
)

const dateLayout = "2006-01-02"

// Store keeps a copy of the rental table in DuckDB and answers filter queries with SQL.
// It satisfies dashboard.Engine.
type Store interface {
	Replace(ctx context.Context, rentals []domain.Rental) error
	Filter(ctx context.Context, f domain.Filter) ([]domain.Rental, error)
	Count(ctx context.Context) (int64, error)
}

type rentalStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &rentalStore{
		db: db,
	}, nil
}

// Replace swaps the table contents for rentals in one transaction.
func (s *rentalStore) Replace(ctx context.Context, rentals []domain.Rental) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	ctx = duckdb.WithTransaction(ctx, tx)
	if _, err := tx.ExecContext(ctx, `DELETE FROM rentals`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear rentals: %w", err)
	}
	if err := s.add(ctx, rentals); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit rentals: %w", err)
	}
	return nil
}

func (s *rentalStore) add(ctx context.Context, rentals []domain.Rental) error {
	if len(rentals) == 0 {
		return nil
	}

	stmt, err := duckdb.Conn(ctx, s.db).PrepareContext(ctx, `
		INSERT INTO rentals (dteday, season, weathersit, cnt)
		VALUES (CAST(? AS DATE), ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range rentals {
		_, err = stmt.ExecContext(ctx,
			r.Date.Format(dateLayout),
			int(r.Season),
			int(r.Weather),
			r.Count,
		)
		if err != nil {
			return fmt.Errorf("insert rental %s: %w", r.Date.Format(dateLayout), err)
		}
	}

	return nil
}

func (s *rentalStore) Filter(ctx context.Context, f domain.Filter) ([]domain.Rental, error) {
	seasons := f.SeasonCodes()
	weathers := f.WeatherCodes()
	if len(seasons) == 0 || len(weathers) == 0 {
		return []domain.Rental{}, nil
	}

	args := make([]interface{}, 0, 2+len(seasons)+len(weathers))
	args = append(args, f.Start.Format(dateLayout), f.End.Format(dateLayout))
	for _, code := range seasons {
		args = append(args, int(code))
	}
	for _, code := range weathers {
		args = append(args, int(code))
	}

	query := fmt.Sprintf(`
		SELECT dteday, season, weathersit, cnt
		FROM rentals
		WHERE dteday BETWEEN CAST(? AS DATE) AND CAST(? AS DATE)
		  AND season IN (%s)
		  AND weathersit IN (%s)
		ORDER BY dteday, rowid
	`, placeholders(len(seasons)), placeholders(len(weathers)))

	rows, err := duckdb.Conn(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query rentals: %w", err)
	}
	defer rows.Close()
	return scanRentalRows(rows)
}

func (s *rentalStore) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := duckdb.Conn(ctx, s.db).QueryRowContext(ctx, `SELECT COUNT(*) FROM rentals`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count rentals: %w", err)
	}
	return total, nil
}

func scanRentalRows(rows *sql.Rows) ([]domain.Rental, error) {
	rentals := make([]domain.Rental, 0)
	for rows.Next() {
		var (
			date            time.Time
			season, weather int
			count           int64
		)
		if err := rows.Scan(&date, &season, &weather, &count); err != nil {
			return nil, fmt.Errorf("scan rental: %w", err)
		}
		rentals = append(rentals, domain.Rental{
			Date:    domain.TruncateDay(date),
			Season:  domain.Season(season),
			Weather: domain.Weather(weather),
			Count:   count,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rentals: %w", err)
	}
	return rentals, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
