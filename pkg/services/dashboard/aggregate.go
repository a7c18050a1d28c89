package dashboard

import (
	"sort"
	"time"

	"github.com/de-tools/rental-atlas/pkg/models/domain"
)

// WeatherSummary sums rentals per weather code and computes each code's share of
// the view total. Rows are ordered by code.
func WeatherSummary(view []domain.Rental) []domain.WeatherSummary {
	totals := make(map[domain.Weather]int64)
	order := make([]domain.Weather, 0)
	var grand int64

	for _, r := range view {
		if _, ok := totals[r.Weather]; !ok {
			order = append(order, r.Weather)
		}
		totals[r.Weather] += r.Count
		grand += r.Count
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	rows := make([]domain.WeatherSummary, 0, len(order))
	for _, w := range order {
		rows = append(rows, domain.WeatherSummary{
			Weather:    w,
			Name:       w.String(),
			Total:      totals[w],
			Percentage: percentage(totals[w], grand),
		})
	}
	return rows
}

// percentage is 0 when total is 0.
func percentage(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// SeasonSummary sums rentals per season code. Rows are ordered by code.
func SeasonSummary(view []domain.Rental) []domain.SeasonSummary {
	totals := make(map[domain.Season]int64)
	order := make([]domain.Season, 0)

	for _, r := range view {
		if _, ok := totals[r.Season]; !ok {
			order = append(order, r.Season)
		}
		totals[r.Season] += r.Count
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	rows := make([]domain.SeasonSummary, 0, len(order))
	for _, s := range order {
		rows = append(rows, domain.SeasonSummary{
			Season: s,
			Name:   s.String(),
			Total:  totals[s],
		})
	}
	return rows
}

// RFMSummary groups the view by day. Recency counts days back from the latest day
// of the view, frequency is always domain.RFMFrequency and monetary is the day's total.
func RFMSummary(view []domain.Rental) []domain.RFMRecord {
	totals := make(map[time.Time]int64)
	days := make([]time.Time, 0)
	var latest time.Time

	for _, r := range view {
		d := domain.TruncateDay(r.Date)
		if _, ok := totals[d]; !ok {
			days = append(days, d)
		}
		totals[d] += r.Count
		if d.After(latest) {
			latest = d
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	rows := make([]domain.RFMRecord, 0, len(days))
	for _, d := range days {
		rows = append(rows, domain.RFMRecord{
			Date:      d,
			Recency:   daysBetween(d, latest),
			Frequency: domain.RFMFrequency,
			Monetary:  totals[d],
		})
	}
	return rows
}

// daysBetween expects UTC midnights.
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
