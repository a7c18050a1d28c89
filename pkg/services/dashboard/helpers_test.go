package dashboard

import (
	"time"

	"github.com/de-tools/rental-atlas/pkg/models/domain"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func allLabels(start, end time.Time) domain.Filter {
	return domain.Filter{
		Start:    start,
		End:      end,
		Seasons:  domain.SeasonNames(),
		Weathers: domain.WeatherNames(),
	}
}

// scenarioRentals is three consecutive clear days, two in spring and one in summer.
func scenarioRentals() []domain.Rental {
	return []domain.Rental{
		{Date: day("2011-03-19"), Season: domain.SeasonSpring, Weather: domain.WeatherClear, Count: 10},
		{Date: day("2011-03-20"), Season: domain.SeasonSpring, Weather: domain.WeatherClear, Count: 20},
		{Date: day("2011-03-21"), Season: domain.SeasonSummer, Weather: domain.WeatherClear, Count: 30},
	}
}

// mixedRentals covers every season and weather code over two weeks.
func mixedRentals() []domain.Rental {
	rentals := make([]domain.Rental, 0, 14)
	start := day("2012-01-01")
	for i := 0; i < 14; i++ {
		rentals = append(rentals, domain.Rental{
			Date:    start.AddDate(0, 0, i),
			Season:  domain.Season(i%4 + 1),
			Weather: domain.Weather((i/2)%4 + 1),
			Count:   int64(100 + 37*i),
		})
	}
	return rentals
}

func sumCounts(view []domain.Rental) int64 {
	var total int64
	for _, r := range view {
		total += r.Count
	}
	return total
}
