package dashboard

import (
	"fmt"

	"github.com/de-tools/rental-atlas/pkg/models/domain"
	"github.com/dustin/go-humanize"
)

const (
	WeatherChartID = "weather"
	SeasonChartID  = "season"

	seasonHeadroom = 1.1
)

// WeatherChart plots the share of rentals per weather condition on a fixed 0..100 axis.
func WeatherChart(rows []domain.WeatherSummary) domain.Chart {
	chart := domain.Chart{
		ID:     WeatherChartID,
		Title:  "Bike Rental Percentage by Weather Condition",
		XLabel: "Weather Condition",
		YLabel: "Rental Percentage (%)",
		YMin:   0,
		YMax:   100,
		Bars:   make([]domain.Bar, 0, len(rows)),
	}
	for _, r := range rows {
		chart.Bars = append(chart.Bars, domain.Bar{
			Label:      r.Name,
			Value:      r.Percentage,
			Annotation: fmt.Sprintf("%.1f%%", r.Percentage),
		})
	}
	return chart
}

// SeasonChart plots total rentals per season with 10% headroom above the tallest bar.
func SeasonChart(rows []domain.SeasonSummary) domain.Chart {
	chart := domain.Chart{
		ID:     SeasonChartID,
		Title:  "Effect of Season on Bike Rentals",
		XLabel: "Season",
		YLabel: "Total Rentals",
		YMin:   0,
		Bars:   make([]domain.Bar, 0, len(rows)),
	}

	var peak int64
	for _, r := range rows {
		if r.Total > peak {
			peak = r.Total
		}
		chart.Bars = append(chart.Bars, domain.Bar{
			Label:      r.Name,
			Value:      float64(r.Total),
			Annotation: humanize.Comma(r.Total),
		})
	}

	chart.YMax = float64(peak) * seasonHeadroom
	if peak == 0 {
		chart.YMax = 1
	}
	return chart
}
