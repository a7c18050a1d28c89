package adapters

import (
	"testing"
	"time"

	"github.com/de-tools/rental-atlas/pkg/models/api"
	"github.com/de-tools/rental-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestMapDashboardDomainToApi(t *testing.T) {
	day := time.Date(2011, 1, 2, 0, 0, 0, 0, time.UTC)
	d := &domain.Dashboard{
		Title: "Bike Rentals Dashboard",
		Filter: domain.Filter{
			Start:    day.AddDate(0, 0, -1),
			End:      day,
			Seasons:  []string{"Spring"},
			Weathers: []string{"Clear", "Snow Storm"},
		},
		Overview: domain.Overview{Days: 1, Total: 801, MeanDaily: 801, FirstDate: day, LastDate: day},
		Weather:  []domain.WeatherSummary{{Weather: domain.WeatherClear, Name: "Clear", Total: 801, Percentage: 100}},
		Season:   []domain.SeasonSummary{{Season: domain.SeasonSpring, Name: "Spring", Total: 801}},
		RFM:      []domain.RFMRecord{{Date: day, Recency: 0, Frequency: 1, Monetary: 801}},
		Charts: []domain.Chart{{
			ID: "season", Title: "Effect of Season on Bike Rentals", XLabel: "Season", YLabel: "Total Rentals",
			YMax: 881.1, Bars: []domain.Bar{{Label: "Spring", Value: 801, Annotation: "801"}},
		}},
	}

	assert.Equal(t, api.Dashboard{
		Title: "Bike Rentals Dashboard",
		Filter: api.Filter{
			Start:    "2011-01-01",
			End:      "2011-01-02",
			Seasons:  []string{"Spring"},
			Weathers: []string{"Clear", "Snow Storm"},
		},
		Overview: api.Overview{Days: 1, Total: 801, MeanDaily: 801, FirstDate: "2011-01-02", LastDate: "2011-01-02"},
		Weather:  []api.WeatherSummary{{Code: 1, Name: "Clear", Total: 801, Percentage: 100}},
		Season:   []api.SeasonSummary{{Code: 1, Name: "Spring", Total: 801}},
		RFM:      []api.RFMRecord{{Date: "2011-01-02", Recency: 0, Frequency: 1, Monetary: 801}},
		Charts: []api.Chart{{
			ID: "season", Title: "Effect of Season on Bike Rentals", XLabel: "Season", YLabel: "Total Rentals",
			YMax: 881.1, Bars: []api.Bar{{Label: "Spring", Value: 801, Annotation: "801"}},
		}},
	}, MapDashboardDomainToApi(d))
}

func TestMapDashboardDomainToApi_Empty(t *testing.T) {
	got := MapDashboardDomainToApi(&domain.Dashboard{Title: "Bike Rentals Dashboard"})

	assert.NotNil(t, got.Weather)
	assert.NotNil(t, got.Season)
	assert.NotNil(t, got.RFM)
	assert.Empty(t, got.Overview.FirstDate)
	assert.Equal(t, []string{}, got.Filter.Seasons)
}

func TestMapLabelsToApi(t *testing.T) {
	labels := MapLabelsToApi()

	assert.Len(t, labels.Seasons, 4)
	assert.Equal(t, api.Label{Code: 4, Name: "Snow Storm"}, labels.Weathers[3])
}
