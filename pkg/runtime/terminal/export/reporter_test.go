package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/rental-atlas/pkg/models/api"
	"github.com/de-tools/rental-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDashboard() *domain.Dashboard {
	day := time.Date(2011, 3, 21, 0, 0, 0, 0, time.UTC)
	return &domain.Dashboard{
		Title: "Bike Rentals Dashboard",
		Filter: domain.Filter{
			Start:    day.AddDate(0, 0, -2),
			End:      day,
			Seasons:  []string{"Spring"},
			Weathers: []string{},
		},
		Overview: domain.Overview{Days: 1, Total: 12345, MeanDaily: 12345, FirstDate: day, LastDate: day},
		Charts: []domain.Chart{
			{
				ID:     "season",
				Title:  "Effect of Season on Bike Rentals",
				XLabel: "Season",
				YLabel: "Total Rentals",
				YMax:   13579.5,
				Bars:   []domain.Bar{{Label: "Spring", Value: 12345, Annotation: "12,345"}},
			},
			{ID: "weather", Title: "Bike Rental Percentage by Weather Condition", YMax: 100},
		},
		RFM: []domain.RFMRecord{{Date: day, Recency: 0, Frequency: domain.RFMFrequency, Monetary: 12345}},
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		max   float64
		width int
		want  int
	}{
		{name: "full", value: 100, max: 100, width: 10, want: 10},
		{name: "half", value: 50, max: 100, width: 10, want: 5},
		{name: "clamped", value: 150, max: 100, width: 10, want: 10},
		{name: "zero max", value: 10, max: 0, width: 10, want: 0},
		{name: "zero value", value: 0, max: 100, width: 10, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, strings.Repeat("█", tt.want), Bar(tt.value, tt.max, tt.width))
		})
	}
}

func TestTableReporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableReporter(&buf).Handle(sampleDashboard()))

	out := buf.String()
	assert.Contains(t, out, "Period: 2011-03-19 to 2011-03-21")
	assert.Contains(t, out, "Seasons: Spring")
	assert.Contains(t, out, "Weather: (none)")
	assert.Contains(t, out, "12,345")
	assert.Contains(t, out, strings.Repeat("█", 36))
	assert.Contains(t, out, noData)
	assert.Contains(t, out, "2011-03-21")
}

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONReporter(&buf).Handle(sampleDashboard()))

	var d api.Dashboard
	require.NoError(t, json.Unmarshal(buf.Bytes(), &d))
	assert.Equal(t, int64(12345), d.Overview.Total)
	assert.Equal(t, []string{}, d.Filter.Weathers)
	require.Len(t, d.Charts, 2)
	assert.Empty(t, d.Charts[1].Bars)
}
