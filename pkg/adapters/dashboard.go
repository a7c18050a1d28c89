package adapters

import (
	"time"

	"github.com/de-tools/rental-atlas/pkg/models/api"
	"github.com/de-tools/rental-atlas/pkg/models/domain"
)

// DateLayout is the wire format of calendar days.
const DateLayout = "2006-01-02"

func MapDashboardDomainToApi(d *domain.Dashboard) api.Dashboard {
	out := api.Dashboard{
		Title:    d.Title,
		Filter:   MapFilterDomainToApi(d.Filter),
		Overview: MapOverviewDomainToApi(d.Overview),
		Weather:  make([]api.WeatherSummary, 0, len(d.Weather)),
		Season:   make([]api.SeasonSummary, 0, len(d.Season)),
		RFM:      make([]api.RFMRecord, 0, len(d.RFM)),
		Charts:   make([]api.Chart, 0, len(d.Charts)),
	}

	for _, w := range d.Weather {
		out.Weather = append(out.Weather, api.WeatherSummary{
			Code:       int(w.Weather),
			Name:       w.Name,
			Total:      w.Total,
			Percentage: w.Percentage,
		})
	}
	for _, s := range d.Season {
		out.Season = append(out.Season, api.SeasonSummary{
			Code:  int(s.Season),
			Name:  s.Name,
			Total: s.Total,
		})
	}
	for _, r := range d.RFM {
		out.RFM = append(out.RFM, MapRFMDomainToApi(r))
	}
	for _, c := range d.Charts {
		out.Charts = append(out.Charts, MapChartDomainToApi(c))
	}

	return out
}

func MapFilterDomainToApi(f domain.Filter) api.Filter {
	return api.Filter{
		Start:    f.Start.Format(DateLayout),
		End:      f.End.Format(DateLayout),
		Seasons:  append([]string{}, f.Seasons...),
		Weathers: append([]string{}, f.Weathers...),
	}
}

func MapOverviewDomainToApi(o domain.Overview) api.Overview {
	return api.Overview{
		Days:      o.Days,
		Total:     o.Total,
		MeanDaily: o.MeanDaily,
		StdDaily:  o.StdDaily,
		FirstDate: formatDay(o.FirstDate),
		LastDate:  formatDay(o.LastDate),
	}
}

// formatDay renders a calendar day, leaving the zero time empty.
func formatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func MapRFMDomainToApi(r domain.RFMRecord) api.RFMRecord {
	return api.RFMRecord{
		Date:      r.Date.Format(DateLayout),
		Recency:   r.Recency,
		Frequency: r.Frequency,
		Monetary:  r.Monetary,
	}
}

func MapChartDomainToApi(c domain.Chart) api.Chart {
	chart := api.Chart{
		ID:     c.ID,
		Title:  c.Title,
		XLabel: c.XLabel,
		YLabel: c.YLabel,
		YMin:   c.YMin,
		YMax:   c.YMax,
		Bars:   make([]api.Bar, 0, len(c.Bars)),
	}
	for _, b := range c.Bars {
		chart.Bars = append(chart.Bars, api.Bar{
			Label:      b.Label,
			Value:      b.Value,
			Annotation: b.Annotation,
		})
	}
	return chart
}

// MapLabelsToApi lists both label tables in code order.
func MapLabelsToApi() api.Labels {
	labels := api.Labels{}
	for _, s := range domain.Seasons() {
		labels.Seasons = append(labels.Seasons, api.Label{Code: int(s), Name: s.String()})
	}
	for _, w := range domain.Weathers() {
		labels.Weathers = append(labels.Weathers, api.Label{Code: int(w), Name: w.String()})
	}
	return labels
}
