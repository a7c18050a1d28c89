package render

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/de-tools/rental-atlas/pkg/models/domain"
	"github.com/dustin/go-humanize"
)

const dateLayout = "2006-01-02"

type option struct {
	Name     string
	Selected bool
}

type pageChart struct {
	Title string
	SVG   template.HTML
}

type pageData struct {
	Dashboard *domain.Dashboard
	Start     string
	End       string
	MinDate   string
	MaxDate   string
	Seasons   []option
	Weathers  []option
	Charts    []pageChart
}

var pageFuncs = template.FuncMap{
	"comma": humanize.Comma,
	"date": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format(dateLayout)
	},
	"decimal": func(v float64) string {
		return humanize.CommafWithDigits(v, 1)
	},
}

var pageTemplate = template.Must(template.New("page").Funcs(pageFuncs).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Dashboard.Title}}</title>
<style>
body { font-family: sans-serif; margin: 0; display: flex; }
aside { width: 260px; padding: 16px; background: #f0f2f6; min-height: 100vh; }
main { flex: 1; padding: 16px 32px; }
select { width: 100%; }
.cards { display: flex; gap: 16px; }
.card { border: 1px solid #ddd; border-radius: 6px; padding: 8px 16px; }
table { border-collapse: collapse; }
td, th { border: 1px solid #ddd; padding: 4px 12px; text-align: right; }
.empty { color: #888; font-style: italic; }
</style>
</head>
<body>
<aside>
<h2>Filter Data</h2>
<form method="get" action="/">
<label>Start date<br><input type="date" name="start" value="{{.Start}}" min="{{.MinDate}}" max="{{.MaxDate}}"></label><br><br>
<label>End date<br><input type="date" name="end" value="{{.End}}" min="{{.MinDate}}" max="{{.MaxDate}}"></label><br><br>
<input type="hidden" name="season" value="">
<label>Season<br><select name="season" multiple size="4">
{{range .Seasons}}<option value="{{.Name}}"{{if .Selected}} selected{{end}}>{{.Name}}</option>
{{end}}</select></label><br><br>
<input type="hidden" name="weather" value="">
<label>Weather condition<br><select name="weather" multiple size="4">
{{range .Weathers}}<option value="{{.Name}}"{{if .Selected}} selected{{end}}>{{.Name}}</option>
{{end}}</select></label><br><br>
<button type="submit">Apply</button>
</form>
</aside>
<main>
<h1>{{.Dashboard.Title}}</h1>
<div class="cards">
<div class="card">Days<br><b>{{.Dashboard.Overview.Days}}</b></div>
<div class="card">Total rentals<br><b>{{comma .Dashboard.Overview.Total}}</b></div>
<div class="card">Mean per day<br><b>{{decimal .Dashboard.Overview.MeanDaily}}</b></div>
<div class="card">Std. deviation<br><b>{{decimal .Dashboard.Overview.StdDaily}}</b></div>
<div class="card">Period<br><b>{{date .Dashboard.Overview.FirstDate}} &ndash; {{date .Dashboard.Overview.LastDate}}</b></div>
</div>
{{range .Charts}}
<h2>{{.Title}}</h2>
{{if .SVG}}{{.SVG}}{{else}}<p class="empty">No data for the selected filters</p>{{end}}
{{end}}
<h2>RFM Analysis</h2>
{{if .Dashboard.RFM}}
<table>
<tr><th>dteday</th><th>recency</th><th>frequency</th><th>monetary</th></tr>
{{range .Dashboard.RFM}}<tr><td>{{date .Date}}</td><td>{{.Recency}}</td><td>{{.Frequency}}</td><td>{{.Monetary}}</td></tr>
{{end}}</table>
{{else}}<p class="empty">No data for the selected filters</p>{{end}}
</main>
</body>
</html>
`))

// WritePage renders the dashboard page. bounds limits the date pickers, usually the
// default filter of the dataset.
func WritePage(w io.Writer, d *domain.Dashboard, bounds domain.Filter) error {
	data := pageData{
		Dashboard: d,
		Start:     d.Filter.Start.Format(dateLayout),
		End:       d.Filter.End.Format(dateLayout),
		MinDate:   bounds.Start.Format(dateLayout),
		MaxDate:   bounds.End.Format(dateLayout),
		Seasons:   options(domain.SeasonNames(), d.Filter.Seasons),
		Weathers:  options(domain.WeatherNames(), d.Filter.Weathers),
	}

	for _, c := range d.Charts {
		var buf bytes.Buffer
		err := WriteChartSVG(&buf, c)
		switch {
		case errors.Is(err, ErrEmptyChart):
		case err != nil:
			return err
		}
		data.Charts = append(data.Charts, pageChart{
			Title: c.Title,
			SVG:   template.HTML(buf.String()),
		})
	}

	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

func options(all, selected []string) []option {
	picked := make(map[string]bool, len(selected))
	for _, s := range selected {
		picked[s] = true
	}
	opts := make([]option, 0, len(all))
	for _, name := range all {
		opts = append(opts, option{Name: name, Selected: picked[name]})
	}
	return opts
}
