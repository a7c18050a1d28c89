package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/de-tools/rental-atlas/pkg/adapters"
	"github.com/de-tools/rental-atlas/pkg/models/domain"
	"github.com/dustin/go-humanize"
)

const markdownTemplate = `# {{.Title}}

Period: {{date .Filter.Start}} to {{date .Filter.End}}
Seasons: {{join .Filter.Seasons}}
Weather: {{join .Filter.Weathers}}

## Overview

| Days | Total Rentals | Mean Daily | Std Daily |
| ---: | ---: | ---: | ---: |
| {{.Overview.Days}} | {{comma .Overview.Total}} | {{decimal .Overview.MeanDaily}} | {{decimal .Overview.StdDaily}} |
{{range .Charts}}
## {{.Title}}
{{if .Bars}}
| {{.XLabel}} | {{.YLabel}} |
| --- | ---: |
{{range .Bars}}| {{.Label}} | {{.Annotation}} |
{{end}}{{else}}
_No data for the selected filters_
{{end}}{{end}}
## RFM Summary
{{if .RFM}}
| dteday | recency | frequency | monetary |
| --- | ---: | ---: | ---: |
{{range .RFM}}| {{date .Date}} | {{.Recency}} | {{.Frequency}} | {{.Monetary}} |
{{end}}{{else}}
_No data for the selected filters_
{{end}}`

// Reporter outputs the dashboard as a markdown document
type Reporter struct {
	writer io.Writer
	tmpl   *template.Template
}

// NewReporter creates a new markdown reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}

	funcs := template.FuncMap{
		"date":    func(t time.Time) string { return t.Format(adapters.DateLayout) },
		"comma":   humanize.Comma,
		"decimal": func(f float64) string { return humanize.CommafWithDigits(f, 1) },
		"join": func(values []string) string {
			if len(values) == 0 {
				return "(none)"
			}
			return strings.Join(values, ", ")
		},
	}

	return &Reporter{
		writer: writer,
		tmpl:   template.Must(template.New("report").Funcs(funcs).Parse(markdownTemplate)),
	}
}

func (c *Reporter) Handle(d *domain.Dashboard) error {
	if err := c.tmpl.Execute(c.writer, d); err != nil {
		return fmt.Errorf("failed to render markdown report: %w", err)
	}
	return nil
}
