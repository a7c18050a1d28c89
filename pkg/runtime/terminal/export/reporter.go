package export

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/de-tools/rental-atlas/pkg/adapters"
	"github.com/de-tools/rental-atlas/pkg/models/domain"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const noData = "No data for the selected filters"

// Reporter writes a rendered dashboard in one output format
type Reporter interface {
	Handle(d *domain.Dashboard) error
}

type TableConfig struct {
	BarWidth int
	BarColor string
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		BarWidth: 40,
		BarColor: "#72BCD4",
	}
}

// TableReporter prints the dashboard as terminal tables with text bar charts.
type TableReporter struct {
	writer  io.Writer
	config  TableConfig
	heading lipgloss.Style
	bar     lipgloss.Style
}

func NewTableReporter(writer io.Writer) *TableReporter {
	if writer == nil {
		writer = os.Stdout
	}
	config := DefaultTableConfig()
	renderer := lipgloss.NewRenderer(writer)

	return &TableReporter{
		writer:  writer,
		config:  config,
		heading: renderer.NewStyle().Bold(true).Underline(true),
		bar:     renderer.NewStyle().Foreground(lipgloss.Color(config.BarColor)),
	}
}

func (c *TableReporter) Handle(d *domain.Dashboard) error {
	c.title(d.Title)
	_, _ = fmt.Fprintf(c.writer, "Period: %s to %s\n",
		d.Filter.Start.Format(adapters.DateLayout), d.Filter.End.Format(adapters.DateLayout))
	_, _ = fmt.Fprintf(c.writer, "Seasons: %s\n", joinOrNone(d.Filter.Seasons))
	_, _ = fmt.Fprintf(c.writer, "Weather: %s\n", joinOrNone(d.Filter.Weathers))

	c.overview(d.Overview)
	for _, chart := range d.Charts {
		c.chart(chart)
	}
	c.rfm(d.RFM)
	return nil
}

func (c *TableReporter) title(s string) {
	_, _ = fmt.Fprintf(c.writer, "\n%s\n\n", c.heading.Render(s))
}

func (c *TableReporter) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(c.writer)
	t.SetStyle(table.StyleLight)
	return t
}

func (c *TableReporter) overview(o domain.Overview) {
	c.title("Overview")

	t := c.newTable()
	t.AppendHeader(table.Row{"Days", "Total Rentals", "Mean Daily", "Std Daily"})
	t.AppendRow(table.Row{
		o.Days,
		humanize.Comma(o.Total),
		humanize.CommafWithDigits(o.MeanDaily, 1),
		humanize.CommafWithDigits(o.StdDaily, 1),
	})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	t.Render()
}

func (c *TableReporter) chart(chart domain.Chart) {
	c.title(chart.Title)
	if len(chart.Bars) == 0 {
		_, _ = fmt.Fprintln(c.writer, noData)
		return
	}

	t := c.newTable()
	t.AppendHeader(table.Row{chart.XLabel, chart.YLabel, ""})
	for _, b := range chart.Bars {
		t.AppendRow(table.Row{
			b.Label,
			b.Annotation,
			c.bar.Render(Bar(b.Value, chart.YMax, c.config.BarWidth)),
		})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	t.Render()
}

func (c *TableReporter) rfm(records []domain.RFMRecord) {
	c.title("RFM Summary")
	if len(records) == 0 {
		_, _ = fmt.Fprintln(c.writer, noData)
		return
	}

	t := c.newTable()
	t.AppendHeader(table.Row{"dteday", "recency", "frequency", "monetary"})
	for _, r := range records {
		t.AppendRow(table.Row{r.Date.Format(adapters.DateLayout), r.Recency, r.Frequency, r.Monetary})
	}
	t.Render()
	_, _ = fmt.Fprintf(c.writer, "(%d rows)\n", len(records))
}

// Bar draws value as a run of block characters scaled so that peak spans width.
func Bar(value, peak float64, width int) string {
	if peak <= 0 || value <= 0 || width <= 0 {
		return ""
	}
	n := int(math.Round(value / peak * float64(width)))
	if n > width {
		n = width
	}
	return strings.Repeat("█", n)
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	return strings.Join(values, ", ")
}

// JSONReporter writes the dashboard in the same shape as the web API.
type JSONReporter struct {
	writer io.Writer
}

func NewJSONReporter(writer io.Writer) *JSONReporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &JSONReporter{writer: writer}
}

func (c *JSONReporter) Handle(d *domain.Dashboard) error {
	enc := json.NewEncoder(c.writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(adapters.MapDashboardDomainToApi(d)); err != nil {
		return fmt.Errorf("failed to encode dashboard: %w", err)
	}
	return nil
}
