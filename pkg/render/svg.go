package render

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/de-tools/rental-atlas/pkg/models/domain"
	"github.com/de-tools/rental-atlas/pkg/services/dashboard"
	"github.com/dustin/go-humanize"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrEmptyChart is returned for charts without bars; the page shows a placeholder instead.
var ErrEmptyChart = errors.New("chart has no bars")

const (
	chartWidth  = 1024
	chartHeight = 512
	barWidth    = 120
	barSpacing  = 80
	gridSteps   = 5

	annotationFontSize = 11
	annotationGap      = 4
	axisTitleFontSize  = 12
	axisTitleBottom    = 8
)

var (
	barFill   = drawing.ColorFromHex("72BCD4")
	gridColor = drawing.ColorFromHex("B0B0B0")
)

// WriteChartSVG draws c as an SVG bar chart with each annotation above its bar.
func WriteChartSVG(w io.Writer, c domain.Chart) error {
	if len(c.Bars) == 0 {
		return ErrEmptyChart
	}

	bars := make([]chart.Value, 0, len(c.Bars))
	for _, b := range c.Bars {
		bars = append(bars, chart.Value{
			Label: b.Label,
			Value: b.Value,
			Style: chart.Style{
				FillColor:   barFill,
				StrokeColor: drawing.ColorBlack,
				StrokeWidth: 1,
			},
		})
	}

	ticks := axisTicks(c)
	graph := chart.BarChart{
		Title:      c.Title,
		Width:      chartWidth,
		Height:     chartHeight,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: chart.Style{
			Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 56},
		},
		YAxis: chart.YAxis{
			Name:  c.YLabel,
			Range: &chart.ContinuousRange{Min: c.YMin, Max: c.YMax},
			Ticks: ticks,
		},
		Bars:     bars,
		Elements: []chart.Renderable{gridLines(c, ticks), annotations(c), xAxisTitle(c)},
	}

	if err := graph.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("render %s chart: %w", c.ID, err)
	}
	return nil
}

func axisTicks(c domain.Chart) []chart.Tick {
	step := (c.YMax - c.YMin) / gridSteps
	ticks := make([]chart.Tick, 0, gridSteps+1)
	for i := 0; i <= gridSteps; i++ {
		v := c.YMin + step*float64(i)
		ticks = append(ticks, chart.Tick{Value: v, Label: tickLabel(c, v)})
	}
	return ticks
}

func tickLabel(c domain.Chart, v float64) string {
	if c.ID == dashboard.WeatherChartID {
		return fmt.Sprintf("%.0f%%", v)
	}
	return humanize.Comma(int64(v))
}

// gridLines draws dashed horizontal lines at the tick values across the plot area.
func gridLines(c domain.Chart, ticks []chart.Tick) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, _ chart.Style) {
		span := c.YMax - c.YMin
		if span <= 0 {
			return
		}

		r.SetStrokeColor(gridColor)
		r.SetStrokeWidth(0.7)
		r.SetStrokeDashArray([]float64{4, 4})
		for _, t := range ticks[1:] {
			y := canvasBox.Bottom - int((t.Value-c.YMin)/span*float64(canvasBox.Height()))
			r.MoveTo(canvasBox.Left, y)
			r.LineTo(canvasBox.Right, y)
			r.Stroke()
		}
		r.ResetStyle()
	}
}

// barSlots repeats the bar chart layout: bars keep their configured width and
// spacing unless they overflow the canvas, in which case both shrink.
func barSlots(n int, canvasBox chart.Box) (width, spacing int) {
	if n == 0 {
		return 0, 0
	}
	available := canvasBox.Width()

	spacing = barSpacing
	if n*(barWidth+barSpacing) > available {
		spacing = 0
		if rest := available - n*barWidth; rest > 0 {
			spacing = int(math.Ceil(float64(rest) / float64(n)))
		}
	}

	width = barWidth
	if n*(barWidth+spacing) > available {
		width = 0
		if rest := available - n*spacing; rest > 0 {
			width = int(math.Ceil(float64(rest) / float64(n)))
		}
	}
	return width, spacing
}

// annotations writes each bar's annotation centred just above the bar top.
func annotations(c domain.Chart) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		span := c.YMax - c.YMin
		if span <= 0 {
			return
		}

		style := chart.Style{
			Font:      defaults.Font,
			FontSize:  annotationFontSize,
			FontColor: drawing.ColorBlack,
		}
		width, spacing := barSlots(len(c.Bars), canvasBox)
		left := canvasBox.Left + spacing>>1
		for _, b := range c.Bars {
			top := canvasBox.Bottom - int(math.Ceil((b.Value-c.YMin)/span*float64(canvasBox.Height())))
			tb := chart.Draw.MeasureText(r, b.Annotation, style)
			chart.Draw.Text(r, b.Annotation, left+width>>1-tb.Width()>>1, top-annotationGap, style)
			left += width + spacing
		}
	}
}

// xAxisTitle centres the x label under the bar labels.
func xAxisTitle(c domain.Chart) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		if c.XLabel == "" {
			return
		}

		style := chart.Style{
			Font:      defaults.Font,
			FontSize:  axisTitleFontSize,
			FontColor: drawing.ColorBlack,
		}
		tb := chart.Draw.MeasureText(r, c.XLabel, style)
		x := canvasBox.Left + canvasBox.Width()>>1 - tb.Width()>>1
		chart.Draw.Text(r, c.XLabel, x, chartHeight-axisTitleBottom, style)
	}
}
