package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/dialectmap/okresy/aggregate"
	"github.com/dialectmap/okresy/models"
)

var ErrNoData = errors.New("region has no answers to chart")

// Donut renders the word distribution of one region as a standalone HTML
// page with an echarts ring chart.
func Donut(w io.Writer, name string, lines []models.SummaryLine, palette aggregate.Palette) error {
	if len(lines) == 0 {
		return ErrNoData
	}

	items := make([]opts.PieData, 0, len(lines))
	for _, l := range lines {
		items = append(items, opts.PieData{
			Name:      l.Word,
			Value:     l.Count,
			ItemStyle: &opts.ItemStyle{Color: palette.WordColor(l.Word)},
		})
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: name,
			Width:     "480px",
			Height:    "360px",
		}),
		charts.WithTitleOpts(opts.Title{Title: name}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
	)
	pie.AddSeries(name, items,
		charts.WithPieChartOpts(opts.PieChart{
			Radius: []string{"40%", "75%"},
		}),
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}: {c} ({d}%)",
		}),
	)
	return pie.Render(w)
}

// BarPNG draws one bar per word, coloured like the map, and writes a PNG.
func BarPNG(w io.Writer, name string, lines []models.SummaryLine, palette aggregate.Palette) error {
	if len(lines) == 0 {
		return ErrNoData
	}

	p := plot.New()
	p.Title.Text = name
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Y.Label.Text = "Počet hlasů"
	p.Y.Min = 0

	labels := make([]string, len(lines))
	for i, l := range lines {
		bar, err := plotter.NewBarChart(plotter.Values{float64(l.Count)}, vg.Points(40))
		if err != nil {
			return fmt.Errorf("failed to build bar for %s: %w", l.Word, err)
		}
		bar.XMin = float64(i)
		bar.Color = hexColor(palette.WordColor(l.Word))
		bar.LineStyle.Width = vg.Length(0)
		p.Add(bar)
		labels[i] = l.Word
	}
	p.NominalX(labels...)

	wt, err := p.WriterTo(4*vg.Inch, 3*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// hexColor parses "#rrggbb"; anything else is grey.
func hexColor(hex string) color.Color {
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.Gray{Y: 0xcc}
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
