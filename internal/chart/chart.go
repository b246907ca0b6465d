// Package chart renders dashboard charts as PNG images.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/aromadata/aromadata/internal/dataset"
	"github.com/aromadata/aromadata/internal/price"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Default image size.
const (
	Width  = 8 * vg.Inch
	Height = 4 * vg.Inch
)

var (
	amber   = color.RGBA{R: 0xf5, G: 0x9e, B: 0x0b, A: 0xff}
	emerald = color.RGBA{R: 0x10, G: 0xb9, B: 0x81, A: 0xff}
)

// ErrNoData is returned when there is nothing to plot.
var ErrNoData = errors.New("no data to plot")

// ProductionChart writes a production vs. exports line chart.
func ProductionChart(w io.Writer, records []dataset.MonthlyRecord) error {
	if len(records) == 0 {
		return ErrNoData
	}

	p := plot.New()
	p.Title.Text = dataset.Headlines().ProductionTitle
	p.Y.Label.Text = "Miles de sacos"
	p.Add(plotter.NewGrid())

	months := make([]string, len(records))
	prod := make(plotter.XYs, len(records))
	exp := make(plotter.XYs, len(records))
	for i, r := range records {
		months[i] = r.Month
		prod[i] = plotter.XY{X: float64(i), Y: float64(r.Production)}
		exp[i] = plotter.XY{X: float64(i), Y: float64(r.Exports)}
	}

	if err := addSeries(p, "Producción", prod, amber); err != nil {
		return err
	}
	if err := addSeries(p, "Exportaciones", exp, emerald); err != nil {
		return err
	}
	p.NominalX(months...)
	p.Legend.Top = true

	return render(w, p)
}

// PriceHistoryChart writes the simulated price over time.
func PriceHistoryChart(w io.Writer, samples []price.Sample) error {
	if len(samples) == 0 {
		return ErrNoData
	}

	p := plot.New()
	p.Title.Text = "Precio USD/lb"
	p.Add(plotter.NewGrid())
	p.X.Tick.Marker = plot.TimeTicks{Format: "15:04:05"}

	pts := make(plotter.XYs, len(samples))
	for i, s := range samples {
		pts[i] = plotter.XY{X: float64(s.At.Unix()), Y: s.Price}
	}
	if err := addSeries(p, "Precio", pts, amber); err != nil {
		return err
	}

	return render(w, p)
}

func addSeries(p *plot.Plot, name string, pts plotter.XYs, c color.Color) error {
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("failed to build %s series: %w", name, err)
	}
	line.Color = c
	line.Width = vg.Points(2)
	points.Color = c
	points.Shape = draw.CircleGlyph{}
	p.Add(line, points)
	p.Legend.Add(name, line, points)
	return nil
}

func render(w io.Writer, p *plot.Plot) error {
	wt, err := p.WriterTo(Width, Height, "png")
	if err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	return nil
}
