// Package plots writes the trend and projection views as PNG files, for
// dropping into reports without a running dashboard.
package plots

import (
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/paddock-data/apex.report/internal/fsutil"
	"github.com/paddock-data/apex.report/internal/stats"
)

// palette cycles per entrant line.
var palette = []color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
}

// WriteAll writes every chart view under outputDir and returns the file
// count.
func WriteAll(fsys fsutil.FileSystem, outputDir string, drivers, constructors []stats.EntrantSeries, projected []stats.ProjectedEntry) (int, error) {
	if err := fsys.MkdirAll(outputDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create output dir: %w", err)
	}

	written := 0
	if len(drivers) > 0 {
		file := filepath.Join(outputDir, "driver_trends.png")
		if err := writeTrendPlot(file, "Driver Performance", drivers); err != nil {
			return written, err
		}
		written++
	}
	if len(constructors) > 0 {
		file := filepath.Join(outputDir, "constructor_trends.png")
		if err := writeTrendPlot(file, "Constructor Trends", constructors); err != nil {
			return written, err
		}
		written++
	}
	if len(projected) > 0 {
		file := filepath.Join(outputDir, "projection.png")
		if err := writeProjectionPlot(file, projected); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

func writeTrendPlot(file, title string, series []stats.EntrantSeries) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Season"
	p.Y.Label.Text = "Points"

	for i, s := range series {
		pts := make(plotter.XYs, 0, len(s.Seasons))
		for _, sp := range s.Seasons {
			pts = append(pts, plotter.XY{X: float64(sp.Season), Y: sp.Points})
		}
		if len(pts) == 0 {
			continue
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("%s: %w", s.Name, err)
		}
		line.Color = palette[i%len(palette)]
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(s.Name, line)
	}

	p.Legend.Top = true
	p.Legend.Left = true

	if err := p.Save(10*vg.Inch, 5*vg.Inch, file); err != nil {
		return fmt.Errorf("failed to save %s: %w", file, err)
	}
	return nil
}

func writeProjectionPlot(file string, projected []stats.ProjectedEntry) error {
	values := make(plotter.Values, len(projected))
	labels := make([]string, len(projected))
	for i, pr := range projected {
		values[i] = pr.Projected
		labels[i] = pr.Driver
	}

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return fmt.Errorf("projection bars: %w", err)
	}
	bars.Color = palette[0]

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Projected Points (%d races)", stats.AssumedRaces)
	p.Y.Label.Text = "Points"
	p.Add(bars)
	p.NominalX(labels...)

	if err := p.Save(10*vg.Inch, 5*vg.Inch, file); err != nil {
		return fmt.Errorf("failed to save %s: %w", file, err)
	}
	return nil
}
