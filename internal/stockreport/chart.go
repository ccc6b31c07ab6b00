package stockreport

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"investreports/internal/config"
	apperrors "investreports/internal/errors"
	"investreports/pkg/contracts/domain"
)

// ChartOptions controls the rendered price chart
type ChartOptions struct {
	Title  string
	XLabel string
	YLabel string
	Width  vg.Length
	Height vg.Length
	DPI    int
}

// DefaultChartOptions returns a 12x6 inch canvas at 100 DPI (1200x600 pixels)
func DefaultChartOptions() ChartOptions {
	return ChartOptions{
		Title:  config.DefaultStockChartTitle,
		XLabel: "Date",
		YLabel: "Price",
		Width:  12 * vg.Inch,
		Height: 6 * vg.Inch,
		DPI:    100,
	}
}

// PixelSize returns the pixel dimensions of the rendered image
func (o ChartOptions) PixelSize() (width, height int) {
	scale := float64(o.DPI) / vg.Inch.Points()
	return int(o.Width.Points()*scale + 0.5), int(o.Height.Points()*scale + 0.5)
}

var lineColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}

// RenderChart draws close price against row position and writes a PNG to w.
// The X axis is the input position, not the date text.
func RenderChart(series domain.PriceSeries, opts ChartOptions, w io.Writer) error {
	if len(series) == 0 {
		return apperrors.NewValidationError("cannot chart an empty price series", nil)
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.Add(plotter.NewGrid())

	xs, ys := series.Positions(), series.Closes()
	pts := make(plotter.XYs, len(series))
	for i := range pts {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return apperrors.NewRenderError("failed to build price line", err)
	}
	line.Color = lineColor
	line.Width = vg.Points(1.5)
	p.Add(line)

	canvas := vgimg.NewWith(vgimg.UseWH(opts.Width, opts.Height), vgimg.UseDPI(opts.DPI))
	p.Draw(draw.New(canvas))

	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(w); err != nil {
		return apperrors.NewRenderError("failed to encode chart", err)
	}
	return nil
}

// SaveChart renders the chart into path, replacing any existing file
func SaveChart(path string, series domain.PriceSeries, opts ChartOptions) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to create chart %s", path), err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = apperrors.NewStorageError(fmt.Sprintf("failed to close chart %s", path), cerr)
		}
	}()

	buf := bufio.NewWriter(f)
	if err := RenderChart(series, opts, buf); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to write chart %s", path), err)
	}
	return nil
}
