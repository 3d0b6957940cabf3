package charts

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"

	"glucose-monitor/internal/analysis"
	"glucose-monitor/internal/logger"
	"glucose-monitor/internal/models"
)

// Export canvas size, matching the 10x5 inch figures of the original charts.
const (
	exportWidth  = 10 * vg.Inch
	exportHeight = 5 * vg.Inch
)

// peakCount is how many of the highest readings get a peak marker.
const peakCount = 3

// Chart wraps a rendered figure. It can be rasterized for embedding in a
// window and serialized as a PDF for export.
type Chart struct {
	Title string
	plot  *plot.Plot
}

// Image rasterizes the chart at the given pixel size.
func (c *Chart) Image(width, height int) image.Image {
	canvas := vgimg.New(vg.Points(float64(width)), vg.Points(float64(height)))
	c.plot.Draw(draw.New(canvas))
	return canvas.Image()
}

// WritePDF serializes the chart as a single-page PDF.
func (c *Chart) WritePDF(w io.Writer) error {
	canvas := vgpdf.New(exportWidth, exportHeight)
	c.plot.Draw(draw.New(canvas))
	if _, err := canvas.WriteTo(w); err != nil {
		return fmt.Errorf("writing chart PDF: %w", err)
	}
	return nil
}

// Renderer builds the application's charts.
type Renderer struct {
	logger logger.Logger
}

func NewRenderer(log logger.Logger) *Renderer {
	return &Renderer{logger: log}
}

// LevelsOverTime renders the glucose time series with the top peaks and the
// hypo-/hyperglycemic readings marked. Thresholds are the session's glucose
// category boundaries.
func (r *Renderer) LevelsOverTime(ds *models.Dataset, low, high int) (*Chart, error) {
	if len(ds.Readings) == 0 {
		return nil, fmt.Errorf("dataset has no readings")
	}

	p := plot.New()
	p.Title.Text = "Blood Glucose Monitoring"
	p.X.Label.Text = "Datetime"
	p.Y.Label.Text = models.ColLevel
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02 15:04"}
	p.Add(plotter.NewGrid())

	series := make(plotter.XYs, len(ds.Readings))
	for i, reading := range ds.Readings {
		series[i].X = float64(reading.Timestamp.Unix())
		series[i].Y = reading.Level
	}

	line, points, err := plotter.NewLinePoints(series)
	if err != nil {
		return nil, fmt.Errorf("building glucose series: %w", err)
	}
	line.Color = plotutil.Color(0)
	points.Color = plotutil.Color(0)
	p.Add(line, points)
	p.Legend.Add("Glucose Levels", line)

	peaks, _ := analysis.Extremes(ds.Readings, peakCount)
	if err := addMarkers(p, peaks, "Peaks", color.RGBA{R: 0xff, A: 0xff}); err != nil {
		return nil, err
	}

	var hypo, hyper []models.GlucoseReading
	for _, reading := range ds.Readings {
		switch {
		case reading.Level < float64(low):
			hypo = append(hypo, reading)
		case reading.Level > float64(high):
			hyper = append(hyper, reading)
		}
	}
	if err := addMarkers(p, hypo, "Hypoglycemia", color.RGBA{R: 0xff, G: 0x8c, A: 0xff}); err != nil {
		return nil, err
	}
	if err := addMarkers(p, hyper, "Hyperglycemia", color.RGBA{R: 0x8b, A: 0xff}); err != nil {
		return nil, err
	}

	p.Legend.Top = true
	r.logger.Debug("rendered time series chart", map[string]interface{}{
		"readings": len(ds.Readings), "hypo": len(hypo), "hyper": len(hyper),
	})

	return &Chart{Title: "Blood Glucose Graph", plot: p}, nil
}

func addMarkers(p *plot.Plot, readings []models.GlucoseReading, label string, c color.Color) error {
	if len(readings) == 0 {
		return nil
	}

	xys := make(plotter.XYs, len(readings))
	for i, reading := range readings {
		xys[i].X = float64(reading.Timestamp.Unix())
		xys[i].Y = reading.Level
	}

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("building %s markers: %w", label, err)
	}
	scatter.GlyphStyle.Color = c
	scatter.GlyphStyle.Radius = vg.Points(4)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}

	p.Add(scatter)
	p.Legend.Add(label, scatter)
	return nil
}

// LevelsByMeal renders the mean glucose level per meal bucket as a bar
// chart.
func (r *Renderer) LevelsByMeal(ds *models.Dataset) (*Chart, error) {
	if missing := ds.MissingColumns(models.ColMeal); len(missing) > 0 {
		return nil, fmt.Errorf("dataset does not have the required columns %v", missing)
	}
	if len(ds.Readings) == 0 {
		return nil, fmt.Errorf("dataset has no readings")
	}

	mealStats := analysis.MealStatistics(ds.Readings)

	p := plot.New()
	p.Title.Text = "Blood Glucose Levels by Meal"
	p.X.Label.Text = "Meal"
	p.Y.Label.Text = models.ColLevel
	p.Add(plotter.NewGrid())

	meals := make([]string, len(mealStats))
	for i, ms := range mealStats {
		meals[i] = ms.Meal

		bar, err := plotter.NewBarChart(singleBarValues{index: i, total: len(mealStats), value: ms.Mean}, vg.Points(30))
		if err != nil {
			return nil, fmt.Errorf("building meal bars: %w", err)
		}
		bar.Color = plotutil.Color(i)
		bar.LineStyle.Width = vg.Points(0.5)
		p.Add(bar)
		p.Legend.Add(ms.Meal, bar)
	}
	p.NominalX(meals...)
	p.Legend.Top = true

	return &Chart{Title: "Blood Glucose Graph", plot: p}, nil
}

// singleBarValues yields one non-zero bar at a fixed position so each meal
// keeps its own color and legend entry.
type singleBarValues struct {
	index int
	total int
	value float64
}

func (v singleBarValues) Len() int { return v.total }

func (v singleBarValues) Value(i int) float64 {
	if i == v.index {
		return v.value
	}
	return 0
}
