package charts

import (
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"glucose-monitor/internal/models"
)

// BMIAllUsers renders every user's BMI as a line with the highest and lowest
// values marked.
func (r *Renderer) BMIAllUsers(users map[string]models.UserProfile) (*Chart, error) {
	names := sortedNames(users)
	if len(names) == 0 {
		return nil, fmt.Errorf("no user data found")
	}

	p := plot.New()
	p.Title.Text = "BMI of All Users"
	p.X.Label.Text = "Users"
	p.Y.Label.Text = "BMI"

	series := make(plotter.XYs, len(names))
	maxIdx, minIdx := 0, 0
	for i, name := range names {
		series[i].X = float64(i)
		series[i].Y = users[name].BMI
		if series[i].Y > series[maxIdx].Y {
			maxIdx = i
		}
		if series[i].Y < series[minIdx].Y {
			minIdx = i
		}
	}

	line, points, err := plotter.NewLinePoints(series)
	if err != nil {
		return nil, fmt.Errorf("building BMI series: %w", err)
	}
	line.Color = color.RGBA{R: 0x46, G: 0x82, B: 0xb4, A: 0xff}
	points.Color = line.Color
	p.Add(line, points)
	p.Legend.Add("BMI", line)

	if err := addHighlight(p, series[maxIdx], "Highest BMI", color.RGBA{R: 0xff, A: 0xff}); err != nil {
		return nil, err
	}
	if err := addHighlight(p, series[minIdx], "Lowest BMI", color.RGBA{R: 0x80, B: 0x80, A: 0xff}); err != nil {
		return nil, err
	}

	p.NominalX(names...)
	p.Legend.Top = true

	return &Chart{Title: "BMI of All Users", plot: p}, nil
}

func addHighlight(p *plot.Plot, xy plotter.XY, label string, c color.Color) error {
	scatter, err := plotter.NewScatter(plotter.XYs{xy})
	if err != nil {
		return fmt.Errorf("building %s marker: %w", label, err)
	}
	scatter.GlyphStyle.Color = c
	scatter.GlyphStyle.Radius = vg.Points(5)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(scatter)
	p.Legend.Add(label, scatter)
	return nil
}

// AvgBMIByType renders the average BMI per diabetes type as a bar chart.
func (r *Renderer) AvgBMIByType(users map[string]models.UserProfile) (*Chart, error) {
	types, byType := groupByType(users)
	if len(types) == 0 {
		return nil, fmt.Errorf("no BMI or diabetes type data available for users")
	}

	p := plot.New()
	p.Title.Text = "Average BMI for Each Diabetes Type"
	p.X.Label.Text = "Diabetes Type"
	p.Y.Label.Text = "Average BMI"

	for i, dtype := range types {
		var sum float64
		for _, profile := range byType[dtype] {
			sum += profile.BMI
		}
		avg := sum / float64(len(byType[dtype]))

		bar, err := plotter.NewBarChart(singleBarValues{index: i, total: len(types), value: avg}, vg.Points(30))
		if err != nil {
			return nil, fmt.Errorf("building BMI bars: %w", err)
		}
		bar.Color = plotutil.Color(i)
		p.Add(bar)
	}

	p.NominalX(types...)

	return &Chart{Title: "Average BMI for Each Diabetes Type", plot: p}, nil
}

// AgeDistributionByType renders the users' age spread per diabetes type as
// box plots.
func (r *Renderer) AgeDistributionByType(users map[string]models.UserProfile) (*Chart, error) {
	types, byType := groupByType(users)
	if len(types) == 0 {
		return nil, fmt.Errorf("no BMI or diabetes type data available for users")
	}

	p := plot.New()
	p.Title.Text = "Age Distribution by Diabetes Type"
	p.X.Label.Text = "Diabetes Type"
	p.Y.Label.Text = "Age"
	p.Add(plotter.NewGrid())

	for i, dtype := range types {
		ages := make(plotter.Values, 0, len(byType[dtype]))
		for _, profile := range byType[dtype] {
			ages = append(ages, float64(profile.Age))
		}

		box, err := plotter.NewBoxPlot(vg.Points(25), float64(i), ages)
		if err != nil {
			return nil, fmt.Errorf("building age box plot: %w", err)
		}
		box.FillColor = plotutil.Color(i)
		p.Add(box)
	}

	p.NominalX(types...)

	return &Chart{Title: "Age Distribution by Diabetes Type", plot: p}, nil
}

// GenderDistributionByType renders how many users of each gender fall into
// each diabetes type, as grouped bars.
func (r *Renderer) GenderDistributionByType(users map[string]models.UserProfile) (*Chart, error) {
	types, byType := groupByType(users)
	if len(types) == 0 {
		return nil, fmt.Errorf("no BMI or diabetes type data available for users")
	}

	genders := map[string]bool{}
	for _, profile := range users {
		genders[profile.Gender] = true
	}
	genderList := make([]string, 0, len(genders))
	for gender := range genders {
		genderList = append(genderList, gender)
	}
	sort.Strings(genderList)

	p := plot.New()
	p.Title.Text = "Gender Distribution by Diabetes Type"
	p.X.Label.Text = "Diabetes Type"
	p.Y.Label.Text = "Count"
	p.Add(plotter.NewGrid())

	barWidth := vg.Points(15)
	groupWidth := barWidth * vg.Length(len(genderList))
	for gi, gender := range genderList {
		counts := make(plotter.Values, len(types))
		for ti, dtype := range types {
			for _, profile := range byType[dtype] {
				if profile.Gender == gender {
					counts[ti]++
				}
			}
		}

		bar, err := plotter.NewBarChart(counts, barWidth)
		if err != nil {
			return nil, fmt.Errorf("building gender bars: %w", err)
		}
		bar.Color = plotutil.Color(gi)
		bar.Offset = vg.Length(gi)*barWidth - groupWidth/2 + barWidth/2
		p.Add(bar)
		p.Legend.Add(gender, bar)
	}

	p.NominalX(types...)
	p.Legend.Top = true

	return &Chart{Title: "Gender Distribution by Diabetes Type", plot: p}, nil
}

func sortedNames(users map[string]models.UserProfile) []string {
	names := make([]string, 0, len(users))
	for name := range users {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// groupByType buckets profiles by diabetes type, skipping profiles without
// one, and returns the type names sorted.
func groupByType(users map[string]models.UserProfile) ([]string, map[string][]models.UserProfile) {
	byType := map[string][]models.UserProfile{}
	for _, profile := range users {
		if profile.DiabetesType == "" {
			continue
		}
		byType[profile.DiabetesType] = append(byType[profile.DiabetesType], profile)
	}

	types := make([]string, 0, len(byType))
	for dtype := range byType {
		types = append(types, dtype)
	}
	sort.Strings(types)
	return types, byType
}
