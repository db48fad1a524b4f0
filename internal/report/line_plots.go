package report

import (
	"bytes"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/user/school_stats/internal/analysis"
	"github.com/user/school_stats/internal/enrollment"
)

var gradeColors = []color.Color{
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 255}, // Blue
	color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 255}, // Orange
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 255}, // Green
}

// segments splits a yearly series into runs of present values so that
// missing years leave a gap in the line.
func segments(series []enrollment.Count) []plotter.XYs {
	var out []plotter.XYs
	var cur plotter.XYs
	for i, c := range series {
		v, ok := c.Value()
		if !ok {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: float64(enrollment.YearAt(i)), Y: v})
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

func yearTicks() []plot.Tick {
	ticks := make([]plot.Tick, 0, enrollment.NumYears)
	for _, y := range enrollment.Years() {
		ticks = append(ticks, plot.Tick{Value: float64(y), Label: fmt.Sprintf("%d", y)})
	}
	return ticks
}

// CreateEnrollmentLinePlot draws one line per grade of a school's yearly
// enrollment, with the over-500 threshold dashed. It returns PNG bytes.
func CreateEnrollmentLinePlot(a *analysis.Analyzer, name string) ([]byte, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Enrollment by Grade: %s", name)
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Students"
	p.X.Min = enrollment.FirstYear - 0.5
	p.X.Max = enrollment.LastYear + 0.5
	p.Y.Min = 0
	p.X.Tick.Marker = plot.ConstantTicks(yearTicks())
	p.Add(plotter.NewGrid())

	linesPlotted := false
	for g := 0; g < enrollment.NumGrades; g++ {
		grade := enrollment.FirstGrade + g
		series, err := a.Enrollment(grade, name)
		if err != nil {
			return nil, err
		}
		for i, pts := range segments(series) {
			line, err := plotter.NewLine(pts)
			if err != nil {
				return nil, fmt.Errorf("failed to create line for grade %d: %w", grade, err)
			}
			line.Color = gradeColors[g%len(gradeColors)]
			line.Width = vg.Points(1.5)
			p.Add(line)
			if i == 0 {
				p.Legend.Add(fmt.Sprintf("Grade %d", grade), line)
			}
			linesPlotted = true
		}
	}
	if !linesPlotted {
		return nil, fmt.Errorf("no enrollment data to plot for %s", name)
	}

	threshold, err := plotter.NewLine(plotter.XYs{
		{X: enrollment.FirstYear - 0.5, Y: analysis.OverThreshold},
		{X: enrollment.LastYear + 0.5, Y: analysis.OverThreshold},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create threshold line: %w", err)
	}
	threshold.Color = color.RGBA{R: 255, A: 255}
	threshold.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
	p.Add(threshold)
	p.Legend.Add(fmt.Sprintf("%d students", analysis.OverThreshold), threshold)

	p.Legend.Top = true
	p.Legend.XOffs = vg.Points(-10)

	return renderPNG(p, vg.Points(800), vg.Points(400))
}

func renderPNG(p *plot.Plot, w, h vg.Length) ([]byte, error) {
	writer, err := p.WriterTo(w, h, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create plot writer: %w", err)
	}
	buf := new(bytes.Buffer)
	if _, err := writer.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to write plot to buffer: %w", err)
	}
	return buf.Bytes(), nil
}
