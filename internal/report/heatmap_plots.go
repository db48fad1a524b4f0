package report

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/user/school_stats/internal/analysis"
	"github.com/user/school_stats/internal/enrollment"
)

// totalsGrid exposes yearly totals as a plotter.GridXYZ: columns are years,
// rows are schools.
type totalsGrid struct {
	totals [][]enrollment.Count
}

func (g totalsGrid) Dims() (c, r int) { return enrollment.NumYears, len(g.totals) }

func (g totalsGrid) Z(c, r int) float64 {
	v, ok := g.totals[r][c].Value()
	if !ok {
		return math.NaN()
	}
	return v
}

func (g totalsGrid) X(c int) float64 { return float64(enrollment.YearAt(c)) }

func (g totalsGrid) Y(r int) float64 { return float64(r) }

// CreateEnrollmentHeatmap shades every school's total enrollment per year.
// Years without data are drawn grey. It returns PNG bytes.
func CreateEnrollmentHeatmap(a *analysis.Analyzer, title string) ([]byte, error) {
	totals := a.YearlyTotals()
	if len(totals) == 0 {
		return nil, fmt.Errorf("no schools to plot heatmap")
	}

	var all []enrollment.Count
	for _, row := range totals {
		all = append(all, row...)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "School Code"

	schools := a.Directory().Schools()
	yTicks := make([]plot.Tick, len(schools))
	for i, s := range schools {
		yTicks[i] = plot.Tick{Value: float64(i), Label: s.Code}
	}
	p.Y.Tick.Marker = plot.ConstantTicks(yTicks)
	p.Y.Min = -0.5
	p.Y.Max = float64(len(schools)) - 0.5
	p.X.Tick.Marker = plot.ConstantTicks(yearTicks())
	p.X.Min = enrollment.FirstYear - 0.5
	p.X.Max = enrollment.LastYear + 0.5

	hm := plotter.NewHeatMap(totalsGrid{totals: totals}, palette.Heat(12, 1))
	hm.NaN = color.Gray{Y: 200}
	lo, okLo := enrollment.Min(all).Value()
	hi, okHi := enrollment.Max(all).Value()
	if !okLo || !okHi {
		lo, hi = 0, 1
	}
	if lo == hi {
		hi = lo + 1
	}
	hm.Min = lo
	hm.Max = hi
	p.Add(hm)

	return renderPNG(p, vg.Points(900), vg.Points(600))
}
