package analysis

import (
	"errors"
	"fmt"

	"github.com/user/school_stats/internal/enrollment"
	"github.com/user/school_stats/internal/parser"
)

var (
	ErrUnknownSchool = errors.New("unknown school")
	ErrInvalidGrade  = errors.New("grade must be between 10 and 12")
)

// Analyzer answers enrollment queries over a cube and its school directory.
type Analyzer struct {
	cube *enrollment.Cube
	dir  *parser.SchoolDirectory
}

// NewAnalyzer pairs a cube with a directory. Every school row of the cube
// must have exactly one directory entry.
func NewAnalyzer(cube *enrollment.Cube, dir *parser.SchoolDirectory) (*Analyzer, error) {
	if cube == nil || dir == nil {
		return nil, fmt.Errorf("cube and directory are required")
	}
	if dir.Len() != enrollment.NumSchools {
		return nil, fmt.Errorf("directory lists %d schools, enrollment data has %d", dir.Len(), enrollment.NumSchools)
	}
	return &Analyzer{cube: cube, dir: dir}, nil
}

func (a *Analyzer) Cube() *enrollment.Cube { return a.cube }

func (a *Analyzer) Directory() *parser.SchoolDirectory { return a.dir }

func (a *Analyzer) school(name string) (parser.School, error) {
	s, ok := a.dir.Lookup(name)
	if !ok {
		return parser.School{}, fmt.Errorf("%w: %q", ErrUnknownSchool, name)
	}
	return s, nil
}

// Enrollment returns the yearly counts for one grade of a school, 2013 first.
// Missing counts are kept in place.
func (a *Analyzer) Enrollment(grade int, name string) ([]enrollment.Count, error) {
	g, ok := enrollment.GradeIndex(grade)
	if !ok {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidGrade, grade)
	}
	s, err := a.school(name)
	if err != nil {
		return nil, err
	}
	return a.cube.Series(s.Index, g), nil
}

// GradeMean divides the sum of a grade's present yearly counts by how many are
// present, rounding down.
func (a *Analyzer) GradeMean(grade int, name string) (enrollment.Count, error) {
	series, err := a.Enrollment(grade, name)
	if err != nil {
		return enrollment.Missing, err
	}
	return enrollment.FloorMean(series), nil
}

// SchoolStatistics reduces every (year, grade) cell of a school.
func (a *Analyzer) SchoolStatistics(name string) (*SchoolStatistics, error) {
	s, err := a.school(name)
	if err != nil {
		return nil, err
	}
	cells := a.cube.School(s.Index)
	stats := &SchoolStatistics{
		Highest:      enrollment.Max(cells),
		Lowest:       enrollment.Min(cells),
		TotalPerYear: make([]int, enrollment.NumYears),
	}
	for y := 0; y < enrollment.NumYears; y++ {
		stats.TotalPerYear[y] = int(enrollment.Sum(a.cube.SchoolYear(y, s.Index)))
	}
	return stats, nil
}

// EnrollmentOver500 collects a school's counts above OverThreshold and
// reports their median.
func (a *Analyzer) EnrollmentOver500(name string) (Over500Result, error) {
	s, err := a.school(name)
	if err != nil {
		return Over500Result{}, err
	}
	over := enrollment.Filter(a.cube.School(s.Index), func(v float64) bool { return v > OverThreshold })
	if len(over) == 0 {
		return Over500Result{}, nil
	}
	return Over500Result{
		Found:  true,
		Values: over,
		Median: enrollment.Median(over).Int(),
	}, nil
}

// GeneralStatistics reduces across all schools.
func (a *Analyzer) GeneralStatistics() *GeneralStatistics {
	last := enrollment.NumYears - 1
	grade12 := enrollment.NumGrades - 1
	all := a.cube.All()
	return &GeneralStatistics{
		MeanFirstYear:   enrollment.Mean(a.cube.Year(0)),
		MeanLastYear:    enrollment.Mean(a.cube.Year(last)),
		GraduatingClass: int(enrollment.Sum(a.cube.YearGrade(last, grade12))),
		Highest:         enrollment.Max(all),
		Lowest:          enrollment.Min(all),
	}
}

// Summarize runs every per-school query for the report.
func (a *Analyzer) Summarize(name string) (*SchoolSummary, error) {
	s, err := a.school(name)
	if err != nil {
		return nil, err
	}
	sum := &SchoolSummary{Name: s.Name, Code: s.Code, Index: s.Index}
	for grade := enrollment.FirstGrade; grade <= enrollment.LastGrade; grade++ {
		mean, err := a.GradeMean(grade, name)
		if err != nil {
			return nil, err
		}
		sum.GradeMeans = append(sum.GradeMeans, GradeMean{Grade: grade, Mean: mean})
	}
	if sum.Stats, err = a.SchoolStatistics(name); err != nil {
		return nil, err
	}
	if sum.Over500, err = a.EnrollmentOver500(name); err != nil {
		return nil, err
	}
	return sum, nil
}

// YearlyTotals returns, per school in index order, the total enrollment of
// each year. A year with no present counts is missing.
func (a *Analyzer) YearlyTotals() [][]enrollment.Count {
	out := make([][]enrollment.Count, enrollment.NumSchools)
	for s := range out {
		out[s] = make([]enrollment.Count, enrollment.NumYears)
		for y := range out[s] {
			out[s][y] = enrollment.Total(a.cube.SchoolYear(y, s))
		}
	}
	return out
}
