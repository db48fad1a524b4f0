package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/user/school_stats/internal/analysis"
	"github.com/user/school_stats/internal/enrollment"
)

const Title = "ENSF 692 School Enrollment Statistics"

var headingColor = color.New(color.Bold)

// ConsoleReport writes the plain-text statistics report.
type ConsoleReport struct {
	out io.Writer
	err error
}

func NewConsoleReport(out io.Writer) *ConsoleReport {
	return &ConsoleReport{out: out}
}

// printf writes a line and remembers the first write error.
func (r *ConsoleReport) printf(format string, args ...interface{}) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.out, format+"\n", args...)
}

func (r *ConsoleReport) heading(text string) {
	r.printf("\n%s\n", headingColor.Sprint(text))
}

// WriteHeader prints the title and the shape of the cube.
func (r *ConsoleReport) WriteHeader(cube *enrollment.Cube) error {
	dims := make([]string, 0, cube.NDim())
	for _, d := range cube.Shape() {
		dims = append(dims, strconv.Itoa(d))
	}
	r.printf("%s", Title)
	r.printf("Shape of full data array: (%s)", strings.Join(dims, ", "))
	r.printf("Dimensions of full data array: %d", cube.NDim())
	return r.err
}

// WriteSchool prints the requested school's statistics.
func (r *ConsoleReport) WriteSchool(s *analysis.SchoolSummary) error {
	r.heading("***Requested School Statistics***")
	r.printf("School Name: %s, School Code: %s", s.Name, s.Code)
	for _, gm := range s.GradeMeans {
		r.printf("Mean enrollment for Grade %d: %s", gm.Grade, gm.Mean)
	}
	r.printf("Highest enrollment for a single grade: %s", s.Stats.Highest)
	r.printf("Lowest enrollment for a single grade: %s", s.Stats.Lowest)
	for i, total := range s.Stats.TotalPerYear {
		r.printf("Total enrollment for %d: %d", enrollment.YearAt(i), total)
	}
	r.printf("Total ten year enrollment: %d", s.Stats.TenYearTotal())
	r.printf("Mean total enrollment over 10 years: %d", s.Stats.TenYearMean())
	if s.Over500.Found {
		r.printf("For all enrollments over 500, the median value was: %d", s.Over500.Median)
	} else {
		r.printf("No enrollments over 500.")
	}
	return r.err
}

// WriteGeneral prints statistics across all schools.
func (r *ConsoleReport) WriteGeneral(g *analysis.GeneralStatistics) error {
	r.heading("***General Statistics for All Schools***")
	r.printf("Mean enrollment in %d: %s", enrollment.FirstYear, g.MeanFirstYear)
	r.printf("Mean enrollment in %d: %s", enrollment.LastYear, g.MeanLastYear)
	r.printf("Total graduating class of %d: %d", enrollment.LastYear, g.GraduatingClass)
	r.printf("Highest enrollment for a single grade: %s", g.Highest)
	r.printf("Lowest enrollment for a single grade: %s", g.Lowest)
	return r.err
}
