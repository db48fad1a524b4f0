package analysis

import "github.com/user/school_stats/internal/enrollment"

// OverThreshold is the enrollment level checked by EnrollmentOver500.
const OverThreshold = 500

// SchoolStatistics holds the reductions over one school's cells.
type SchoolStatistics struct {
	Highest      enrollment.Count // largest single-grade enrollment in any year
	Lowest       enrollment.Count
	TotalPerYear []int // sum of grades per year, 2013 first
}

// TenYearTotal sums the yearly totals.
func (s *SchoolStatistics) TenYearTotal() int {
	total := 0
	for _, v := range s.TotalPerYear {
		total += v
	}
	return total
}

// TenYearMean is the ten year total divided by the number of years, rounded down.
func (s *SchoolStatistics) TenYearMean() int {
	if len(s.TotalPerYear) == 0 {
		return 0
	}
	return s.TenYearTotal() / len(s.TotalPerYear)
}

// Over500Result reports cells above OverThreshold for one school.
type Over500Result struct {
	Found  bool
	Values []enrollment.Count
	Median int // truncated median of Values; zero when nothing was found
}

// GeneralStatistics holds reductions across every school.
type GeneralStatistics struct {
	MeanFirstYear   enrollment.Count // mean of 2013 cells
	MeanLastYear    enrollment.Count // mean of 2022 cells
	GraduatingClass int              // grade 12 in 2022 across schools
	Highest         enrollment.Count
	Lowest          enrollment.Count
}

// GradeMean pairs a grade with its floor mean across years.
type GradeMean struct {
	Grade int
	Mean  enrollment.Count
}

// SchoolSummary gathers everything reported for a requested school.
type SchoolSummary struct {
	Name       string
	Code       string
	Index      int
	GradeMeans []GradeMean
	Stats      *SchoolStatistics
	Over500    Over500Result
}
