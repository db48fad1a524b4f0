package analysis

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/school_stats/internal/enrollment"
	"github.com/user/school_stats/internal/parser"
)

var centralGrade10 = []float64{110, 105, 98, 120, 130, 125, 115, 100, 95, 90}

// fixture builds a cube where school 0 is "Central Memorial" with known
// grade 10 counts, school 1 has large grades with a few gaps, school 2 has
// no data at all, and every other school holds small counts.
func fixture(t *testing.T) *Analyzer {
	t.Helper()
	dir := parser.NewSchoolDirectory()
	dir.Add("Central Memorial", "0348")
	dir.Add("Big School", "9000")
	dir.Add("Empty School", "9001")
	for i := 3; i < enrollment.NumSchools; i++ {
		dir.Add(fmt.Sprintf("School %d", i), fmt.Sprintf("%04d", 9000+i))
	}

	tables := make([][]float64, enrollment.NumYears)
	for y := range tables {
		table := make([]float64, enrollment.TableSize)
		// Central Memorial
		table[0] = centralGrade10[y]
		table[1] = 101
		table[2] = 99
		// Big School
		table[3] = 600 + float64(y)
		table[4] = 480
		table[5] = 520
		// Empty School
		table[6], table[7], table[8] = -1, -1, -1
		for s := 3; s < enrollment.NumSchools; s++ {
			for g := 0; g < enrollment.NumGrades; g++ {
				table[s*enrollment.NumGrades+g] = float64(10 + s + g)
			}
		}
		tables[y] = table
	}
	tables[2][1] = -1 // Central Memorial grade 11, 2015
	tables[9][5] = -1 // Big School grade 12, 2022

	cube, err := enrollment.Load(tables)
	require.NoError(t, err)
	a, err := NewAnalyzer(cube, dir)
	require.NoError(t, err)
	return a
}

func floats(cs []enrollment.Count) []float64 {
	out := make([]float64, len(cs))
	for i, c := range cs {
		v, ok := c.Value()
		if !ok {
			v = -1
		}
		out[i] = v
	}
	return out
}

func TestEnrollmentReturnsYearOrderedSeries(t *testing.T) {
	a := fixture(t)
	got, err := a.Enrollment(10, "Central Memorial")
	require.NoError(t, err)
	if diff := cmp.Diff(centralGrade10, floats(got)); diff != "" {
		t.Errorf("Enrollment mismatch (-want +got):\n%s", diff)
	}

	got, err = a.Enrollment(11, "Central Memorial")
	require.NoError(t, err)
	assert.False(t, got[2].Present(), "missing count must be preserved")
}

func TestEnrollmentErrors(t *testing.T) {
	a := fixture(t)
	_, err := a.Enrollment(9, "Central Memorial")
	assert.True(t, errors.Is(err, ErrInvalidGrade))
	_, err = a.Enrollment(10, "Nowhere")
	assert.True(t, errors.Is(err, ErrUnknownSchool))
	_, err = a.SchoolStatistics("Nowhere")
	assert.ErrorIs(t, err, ErrUnknownSchool)
	_, err = a.EnrollmentOver500("Nowhere")
	assert.ErrorIs(t, err, ErrUnknownSchool)
	_, err = a.Summarize("Nowhere")
	assert.ErrorIs(t, err, ErrUnknownSchool)
}

func TestNewAnalyzerRequiresFullDirectory(t *testing.T) {
	cube, err := enrollment.LoadDefault()
	require.NoError(t, err)
	dir := parser.NewSchoolDirectory()
	dir.Add("Only One", "1")
	_, err = NewAnalyzer(cube, dir)
	assert.Error(t, err)
	_, err = NewAnalyzer(nil, dir)
	assert.Error(t, err)
}

func TestGradeMeanUsesFloorDivision(t *testing.T) {
	a := fixture(t)

	// 1088 / 10 = 108.8
	m, err := a.GradeMean(10, "Central Memorial")
	require.NoError(t, err)
	assert.Equal(t, 108, m.Int())

	// Nine present values of 101.
	m, err = a.GradeMean(11, "Central Memorial")
	require.NoError(t, err)
	assert.Equal(t, 101, m.Int())

	m, err = a.GradeMean(12, "Empty School")
	require.NoError(t, err)
	assert.False(t, m.Present())
}

func TestSchoolStatistics(t *testing.T) {
	a := fixture(t)
	stats, err := a.SchoolStatistics("Central Memorial")
	require.NoError(t, err)

	assert.Equal(t, enrollment.Of(130), stats.Highest)
	assert.Equal(t, enrollment.Of(90), stats.Lowest)
	assert.Equal(t, 110+101+99, stats.TotalPerYear[0])
	assert.Equal(t, 98+99, stats.TotalPerYear[2])

	empty, err := a.SchoolStatistics("Empty School")
	require.NoError(t, err)
	assert.False(t, empty.Highest.Present())
	assert.False(t, empty.Lowest.Present())
	assert.Equal(t, make([]int, enrollment.NumYears), empty.TotalPerYear)
	assert.Equal(t, 0, empty.TenYearTotal())
}

func TestTenYearTotalAndMean(t *testing.T) {
	s := &SchoolStatistics{TotalPerYear: []int{10, 10, 10, 10, 10, 10, 10, 10, 10, 19}}
	assert.Equal(t, 109, s.TenYearTotal())
	assert.Equal(t, 10, s.TenYearMean())
	assert.Equal(t, 0, (&SchoolStatistics{}).TenYearMean())
}

// The per-year total equals the sum of the three grade series for that year.
func TestYearTotalsMatchGradeSeries(t *testing.T) {
	for name, a := range map[string]*Analyzer{"fixture": fixture(t), "default": defaultAnalyzer(t)} {
		t.Run(name, func(t *testing.T) {
			for _, school := range a.Directory().Schools() {
				stats, err := a.SchoolStatistics(school.Name)
				require.NoError(t, err)
				for y := 0; y < enrollment.NumYears; y++ {
					var sum float64
					for grade := enrollment.FirstGrade; grade <= enrollment.LastGrade; grade++ {
						series, err := a.Enrollment(grade, school.Name)
						require.NoError(t, err)
						if v, ok := series[y].Value(); ok {
							sum += v
						}
					}
					assert.Equal(t, int(sum), stats.TotalPerYear[y], "%s %d", school.Name, enrollment.YearAt(y))
				}
			}
		})
	}
}

func TestEnrollmentOver500(t *testing.T) {
	a := fixture(t)

	none, err := a.EnrollmentOver500("Central Memorial")
	require.NoError(t, err)
	assert.False(t, none.Found)
	assert.Empty(t, none.Values)

	// Grade 10 values 600..609 and nine grade 12 values of 520; 480 is excluded.
	big, err := a.EnrollmentOver500("Big School")
	require.NoError(t, err)
	require.True(t, big.Found)
	assert.Len(t, big.Values, 19)
	assert.Equal(t, 600, big.Median)
}

func TestEnrollmentOver500FoundIffCellAbove500(t *testing.T) {
	a := defaultAnalyzer(t)
	for _, school := range a.Directory().Schools() {
		res, err := a.EnrollmentOver500(school.Name)
		require.NoError(t, err)
		cells := a.Cube().School(school.Index)
		maxVal, ok := enrollment.Max(cells).Value()
		above := ok && maxVal > OverThreshold
		assert.Equal(t, above, res.Found, school.Name)
	}
}

func TestGeneralStatistics(t *testing.T) {
	a := fixture(t)
	g := a.GeneralStatistics()

	assert.Equal(t, enrollment.Of(609), g.Highest)
	assert.Equal(t, enrollment.Of(13), g.Lowest)
	// Grade 12 in 2022: Central 99, Big missing, Empty missing, schools 3..19 hold 12+s.
	want := 99
	for s := 3; s < enrollment.NumSchools; s++ {
		want += 12 + s
	}
	assert.Equal(t, want, g.GraduatingClass)
	assert.True(t, g.MeanFirstYear.Present())
	assert.True(t, g.MeanLastYear.Present())
}

func TestGlobalExtremesMatchPerSchoolExtremes(t *testing.T) {
	a := defaultAnalyzer(t)
	g := a.GeneralStatistics()

	var highs, lows []enrollment.Count
	for _, school := range a.Directory().Schools() {
		stats, err := a.SchoolStatistics(school.Name)
		require.NoError(t, err)
		highs = append(highs, stats.Highest)
		lows = append(lows, stats.Lowest)
	}
	assert.Equal(t, enrollment.Max(highs), g.Highest)
	assert.Equal(t, enrollment.Min(lows), g.Lowest)
}

func TestSummarize(t *testing.T) {
	a := fixture(t)
	sum, err := a.Summarize("Central Memorial")
	require.NoError(t, err)

	assert.Equal(t, "0348", sum.Code)
	assert.Equal(t, 0, sum.Index)
	require.Len(t, sum.GradeMeans, 3)
	assert.Equal(t, GradeMean{Grade: 12, Mean: enrollment.Of(99)}, sum.GradeMeans[2])
	assert.NotNil(t, sum.Stats)
	assert.False(t, sum.Over500.Found)
}

func TestYearlyTotals(t *testing.T) {
	a := fixture(t)
	totals := a.YearlyTotals()
	require.Len(t, totals, enrollment.NumSchools)
	assert.Equal(t, enrollment.Of(310), totals[0][0])
	assert.False(t, totals[2][4].Present())
}

func defaultAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	cube, err := enrollment.LoadDefault()
	require.NoError(t, err)
	dir := parser.NewSchoolDirectory()
	for i := 0; i < enrollment.NumSchools; i++ {
		dir.Add(fmt.Sprintf("School %02d", i), fmt.Sprintf("%04d", i))
	}
	a, err := NewAnalyzer(cube, dir)
	require.NoError(t, err)
	return a
}
