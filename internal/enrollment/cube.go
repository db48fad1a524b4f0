package enrollment

import (
	"errors"
	"fmt"
)

const (
	NumYears   = 10
	NumSchools = 20
	NumGrades  = 3

	FirstYear  = 2013
	LastYear   = FirstYear + NumYears - 1
	FirstGrade = 10
	LastGrade  = FirstGrade + NumGrades - 1

	// TableSize is the number of values in one yearly table.
	TableSize = NumSchools * NumGrades
)

// ErrShape is returned when input tables do not fit the cube.
var ErrShape = errors.New("enrollment data has the wrong shape")

// Cube holds enrollment counts indexed by year, school and grade.
// Axis 0 is the year index (0 is 2013), axis 1 the school index, axis 2 the
// grade index (0 is grade 10).
type Cube struct {
	cells [NumYears][NumSchools][NumGrades]Count
}

// Record is one (year, school) row of grade counts.
type Record struct {
	Year   int // calendar year, e.g. 2013
	School int // directory index
	Counts [NumGrades]Count
}

// Load builds a cube from yearly tables. Each table holds NumSchools rows of
// NumGrades values, flattened row-major by school then grade.
func Load(tables [][]float64) (*Cube, error) {
	if len(tables) != NumYears {
		return nil, fmt.Errorf("%w: got %d yearly tables, want %d", ErrShape, len(tables), NumYears)
	}
	c := &Cube{}
	for y, table := range tables {
		if len(table) != TableSize {
			return nil, fmt.Errorf("%w: table for %d has %d values, want %d", ErrShape, YearAt(y), len(table), TableSize)
		}
		for i, raw := range table {
			c.cells[y][i/NumGrades][i%NumGrades] = FromRaw(raw)
		}
	}
	return c, nil
}

// LoadDefault builds the cube from the compiled-in tables.
func LoadDefault() (*Cube, error) {
	return Load(DefaultTables())
}

// FromRecords builds a cube from per-row records. Cells without a record are
// missing; a later record for the same year and school replaces an earlier one.
func FromRecords(records []Record) (*Cube, error) {
	c := &Cube{}
	for _, r := range records {
		y, ok := YearIndex(r.Year)
		if !ok {
			return nil, fmt.Errorf("%w: year %d outside %d-%d", ErrShape, r.Year, FirstYear, LastYear)
		}
		if r.School < 0 || r.School >= NumSchools {
			return nil, fmt.Errorf("%w: school index %d outside 0-%d", ErrShape, r.School, NumSchools-1)
		}
		c.cells[y][r.School] = r.Counts
	}
	return c, nil
}

// Shape returns the cube dimensions.
func (c *Cube) Shape() []int { return []int{NumYears, NumSchools, NumGrades} }

// NDim returns the number of axes.
func (c *Cube) NDim() int { return len(c.Shape()) }

// At returns a single cell by year, school and grade index.
func (c *Cube) At(year, school, grade int) Count {
	return c.cells[year][school][grade]
}

// Series returns one count per year for a school and grade index.
func (c *Cube) Series(school, grade int) []Count {
	out := make([]Count, NumYears)
	for y := range c.cells {
		out[y] = c.cells[y][school][grade]
	}
	return out
}

// SchoolYear returns the grade counts of a school in one year.
func (c *Cube) SchoolYear(year, school int) []Count {
	row := c.cells[year][school]
	return row[:]
}

// School returns every (year, grade) cell of a school.
func (c *Cube) School(school int) []Count {
	out := make([]Count, 0, NumYears*NumGrades)
	for y := range c.cells {
		out = append(out, c.cells[y][school][:]...)
	}
	return out
}

// Year returns every (school, grade) cell of a year.
func (c *Cube) Year(year int) []Count {
	out := make([]Count, 0, TableSize)
	for s := range c.cells[year] {
		out = append(out, c.cells[year][s][:]...)
	}
	return out
}

// YearGrade returns one count per school for a year and grade index.
func (c *Cube) YearGrade(year, grade int) []Count {
	out := make([]Count, NumSchools)
	for s := range c.cells[year] {
		out[s] = c.cells[year][s][grade]
	}
	return out
}

// All returns every cell of the cube.
func (c *Cube) All() []Count {
	out := make([]Count, 0, NumYears*TableSize)
	for y := range c.cells {
		out = append(out, c.Year(y)...)
	}
	return out
}

// YearAt maps a year index to its calendar year.
func YearAt(index int) int { return FirstYear + index }

// YearIndex maps a calendar year to its index.
func YearIndex(year int) (int, bool) {
	i := year - FirstYear
	return i, i >= 0 && i < NumYears
}

// GradeIndex maps a grade (10-12) to its index.
func GradeIndex(grade int) (int, bool) {
	i := grade - FirstGrade
	return i, i >= 0 && i < NumGrades
}

// Years lists the calendar years covered by the cube.
func Years() []int {
	out := make([]int, NumYears)
	for i := range out {
		out[i] = YearAt(i)
	}
	return out
}
