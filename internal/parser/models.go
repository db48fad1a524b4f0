package parser

import "github.com/user/school_stats/internal/enrollment"

// Column headers read from the school CSV.
const (
	ColumnSchoolYear = "School Year"
	ColumnSchoolName = "School Name"
	ColumnSchoolCode = "School Code"
)

// GradeColumns lists the enrollment columns for grades 10, 11 and 12.
var GradeColumns = []string{"Grade 10 Enrollment", "Grade 11 Enrollment", "Grade 12 Enrollment"}

// School is one directory entry.
type School struct {
	Name  string
	Code  string
	Index int // position along the school axis of the enrollment cube
}

// SchoolDirectory maps school names to codes and cube indices. Indices are
// assigned in first-seen order.
type SchoolDirectory struct {
	byName map[string]School
	order  []School
}

func NewSchoolDirectory() *SchoolDirectory {
	return &SchoolDirectory{
		byName: make(map[string]School),
		order:  make([]School, 0),
	}
}

// Add registers a school unless its name is already known. It reports
// whether a new entry was created.
func (d *SchoolDirectory) Add(name, code string) bool {
	if _, ok := d.byName[name]; ok {
		return false
	}
	s := School{Name: name, Code: code, Index: len(d.order)}
	d.byName[name] = s
	d.order = append(d.order, s)
	return true
}

// Lookup finds a school by exact name.
func (d *SchoolDirectory) Lookup(name string) (School, bool) {
	s, ok := d.byName[name]
	return s, ok
}

// LookupCode finds the first school registered with code.
func (d *SchoolDirectory) LookupCode(code string) (School, bool) {
	for _, s := range d.order {
		if s.Code == code {
			return s, true
		}
	}
	return School{}, false
}

// Match resolves user input against codes first, then names. Matching is
// exact and case-sensitive.
func (d *SchoolDirectory) Match(input string) (School, bool) {
	if s, ok := d.LookupCode(input); ok {
		return s, true
	}
	return d.Lookup(input)
}

// Schools returns the entries in index order.
func (d *SchoolDirectory) Schools() []School {
	out := make([]School, len(d.order))
	copy(out, d.order)
	return out
}

func (d *SchoolDirectory) Len() int { return len(d.order) }

// ParsedEnrollment holds enrollment rows read from the CSV together with any
// non-fatal problems found while reading them.
type ParsedEnrollment struct {
	Records     []EnrollmentRow
	ParseErrors []string
}

// EnrollmentRow is one CSV row resolved against the directory.
type EnrollmentRow struct {
	Year   int
	School School
	Counts [enrollment.NumGrades]enrollment.Count
}

// Record converts the row for cube construction.
func (r EnrollmentRow) Record() enrollment.Record {
	return enrollment.Record{Year: r.Year, School: r.School.Index, Counts: r.Counts}
}
