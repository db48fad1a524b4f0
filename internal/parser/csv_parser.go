package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/user/school_stats/internal/enrollment"
)

// ErrMissingColumn is returned when a required header is absent.
var ErrMissingColumn = errors.New("required CSV column not found")

func newReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	return reader
}

// readHeader returns the position of each named column in the header row.
func readHeader(reader *csv.Reader, required ...string) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("CSV data is empty")
		}
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}
	return cols, nil
}

// rawField returns the cell unchanged, or "" for a short row.
func rawField(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

func field(row []string, idx int) string {
	return strings.TrimSpace(rawField(row, idx))
}

// ParseSchoolDirectory reads a CSV file with "School Name" and "School Code"
// columns and builds the school directory.
func ParseSchoolDirectory(filepath string) (*SchoolDirectory, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	return ReadSchoolDirectory(file)
}

// ReadSchoolDirectory builds a directory from CSV data. Names and codes are
// kept exactly as written. The first row seen for a school name fixes its code
// and index; later rows for that name are ignored.
func ReadSchoolDirectory(r io.Reader) (*SchoolDirectory, error) {
	reader := newReader(r)
	cols, err := readHeader(reader, ColumnSchoolName, ColumnSchoolCode)
	if err != nil {
		return nil, err
	}
	nameIdx, codeIdx := cols[ColumnSchoolName], cols[ColumnSchoolCode]

	dir := NewSchoolDirectory()
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV data: %w", err)
		}
		dir.Add(rawField(row, nameIdx), rawField(row, codeIdx))
	}
	return dir, nil
}

// ParseEnrollmentRecords reads the per-year grade columns of the school CSV.
// Rows naming schools outside dir, or with unparseable values, are reported in
// ParseErrors and skipped or left missing.
func ParseEnrollmentRecords(filepath string, dir *SchoolDirectory) (*ParsedEnrollment, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	return ReadEnrollmentRecords(file, dir)
}

// ReadEnrollmentRecords is ParseEnrollmentRecords over an io.Reader.
func ReadEnrollmentRecords(r io.Reader, dir *SchoolDirectory) (*ParsedEnrollment, error) {
	reader := newReader(r)
	required := append([]string{ColumnSchoolYear, ColumnSchoolName}, GradeColumns...)
	cols, err := readHeader(reader, required...)
	if err != nil {
		return nil, err
	}

	parsed := &ParsedEnrollment{
		Records:     make([]EnrollmentRow, 0),
		ParseErrors: make([]string, 0),
	}
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV data: %w", err)
		}
		line++

		name := rawField(row, cols[ColumnSchoolName])
		school, ok := dir.Lookup(name)
		if !ok {
			parsed.ParseErrors = append(parsed.ParseErrors, fmt.Sprintf("line %d: unknown school %q, row skipped", line, name))
			continue
		}
		year, err := parseSchoolYear(field(row, cols[ColumnSchoolYear]))
		if err != nil {
			parsed.ParseErrors = append(parsed.ParseErrors, fmt.Sprintf("line %d: %v, row skipped", line, err))
			continue
		}

		rec := EnrollmentRow{Year: year, School: school}
		for g, col := range GradeColumns {
			raw := field(row, cols[col])
			if raw == "" {
				continue
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				parsed.ParseErrors = append(parsed.ParseErrors, fmt.Sprintf("line %d: %s value %q is not a number, treated as missing", line, col, raw))
				continue
			}
			rec.Counts[g] = enrollment.FromRaw(v)
		}
		parsed.Records = append(parsed.Records, rec)
	}
	return parsed, nil
}

// parseSchoolYear accepts "2013" or a span like "2012-2013" and returns the
// year the span ends in.
func parseSchoolYear(s string) (int, error) {
	if i := strings.LastIndex(s, "-"); i >= 0 {
		s = s[i+1:]
	}
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("could not read school year %q", s)
	}
	return year, nil
}

// CubeRecords flattens parsed rows for enrollment.FromRecords.
func (p *ParsedEnrollment) CubeRecords() []enrollment.Record {
	out := make([]enrollment.Record, len(p.Records))
	for i, r := range p.Records {
		out[i] = r.Record()
	}
	return out
}
