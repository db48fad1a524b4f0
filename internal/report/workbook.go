package report

import (
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/user/school_stats/internal/analysis"
	"github.com/user/school_stats/internal/enrollment"
)

const (
	SheetDirectory  = "Directory"
	SheetEnrollment = "Enrollment"
	SheetSummary    = "Summary"
)

// setRow writes values across a row starting at column A.
func setRow(f *excelize.File, sheet string, row int, values ...interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// countValue returns the integer count, or nil so the cell stays blank.
func countValue(c enrollment.Count) interface{} {
	if !c.Present() {
		return nil
	}
	return c.Int()
}

func writeHeader(f *excelize.File, sheet string, headers []string, width float64) error {
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}
	return nil
}

func buildWorkbook(a *analysis.Analyzer) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetDirectory); err != nil {
		f.Close()
		return nil, err
	}
	for _, name := range []string{SheetEnrollment, SheetSummary} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, err
		}
	}
	if err := fillWorkbook(f, a); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func fillWorkbook(f *excelize.File, a *analysis.Analyzer) error {
	schools := a.Directory().Schools()
	cube := a.Cube()

	if err := writeHeader(f, SheetDirectory, []string{"Index", "School Code", "School Name"}, 28); err != nil {
		return err
	}
	for i, s := range schools {
		if err := setRow(f, SheetDirectory, i+2, s.Index, s.Code, s.Name); err != nil {
			return err
		}
	}

	enrollHeaders := []string{"Year", "School Code", "School Name"}
	for g := enrollment.FirstGrade; g <= enrollment.LastGrade; g++ {
		enrollHeaders = append(enrollHeaders, fmt.Sprintf("Grade %d", g))
	}
	if err := writeHeader(f, SheetEnrollment, enrollHeaders, 20); err != nil {
		return err
	}
	row := 2
	for y := 0; y < enrollment.NumYears; y++ {
		for _, s := range schools {
			values := []interface{}{enrollment.YearAt(y), s.Code, s.Name}
			for g := 0; g < enrollment.NumGrades; g++ {
				values = append(values, countValue(cube.At(y, s.Index, g)))
			}
			if err := setRow(f, SheetEnrollment, row, values...); err != nil {
				return err
			}
			row++
		}
	}

	if err := writeHeader(f, SheetSummary, []string{"School Code", "School Name", "Ten Year Total", "Highest", "Lowest"}, 22); err != nil {
		return err
	}
	row = 2
	for _, s := range schools {
		stats, err := a.SchoolStatistics(s.Name)
		if err != nil {
			return err
		}
		if err := setRow(f, SheetSummary, row, s.Code, s.Name, stats.TenYearTotal(),
			countValue(stats.Highest), countValue(stats.Lowest)); err != nil {
			return err
		}
		row++
	}

	general := a.GeneralStatistics()
	row++
	generalRows := [][]interface{}{
		{fmt.Sprintf("Mean enrollment in %d", enrollment.FirstYear), countValue(general.MeanFirstYear)},
		{fmt.Sprintf("Mean enrollment in %d", enrollment.LastYear), countValue(general.MeanLastYear)},
		{fmt.Sprintf("Total graduating class of %d", enrollment.LastYear), general.GraduatingClass},
		{"Highest enrollment for a single grade", countValue(general.Highest)},
		{"Lowest enrollment for a single grade", countValue(general.Lowest)},
	}
	for _, values := range generalRows {
		if err := setRow(f, SheetSummary, row, values...); err != nil {
			return err
		}
		row++
	}
	return nil
}

// ExportWorkbook saves the directory, the full enrollment table and a
// per-school summary to an .xlsx file.
func ExportWorkbook(path string, a *analysis.Analyzer) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	if err := WriteWorkbook(file, a); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

// WriteWorkbook streams the workbook to w.
func WriteWorkbook(w io.Writer, a *analysis.Analyzer) error {
	f, err := buildWorkbook(a)
	if err != nil {
		return fmt.Errorf("failed to build workbook: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
