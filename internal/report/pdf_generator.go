package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/user/school_stats/internal/analysis"
	"github.com/user/school_stats/internal/enrollment"
)

const (
	inchToMm               = 25.4
	pdfPageWidthLandscape  = 11 * inchToMm // Letter landscape
	pdfPageHeightLandscape = 8.5 * inchToMm
	pdfMargin              = 0.5 * inchToMm
	pdfContentWidth        = pdfPageWidthLandscape - (2 * pdfMargin)
)

// Keys of the plot images passed to BuildPDFReport.
const (
	PlotGradeLines = "line_grades"
	PlotHeatmap    = "heatmap_totals"
)

// pdfStyler holds reusable styling and the flowing Y position.
type pdfStyler struct {
	pdf         *gofpdf.Fpdf
	styles      map[string]func()
	lineHeight  float64
	currentY    float64
	pageBottom  float64
	contentTopY float64
}

func newPDFStyler(pdf *gofpdf.Fpdf) *pdfStyler {
	s := &pdfStyler{
		pdf:         pdf,
		styles:      make(map[string]func()),
		lineHeight:  6,
		pageBottom:  pdfPageHeightLandscape - pdfMargin,
		contentTopY: pdfMargin,
	}
	s.currentY = s.contentTopY
	s.defineStyles()
	return s
}

func (s *pdfStyler) defineStyles() {
	s.styles["h1"] = func() {
		s.pdf.SetFont("Arial", "B", 16)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["h2"] = func() {
		s.pdf.SetFont("Arial", "B", 13)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["normal"] = func() {
		s.pdf.SetFont("Arial", "", 10)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableHeader"] = func() {
		s.pdf.SetFont("Arial", "B", 9)
		s.pdf.SetFillColor(200, 200, 200)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableCell"] = func() {
		s.pdf.SetFont("Arial", "", 9)
		s.pdf.SetTextColor(50, 50, 50)
	}
	s.styles["tableCellRed"] = func() { // over-500 cells
		s.pdf.SetFont("Arial", "B", 9)
		s.pdf.SetTextColor(200, 0, 0)
	}
}

func (s *pdfStyler) applyStyle(styleName string) {
	if fn, ok := s.styles[styleName]; ok {
		fn()
	} else {
		s.styles["normal"]()
	}
}

func (s *pdfStyler) newPage() {
	s.pdf.AddPage()
	s.currentY = s.contentTopY
}

func (s *pdfStyler) checkAddPage(neededHeight float64) {
	if s.currentY+neededHeight > s.pageBottom {
		s.newPage()
	}
}

func (s *pdfStyler) writeParagraph(text string, styleName string, align string) {
	s.applyStyle(styleName)
	s.checkAddPage(s.lineHeight)
	s.pdf.SetXY(pdfMargin, s.currentY)
	s.pdf.MultiCell(pdfContentWidth, s.lineHeight, text, "", align, false)
	s.currentY = s.pdf.GetY() + 1
}

func (s *pdfStyler) addSpacer(height float64) {
	s.checkAddPage(height)
	s.currentY += height
}

// writeTable draws a bordered table. highlight marks cells to draw in red.
func (s *pdfStyler) writeTable(headers []string, widthsRel []float64, rows [][]string, highlight func(row, col int) bool) {
	widths := make([]float64, len(widthsRel))
	for i, rel := range widthsRel {
		widths[i] = rel * pdfContentWidth
	}

	writeRow := func(cells []string, style func(col int) string, fill bool) {
		s.checkAddPage(s.lineHeight)
		x := pdfMargin
		for i, cell := range cells {
			s.applyStyle(style(i))
			s.pdf.SetXY(x, s.currentY)
			s.pdf.CellFormat(widths[i], s.lineHeight, cell, "1", 0, "C", fill, 0, "")
			x += widths[i]
		}
		s.currentY += s.lineHeight
	}

	s.checkAddPage(s.lineHeight * 2)
	writeRow(headers, func(int) string { return "tableHeader" }, true)
	for r, row := range rows {
		writeRow(row, func(c int) string {
			if highlight != nil && highlight(r, c) {
				return "tableCellRed"
			}
			return "tableCell"
		}, false)
	}
}

func (s *pdfStyler) addImage(imageBytes []byte, imageName string, width, height float64, caption string) {
	s.pdf.RegisterImageOptionsReader(imageName, gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(imageBytes))

	if width > pdfContentWidth {
		ratio := pdfContentWidth / width
		width = pdfContentWidth
		height *= ratio
	}
	captionHeight := 0.0
	if caption != "" {
		captionHeight = s.lineHeight + 1
	}
	s.checkAddPage(height + captionHeight)

	x := pdfMargin + (pdfContentWidth-width)/2
	s.pdf.ImageOptions(imageName, x, s.currentY, width, height, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	s.currentY += height

	if caption != "" {
		s.addSpacer(1)
		s.writeParagraph(caption, "normal", "C")
	}
	s.addSpacer(2)
}

func countCell(c enrollment.Count) string { return c.String() }

// buildPDF lays out the school report.
func buildPDF(sum *analysis.SchoolSummary, general *analysis.GeneralStatistics, plotImages map[string][]byte) *gofpdf.Fpdf {
	pdf := gofpdf.New("L", "mm", "Letter", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	pdf.SetTitle(fmt.Sprintf("School Enrollment Report: %s", sum.Name), false)
	pdf.AddPage()

	styler := newPDFStyler(pdf)

	styler.writeParagraph(fmt.Sprintf("School Enrollment Report: %s (%s)", sum.Name, sum.Code), "h1", "C")
	styler.addSpacer(3)
	styler.writeParagraph(fmt.Sprintf("Enrollment %d-%d, grades %d-%d.",
		enrollment.FirstYear, enrollment.LastYear, enrollment.FirstGrade, enrollment.LastGrade), "normal", "C")
	styler.addSpacer(4)

	styler.writeParagraph("Mean Enrollment by Grade", "h2", "L")
	var gradeRows [][]string
	for _, gm := range sum.GradeMeans {
		gradeRows = append(gradeRows, []string{fmt.Sprintf("Grade %d", gm.Grade), countCell(gm.Mean)})
	}
	styler.writeTable([]string{"Grade", "Mean Enrollment"}, []float64{0.3, 0.3}, gradeRows, nil)
	styler.addSpacer(4)

	styler.writeParagraph("Yearly Totals", "h2", "L")
	var yearRows [][]string
	for i, total := range sum.Stats.TotalPerYear {
		yearRows = append(yearRows, []string{strconv.Itoa(enrollment.YearAt(i)), strconv.Itoa(total)})
	}
	yearRows = append(yearRows,
		[]string{"Ten year total", strconv.Itoa(sum.Stats.TenYearTotal())},
		[]string{"Ten year mean", strconv.Itoa(sum.Stats.TenYearMean())},
	)
	styler.writeTable([]string{"Year", "Total Enrollment"}, []float64{0.3, 0.3}, yearRows, nil)
	styler.addSpacer(4)

	styler.writeParagraph("Single Grade Extremes", "h2", "L")
	styler.writeParagraph(fmt.Sprintf("Highest enrollment for a single grade: %s", sum.Stats.Highest), "normal", "L")
	styler.writeParagraph(fmt.Sprintf("Lowest enrollment for a single grade: %s", sum.Stats.Lowest), "normal", "L")
	if sum.Over500.Found {
		styler.writeParagraph(fmt.Sprintf("%d grade enrollments exceeded %d; their median was %d.",
			len(sum.Over500.Values), analysis.OverThreshold, sum.Over500.Median), "normal", "L")
	} else {
		styler.writeParagraph(fmt.Sprintf("No enrollments over %d.", analysis.OverThreshold), "normal", "L")
	}
	styler.addSpacer(4)

	if general != nil {
		styler.writeParagraph("General Statistics for All Schools", "h2", "L")
		rows := [][]string{
			{fmt.Sprintf("Mean enrollment in %d", enrollment.FirstYear), countCell(general.MeanFirstYear)},
			{fmt.Sprintf("Mean enrollment in %d", enrollment.LastYear), countCell(general.MeanLastYear)},
			{fmt.Sprintf("Total graduating class of %d", enrollment.LastYear), strconv.Itoa(general.GraduatingClass)},
			{"Highest enrollment for a single grade", countCell(general.Highest)},
			{"Lowest enrollment for a single grade", countCell(general.Lowest)},
		}
		styler.writeTable([]string{"Statistic", "Value"}, []float64{0.5, 0.2}, rows, func(r, c int) bool {
			return r == 3 && c == 1 && general.Highest.Int() > analysis.OverThreshold
		})
	}

	styler.newPage()
	styler.writeParagraph("Graphical Analysis", "h1", "C")
	styler.addSpacer(4)

	plotDefs := []struct {
		Key     string
		Title   string
		Caption string
		Width   float64
		Aspect  float64
	}{
		{PlotGradeLines, "Enrollment by Grade", fmt.Sprintf("%s enrollment per grade, %d-%d", sum.Name, enrollment.FirstYear, enrollment.LastYear), pdfContentWidth * 0.8, 0.5},
		{PlotHeatmap, "Total Enrollment, All Schools", "Total enrollment per school and year (grey: no data)", pdfContentWidth * 0.7, 2.0 / 3.0},
	}
	for i, pDef := range plotDefs {
		if i > 0 {
			styler.newPage()
		}
		styler.writeParagraph(pDef.Title, "h2", "L")
		if imgBytes, ok := plotImages[pDef.Key]; ok && len(imgBytes) > 0 {
			styler.addImage(imgBytes, pDef.Key, pDef.Width, pDef.Width*pDef.Aspect, pDef.Caption)
		} else {
			styler.writeParagraph(fmt.Sprintf("Plot for %s not available.", pDef.Title), "normal", "L")
		}
	}
	return pdf
}

// BuildPDFReport writes the school report to filepath.
func BuildPDFReport(filepath string, sum *analysis.SchoolSummary, general *analysis.GeneralStatistics, plotImages map[string][]byte) error {
	if sum == nil || sum.Stats == nil {
		return fmt.Errorf("no school statistics to report")
	}
	file, err := os.Create(filepath)
	if err != nil {
		return fmt.Errorf("failed to write PDF report: %w", err)
	}
	if err := WritePDFReport(file, sum, general, plotImages); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write PDF report: %w", err)
	}
	return nil
}

// WritePDFReport writes the school report to w.
func WritePDFReport(w io.Writer, sum *analysis.SchoolSummary, general *analysis.GeneralStatistics, plotImages map[string][]byte) error {
	if sum == nil || sum.Stats == nil {
		return fmt.Errorf("no school statistics to report")
	}
	if err := buildPDF(sum, general, plotImages).Output(w); err != nil {
		return fmt.Errorf("failed to write PDF report: %w", err)
	}
	return nil
}
