package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/user/school_stats/internal/analysis"
	"github.com/user/school_stats/internal/config"
	"github.com/user/school_stats/internal/enrollment"
	"github.com/user/school_stats/internal/logging"
	"github.com/user/school_stats/internal/parser"
	"github.com/user/school_stats/internal/report"
)

// App wires configuration, data loading and the report outputs.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	in     io.Reader
	out    io.Writer
}

// NewApp builds an App. A nil logger drops all log output.
func NewApp(cfg *config.Config, logger *slog.Logger, in io.Reader, out io.Writer) *App {
	if logger == nil {
		logger = logging.Discard()
	}
	return &App{cfg: cfg, logger: logger, in: in, out: out}
}

func (a *App) status(message string, args ...any) {
	a.logger.Info(message, args...)
}

// load reads the school directory and builds the enrollment cube from the
// configured source.
func (a *App) load() (*analysis.Analyzer, error) {
	csvPath := a.cfg.Data.CSVPath
	a.status("Parsing school directory", "path", csvPath)
	dir, err := parser.ParseSchoolDirectory(csvPath)
	if err != nil {
		return nil, fmt.Errorf("error parsing CSV: %w", err)
	}
	a.status("Parsed school directory", "schools", dir.Len())

	var cube *enrollment.Cube
	switch a.cfg.Data.Source {
	case config.SourceCSV:
		parsed, err := parser.ParseEnrollmentRecords(csvPath, dir)
		if err != nil {
			return nil, fmt.Errorf("error parsing enrollment: %w", err)
		}
		for _, e := range parsed.ParseErrors {
			a.logger.Warn("enrollment row", "problem", e)
		}
		a.status("Parsed enrollment rows", "rows", len(parsed.Records))
		if cube, err = enrollment.FromRecords(parsed.CubeRecords()); err != nil {
			return nil, err
		}
	default:
		if cube, err = enrollment.LoadDefault(); err != nil {
			return nil, err
		}
		a.status("Loaded embedded enrollment tables", "years", enrollment.NumYears)
	}

	return analysis.NewAnalyzer(cube, dir)
}

// List prints the school directory.
func (a *App) List() error {
	an, err := a.load()
	if err != nil {
		return err
	}
	report.WriteDirectoryTable(a.out, an.Directory())
	return nil
}

// Run prints the header, resolves a school, prints its statistics and the
// general statistics, then writes any configured exports. A school given up
// front is used when it matches; otherwise the user is prompted.
func (a *App) Run(school string) error {
	an, err := a.load()
	if err != nil {
		return err
	}

	console := report.NewConsoleReport(a.out)
	if err := console.WriteHeader(an.Cube()); err != nil {
		return err
	}

	resolver := report.NewResolver(an.Directory(), a.in, a.out)
	selected, ok := resolver.Check(school)
	if !ok {
		if school != "" {
			a.logger.Warn("school not found, prompting", "school", school)
		}
		if selected, err = resolver.Resolve(); err != nil {
			return err
		}
	}
	a.status("Selected school", "name", selected.Name, "code", selected.Code)

	sum, err := an.Summarize(selected.Name)
	if err != nil {
		return err
	}
	general := an.GeneralStatistics()
	if err := console.WriteSchool(sum); err != nil {
		return err
	}
	if err := console.WriteGeneral(general); err != nil {
		return err
	}

	if path := a.cfg.Output.PDFPath; path != "" {
		if err := a.writePDF(an, sum, general, path); err != nil {
			return err
		}
	}
	if path := a.cfg.Output.XLSXPath; path != "" {
		a.status("Exporting workbook", "path", path)
		if err := report.ExportWorkbook(path, an); err != nil {
			return err
		}
		a.status("Workbook written", "path", path)
	}
	return nil
}

func (a *App) writePDF(an *analysis.Analyzer, sum *analysis.SchoolSummary, general *analysis.GeneralStatistics, path string) error {
	a.status("Generating plots...")
	plotImages := make(map[string][]byte)
	plotConfigs := []struct {
		Name   string
		Create func() ([]byte, error)
	}{
		{report.PlotGradeLines, func() ([]byte, error) { return report.CreateEnrollmentLinePlot(an, sum.Name) }},
		{report.PlotHeatmap, func() ([]byte, error) {
			return report.CreateEnrollmentHeatmap(an, "Total Enrollment by School and Year")
		}},
	}
	for _, pc := range plotConfigs {
		a.status("Plot", "name", pc.Name)
		img, err := pc.Create()
		if err != nil {
			a.logger.Warn("error generating plot", "name", pc.Name, "error", err)
			continue
		}
		plotImages[pc.Name] = img
	}

	a.status("Generating PDF", "path", path)
	if err := report.BuildPDFReport(path, sum, general, plotImages); err != nil {
		return err
	}
	a.status("PDF report successfully generated", "path", path)
	return nil
}
