package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/user/school_stats/internal/config"
	"github.com/user/school_stats/internal/logging"
	"github.com/user/school_stats/internal/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run parses flags, loads configuration and drives the report. It returns the
// process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("school_stats", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "optional YAML config file")
	csvPath := fs.String("csv", "", "school CSV file (overrides data.csv_path)")
	source := fs.String("source", "", "enrollment source: embedded or csv")
	school := fs.String("school", "", "school name or code; skips the prompt when valid")
	pdfPath := fs.String("pdf", "", "write a PDF report for the selected school")
	xlsxPath := fs.String("xlsx", "", "export all enrollment data to an .xlsx workbook")
	list := fs.Bool("list", false, "print the school directory and exit")
	logLevel := fs.String("log-level", "", "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if *csvPath != "" {
		cfg.Data.CSVPath = *csvPath
	}
	if *source != "" {
		cfg.Data.Source = *source
	}
	if *pdfPath != "" {
		cfg.Output.PDFPath = *pdfPath
	}
	if *xlsxPath != "" {
		cfg.Output.XLSXPath = *xlsxPath
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	app := NewApp(cfg, logging.New(cfg.Logging, stderr), stdin, stdout)
	if *list {
		err = app.List()
	} else {
		err = app.Run(*school)
	}
	if err != nil {
		if errors.Is(err, report.ErrNoInput) {
			fmt.Fprintln(stderr, "Error: no school selected")
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}
