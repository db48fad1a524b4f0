package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envVars = []string{
	"SCHOOLSTATS_DATA_CSV_PATH", "SCHOOLSTATS_DATA_SOURCE",
	"SCHOOLSTATS_LOGGING_LEVEL", "SCHOOLSTATS_LOGGING_FORMAT",
	"SCHOOLSTATS_OUTPUT_PDF_PATH", "SCHOOLSTATS_OUTPUT_XLSX_PATH",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range envVars {
		// Setenv registers the restore; Unsetenv then clears it for the test.
		t.Setenv(v, "")
		require.NoError(t, os.Unsetenv(v))
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "data/Assignment3Data.csv", cfg.Data.CSVPath)
	assert.Equal(t, SourceEmbedded, cfg.Data.Source)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Empty(t, cfg.Output.PDFPath)
	assert.Empty(t, cfg.Output.XLSXPath)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SCHOOLSTATS_DATA_CSV_PATH", "/data/schools.csv")
	t.Setenv("SCHOOLSTATS_DATA_SOURCE", "csv")
	t.Setenv("SCHOOLSTATS_OUTPUT_PDF_PATH", "out.pdf")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/data/schools.csv", cfg.Data.CSVPath)
	assert.Equal(t, SourceCSV, cfg.Data.Source)
	assert.Equal(t, "out.pdf", cfg.Output.PDFPath)
}

func TestLoadFileOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SCHOOLSTATS_LOGGING_LEVEL", "error")
	path := writeFile(t, `
logging:
  level: debug
output:
  xlsx_path: report.xlsx
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "report.xlsx", cfg.Output.XLSXPath)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, "data/Assignment3Data.csv", cfg.Data.CSVPath)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "data: [unclosed"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "data:\n  unknown_key: 1\n"))
	assert.Error(t, err)

	t.Setenv("SCHOOLSTATS_DATA_SOURCE", "database")
	_, err = Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Data:    DataConfig{CSVPath: "a.csv", Source: SourceCSV},
			Logging: LoggingConfig{Level: "info", Format: "json"},
		}
	}
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid config", func(*Config) {}, false},
		{"upper case level", func(c *Config) { c.Logging.Level = "DEBUG" }, false},
		{"bad source", func(c *Config) { c.Data.Source = "sql" }, true},
		{"empty csv path", func(c *Config) { c.Data.CSVPath = "" }, true},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, true},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
