package report

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/user/school_stats/internal/analysis"
	"github.com/user/school_stats/internal/enrollment"
	"github.com/user/school_stats/internal/parser"
)

const dataCSV = "../../data/Assignment3Data.csv"

func init() {
	color.NoColor = true
}

func testDirectory(t *testing.T) *parser.SchoolDirectory {
	t.Helper()
	dir, err := parser.ParseSchoolDirectory(dataCSV)
	require.NoError(t, err)
	return dir
}

func testAnalyzer(t *testing.T) *analysis.Analyzer {
	t.Helper()
	cube, err := enrollment.LoadDefault()
	require.NoError(t, err)
	a, err := analysis.NewAnalyzer(cube, testDirectory(t))
	require.NoError(t, err)
	return a
}
