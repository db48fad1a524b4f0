package report

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/user/school_stats/internal/parser"
)

// WriteDirectoryTable prints every school with its index and code.
func WriteDirectoryTable(w io.Writer, dir *parser.SchoolDirectory) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Index", "School Code", "School Name"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, s := range dir.Schools() {
		table.Append([]string{strconv.Itoa(s.Index), s.Code, s.Name})
	}
	table.Render()
}
