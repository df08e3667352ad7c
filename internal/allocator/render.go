package allocator

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/iliyamo/openspace-organizer/internal/model"
)

// Render lists each table followed by its occupants, one seat per line.
// Empty seats print as blank lines so every table shows its full size.
//
//	Table 1:
//	Ada
//	Grace
//
//	Table 2:
//	...
func Render(space *model.OpenSpace) string {
	var b strings.Builder
	for _, t := range space.Tables {
		b.WriteString(t.Label())
		b.WriteString(":\n")
		for _, s := range t.Seats {
			b.WriteString(s.Occupant)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// RenderGrid draws the allocation as a terminal table: one row per table,
// one column per seat.
func RenderGrid(space *model.OpenSpace) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)

	header := []string{"Table"}
	for i := 1; i <= space.Layout.SeatsPerTable; i++ {
		header = append(header, "Seat "+strconv.Itoa(i))
	}
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, t := range space.Tables {
		row := make([]string, 0, len(t.Seats)+1)
		row = append(row, t.Label())
		for _, s := range t.Seats {
			row = append(row, s.Occupant)
		}
		table.Append(row)
	}
	table.Render()
	return buf.String()
}
