package output

import (
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/tabcat/query"
)

// truncationTail marks cells shortened to TableOptions.MaxWidth
const truncationTail = "..."

// TableOptions controls the pretty table layout.
type TableOptions struct {
	Color    bool // Emit ANSI styles for header hints
	MaxWidth int  // Truncate cells wider than this many columns (0 = off)
}

// TableRenderer writes views as a borderless text table with a line
// under the header.
type TableRenderer struct {
	writer io.Writer
	opts   TableOptions
}

// NewTableRenderer creates a new table renderer
func NewTableRenderer(w io.Writer, opts TableOptions) *TableRenderer {
	return &TableRenderer{writer: w, opts: opts}
}

// SetOutput sets the output writer
func (r *TableRenderer) SetOutput(w io.Writer) {
	r.writer = w
}

// Render writes v as a table
func (r *TableRenderer) Render(v *query.View) error {
	table := tablewriter.NewWriter(r.writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetHeaderLine(true)
	table.SetRowLine(false)
	table.SetColumnSeparator("|")
	table.SetCenterSeparator("+")
	table.SetRowSeparator("-")
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)

	table.SetHeader(r.truncateAll(v.HeaderLabels()))
	table.SetColumnAlignment(columnAlignment(v.Align))
	if r.opts.Color && len(v.Header) > 0 {
		table.SetHeaderColor(headerColors(v.Header)...)
	}

	for _, row := range v.Rows {
		table.Append(r.truncateAll(row))
	}

	table.Render()
	return nil
}

// truncateAll applies MaxWidth to every cell, returning a new slice
func (r *TableRenderer) truncateAll(cells []string) []string {
	if r.opts.MaxWidth <= 0 {
		return cells
	}
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = truncate(c, r.opts.MaxWidth)
	}
	return out
}

// truncate shortens s to at most width terminal columns
func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= len(truncationTail) {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, truncationTail)
}

// columnAlignment maps view hints to tablewriter alignments
func columnAlignment(align []query.Alignment) []int {
	out := make([]int, len(align))
	for i, a := range align {
		if a == query.AlignRight {
			out[i] = tablewriter.ALIGN_RIGHT
		} else {
			out[i] = tablewriter.ALIGN_LEFT
		}
	}
	return out
}

// headerColors maps header style hints to ANSI attributes
func headerColors(header []query.HeaderCell) []tablewriter.Colors {
	colors := make([]tablewriter.Colors, len(header))
	for i, cell := range header {
		c := tablewriter.Colors{}
		if cell.Style.Bold {
			c = append(c, tablewriter.Bold)
		}
		if cell.Style.Emphasis {
			c = append(c, tablewriter.FgCyanColor)
		}
		colors[i] = c
	}
	return colors
}
