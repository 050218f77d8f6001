package query

// Style holds rendering hints for a header cell.
type Style struct {
	Bold     bool
	Emphasis bool // Foreground colour emphasis
}

// HeaderStyle is the style of every header cell in a view.
var HeaderStyle = Style{Bold: true, Emphasis: true}

// HeaderCell is a header label with its style hints.
type HeaderCell struct {
	Text  string
	Style Style
}

// Alignment is a per-column layout hint.
type Alignment int

const (
	AlignDefault Alignment = iota
	AlignRight
)

// View is the resolved table handed to a renderer.
type View struct {
	Header []HeaderCell
	Align  []Alignment // One per header cell
	Rows   [][]string
}

// Project builds a view of rows restricted to columns, in that order.
//
// Missing fields of short rows render as empty cells. When types is
// non-nil, numeric columns are marked for right alignment.
func Project(header Header, rows []Row, columns []int, types *TypeCache) *View {
	view := &View{
		Header: make([]HeaderCell, len(columns)),
		Align:  make([]Alignment, len(columns)),
		Rows:   make([][]string, len(rows)),
	}

	for i, col := range columns {
		label, _ := Row(header).Get(col)
		view.Header[i] = HeaderCell{Text: label, Style: HeaderStyle}
		if types != nil && types.Type(col).Numeric() {
			view.Align[i] = AlignRight
		}
	}

	for r, row := range rows {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i], _ = row.Get(col)
		}
		view.Rows[r] = cells
	}

	return view
}

// HeaderLabels returns the plain header texts of v
func (v *View) HeaderLabels() []string {
	labels := make([]string, len(v.Header))
	for i, h := range v.Header {
		labels[i] = h.Text
	}
	return labels
}
