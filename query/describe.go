package query

import "strconv"

// describeHeader lists the columns of a Describe view
var describeHeader = []string{"index", "column", "type", "empty", "first_mismatch"}

// Describe summarises every column of t: its position, name, inferred
// type, how many cells are empty, and the first row that broke integer
// consistency ("-" when none did).
func Describe(t *Table) *View {
	types := NewTypeCache(t.Rows)

	rows := make([]Row, len(t.Header))
	for col, name := range t.Header {
		cl := types.Classify(col)

		mismatch := "-"
		if cl.FirstMismatch >= 0 {
			mismatch = strconv.Itoa(cl.FirstMismatch)
		}

		rows[col] = Row{
			strconv.Itoa(col),
			name,
			cl.Type.String(),
			strconv.Itoa(countEmpty(t.Rows, col)),
			mismatch,
		}
	}

	view := Project(Header(describeHeader), rows, []int{0, 1, 2, 3, 4}, nil)
	view.Align[0] = AlignRight
	view.Align[3] = AlignRight
	return view
}

// countEmpty counts empty or missing cells of column
func countEmpty(rows []Row, column int) int {
	n := 0
	for _, row := range rows {
		if v, ok := row.Get(column); !ok || v == "" {
			n++
		}
	}
	return n
}
