package query

// NumberRows returns a table whose first column holds each row's
// zero-based position in t, labelled IndexColumn.
//
// It must run before filtering and sorting so the numbers keep
// pointing at the original input position.
func NumberRows(t *Table) *Table {
	header := make(Header, 0, len(t.Header)+1)
	header = append(header, IndexColumn)
	header = append(header, t.Header...)

	rows := make([]Row, len(t.Rows))
	for i, row := range t.Rows {
		numbered := make(Row, 0, len(row)+1)
		numbered = append(numbered, positionLabel(i))
		numbered = append(numbered, row...)
		rows[i] = numbered
	}

	return &Table{Header: header, Rows: rows}
}

// ApplyWindow returns the rows whose position falls in [start, end].
//
// Positions beyond the end of rows yield an empty or shorter result,
// never an error. The result shares rows' backing array.
func ApplyWindow(rows []Row, start, end int) []Row {
	if start < 0 {
		start = 0
	}
	if start >= len(rows) || end < start {
		return rows[:0]
	}

	stop := len(rows)
	if end < len(rows)-1 {
		stop = end + 1
	}
	return rows[start:stop]
}

// ApplyHeadTail keeps the first head or the last tail rows, 0 disables either.
func ApplyHeadTail(rows []Row, head, tail int) []Row {
	if head > 0 && head < len(rows) {
		rows = rows[:head]
	}
	if tail > 0 && tail < len(rows) {
		rows = rows[len(rows)-tail:]
	}
	return rows
}
