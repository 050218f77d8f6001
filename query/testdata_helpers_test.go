package query

import (
	"reflect"
	"testing"
)

// peopleTable returns a small table used across tests
func peopleTable() *Table {
	return NewTable(
		Header{"id", "name", "score", "born"},
		[]Row{
			{"3", "charlie", "7.5", "07/04/1972"},
			{"1", "alice", "9.25", "01/01/1980"},
			{"2", "bob", "", "31/12/1969"},
			{"10", "diana", "8", "15/06/1972"},
		},
	)
}

// column extracts the values of one column
func column(rows []Row, col int) []string {
	values := make([]string, len(rows))
	for i, row := range rows {
		values[i], _ = row.Get(col)
	}
	return values
}

// viewColumn extracts the values of one view column
func viewColumn(v *View, col int) []string {
	values := make([]string, len(v.Rows))
	for i, row := range v.Rows {
		values[i] = row[col]
	}
	return values
}

func assertStrings(t *testing.T, what string, got, want []string) {
	t.Helper()
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("%s = %q, want %q", what, got, want)
	}
}

func assertRows(t *testing.T, got, want []Row) {
	t.Helper()
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("rows = %q, want %q", got, want)
	}
}
