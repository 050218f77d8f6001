package query

import (
	"fmt"
	"regexp"
)

// CompileFilter compiles a filter pattern once for the whole table.
func CompileFilter(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return re, nil
}

// ApplyFilter keeps the rows where re finds a match in at least one of
// columns, or in any field when columns is empty.
//
// Matching is a search, not an anchored full match. A column index
// beyond the end of a row does not match. Surviving rows keep their
// relative order and are not copied.
func ApplyFilter(rows []Row, re *regexp.Regexp, columns []int) []Row {
	if re == nil {
		return rows
	}
	return rowsAt(rows, FilterPositions(rows, re, columns))
}

// FilterPositions is ApplyFilter returning the positions of the kept rows.
func FilterPositions(rows []Row, re *regexp.Regexp, columns []int) []int {
	positions := make([]int, 0, len(rows))
	for i, row := range rows {
		if rowMatches(row, re, columns) {
			positions = append(positions, i)
		}
	}
	return positions
}

// rowsAt gathers rows[p] for every p in positions
func rowsAt(rows []Row, positions []int) []Row {
	out := make([]Row, len(positions))
	for i, p := range positions {
		out[i] = rows[p]
	}
	return out
}

// rowMatches reports whether any in-scope field of row matches re
func rowMatches(row Row, re *regexp.Regexp, columns []int) bool {
	if len(columns) == 0 {
		for _, field := range row {
			if re.MatchString(field) {
				return true
			}
		}
		return false
	}

	for _, col := range columns {
		if field, ok := row.Get(col); ok && re.MatchString(field) {
			return true
		}
	}
	return false
}
