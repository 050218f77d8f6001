package query

import (
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ApplySort orders rows in place by key.
//
// The sort is stable. Descending order is produced by reversing the
// ascending result, not by inverting the comparator.
//
// Integer and float cells that fail to parse compare as zero. Datetime
// cells are all parsed before any row moves; the first one that does
// not parse aborts the sort with a *DatetimeError, whose Row is its
// position in rows, and leaves rows as they were.
func ApplySort(rows []Row, key SortKey) error {
	if len(rows) == 0 {
		return nil
	}

	switch key.Type {
	case TypeInteger:
		sortByKeys(rows, integerKeys(rows, key.Column), compareInt)
	case TypeFloat:
		sortByKeys(rows, floatKeys(rows, key.Column), compareFloat)
	case TypeDatetime:
		keys, err := datetimeKeys(rows, key.Column, key.Pattern)
		if err != nil {
			return err
		}
		sortByKeys(rows, keys, func(a, b time.Time) int { return a.Compare(b) })
	default:
		sortByKeys(rows, stringKeys(rows, key.Column), strings.Compare)
	}

	if key.Descending {
		slices.Reverse(rows)
	}
	return nil
}

// keyed pairs a row with its precomputed comparison key
type keyed[K any] struct {
	key K
	row Row
}

// sortByKeys stable-sorts rows by keys[i], which belongs to rows[i]
func sortByKeys[K any](rows []Row, keys []K, cmp func(a, b K) int) {
	pairs := make([]keyed[K], len(rows))
	for i := range rows {
		pairs[i] = keyed[K]{key: keys[i], row: rows[i]}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return cmp(pairs[i].key, pairs[j].key) < 0
	})

	for i := range pairs {
		rows[i] = pairs[i].row
	}
}

// cell returns the sort field of row; a missing field sorts as empty
func cell(row Row, column int) string {
	value, _ := row.Get(column)
	return value
}

func stringKeys(rows []Row, column int) []string {
	keys := make([]string, len(rows))
	for i, row := range rows {
		keys[i] = cell(row, column)
	}
	return keys
}

func integerKeys(rows []Row, column int) []int64 {
	keys := make([]int64, len(rows))
	for i, row := range rows {
		v, err := strconv.ParseInt(cell(row, column), 10, 64)
		if err != nil {
			v = 0
		}
		keys[i] = v
	}
	return keys
}

func floatKeys(rows []Row, column int) []float64 {
	keys := make([]float64, len(rows))
	for i, row := range rows {
		v, ok := parseFloat(cell(row, column))
		if !ok {
			v = 0
		}
		keys[i] = v
	}
	return keys
}

func datetimeKeys(rows []Row, column int, pattern string) ([]time.Time, error) {
	parser, err := NewDatetimeParser(pattern)
	if err != nil {
		return nil, err
	}

	keys := make([]time.Time, len(rows))
	for i, row := range rows {
		value := cell(row, column)
		t, err := parser.Parse(value)
		if err != nil {
			return nil, &DatetimeError{Value: value, Pattern: pattern, Row: i}
		}
		keys[i] = t
	}
	return keys, nil
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareFloat treats any comparison involving NaN as equal
func compareFloat(a, b float64) int {
	if math.IsNaN(a) || math.IsNaN(b) {
		return 0
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
