package query

import (
	"fmt"
	"math"
	"strconv"
)

// IndexColumn is the header label of the synthetic row-number column.
const IndexColumn = "index"

// Header is the ordered list of column names of a table.
type Header []string

// Row is an ordered list of string fields aligned to a Header.
type Row []string

// Get returns the field at i. ok is false when the row is too short,
// which is how malformed input with missing trailing fields reads.
func (r Row) Get(i int) (value string, ok bool) {
	if i < 0 || i >= len(r) {
		return "", false
	}
	return r[i], true
}

// Table owns a header and its rows.
//
// Rows may be reordered and filtered freely; the header only changes
// once, when NumberRows prepends the index column.
type Table struct {
	Header Header
	Rows   []Row
}

// NewTable creates a table from a parsed header and rows.
func NewTable(header Header, rows []Row) *Table {
	return &Table{Header: header, Rows: rows}
}

// LogicalType is the inferred semantic type of a column for comparison purposes.
type LogicalType int

const (
	TypeString LogicalType = iota
	TypeInteger
	TypeFloat
	TypeDatetime
)

// String returns the lower-case type name
func (t LogicalType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInteger:
		return "integer"
	case TypeFloat:
		return "float"
	case TypeDatetime:
		return "datetime"
	default:
		return fmt.Sprintf("LogicalType(%d)", int(t))
	}
}

// Numeric reports whether values of this type are numbers
func (t LogicalType) Numeric() bool {
	return t == TypeInteger || t == TypeFloat
}

// SortKey describes how rows are ordered.
type SortKey struct {
	Column     int         // Resolved column index
	Type       LogicalType // Comparator to dispatch to
	Pattern    string      // strftime pattern, only used for TypeDatetime
	Descending bool        // Reverse the ascending result
}

// Options is the complete configuration of one query run.
//
// The zero value is not ready to use: End must be set, use DefaultOptions.
type Options struct {
	Pretty bool // Pretty table output; the only implemented mode

	Columns []string // Display columns (names or indices), order preserving

	Start int // First row position to show, inclusive
	End   int // Last row position to show, inclusive
	Head  int // Keep the first Head rows of the window (0 = off)
	Tail  int // Keep the last Tail rows of the window (0 = off)

	SortKey    string // Sort column (name or index); non-empty requests sorting
	DateFormat string // strftime pattern; non-empty forces TypeDatetime
	Descending bool

	Filter     string   // Regular expression, empty = no filtering
	FilterCols []string // Match scope, empty = all columns

	RowNumbers bool // Prepend the original row position as a column
	InferTypes bool // Infer types of display columns for alignment
}

// DefaultOptions returns options that show every row and column unchanged.
func DefaultOptions() Options {
	return Options{
		Pretty: true,
		Start:  0,
		End:    math.MaxInt,
	}
}

// Validate checks option values that do not depend on the table.
func (o *Options) Validate() error {
	if !o.Pretty {
		return fmt.Errorf("%w: only pretty table output is implemented", ErrUnsupportedOutputMode)
	}
	if o.Start < 0 {
		return fmt.Errorf("%w: start must be non-negative, got %d", ErrInvalidOptions, o.Start)
	}
	if o.End < 0 {
		return fmt.Errorf("%w: end must be non-negative, got %d", ErrInvalidOptions, o.End)
	}
	if o.Head < 0 || o.Tail < 0 {
		return fmt.Errorf("%w: head and tail must be non-negative", ErrInvalidOptions)
	}
	if o.Head > 0 && o.Tail > 0 {
		return fmt.Errorf("%w: head and tail cannot be used together", ErrInvalidOptions)
	}
	if o.sortRequested() && o.SortKey == "" {
		return ErrMissingSortKey
	}
	return nil
}

// sortRequested reports whether any option asks for ordering
func (o *Options) sortRequested() bool {
	return o.SortKey != "" || o.Descending || o.DateFormat != ""
}

// positionLabel formats a zero-based row position for the index column
func positionLabel(i int) string {
	return strconv.Itoa(i)
}
