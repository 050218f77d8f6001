package query

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownColumn is returned when a column reference matches no name and no valid index
	ErrUnknownColumn = errors.New("unknown column")

	// ErrInvalidPattern is returned when the filter regular expression does not compile
	ErrInvalidPattern = errors.New("invalid filter pattern")

	// ErrMissingSortKey is returned when sorting is requested without a sort key
	ErrMissingSortKey = errors.New("sorting requested without a sort key")

	// ErrUnparseableDatetime is returned when a datetime cell matches none of the accepted forms
	ErrUnparseableDatetime = errors.New("unparseable datetime")

	// ErrUnsupportedOutputMode is returned for any output mode other than the pretty table
	ErrUnsupportedOutputMode = errors.New("unsupported output mode")

	// ErrInvalidOptions is returned for out-of-range or conflicting option values
	ErrInvalidOptions = errors.New("invalid options")
)

// ColumnError reports a column reference that could not be resolved.
type ColumnError struct {
	Ref     string // Offending token as given by the user
	Columns int    // Number of columns it was resolved against
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("%s: %q (table has %d columns)", ErrUnknownColumn, e.Ref, e.Columns)
}

// Unwrap makes errors.Is(err, ErrUnknownColumn) hold.
func (e *ColumnError) Unwrap() error {
	return ErrUnknownColumn
}

// DatetimeError reports a cell that could not be parsed with the sort pattern.
type DatetimeError struct {
	Value   string
	Pattern string
	Row     int // Zero-based data row in the input table, -1 when unknown
}

func (e *DatetimeError) Error() string {
	return fmt.Sprintf("%s: %q does not match %q (row %d)", ErrUnparseableDatetime, e.Value, e.Pattern, e.Row)
}

// Unwrap makes errors.Is(err, ErrUnparseableDatetime) hold.
func (e *DatetimeError) Unwrap() error {
	return ErrUnparseableDatetime
}
