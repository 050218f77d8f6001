// Package query resolves, filters, sorts and windows in-memory tables of
// string fields.
//
// A Table is a Header plus rows of string fields, produced by the reader
// package. Run executes one Options against it and returns a View for the
// output package to render.
//
// # Basic Usage
//
//	t := query.NewTable(
//	    query.Header{"id", "name"},
//	    []query.Row{{"2", "bob"}, {"1", "al"}},
//	)
//
//	opts := query.DefaultOptions()
//	opts.SortKey = "id"
//
//	view, err := query.Run(t, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Pipeline
//
// Stages always run in the same order:
//
//  1. Row numbering (RowNumbers) prepends an "index" column holding
//     each row's original position
//  2. Filter (Filter, FilterCols) keeps rows where the regular expression
//     matches at least one in-scope field
//  3. Sort (SortKey, DateFormat, Descending) orders the filtered rows
//  4. Window (Start, End, Head, Tail) slices the ordered rows
//  5. Projection (Columns) selects and reorders the displayed columns
//
// Column references may be names or zero-based indices. They are resolved
// against the header including the index column when numbering is on.
//
// # Type System
//
// The sort column is classified by scanning all of its values:
//   - integer, when every non-empty value is a 64-bit integer
//   - float, when every non-empty value is a 64-bit float
//   - string, otherwise, or when a row is too short to have the column
//   - datetime, only when DateFormat is given; inference is skipped
//
// Numeric cells that fail to parse compare as zero. A datetime cell that
// fails to parse aborts the whole run with ErrUnparseableDatetime.
//
// # Error Handling
//
// All errors wrap one of the sentinel errors and can be tested with
// errors.Is:
//   - ErrUnknownColumn for unresolvable column references
//   - ErrInvalidPattern for filter expressions that do not compile
//   - ErrMissingSortKey when ordering is requested without a key
//   - ErrUnparseableDatetime for datetime cells or patterns
//   - ErrUnsupportedOutputMode for any output other than the pretty table
//   - ErrInvalidOptions for negative or conflicting window options
package query
