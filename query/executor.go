package query

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
)

// plan holds everything resolved from Options before any row is scanned
type plan struct {
	display    []int
	filterCols []int
	sortColumn int
	sorting    bool
}

// Run executes opts against t and returns the view to render.
//
// Stages run strictly in this order: row numbering, filter, sort,
// window, projection. Every configuration error (unknown column,
// invalid pattern, missing sort key, unsupported output mode) is
// reported before any row is scanned, and no stage produces output on
// failure. t itself is never reordered.
func Run(t *Table, opts Options) (*View, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if opts.RowNumbers {
		t = NumberRows(t)
	}

	p, err := resolvePlan(t.Header, &opts)
	if err != nil {
		return nil, err
	}

	var re *regexp.Regexp
	if opts.Filter != "" {
		re, err = CompileFilter(opts.Filter)
		if err != nil {
			return nil, err
		}
	}
	if opts.DateFormat != "" {
		if _, err := NewDatetimeParser(opts.DateFormat); err != nil {
			return nil, err
		}
	}

	types := NewTypeCache(t.Rows)

	var key SortKey
	if p.sorting {
		key = SortKey{
			Column:     p.sortColumn,
			Type:       TypeDatetime,
			Pattern:    opts.DateFormat,
			Descending: opts.Descending,
		}
		if opts.DateFormat == "" {
			key.Type = types.Type(p.sortColumn)
		}
		slog.Debug("sort key resolved",
			"column", t.Header[p.sortColumn],
			"index", p.sortColumn,
			"type", key.Type.String(),
			"descending", key.Descending)
	}

	// positions maps each filtered row back to its place in t
	var rows []Row
	var positions []int
	if re != nil {
		positions = FilterPositions(t.Rows, re, p.filterCols)
		rows = rowsAt(t.Rows, positions)
		slog.Debug("filter applied", "pattern", opts.Filter, "kept", len(rows), "total", len(t.Rows))
	} else {
		rows = slices.Clone(t.Rows)
	}

	if p.sorting {
		if err := ApplySort(rows, key); err != nil {
			var dtErr *DatetimeError
			if positions != nil && errors.As(err, &dtErr) && dtErr.Row >= 0 && dtErr.Row < len(positions) {
				dtErr.Row = positions[dtErr.Row]
			}
			return nil, fmt.Errorf("failed to sort by %q: %w", opts.SortKey, err)
		}
	}

	rows = ApplyWindow(rows, opts.Start, opts.End)
	rows = ApplyHeadTail(rows, opts.Head, opts.Tail)
	slog.Debug("window applied", "start", opts.Start, "end", opts.End, "rows", len(rows))

	var displayTypes *TypeCache
	if opts.InferTypes {
		displayTypes = types
	}
	return Project(t.Header, rows, p.display, displayTypes), nil
}

// resolvePlan resolves every column reference against the current header
func resolvePlan(header Header, opts *Options) (*plan, error) {
	display, err := ResolveColumns(header, opts.Columns)
	if err != nil {
		return nil, fmt.Errorf("invalid display column: %w", err)
	}
	if opts.RowNumbers && len(opts.Columns) > 0 && !slices.Contains(display, 0) {
		display = append([]int{0}, display...)
	}

	p := &plan{display: display}

	// Without explicit filter columns the scope is every header column,
	// so extra fields of ragged rows are never searched
	if opts.Filter != "" {
		p.filterCols, err = ResolveColumns(header, opts.FilterCols)
		if err != nil {
			return nil, fmt.Errorf("invalid filter column: %w", err)
		}
	}

	if opts.sortRequested() {
		p.sortColumn, err = ResolveColumn(header, opts.SortKey)
		if err != nil {
			return nil, fmt.Errorf("invalid sort key: %w", err)
		}
		p.sorting = true
	}

	return p, nil
}
