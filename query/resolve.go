package query

import "strconv"

// ResolveColumn maps a column reference to an index in header.
//
// An exact, case-sensitive name match wins; duplicate names resolve to
// the first occurrence. Otherwise the reference must parse as a
// non-negative integer below len(header). An integer that is out of
// range is an error, it never falls back to anything else.
func ResolveColumn(header Header, ref string) (int, error) {
	for i, name := range header {
		if name == ref {
			return i, nil
		}
	}

	idx, err := strconv.Atoi(ref)
	if err != nil || idx < 0 || idx >= len(header) {
		return 0, &ColumnError{Ref: ref, Columns: len(header)}
	}
	return idx, nil
}

// ResolveColumns resolves every reference in order.
//
// An empty list resolves to the identity ordering 0..len(header)-1.
func ResolveColumns(header Header, refs []string) ([]int, error) {
	if len(refs) == 0 {
		indices := make([]int, len(header))
		for i := range indices {
			indices[i] = i
		}
		return indices, nil
	}

	indices := make([]int, 0, len(refs))
	for _, ref := range refs {
		idx, err := ResolveColumn(header, ref)
		if err != nil {
			return nil, err
		}
		indices = append(indices, idx)
	}
	return indices, nil
}
