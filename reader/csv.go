package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/vegasq/tabcat/query"
)

// ErrEmptyInput is returned when delimited input has no header row.
var ErrEmptyInput = errors.New("input has no header row")

// ReadDelimited reads delimited text whose first record is the header.
//
// Records may have more or fewer fields than the header; missing
// fields read as absent rather than empty.
func ReadDelimited(r io.Reader, delimiter rune) (*query.Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyInput
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var rows []query.Row
	for {
		record, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read record %d: %w", len(rows)+1, err)
		}
		rows = append(rows, query.Row(record))
	}

	return query.NewTable(query.Header(header), rows), nil
}
