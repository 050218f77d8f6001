package reader

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/tabcat/query"
)

// ReadParquet reads a whole parquet file into a table of strings.
//
// The header lists the top-level schema fields in schema order. Nested
// groups and repeated fields are rendered with fmt's %v verb, null
// values become empty fields.
func ReadParquet(r io.ReaderAt, size int64) (*query.Table, error) {
	pqFile, err := parquet.OpenFile(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	fields := pqFile.Schema().Fields()
	header := make(query.Header, len(fields))
	for i, field := range fields {
		header[i] = field.Name()
	}

	reader := parquet.NewReader(pqFile)
	defer func() { _ = reader.Close() }()

	rows := make([]query.Row, 0, pqFile.NumRows())
	for {
		values := make(map[string]interface{})
		err := reader.Read(&values)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row %d: %w", len(rows), err)
		}

		row := make(query.Row, len(header))
		for i, name := range header {
			row[i] = formatValue(values[name])
		}
		rows = append(rows, row)
	}

	return query.NewTable(header, rows), nil
}

// formatValue converts a parquet value to its field text
func formatValue(v interface{}) string {
	if v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}
