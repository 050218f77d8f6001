package query

import (
	"errors"
	"strconv"
)

// Classification is the result of scanning one column.
type Classification struct {
	Type LogicalType

	// FirstMismatch is the position of the first row that disqualified
	// TypeInteger, or -1 if none did.
	FirstMismatch int
}

// InferType classifies the values of one column.
//
// Empty cells carry no evidence. A cell that is not a 64-bit integer
// rules out TypeInteger, one that is not a 64-bit float rules out
// TypeFloat. A row too short to have the column forces TypeString.
func InferType(rows []Row, column int) LogicalType {
	return Classify(rows, column).Type
}

// Classify is InferType with the position of the first inconsistent row.
func Classify(rows []Row, column int) Classification {
	isInteger, isFloat := true, true
	c := Classification{FirstMismatch: -1}

	for pos, row := range rows {
		value, ok := row.Get(column)
		if !ok {
			if c.FirstMismatch < 0 {
				c.FirstMismatch = pos
			}
			isInteger, isFloat = false, false
			break
		}
		if value == "" {
			continue
		}

		if isInteger {
			if _, err := strconv.ParseInt(value, 10, 64); err != nil {
				isInteger = false
				c.FirstMismatch = pos
			}
		}
		if isFloat {
			if _, ok := parseFloat(value); !ok {
				isFloat = false
			}
		}
		if !isInteger && !isFloat {
			break
		}
	}

	switch {
	case isInteger:
		c.Type = TypeInteger
	case isFloat:
		c.Type = TypeFloat
	default:
		c.Type = TypeString
	}
	return c
}

// parseFloat parses a 64-bit float. Magnitudes beyond the float64 range
// are valid and read as ±Inf.
func parseFloat(value string) (float64, bool) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return f, true
		}
		return 0, false
	}
	return f, true
}

// TypeCache memoizes column classifications for the lifetime of a row set.
type TypeCache struct {
	rows  []Row
	types map[int]Classification
}

// NewTypeCache creates a cache over rows. The rows must not change
// while the cache is in use.
func NewTypeCache(rows []Row) *TypeCache {
	return &TypeCache{rows: rows, types: make(map[int]Classification)}
}

// Type returns the logical type of column, classifying it on first use.
func (c *TypeCache) Type(column int) LogicalType {
	return c.Classify(column).Type
}

// Classify returns the cached classification of column.
func (c *TypeCache) Classify(column int) Classification {
	if cl, ok := c.types[column]; ok {
		return cl
	}
	cl := Classify(c.rows, column)
	c.types[column] = cl
	return cl
}
