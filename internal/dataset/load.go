package dataset

import (
	"fmt"
	"path/filepath"
	"strings"
)

// LoadFile reads a dataset from disk, dispatching on the file extension.
// Unrecognized extensions fall back to CSV parsing.
func LoadFile(path string) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return loadXLSX(path)
	case ".json":
		return loadJSON(path)
	case ".parquet":
		return loadParquet(path)
	case ".csv":
		return loadCSV(path)
	default:
		return loadCSV(path)
	}
}

// fromRecords builds a dataset from a header row and string records,
// inferring each column's dtype from its full value set. Empty cells are
// nulls and do not participate in inference.
func fromRecords(header []string, records [][]string) (*Dataset, error) {
	ncol := len(header)
	cols := make([]Column, ncol)
	for j := range header {
		raw := make([]string, len(records))
		for i, rec := range records {
			if j < len(rec) {
				raw[i] = strings.TrimSpace(rec[j])
			}
		}
		dt := inferDType(raw)
		vals := make([]any, len(raw))
		for i, s := range raw {
			if s == "" {
				continue
			}
			v, err := coerce(s, dt)
			if err != nil {
				return nil, fmt.Errorf("column %q row %d: %w", header[j], i+1, err)
			}
			vals[i] = v
		}
		cols[j] = Column{Name: strings.TrimSpace(header[j]), DType: dt, Values: vals}
	}
	return New(cols)
}
