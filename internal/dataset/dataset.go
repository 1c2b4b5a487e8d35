package dataset

import "fmt"

// DType is the declared element type of a column. Labels follow the usual
// dataframe conventions so they read naturally in a model prompt.
type DType string

const (
	Int64   DType = "int64"
	Float64 DType = "float64"
	Bool    DType = "bool"
	Object  DType = "object"
)

// Numeric reports whether the dtype counts as numeric for profiling.
// bool deliberately does not: it is treated as categorical.
func (t DType) Numeric() bool { return t == Int64 || t == Float64 }

// Column is an ordered sequence of values sharing one declared dtype.
// A nil entry marks a null; non-nil entries hold int64, float64, bool or
// string according to DType.
type Column struct {
	Name   string
	DType  DType
	Values []any
}

// Dataset is an in-memory table: ordered named columns of equal length.
type Dataset struct {
	cols []Column
	rows int
}

// New builds a dataset, validating that all columns have the same length.
func New(cols []Column) (*Dataset, error) {
	rows := 0
	for i, c := range cols {
		if i == 0 {
			rows = len(c.Values)
			continue
		}
		if len(c.Values) != rows {
			return nil, fmt.Errorf("column %q has %d values, want %d", c.Name, len(c.Values), rows)
		}
	}
	return &Dataset{cols: cols, rows: rows}, nil
}

func (d *Dataset) Rows() int         { return d.rows }
func (d *Dataset) NumCols() int      { return len(d.cols) }
func (d *Dataset) Columns() []Column { return d.cols }

// Names returns column names in dataset order.
func (d *Dataset) Names() []string {
	out := make([]string, len(d.cols))
	for i, c := range d.cols {
		out[i] = c.Name
	}
	return out
}

// Column looks a column up by name.
func (d *Dataset) Column(name string) (Column, bool) {
	for _, c := range d.cols {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// IndexInfo describes the row index. Loaded datasets always carry an
// unnamed range index; the descriptor exists for prompt context only.
type IndexInfo struct {
	Type   string
	Name   string
	Length int
	Sample []any
}

// Index returns the range-index descriptor for this dataset.
func (d *Dataset) Index() IndexInfo {
	n := d.rows
	if n > 5 {
		n = 5
	}
	sample := make([]any, 0, n)
	for i := 0; i < n; i++ {
		sample = append(sample, int64(i))
	}
	return IndexInfo{Type: "RangeIndex", Length: d.rows, Sample: sample}
}
