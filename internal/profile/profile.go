// Package profile derives descriptive metadata from a dataset and renders
// it into the plain-text context block sent alongside visualization
// requests. Both steps are deterministic: the same dataset snapshot always
// produces byte-identical output.
package profile

import (
	"math"
	"sort"
	"strconv"

	"github.com/KaramelBytes/chartloom-cli/internal/dataset"
)

// Column kinds. Every column is exactly one of the two: numeric dtypes
// (int64, float64) are numeric, everything else (object, bool) is
// categorical. bool lands in categorical on purpose — it behaves like a
// two-level factor, not a quantity.
const (
	KindNumeric     = "numeric"
	KindCategorical = "categorical"
)

const sampleSize = 5

// NumericStats summarizes a numeric column over its non-null values.
// Pointers are nil when undefined: every stat for zero non-null values,
// Std additionally for a single non-null value (sample std, n-1).
type NumericStats struct {
	Mean        *float64
	Std         *float64
	Min         *float64
	Max         *float64
	UniqueCount int
}

// ValueCount is one entry of a categorical frequency table.
type ValueCount struct {
	Value string
	Count int
}

// CategoricalStats summarizes a categorical column over its non-null
// values. TopValues is ordered by descending count, ties broken by first
// encounter, at most 10 entries. MostFrequent is nil for an empty column.
type CategoricalStats struct {
	UniqueCount       int
	MostFrequent      *string
	MostFrequentCount *int
	TopValues         []ValueCount
}

// ColumnProfile holds the per-column derived facts.
type ColumnProfile struct {
	Kind        string
	NullCount   int
	Numeric     *NumericStats
	Categorical *CategoricalStats
}

// DatasetProfile aggregates everything the formatter needs.
type DatasetProfile struct {
	Rows               int
	Cols               int
	Columns            []string
	DTypes             map[string]string
	NullCounts         map[string]int
	SampleRows         map[string][]any
	NumericColumns     []string
	CategoricalColumns []string
	Index              dataset.IndexInfo
	ColumnProfiles     map[string]ColumnProfile
}

// Build profiles a dataset. It performs no I/O and uses no randomness.
func Build(ds *dataset.Dataset) *DatasetProfile {
	p := &DatasetProfile{
		Rows:           ds.Rows(),
		Cols:           ds.NumCols(),
		Columns:        ds.Names(),
		DTypes:         make(map[string]string, ds.NumCols()),
		NullCounts:     make(map[string]int, ds.NumCols()),
		SampleRows:     make(map[string][]any, ds.NumCols()),
		Index:          ds.Index(),
		ColumnProfiles: make(map[string]ColumnProfile, ds.NumCols()),
	}
	n := p.Rows
	if n > sampleSize {
		n = sampleSize
	}
	for _, col := range ds.Columns() {
		p.DTypes[col.Name] = string(col.DType)
		p.SampleRows[col.Name] = append([]any(nil), col.Values[:n]...)

		cp := ColumnProfile{}
		for _, v := range col.Values {
			if v == nil {
				cp.NullCount++
			}
		}
		p.NullCounts[col.Name] = cp.NullCount

		if col.DType.Numeric() {
			cp.Kind = KindNumeric
			cp.Numeric = numericStats(col)
			p.NumericColumns = append(p.NumericColumns, col.Name)
		} else {
			cp.Kind = KindCategorical
			cp.Categorical = categoricalStats(col)
			p.CategoricalColumns = append(p.CategoricalColumns, col.Name)
		}
		p.ColumnProfiles[col.Name] = cp
	}
	return p
}

func numericStats(col dataset.Column) *NumericStats {
	var (
		sum     float64
		minV    = math.Inf(1)
		maxV    = math.Inf(-1)
		vals    []float64
		uniques = map[float64]bool{}
	)
	for _, v := range col.Values {
		if v == nil {
			continue
		}
		x := asFloat(v)
		vals = append(vals, x)
		sum += x
		if x < minV {
			minV = x
		}
		if x > maxV {
			maxV = x
		}
		uniques[x] = true
	}
	s := &NumericStats{UniqueCount: len(uniques)}
	if len(vals) == 0 {
		return s
	}
	mean := sum / float64(len(vals))
	s.Mean = &mean
	s.Min = &minV
	s.Max = &maxV
	if len(vals) > 1 {
		var m2 float64
		for _, x := range vals {
			d := x - mean
			m2 += d * d
		}
		std := math.Sqrt(m2 / float64(len(vals)-1))
		s.Std = &std
	}
	return s
}

func categoricalStats(col dataset.Column) *CategoricalStats {
	counts := map[string]int{}
	var order []string
	for _, v := range col.Values {
		if v == nil {
			continue
		}
		key := ValueString(v)
		if _, ok := counts[key]; !ok {
			order = append(order, key)
		}
		counts[key]++
	}
	s := &CategoricalStats{UniqueCount: len(counts)}
	if len(order) == 0 {
		return s
	}
	firstSeen := make(map[string]int, len(order))
	for i, k := range order {
		firstSeen[k] = i
	}
	table := make([]ValueCount, len(order))
	for i, k := range order {
		table[i] = ValueCount{Value: k, Count: counts[k]}
	}
	sort.SliceStable(table, func(i, j int) bool {
		if table[i].Count != table[j].Count {
			return table[i].Count > table[j].Count
		}
		return firstSeen[table[i].Value] < firstSeen[table[j].Value]
	})
	top := table
	if len(top) > 10 {
		top = top[:10]
	}
	s.TopValues = top
	mf := top[0].Value
	mfc := top[0].Count
	s.MostFrequent = &mf
	s.MostFrequentCount = &mfc
	return s
}

func asFloat(v any) float64 {
	switch x := v.(type) {
	case int64:
		return float64(x)
	case float64:
		return x
	}
	return math.NaN()
}

// ValueString renders a raw cell value for frequency counting and display.
func ValueString(v any) string {
	switch x := v.(type) {
	case nil:
		return "None"
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return "?"
}
