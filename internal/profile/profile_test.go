package profile

import (
	"math"
	"strings"
	"testing"

	"github.com/KaramelBytes/chartloom-cli/internal/dataset"
)

func mustDataset(t *testing.T, cols []dataset.Column) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New(cols)
	if err != nil {
		t.Fatalf("dataset.New: %v", err)
	}
	return ds
}

func employeeDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	return mustDataset(t, []dataset.Column{
		{Name: "name", DType: dataset.Object, Values: []any{"Ana", "Bob", "Cho", "Dee"}},
		{Name: "age", DType: dataset.Int64, Values: []any{int64(25), int64(30), int64(35), int64(28)}},
		{Name: "dept", DType: dataset.Object, Values: []any{"HR", "IT", "Finance", "HR"}},
		{Name: "active", DType: dataset.Bool, Values: []any{true, false, true, true}},
	})
}

func TestBuildPartitionsEveryColumn(t *testing.T) {
	p := Build(employeeDataset(t))
	if got := len(p.NumericColumns) + len(p.CategoricalColumns); got != p.Cols {
		t.Fatalf("partition covers %d of %d columns", got, p.Cols)
	}
	for _, name := range p.NumericColumns {
		if p.ColumnProfiles[name].Kind != KindNumeric {
			t.Fatalf("column %q listed numeric but profiled as %q", name, p.ColumnProfiles[name].Kind)
		}
	}
	// bool columns are categorical, never numeric
	if p.ColumnProfiles["active"].Kind != KindCategorical {
		t.Fatalf("bool column profiled as %q, want categorical", p.ColumnProfiles["active"].Kind)
	}
}

func TestNumericStats(t *testing.T) {
	p := Build(employeeDataset(t))
	s := p.ColumnProfiles["age"].Numeric
	if s == nil {
		t.Fatal("age has no numeric stats")
	}
	if *s.Mean != 29.5 {
		t.Fatalf("mean = %v, want 29.5", *s.Mean)
	}
	if *s.Min != 25 || *s.Max != 35 {
		t.Fatalf("min/max = %v/%v, want 25/35", *s.Min, *s.Max)
	}
	// sample std with n-1 over {25, 30, 35, 28}
	want := math.Sqrt((20.25 + 0.25 + 30.25 + 2.25) / 3)
	if math.Abs(*s.Std-want) > 1e-9 {
		t.Fatalf("std = %v, want %v", *s.Std, want)
	}
	if s.UniqueCount != 4 {
		t.Fatalf("unique count = %d, want 4", s.UniqueCount)
	}
}

func TestCategoricalStats(t *testing.T) {
	p := Build(employeeDataset(t))
	s := p.ColumnProfiles["dept"].Categorical
	if s == nil {
		t.Fatal("dept has no categorical stats")
	}
	if s.UniqueCount != 3 {
		t.Fatalf("unique count = %d, want 3", s.UniqueCount)
	}
	if *s.MostFrequent != "HR" || *s.MostFrequentCount != 2 {
		t.Fatalf("most frequent = %q x%d, want HR x2", *s.MostFrequent, *s.MostFrequentCount)
	}
	// ties keep first-encounter order behind the winner
	want := []string{"HR", "IT", "Finance"}
	for i, vc := range s.TopValues {
		if vc.Value != want[i] {
			t.Fatalf("top values order = %v, want %v", s.TopValues, want)
		}
	}
}

func TestStatsSkipNulls(t *testing.T) {
	ds := mustDataset(t, []dataset.Column{
		{Name: "score", DType: dataset.Float64, Values: []any{float64(1), nil, float64(3), nil}},
	})
	p := Build(ds)
	cp := p.ColumnProfiles["score"]
	if cp.NullCount != 2 {
		t.Fatalf("null count = %d, want 2", cp.NullCount)
	}
	if *cp.Numeric.Mean != 2 {
		t.Fatalf("mean = %v, want 2", *cp.Numeric.Mean)
	}
}

func TestSingleValueHasNoStd(t *testing.T) {
	ds := mustDataset(t, []dataset.Column{
		{Name: "x", DType: dataset.Int64, Values: []any{int64(7), nil}},
	})
	s := Build(ds).ColumnProfiles["x"].Numeric
	if s.Std != nil {
		t.Fatalf("std over one value should be nil, got %v", *s.Std)
	}
	if *s.Mean != 7 {
		t.Fatalf("mean = %v, want 7", *s.Mean)
	}
}

func TestAllNullColumn(t *testing.T) {
	ds := mustDataset(t, []dataset.Column{
		{Name: "n", DType: dataset.Int64, Values: []any{nil, nil}},
		{Name: "c", DType: dataset.Object, Values: []any{nil, nil}},
	})
	p := Build(ds)
	if s := p.ColumnProfiles["n"].Numeric; s.Mean != nil || s.Min != nil || s.Max != nil || s.Std != nil {
		t.Fatalf("all-null numeric column should have nil stats: %+v", s)
	}
	if s := p.ColumnProfiles["c"].Categorical; s.MostFrequent != nil || s.UniqueCount != 0 {
		t.Fatalf("all-null categorical column should have no mode: %+v", s)
	}
}

func TestSampleIsAtMostFiveRows(t *testing.T) {
	vals := make([]any, 12)
	for i := range vals {
		vals[i] = int64(i)
	}
	p := Build(mustDataset(t, []dataset.Column{{Name: "x", DType: dataset.Int64, Values: vals}}))
	if got := len(p.SampleRows["x"]); got != 5 {
		t.Fatalf("sample has %d rows, want 5", got)
	}
	short := Build(mustDataset(t, []dataset.Column{{Name: "x", DType: dataset.Int64, Values: vals[:2]}}))
	if got := len(short.SampleRows["x"]); got != 2 {
		t.Fatalf("sample of 2-row dataset has %d rows, want 2", got)
	}
}

func TestTopValuesCapAtTen(t *testing.T) {
	vals := make([]any, 0, 30)
	for i := 0; i < 15; i++ {
		vals = append(vals, "v"+string(rune('a'+i)), "v"+string(rune('a'+i)))
	}
	s := Build(mustDataset(t, []dataset.Column{{Name: "c", DType: dataset.Object, Values: vals}})).ColumnProfiles["c"].Categorical
	if len(s.TopValues) != 10 {
		t.Fatalf("top values has %d entries, want 10", len(s.TopValues))
	}
	if s.UniqueCount != 15 {
		t.Fatalf("unique count = %d, want 15", s.UniqueCount)
	}
}

func TestRenderDeterministic(t *testing.T) {
	ds := employeeDataset(t)
	a, err := Render(Build(ds))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	b, err := Render(Build(ds))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if a != b {
		t.Fatal("two renders of the same dataset differ")
	}
}

func TestRenderSections(t *testing.T) {
	out, err := Render(Build(employeeDataset(t)))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, section := range []string{
		"Dataset Information:",
		"- Shape: 4 rows, 4 columns",
		"Data Types:",
		"Numerical Columns: age",
		"Categorical Columns: name, dept, active",
		"Sample Data (first 5 rows):",
		"Basic Statistics for Numerical Columns:",
		"- age: mean=29.5, min=25, max=35",
		"Basic Statistics for Categorical Columns:",
		"- dept: unique_count=3, most_frequent='HR' (appears 2 times)",
	} {
		if !strings.Contains(out, section) {
			t.Fatalf("rendered context missing %q:\n%s", section, out)
		}
	}
}

func TestRenderEmptyDataset(t *testing.T) {
	ds := mustDataset(t, []dataset.Column{
		{Name: "a", DType: dataset.Object, Values: nil},
	})
	out, err := Render(Build(ds))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "- Shape: 0 rows, 1 columns") {
		t.Fatalf("unexpected shape line:\n%s", out)
	}
	if !strings.Contains(out, "most_frequent=N/A (appears N/A times)") {
		t.Fatalf("empty categorical column should render N/A:\n%s", out)
	}
}

func TestRenderRejectsOversizedContext(t *testing.T) {
	name := strings.Repeat("verylongcolumnname", 40)
	cols := make([]dataset.Column, 200)
	for i := range cols {
		cols[i] = dataset.Column{Name: name + string(rune('a'+i%26)), DType: dataset.Object, Values: []any{"x"}}
	}
	ds := mustDataset(t, cols)
	if _, err := Render(Build(ds)); err == nil {
		t.Fatal("expected oversized context to be rejected")
	}
}
