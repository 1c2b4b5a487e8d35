package chart

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestShowWritesHTML(t *testing.T) {
	dir := t.TempDir()
	f := New(dir, true)
	if err := f.Bar([]string{"a", "b"}, []float64{1, 2}); err != nil {
		t.Fatalf("Bar: %v", err)
	}
	f.Title("demo")
	if err := f.Show(); err != nil {
		t.Fatalf("Show: %v", err)
	}
	path := f.RenderedPath()
	if filepath.Dir(path) != dir {
		t.Fatalf("chart written to %q, want dir %q", path, dir)
	}
	base := filepath.Base(path)
	if !strings.HasPrefix(base, "chart_") || !strings.HasSuffix(base, ".html") {
		t.Fatalf("unexpected chart filename %q", base)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read chart: %v", err)
	}
	if !strings.Contains(string(data), "echarts") {
		t.Fatal("rendered file does not look like an echarts page")
	}
}

func TestShowWithoutPlotFails(t *testing.T) {
	f := New(t.TempDir(), true)
	if err := f.Show(); err == nil {
		t.Fatal("expected error when nothing was drawn")
	}
}

func TestMismatchedSeriesLengths(t *testing.T) {
	f := New(t.TempDir(), true)
	if err := f.Bar([]string{"a"}, []float64{1, 2}); err == nil {
		t.Fatal("bar should reject mismatched lengths")
	}
	if err := f.Scatter([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("scatter should reject mismatched lengths")
	}
	if err := f.Pie([]string{"a", "b"}, []float64{1}); err == nil {
		t.Fatal("pie should reject mismatched lengths")
	}
}

func TestEachKindRenders(t *testing.T) {
	cases := []struct {
		name string
		draw func(f *Figure) error
	}{
		{"line", func(f *Figure) error { return f.Line([]string{"a", "b"}, []float64{1, 2}) }},
		{"scatter", func(f *Figure) error { return f.Scatter([]float64{1, 2}, []float64{3, 4}) }},
		{"pie", func(f *Figure) error { return f.Pie([]string{"x", "y"}, []float64{60, 40}) }},
		{"hist", func(f *Figure) error { return f.Hist([]float64{1, 2, 2, 3, 8}, 4) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := New(t.TempDir(), true)
			if err := tc.draw(f); err != nil {
				t.Fatalf("draw: %v", err)
			}
			if err := f.Show(); err != nil {
				t.Fatalf("Show: %v", err)
			}
			if f.RenderedPath() == "" {
				t.Fatal("no rendered path")
			}
		})
	}
}

func TestLaterPlotReplacesEarlier(t *testing.T) {
	f := New(t.TempDir(), true)
	if err := f.Bar([]string{"a"}, []float64{1}); err != nil {
		t.Fatalf("Bar: %v", err)
	}
	if err := f.Pie([]string{"x", "y"}, []float64{1, 2}); err != nil {
		t.Fatalf("Pie: %v", err)
	}
	if f.kind != KindPie {
		t.Fatalf("kind = %q, want pie", f.kind)
	}
}

func TestHistogramBinning(t *testing.T) {
	labels, counts := histogram([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 5)
	if len(labels) != 5 || len(counts) != 5 {
		t.Fatalf("got %d bins, want 5", len(counts))
	}
	var total float64
	for _, c := range counts {
		total += c
	}
	if total != 10 {
		t.Fatalf("counts sum to %v, want 10", total)
	}
	// max value lands in the last bin, not past it
	if counts[4] == 0 {
		t.Fatal("last bin should include the maximum")
	}
}

func TestHistogramDegenerate(t *testing.T) {
	labels, counts := histogram([]float64{3, 3, 3}, 10)
	if len(labels) != 1 || counts[0] != 3 {
		t.Fatalf("degenerate histogram = %v %v, want single bin of 3", labels, counts)
	}
	if l, c := histogram(nil, 5); l != nil || c != nil {
		t.Fatal("empty input should produce no bins")
	}
}
