// Package chart accumulates one figure per visualization run and renders
// it to a self-contained HTML file via go-echarts.
package chart

import (
	"fmt"
	"math"
	"strconv"
)

type Kind string

const (
	KindNone    Kind = ""
	KindBar     Kind = "bar"
	KindLine    Kind = "line"
	KindScatter Kind = "scatter"
	KindPie     Kind = "pie"
	KindHist    Kind = "hist"
)

// Figure collects plot calls made by generated code. A figure holds one
// plot; a later plot call replaces the previous one, label and title calls
// may arrive in any order relative to it.
type Figure struct {
	outputDir string
	headless  bool

	kind   Kind
	title  string
	xlabel string
	ylabel string

	catX   []string  // bar/line category axis
	series []float64 // bar/line/hist values
	scatX  []float64
	scatY  []float64
	labels []string // pie slice names
	bins   int

	renderedPath string
}

// New builds a figure that renders into outputDir. In headless mode Show
// only writes the file; otherwise it also hands the file to the platform
// opener.
func New(outputDir string, headless bool) *Figure {
	return &Figure{outputDir: outputDir, headless: headless}
}

func (f *Figure) Bar(x []string, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("bar: %d labels vs %d values", len(x), len(y))
	}
	f.kind = KindBar
	f.catX = x
	f.series = y
	return nil
}

func (f *Figure) Line(x []string, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("line: %d labels vs %d values", len(x), len(y))
	}
	f.kind = KindLine
	f.catX = x
	f.series = y
	return nil
}

func (f *Figure) Scatter(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("scatter: %d x values vs %d y values", len(x), len(y))
	}
	f.kind = KindScatter
	f.scatX = x
	f.scatY = y
	return nil
}

func (f *Figure) Pie(labels []string, values []float64) error {
	if len(labels) != len(values) {
		return fmt.Errorf("pie: %d labels vs %d values", len(labels), len(values))
	}
	f.kind = KindPie
	f.labels = labels
	f.series = values
	return nil
}

func (f *Figure) Hist(values []float64, bins int) error {
	if bins <= 0 {
		bins = 10
	}
	f.kind = KindHist
	f.series = values
	f.bins = bins
	return nil
}

func (f *Figure) Title(s string)  { f.title = s }
func (f *Figure) XLabel(s string) { f.xlabel = s }
func (f *Figure) YLabel(s string) { f.ylabel = s }

// RenderedPath returns the HTML file written by the last Show, or "".
func (f *Figure) RenderedPath() string { return f.renderedPath }

// histogram computes equal-width bins over the values. Degenerate input
// (all values equal) collapses into a single bin.
func histogram(values []float64, bins int) (labels []string, counts []float64) {
	if len(values) == 0 {
		return nil, nil
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		return []string{formatBound(lo)}, []float64{float64(len(values))}
	}
	width := (hi - lo) / float64(bins)
	counts = make([]float64, bins)
	for _, v := range values {
		i := int(math.Floor((v - lo) / width))
		if i >= bins {
			i = bins - 1
		}
		counts[i]++
	}
	labels = make([]string, bins)
	for i := range labels {
		labels[i] = fmt.Sprintf("%s-%s", formatBound(lo+float64(i)*width), formatBound(lo+float64(i+1)*width))
	}
	return labels, counts
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
