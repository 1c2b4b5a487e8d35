package profile

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxContextChars bounds the rendered context. Datasets wide enough to
// overflow it are rejected with an explicit error instead of silently
// producing an oversized prompt.
const MaxContextChars = 100000

// Render produces the fixed-section context document for a profile. Every
// section renders even when its body is empty, so the prompt framing stays
// identical across datasets.
func Render(p *DatasetProfile) (string, error) {
	var b strings.Builder

	b.WriteString("Dataset Information:\n")
	fmt.Fprintf(&b, "- Shape: %d rows, %d columns\n", p.Rows, p.Cols)
	fmt.Fprintf(&b, "- Columns: %s\n", strings.Join(p.Columns, ", "))

	b.WriteString("\nData Types:\n")
	for _, name := range p.Columns {
		fmt.Fprintf(&b, "- %s: %s\n", name, p.DTypes[name])
	}

	fmt.Fprintf(&b, "\nNumerical Columns: %s\n", strings.Join(p.NumericColumns, ", "))
	fmt.Fprintf(&b, "Categorical Columns: %s\n", strings.Join(p.CategoricalColumns, ", "))

	b.WriteString("\nSample Data (first 5 rows):\n")
	for _, name := range p.Columns {
		fmt.Fprintf(&b, "- %s: %s\n", name, sampleList(p.SampleRows[name]))
	}

	b.WriteString("\nBasic Statistics for Numerical Columns:\n")
	for _, name := range p.NumericColumns {
		s := p.ColumnProfiles[name].Numeric
		fmt.Fprintf(&b, "- %s: mean=%s, min=%s, max=%s\n",
			name, floatOrNA(s.Mean), floatOrNA(s.Min), floatOrNA(s.Max))
	}

	b.WriteString("\nBasic Statistics for Categorical Columns:\n")
	for _, name := range p.CategoricalColumns {
		s := p.ColumnProfiles[name].Categorical
		fmt.Fprintf(&b, "- %s: unique_count=%d, most_frequent=%s (appears %s times)\n",
			name, s.UniqueCount, stringOrNA(s.MostFrequent), intOrNA(s.MostFrequentCount))
	}

	out := b.String()
	if len(out) > MaxContextChars {
		return "", fmt.Errorf("dataset context is %d characters (limit %d); the dataset is too wide to describe in one prompt", len(out), MaxContextChars)
	}
	return out, nil
}

func sampleList(vals []any) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		if s, ok := v.(string); ok {
			parts[i] = "'" + s + "'"
			continue
		}
		parts[i] = ValueString(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func floatOrNA(f *float64) string {
	if f == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*f, 'g', -1, 64)
}

func stringOrNA(s *string) string {
	if s == nil {
		return "N/A"
	}
	return "'" + *s + "'"
}

func intOrNA(n *int) string {
	if n == nil {
		return "N/A"
	}
	return strconv.Itoa(*n)
}
