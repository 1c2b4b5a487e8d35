package sandbox

import (
	"fmt"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
)

// iterate collects an iterable into a slice of values.
func iterate(v starlark.Value) ([]starlark.Value, error) {
	it := starlark.Iterate(v)
	if it == nil {
		return nil, fmt.Errorf("expected an iterable, got %s", v.Type())
	}
	defer it.Done()
	var out []starlark.Value
	var x starlark.Value
	for it.Next(&x) {
		out = append(out, x)
	}
	return out, nil
}

// toFloats converts an iterable of numbers (or numeric strings) to floats.
func toFloats(v starlark.Value) ([]float64, error) {
	items, err := iterate(v)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(items))
	for i, item := range items {
		f, err := asFloat(item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = f
	}
	return out, nil
}

func asFloat(v starlark.Value) (float64, error) {
	switch x := v.(type) {
	case starlark.Float:
		return float64(x), nil
	case starlark.Int:
		f, _ := starlark.AsFloat(x)
		return f, nil
	case starlark.Bool:
		if bool(x) {
			return 1, nil
		}
		return 0, nil
	case starlark.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(x)), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to a number", string(x))
		}
		return f, nil
	}
	return 0, fmt.Errorf("cannot convert %s to a number", v.Type())
}

// toStrings converts an iterable of scalars to display strings.
func toStrings(v starlark.Value) ([]string, error) {
	items, err := iterate(v)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = scalarString(item)
	}
	return out, nil
}

func scalarString(v starlark.Value) string {
	if s, ok := starlark.AsString(v); ok {
		return s
	}
	return v.String()
}
