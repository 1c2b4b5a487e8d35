package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// loadJSON reads an array of record objects. Column order follows the key
// order of the first object that mentions each key; keys absent from a
// record yield nulls.
func loadJSON(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read json: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("read json: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, fmt.Errorf("json dataset must be an array of record objects")
	}

	var order []string
	known := map[string]bool{}
	var rows []map[string]any
	for dec.More() {
		if _, err := dec.Token(); err != nil { // '{'
			return nil, fmt.Errorf("read record %d: %w", len(rows)+1, err)
		}
		rec := map[string]any{}
		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("read record %d: %w", len(rows)+1, err)
			}
			key, ok := kt.(string)
			if !ok {
				return nil, fmt.Errorf("record %d: non-string key", len(rows)+1)
			}
			var v any
			if err := dec.Decode(&v); err != nil {
				return nil, fmt.Errorf("record %d key %q: %w", len(rows)+1, key, err)
			}
			if !known[key] {
				known[key] = true
				order = append(order, key)
			}
			rec[key] = v
		}
		if _, err := dec.Token(); err != nil { // '}'
			return nil, fmt.Errorf("read record %d: %w", len(rows)+1, err)
		}
		rows = append(rows, rec)
	}

	cols := make([]Column, 0, len(order))
	for _, name := range order {
		cols = append(cols, buildJSONColumn(name, rows))
	}
	return New(cols)
}

func buildJSONColumn(name string, rows []map[string]any) Column {
	allInt, allNum, allBool := true, true, true
	seen := false
	for _, rec := range rows {
		v, ok := rec[name]
		if !ok || v == nil {
			continue
		}
		seen = true
		switch x := v.(type) {
		case json.Number:
			allBool = false
			if _, err := strconv.ParseInt(x.String(), 10, 64); err != nil {
				allInt = false
			}
		case bool:
			allInt, allNum = false, false
		default:
			allInt, allNum, allBool = false, false, false
		}
	}
	dt := Object
	switch {
	case !seen:
		dt = Object
	case allInt:
		dt = Int64
	case allNum:
		dt = Float64
	case allBool:
		dt = Bool
	}

	vals := make([]any, len(rows))
	for i, rec := range rows {
		v, ok := rec[name]
		if !ok || v == nil {
			continue
		}
		switch dt {
		case Int64:
			n, _ := v.(json.Number).Int64()
			vals[i] = n
		case Float64:
			f, _ := v.(json.Number).Float64()
			vals[i] = f
		case Bool:
			vals[i] = v.(bool)
		default:
			vals[i] = stringifyJSON(v)
		}
	}
	return Column{Name: name, DType: dt, Values: vals}
}

// stringifyJSON renders a scalar (or nested value) for an object column.
func stringifyJSON(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	}
}
