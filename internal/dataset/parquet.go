package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"
)

// loadParquet reads all rows of a parquet file. Column order comes from the
// file schema; leaf values are normalized to the dataset's scalar types.
func loadParquet(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat parquet: %w", err)
	}
	pf, err := parquet.OpenFile(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}

	var order []string
	for _, field := range pf.Schema().Fields() {
		order = append(order, field.Name())
	}

	reader := parquet.NewReader(pf)
	defer reader.Close()
	var rows []map[string]any
	for {
		row := make(map[string]any)
		if err := reader.Read(&row); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read parquet row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, row)
	}

	cols := make([]Column, 0, len(order))
	for _, name := range order {
		cols = append(cols, buildParquetColumn(name, rows))
	}
	return New(cols)
}

func buildParquetColumn(name string, rows []map[string]any) Column {
	allInt, allNum, allBool := true, true, true
	seen := false
	for _, rec := range rows {
		v := rec[name]
		if v == nil {
			continue
		}
		seen = true
		switch v.(type) {
		case int32, int64:
			allBool = false
		case float32, float64:
			allInt, allBool = false, false
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
		v := rec[name]
		if v == nil {
			continue
		}
		switch dt {
		case Int64:
			switch x := v.(type) {
			case int32:
				vals[i] = int64(x)
			case int64:
				vals[i] = x
			}
		case Float64:
			switch x := v.(type) {
			case int32:
				vals[i] = float64(x)
			case int64:
				vals[i] = float64(x)
			case float32:
				vals[i] = float64(x)
			case float64:
				vals[i] = x
			}
		case Bool:
			vals[i] = v.(bool)
		default:
			switch x := v.(type) {
			case string:
				vals[i] = x
			case []byte:
				vals[i] = string(x)
			default:
				vals[i] = fmt.Sprint(x)
			}
		}
	}
	return Column{Name: name, DType: dt, Values: vals}
}
