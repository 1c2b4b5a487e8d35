package dataset

import (
	"fmt"
	"strconv"
)

// inferDType picks the narrowest dtype that admits every non-empty value:
// all integers -> int64, all numbers -> float64, all booleans -> bool,
// anything else -> object. A column with no non-empty values is object.
func inferDType(raw []string) DType {
	allInt, allFloat, allBool := true, true, true
	seen := false
	for _, s := range raw {
		if s == "" {
			continue
		}
		seen = true
		if allInt {
			if _, err := strconv.ParseInt(s, 10, 64); err != nil {
				allInt = false
			}
		}
		if allFloat {
			if _, err := strconv.ParseFloat(s, 64); err != nil {
				allFloat = false
			}
		}
		if allBool {
			if !isBoolToken(s) {
				allBool = false
			}
		}
		if !allInt && !allFloat && !allBool {
			return Object
		}
	}
	if !seen {
		return Object
	}
	switch {
	case allInt:
		return Int64
	case allFloat:
		return Float64
	case allBool:
		return Bool
	default:
		return Object
	}
}

func isBoolToken(s string) bool {
	switch s {
	case "true", "false", "True", "False", "TRUE", "FALSE":
		return true
	}
	return false
}

// coerce converts a non-empty cell to the column's inferred dtype.
func coerce(s string, dt DType) (any, error) {
	switch dt {
	case Int64:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse int %q: %w", s, err)
		}
		return n, nil
	case Float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("parse float %q: %w", s, err)
		}
		return f, nil
	case Bool:
		switch s {
		case "true", "True", "TRUE":
			return true, nil
		case "false", "False", "FALSE":
			return false, nil
		}
		return nil, fmt.Errorf("parse bool %q", s)
	default:
		return s, nil
	}
}
