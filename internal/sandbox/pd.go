package sandbox

import (
	"sort"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

// pdModule exposes a few tabular helpers mirroring the operations the
// prompt advertises: unique, value_counts, to_number.
func pdModule() *starlarkstruct.Module {
	members := starlark.StringDict{
		"unique": starlark.NewBuiltin("unique", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var sv starlark.Value
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "seq", &sv); err != nil {
				return nil, err
			}
			items, err := iterate(sv)
			if err != nil {
				return nil, err
			}
			seen := map[string]bool{}
			var out []starlark.Value
			for _, item := range items {
				key := item.String()
				if seen[key] {
					continue
				}
				seen[key] = true
				out = append(out, item)
			}
			return starlark.NewList(out), nil
		}),
		"value_counts": starlark.NewBuiltin("value_counts", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var sv starlark.Value
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "seq", &sv); err != nil {
				return nil, err
			}
			items, err := iterate(sv)
			if err != nil {
				return nil, err
			}
			counts := map[string]int{}
			firstSeen := map[string]int{}
			keyVal := map[string]starlark.Value{}
			var order []string
			for _, item := range items {
				key := item.String()
				if _, ok := counts[key]; !ok {
					firstSeen[key] = len(order)
					order = append(order, key)
					keyVal[key] = item
				}
				counts[key]++
			}
			// Descending count, ties by first encounter, like a frequency table.
			sort.SliceStable(order, func(i, j int) bool {
				if counts[order[i]] != counts[order[j]] {
					return counts[order[i]] > counts[order[j]]
				}
				return firstSeen[order[i]] < firstSeen[order[j]]
			})
			d := starlark.NewDict(len(order))
			for _, key := range order {
				if err := d.SetKey(keyVal[key], starlark.MakeInt(counts[key])); err != nil {
					return nil, err
				}
			}
			return d, nil
		}),
		"to_number": starlark.NewBuiltin("to_number", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var sv starlark.Value
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "seq", &sv); err != nil {
				return nil, err
			}
			items, err := iterate(sv)
			if err != nil {
				return nil, err
			}
			out := make([]starlark.Value, len(items))
			for i, item := range items {
				if item == starlark.None {
					out[i] = starlark.None
					continue
				}
				f, err := asFloat(item)
				if err != nil {
					return nil, err
				}
				out[i] = starlark.Float(f)
			}
			return starlark.NewList(out), nil
		}),
	}
	return &starlarkstruct.Module{Name: "pd", Members: members}
}
