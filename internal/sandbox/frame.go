package sandbox

import (
	"fmt"

	"go.starlark.net/starlark"

	"github.com/KaramelBytes/chartloom-cli/internal/dataset"
)

// frame exposes a dataset to generated code as the conventional 'df' name.
// df["col"] yields the column values as a list, df.columns the ordered
// names, df.head(n) the first n rows as dicts.
type frame struct {
	ds *dataset.Dataset
}

var (
	_ starlark.Value    = (*frame)(nil)
	_ starlark.Mapping  = (*frame)(nil)
	_ starlark.HasAttrs = (*frame)(nil)
)

func (f *frame) String() string {
	return fmt.Sprintf("<dataframe %d rows x %d columns>", f.ds.Rows(), f.ds.NumCols())
}
func (f *frame) Type() string          { return "dataframe" }
func (f *frame) Freeze()               {}
func (f *frame) Truth() starlark.Bool  { return f.ds.Rows() > 0 }
func (f *frame) Hash() (uint32, error) { return 0, fmt.Errorf("unhashable type: dataframe") }

// Get implements df["col"].
func (f *frame) Get(k starlark.Value) (starlark.Value, bool, error) {
	name, ok := starlark.AsString(k)
	if !ok {
		return nil, false, fmt.Errorf("dataframe index must be a column name string, got %s", k.Type())
	}
	col, ok := f.ds.Column(name)
	if !ok {
		return nil, false, fmt.Errorf("unknown column %q", name)
	}
	vals := make([]starlark.Value, len(col.Values))
	for i, v := range col.Values {
		vals[i] = toStarlark(v)
	}
	return starlark.NewList(vals), true, nil
}

func (f *frame) Attr(name string) (starlark.Value, error) {
	switch name {
	case "columns":
		names := f.ds.Names()
		vals := make([]starlark.Value, len(names))
		for i, n := range names {
			vals[i] = starlark.String(n)
		}
		return starlark.NewList(vals), nil
	case "head":
		return starlark.NewBuiltin("head", f.head), nil
	}
	return nil, nil
}

func (f *frame) AttrNames() []string { return []string{"columns", "head"} }

func (f *frame) head(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	n := 5
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "n?", &n); err != nil {
		return nil, err
	}
	if n < 0 {
		n = 0
	}
	if n > f.ds.Rows() {
		n = f.ds.Rows()
	}
	rows := make([]starlark.Value, 0, n)
	for i := 0; i < n; i++ {
		d := starlark.NewDict(f.ds.NumCols())
		for _, col := range f.ds.Columns() {
			if err := d.SetKey(starlark.String(col.Name), toStarlark(col.Values[i])); err != nil {
				return nil, err
			}
		}
		rows = append(rows, d)
	}
	return starlark.NewList(rows), nil
}

func toStarlark(v any) starlark.Value {
	switch x := v.(type) {
	case nil:
		return starlark.None
	case int64:
		return starlark.MakeInt64(x)
	case float64:
		return starlark.Float(x)
	case bool:
		return starlark.Bool(x)
	case string:
		return starlark.String(x)
	}
	return starlark.String(fmt.Sprint(v))
}
