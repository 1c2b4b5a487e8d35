package sandbox

import (
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"

	"github.com/KaramelBytes/chartloom-cli/internal/chart"
)

// pltModule wraps a figure as the 'plt' namespace.
func pltModule(fig *chart.Figure) *starlarkstruct.Module {
	twoSeries := func(name string, draw func(x []string, y []float64) error) *starlark.Builtin {
		return starlark.NewBuiltin(name, func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var xv, yv starlark.Value
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "x", &xv, "y", &yv); err != nil {
				return nil, err
			}
			x, err := toStrings(xv)
			if err != nil {
				return nil, err
			}
			y, err := toFloats(yv)
			if err != nil {
				return nil, err
			}
			return starlark.None, draw(x, y)
		})
	}
	label := func(name string, set func(string)) *starlark.Builtin {
		return starlark.NewBuiltin(name, func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var s string
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "s", &s); err != nil {
				return nil, err
			}
			set(s)
			return starlark.None, nil
		})
	}

	members := starlark.StringDict{
		"bar":  twoSeries("bar", fig.Bar),
		"line": twoSeries("line", fig.Line),
		"pie":  twoSeries("pie", fig.Pie),
		"scatter": starlark.NewBuiltin("scatter", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var xv, yv starlark.Value
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "x", &xv, "y", &yv); err != nil {
				return nil, err
			}
			x, err := toFloats(xv)
			if err != nil {
				return nil, err
			}
			y, err := toFloats(yv)
			if err != nil {
				return nil, err
			}
			return starlark.None, fig.Scatter(x, y)
		}),
		"hist": starlark.NewBuiltin("hist", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var vv starlark.Value
			bins := 10
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "values", &vv, "bins?", &bins); err != nil {
				return nil, err
			}
			vals, err := toFloats(vv)
			if err != nil {
				return nil, err
			}
			return starlark.None, fig.Hist(vals, bins)
		}),
		"title":  label("title", fig.Title),
		"xlabel": label("xlabel", fig.XLabel),
		"ylabel": label("ylabel", fig.YLabel),
		"show": starlark.NewBuiltin("show", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}
			return starlark.None, fig.Show()
		}),
	}
	return &starlarkstruct.Module{Name: "plt", Members: members}
}
