// Package sandbox runs model-generated Starlark against the loaded
// dataset. Exactly three names are bound: df (the dataset), plt (the
// figure) and pd (tabular helpers). Built-ins outside a fixed allow-list
// are shadowed by stubs that fail when called. This is a convenience
// restriction against accidental misuse of unrelated process state, not a
// security boundary: the code runs in-process and can reach anything
// explicitly bound into its namespace.
package sandbox

import (
	"errors"
	"fmt"

	"go.starlark.net/starlark"

	"github.com/KaramelBytes/chartloom-cli/internal/chart"
	"github.com/KaramelBytes/chartloom-cli/internal/dataset"
)

// allowedBuiltins is the fixed allow-list of callable built-ins.
var allowedBuiltins = []string{
	"len", "str", "int", "float", "list", "dict",
	"range", "enumerate", "zip", "max", "min", "sum",
}

// disabledBuiltins covers every other universe built-in. Each is shadowed
// so a call fails at execution time with a clear message.
var disabledBuiltins = []string{
	"abs", "any", "all", "bool", "bytes", "chr", "dir", "fail",
	"getattr", "hasattr", "hash", "ord", "print", "repr",
	"reversed", "set", "sorted", "tuple", "type",
}

// Run executes one code text as a single unit. Side effects performed
// before a fault (a partially built figure) are not undone.
func Run(code string, ds *dataset.Dataset, fig *chart.Figure) error {
	predeclared := starlark.StringDict{
		"df":  &frame{ds: ds},
		"plt": pltModule(fig),
		"pd":  pdModule(),
	}
	for _, name := range disabledBuiltins {
		name := name
		predeclared[name] = starlark.NewBuiltin(name, func(_ *starlark.Thread, _ *starlark.Builtin, _ starlark.Tuple, _ []starlark.Tuple) (starlark.Value, error) {
			return nil, fmt.Errorf("%s is not available in the chart sandbox", name)
		})
	}

	thread := &starlark.Thread{Name: "viz"}
	if _, err := starlark.ExecFile(thread, "viz.star", code, predeclared); err != nil {
		var evalErr *starlark.EvalError
		if errors.As(err, &evalErr) {
			return fmt.Errorf("%s", evalErr.Backtrace())
		}
		return err
	}
	return nil
}

// Allowed reports whether a built-in name is on the allow-list.
func Allowed(name string) bool {
	for _, n := range allowedBuiltins {
		if n == name {
			return true
		}
	}
	return false
}
