package debugs

import (
	"context"

	"github.com/reusee/snek/logs"
	"github.com/reusee/snek/snekvm"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL on stdin over a snapshot of globals.
type Tap func(ctx context.Context, what string, rt *snekvm.Runtime, globals *snekvm.Handle) error

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, rt *snekvm.Runtime, globals *snekvm.Handle) error {
		mappings, err := tapGlobals(rt, globals)
		if err != nil {
			return err
		}

		logger.InfoContext(ctx, "tap: "+what,
			"globals", mappings.Keys(),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "tap",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
			GlobalReassign:  true,
		}, thread, mappings)
		return nil
	}
}

func tapGlobals(rt *snekvm.Runtime, globals *snekvm.Handle) (starlark.StringDict, error) {
	dict, ok := globals.Value().(*snekvm.PyDict)
	if !ok {
		return nil, snekvm.NewError(snekvm.TypeError, "globals must be a dict, not '%s'", rt.TypeName(globals))
	}

	mappings := make(starlark.StringDict)
	keys, values := dict.Entries()
	for i, key := range keys {
		name, ok := key.Value().(*snekvm.PyStr)
		if !ok || name.Value == "__builtins__" {
			continue
		}
		value, err := toStarlarkValue(rt, values[i])
		if err != nil {
			return nil, err
		}
		mappings[name.Value] = value
	}

	mappings["snek_repr"] = starlarkutil.MakeFunc("snek_repr", func(name string) string {
		for i, key := range keys {
			if s, ok := key.Value().(*snekvm.PyStr); ok && s.Value == name {
				repr, err := rt.ReprOf(values[i])
				if err != nil {
					return err.Error()
				}
				return repr
			}
		}
		return "<undefined " + name + ">"
	})
	return mappings, nil
}
