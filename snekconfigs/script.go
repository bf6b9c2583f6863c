package snekconfigs

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/reusee/dscope"
	"github.com/reusee/snek/configs"
	"github.com/reusee/snek/snekpy"
	"github.com/reusee/snek/snekvm"
)

// ScriptFork runs the snek.py config scripts and forks scope with the
// config values they assign. Scripts run from the most global to the most
// local, so local assignments win.
func ScriptFork(ctx context.Context, scope dscope.Scope) (dscope.Scope, error) {
	paths := configPaths("snek.py", ".snek.py")
	slices.Reverse(paths)
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return scope, err
		}
		scope, err = scriptFork(ctx, scope, path, content)
		if err != nil {
			return scope, err
		}
	}
	return scope, nil
}

func scriptFork(ctx context.Context, scope dscope.Scope, name string, content []byte) (dscope.Scope, error) {
	code, err := snekpy.Compile(name, bytes.NewReader(content))
	if err != nil {
		return scope, fmt.Errorf("config %s: %w", name, err)
	}
	interp := snekvm.NewInterpreter(snekvm.NewRuntime())
	if _, err := interp.Exec(ctx, code); err != nil {
		return scope, fmt.Errorf("config %s: %w", name, err)
	}
	return configs.ScriptFork(scope, interp)
}
