package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/reusee/snek/debugs"
	"github.com/reusee/snek/logs"
	"github.com/reusee/snek/snekconfigs"
	"github.com/reusee/snek/snekvm"
)

type Stdout io.Writer

func (Module) Stdout() Stdout {
	return os.Stdout
}

// NewInterpreter creates an interpreter configured from flags and config
// files. breakpoint() opens the debug tap.
type NewInterpreter func(ctx context.Context) *snekvm.Interpreter

func (Module) NewInterpreter(
	logger logs.Logger,
	limit snekconfigs.RecursionLimit,
	trace snekconfigs.TraceInstructions,
	tap debugs.Tap,
	stdout Stdout,
) NewInterpreter {
	return func(ctx context.Context) *snekvm.Interpreter {
		if trace {
			logs.SetLevel(slog.LevelDebug)
		}
		rt := snekvm.NewRuntime(
			snekvm.WithStdout(stdout),
			snekvm.WithBreakpoint(func(rt *snekvm.Runtime, globals *snekvm.Handle) error {
				return tap(ctx, "breakpoint", rt, globals)
			}),
		)
		return snekvm.NewInterpreter(rt,
			snekvm.WithLogger(logger),
			snekvm.WithRecursionLimit(int(limit)),
			snekvm.WithTrace(bool(trace)),
		)
	}
}
