package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/snek/cmds"
	"github.com/reusee/snek/logs"
	"github.com/reusee/snek/modes"
	"github.com/reusee/snek/snekconfigs"
	"golang.org/x/term"
)

var (
	sourceFlag = cmds.Var[string]("-c", "program passed in as string")
	files      []string
)

func init() {
	cmds.Args(func(arg string) error {
		if len(files) > 0 {
			return fmt.Errorf("unexpected argument: %s", arg)
		}
		files = append(files, arg)
		return nil
	})
}

func main() {
	cmds.Execute(os.Args[1:])

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	scope := dscope.New(
		new(Module),
	).Fork(
		modes.ForProduction(),
	)
	scope, err := snekconfigs.ScriptFork(ctx, scope)
	ce(err)

	var status int
	scope.Call(func(
		newSpan logs.NewSpan,
		newInterpreter NewInterpreter,
		run Run,
		repl REPL,
	) {
		ctx, _ := newSpan(ctx, "")
		interp := newInterpreter(ctx)

		switch {

		case *sourceFlag != "":
			err = run(ctx, interp, "<string>", strings.NewReader(*sourceFlag))

		case len(files) > 0:
			var f *os.File
			f, err = os.Open(files[0])
			if err == nil {
				defer f.Close()
				err = run(ctx, interp, files[0], f)
			}

		case term.IsTerminal(int(os.Stdin.Fd())):
			err = repl(ctx, interp)

		default:
			err = run(ctx, interp, "<stdin>", os.Stdin)

		}

		if err != nil {
			printError(os.Stderr, err)
			status = 1
		}
	})
	os.Exit(status)
}

func ce(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
