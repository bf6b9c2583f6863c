package main

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/snek/logs"
	"github.com/reusee/snek/snekconfigs"
	"github.com/reusee/snek/snekpy"
	"github.com/reusee/snek/snekvm"
)

const continuationPrompt = "... "

// REPL reads statements from the terminal until EOF. Expression values are
// echoed, errors are printed and the session goes on.
type REPL func(ctx context.Context, interp *snekvm.Interpreter) error

func (Module) REPL(
	prompt snekconfigs.Prompt,
	newSpan logs.NewSpan,
) REPL {
	return func(ctx context.Context, interp *snekvm.Interpreter) error {
		var historyFile string
		if home, err := os.UserHomeDir(); err == nil {
			historyFile = filepath.Join(home, ".snek_history")
		}
		rl, err := readline.NewEx(&readline.Config{
			Prompt:      string(prompt),
			HistoryFile: historyFile,
		})
		if err != nil {
			return err
		}
		defer rl.Close()

		for {
			rl.SetPrompt(string(prompt))
			src, err := readStatement(rl.Readline, func() {
				rl.SetPrompt(continuationPrompt)
			})
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			if strings.TrimSpace(src) == "" {
				continue
			}
			spanCtx, _ := newSpan(ctx, "")
			if err := evalInteractive(spanCtx, interp, src); err != nil {
				printError(rl.Stderr(), err)
			}
		}
	}
}

// readStatement reads one line, or a block opened by a trailing colon and
// closed by an empty line.
func readStatement(readLine func() (string, error), continued func()) (string, error) {
	line, err := readLine()
	if err != nil {
		return "", err
	}
	if !strings.HasSuffix(strings.TrimSpace(line), ":") {
		return line + "\n", nil
	}
	b := new(strings.Builder)
	b.WriteString(line)
	b.WriteByte('\n')
	continued()
	for {
		line, err := readLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) == "" {
			break
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// evalInteractive runs straight-line input one instruction at a time on the
// persistent frame, and anything with jumps as a whole unit.
func evalInteractive(ctx context.Context, interp *snekvm.Interpreter, src string) error {
	code, err := snekpy.CompileInteractive("<stdin>", strings.NewReader(src))
	if err != nil {
		return err
	}
	if !code.StraightLine() {
		_, err := interp.Exec(ctx, code)
		return err
	}
	for _, instr := range code.Instrs {
		if _, err := interp.ExecOne(ctx, instr); err != nil {
			return err
		}
	}
	return nil
}
