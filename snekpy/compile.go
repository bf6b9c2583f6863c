package snekpy

import (
	"errors"
	"io"

	"github.com/reusee/snek/snekvm"
	"go.starlark.net/syntax"
)

// Compile parses a module from source and compiles it.
func Compile(name string, source io.Reader) (*snekvm.Code, error) {
	return compile(name, source, false)
}

// CompileInteractive compiles source read at a prompt. Top-level
// expression statements print their value.
func CompileInteractive(name string, source io.Reader) (*snekvm.Code, error) {
	return compile(name, source, true)
}

func compile(name string, source io.Reader, interactive bool) (*snekvm.Code, error) {
	file, err := fileOptions.Parse(name, source, 0)
	if err != nil {
		return nil, syntaxError(err)
	}

	c := newCompiler(&snekvm.Code{
		Name:      "<module>",
		Filename:  name,
		FirstLine: 1,
	}, false)
	c.interactive = interactive
	if err := c.compileStmts(file.Stmts); err != nil {
		return nil, err
	}
	return c.finish(), nil
}

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
	Recursion:       true,
}

func syntaxError(err error) error {
	var e *snekvm.Error
	if errors.As(err, &e) {
		return err
	}
	return snekvm.NewError(snekvm.SyntaxError, "%s", err.Error())
}
