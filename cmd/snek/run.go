package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/reusee/snek/logs"
	"github.com/reusee/snek/snekconfigs"
	"github.com/reusee/snek/snekpy"
	"github.com/reusee/snek/snekvm"
)

const compiledSuffix = ".compiled"

// Run executes a script. Files ending in .compiled hold dumped code and
// are executed without compiling.
type Run func(ctx context.Context, interp *snekvm.Interpreter, name string, source io.Reader) error

func (Module) Run(
	logger logs.Logger,
	dump snekconfigs.DumpFormat,
) Run {
	return func(ctx context.Context, interp *snekvm.Interpreter, name string, source io.Reader) error {
		content, err := io.ReadAll(source)
		if err != nil {
			return err
		}

		var code *snekvm.Code
		if strings.HasSuffix(name, compiledSuffix) {
			code, err = snekvm.DecodeCode(bytes.NewReader(content), detectFormat(content))
			if err != nil {
				return fmt.Errorf("decode %s: %w", name, err)
			}
		} else {
			code, err = snekpy.Compile(name, bytes.NewReader(content))
			if err != nil {
				return err
			}
			if dump != "" {
				if err := dumpCode(name, code, string(dump)); err != nil {
					return err
				}
				logger.InfoContext(ctx, "dumped",
					"path", name+compiledSuffix,
					"format", dump,
				)
			}
		}

		_, err = interp.Exec(ctx, code)
		return err
	}
}

func dumpCode(name string, code *snekvm.Code, formatName string) error {
	if strings.HasPrefix(name, "<") {
		return fmt.Errorf("cannot dump %s", name)
	}
	format, err := snekvm.ParseFormat(formatName)
	if err != nil {
		return err
	}
	buf := new(bytes.Buffer)
	if err := snekvm.EncodeCode(buf, code, format); err != nil {
		return err
	}
	return os.WriteFile(name+compiledSuffix, buf.Bytes(), 0644)
}

// detectFormat tells CBOR from YAML by the first byte: an encoded code
// unit is a CBOR map, YAML is text.
func detectFormat(content []byte) snekvm.Format {
	if len(content) > 0 && content[0] >= 0xa0 {
		return snekvm.FormatCBOR
	}
	return snekvm.FormatYAML
}

// printError writes the traceback of script errors and the message of
// anything else.
func printError(w io.Writer, err error) {
	var e *snekvm.Error
	if errors.As(err, &e) {
		fmt.Fprintln(w, e.FormatTraceback())
		return
	}
	fmt.Fprintln(w, err)
}
