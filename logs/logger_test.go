package logs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestHandler(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Warn("test", "hello", "world!")
		if !strings.Contains(buf.String(), "hello=world!") {
			t.Fatalf("got %q", buf.String())
		}
		if !strings.Contains(buf.String(), "program=snek") {
			t.Fatalf("got %q", buf.String())
		}
	})
}

func TestLevel(t *testing.T) {
	defer SetLevel(slog.LevelWarn)
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Debug("hidden")
		if buf.Len() != 0 {
			t.Fatalf("got %q", buf.String())
		}
		SetLevel(slog.LevelDebug)
		logger.Debug("shown")
		if !strings.Contains(buf.String(), "shown") {
			t.Fatalf("got %q", buf.String())
		}
	})
}

func TestToJournalKey(t *testing.T) {
	if got := toJournalKey("logs.span"); got != "LOGS_SPAN" {
		t.Fatalf("got %v", got)
	}
}

func TestWrapSpan(t *testing.T) {
	err := errors.New("boom")
	if got := WrapSpan(context.Background(), err); got != err {
		t.Fatalf("got %v", got)
	}
	ctx := context.WithValue(context.Background(), SpanKey, Span("abc"))
	wrapped := WrapSpan(ctx, err)
	if !errors.Is(wrapped, err) {
		t.Fatalf("got %v", wrapped)
	}
	if wrapped.Error() != "span abc: boom" {
		t.Fatalf("got %v", wrapped)
	}
	if WrapSpan(ctx, nil) != nil {
		t.Fatal()
	}
}
