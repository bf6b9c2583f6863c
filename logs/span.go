package logs

import "github.com/google/uuid"

// Span identifies one unit of work, such as a script run or a REPL input.
type Span string

func (s Span) String() string {
	return string(s)
}

type spanKey struct{}

var SpanKey spanKey

func newSpanID() Span {
	return Span(uuid.NewString())
}
