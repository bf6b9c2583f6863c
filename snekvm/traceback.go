package snekvm

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// TraceEntry locates one frame an error unwound through.
type TraceEntry struct {
	Filename string
	Line     int
	Name     string
}

func (t TraceEntry) String() string {
	return fmt.Sprintf("  File %q, line %d, in %s", t.Filename, t.Line, t.Name)
}

// FormatTraceback renders the traceback, most recent call last.
// Entries are recorded innermost first.
func (e *Error) FormatTraceback() string {
	b := new(strings.Builder)
	if len(e.Traceback) > 0 {
		b.WriteString("Traceback (most recent call last):\n")
		lines := lo.Map(e.Traceback, func(entry TraceEntry, _ int) string {
			return entry.String()
		})
		for i := len(lines) - 1; i >= 0; i-- {
			b.WriteString(lines[i])
			b.WriteByte('\n')
		}
	}
	b.WriteString(e.Error())
	return b.String()
}
