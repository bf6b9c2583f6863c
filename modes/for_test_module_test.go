package modes

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/snek/logs"
)

func TestForTest(t *testing.T) {
	dscope.New(ForTest(t)).Call(func(
		got *testing.T,
		mode Mode,
		writer logs.Writer,
	) {
		if got != t {
			t.Fatal()
		}
		if mode != ModeDevelopment {
			t.Fatalf("got %v", mode)
		}
		if writer == nil {
			t.Fatal()
		}
	})
}
