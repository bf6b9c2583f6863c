package modes

import (
	"os"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/snek/logs"
)

func TestModuleForProduction(t *testing.T) {
	dscope.New(ForProduction()).Call(func(
		got *testing.T,
		mode Mode,
		writer logs.Writer,
	) {
		if got != nil {
			t.Fatal()
		}
		if mode != ModeProduction {
			t.Fatalf("got %v", mode)
		}
		if writer != logs.Writer(os.Stderr) {
			t.Fatal()
		}
		if mode.String() != "production" {
			t.Fatalf("got %v", mode)
		}
	})
}
