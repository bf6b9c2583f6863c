package modes

import (
	"os"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/snek/logs"
)

type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) T() *testing.T {
	return nil
}

func (ModuleForProduction) Mode() Mode {
	return ModeProduction
}

func (ModuleForProduction) Writer() logs.Writer {
	return os.Stderr
}
