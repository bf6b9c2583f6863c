package modes

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/snek/logs"
)

type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

// ForTest routes logs to the test output.
func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}

func (m ModuleForTest) Mode() Mode {
	return ModeDevelopment
}

func (m ModuleForTest) Writer() logs.Writer {
	return m.t.Output()
}
