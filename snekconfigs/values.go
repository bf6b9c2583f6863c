package snekconfigs

import (
	"github.com/reusee/snek/cmds"
	"github.com/reusee/snek/configs"
	"github.com/reusee/snek/snekvm"
	"github.com/reusee/snek/vars"
)

type RecursionLimit int

var _ configs.Configurable = RecursionLimit(0)

func (RecursionLimit) SnekConfigurable() {}

var recursionLimitFlag = cmds.Var[int]("-recursion-limit", "maximum frame depth")

func (Module) RecursionLimit(
	loader configs.Loader,
) RecursionLimit {
	return RecursionLimit(vars.FirstNonZero(
		*recursionLimitFlag,
		configs.First[int](loader, "recursion_limit"),
		snekvm.DefaultRecursionLimit,
	))
}

type TraceInstructions bool

var _ configs.Configurable = TraceInstructions(false)

func (TraceInstructions) SnekConfigurable() {}

var traceFlag = cmds.Switch("-trace", "log every executed instruction")

func (Module) TraceInstructions(
	loader configs.Loader,
) TraceInstructions {
	return TraceInstructions(*traceFlag ||
		configs.First[bool](loader, "trace_instructions"))
}

// DumpFormat names the encoding of compiled code written next to a script.
// Empty disables dumping.
type DumpFormat string

var _ configs.Configurable = DumpFormat("")

func (DumpFormat) SnekConfigurable() {}

var dumpFlag = cmds.Var[string]("-dump", "write compiled code as yaml or cbor")

func (Module) DumpFormat(
	loader configs.Loader,
) DumpFormat {
	return DumpFormat(vars.FirstNonZero(
		*dumpFlag,
		configs.First[string](loader, "dump_format"),
	))
}

type Prompt string

var _ configs.Configurable = Prompt("")

func (Prompt) SnekConfigurable() {}

var promptFlag = cmds.Var[string]("-prompt", "interactive prompt")

func (Module) Prompt(
	loader configs.Loader,
) Prompt {
	return Prompt(vars.FirstNonZero(
		*promptFlag,
		configs.First[string](loader, "prompt"),
		">>> ",
	))
}
