package snekvm

import (
	"fmt"
	"math/big"
	"strconv"
)

// Instr is one compiled instruction. Arg is nil when the opcode takes no operand.
type Instr struct {
	Op  OpCode
	Arg Literal
}

func (i Instr) String() string {
	if i.Arg == nil {
		return i.Op.String()
	}
	return fmt.Sprintf("%s %v", i.Op, i.Arg)
}

// Literal is an inline instruction operand.
type Literal interface {
	literal()
}

type (
	StrLit     string
	BytesLit   string
	FloatLit   float64
	BoolLit    bool
	ComplexLit complex128
	CountLit   int
	NoneLit    struct{}
	ListLit    []Literal
	IntLit     struct {
		Value *big.Int
	}
	CodeLit struct {
		Code *Code
	}
)

func (StrLit) literal()     {}
func (BytesLit) literal()   {}
func (FloatLit) literal()   {}
func (BoolLit) literal()    {}
func (ComplexLit) literal() {}
func (CountLit) literal()   {}
func (NoneLit) literal()    {}
func (ListLit) literal()    {}
func (IntLit) literal()     {}
func (CodeLit) literal()    {}

func (i IntLit) String() string {
	return i.Value.String()
}

func (b BytesLit) String() string {
	return "b" + strconv.Quote(string(b))
}

func (c CodeLit) String() string {
	return "<code " + c.Code.Name + ">"
}

func Int64Lit(v int64) IntLit {
	return IntLit{Value: big.NewInt(v)}
}

// Code is an immutable compiled unit.
type Code struct {
	Name      string
	Filename  string
	FirstLine int
	Instrs    []Instr
	// VarNames are the fast locals: positional args, keyword-only args,
	// the *args name, the **kwargs name, then other locals.
	VarNames []string
	ArgNames []string
	KwOnly   []string
	VarArgs  string
	VarKw    string
}

func (c *Code) Disassemble() string {
	var ret []byte
	for i, instr := range c.Instrs {
		ret = fmt.Appendf(ret, "%4d %s\n", i, instr)
	}
	return string(ret)
}

// StraightLine reports whether the code can be executed one instruction at
// a time with ExecOne.
func (c *Code) StraightLine() bool {
	for _, instr := range c.Instrs {
		if instr.Op.Jump() {
			return false
		}
	}
	return true
}
