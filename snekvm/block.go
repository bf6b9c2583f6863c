package snekvm

import "fmt"

// MaxBlockDepth bounds the block stack of one frame.
const MaxBlockDepth = 20

type blockKind uint8

const (
	blockLoop blockKind = iota
	blockExcept
	blockFinally
	blockExceptHandler
)

// block records an active loop or try construct. level is the operand
// stack depth to restore when the block unwinds.
type block struct {
	kind    blockKind
	handler int
	level   int
	// exc is the exception being handled, for blockExceptHandler.
	exc *Handle
}

func (f *PyFrame) pushBlock(kind blockKind, handler int) {
	if len(f.blocks) >= MaxBlockDepth {
		panic(fmt.Errorf("%w: %s line %d", errFatalBlockDepth, f.Code.Name, f.Line))
	}
	f.blocks = append(f.blocks, block{
		kind:    kind,
		handler: handler,
		level:   len(f.stack),
	})
}

func (f *PyFrame) popBlock() (block, bool) {
	if len(f.blocks) == 0 {
		return block{}, false
	}
	b := f.blocks[len(f.blocks)-1]
	f.blocks = f.blocks[:len(f.blocks)-1]
	return b, true
}

// handling returns the innermost exception being handled in this frame.
func (f *PyFrame) handling() *Handle {
	for i := len(f.blocks) - 1; i >= 0; i-- {
		if f.blocks[i].kind == blockExceptHandler {
			return f.blocks[i].exc
		}
	}
	return nil
}

// why is the reason control leaves the normal instruction sequence.
// Values are pushed as ints for finally handlers, so the order is fixed.
type why uint8

const (
	whyNot why = iota
	whyException
	whyReturn
	whyBreak
	whyContinue
	// whyAbort leaves every frame of the current run without unwinding blocks.
	whyAbort
)

type signal struct {
	why    why
	value  *Handle
	target int
	err    *Error
	abort  error
}

func raised(err error) signal {
	return signal{
		why: whyException,
		err: asError(err),
	}
}

// unwind pops blocks of f until one of them takes control. It returns the
// zero signal when execution continues in f.
func (i *Interpreter) unwind(f *PyFrame, sig signal) signal {
	rt := i.rt
	for sig.why != whyNot {
		if len(f.blocks) == 0 {
			switch sig.why {
			case whyBreak:
				return raised(NewError(SystemError, "'break' outside loop"))
			case whyContinue:
				return raised(NewError(SystemError, "'continue' not properly in loop"))
			}
			return sig
		}

		b := f.blocks[len(f.blocks)-1]
		if sig.why == whyContinue && b.kind == blockLoop {
			f.LastI = sig.target
			return signal{}
		}
		f.blocks = f.blocks[:len(f.blocks)-1]
		f.truncate(b.level)

		switch {
		case b.kind == blockExceptHandler:
			continue

		case b.kind == blockLoop:
			if sig.why == whyBreak {
				f.LastI = b.handler
				return signal{}
			}

		case sig.why == whyException:
			exc := rt.exceptionOf(sig.err)
			if b.kind == blockExcept {
				f.pushBlock(blockExceptHandler, -1)
				f.blocks[len(f.blocks)-1].exc = exc
			}
			f.push(exc)
			f.LastI = b.handler
			return signal{}

		case b.kind == blockFinally:
			switch sig.why {
			case whyReturn:
				f.push(sig.value)
			case whyContinue:
				f.push(rt.IntFromInt64(int64(sig.target)))
			}
			f.push(rt.IntFromInt64(int64(sig.why)))
			f.LastI = b.handler
			return signal{}
		}
	}
	return sig
}

// endFinally resumes the control transfer suspended by a finally handler.
func (i *Interpreter) endFinally(f *PyFrame) signal {
	marker := f.pop()
	switch v := marker.value.(type) {
	case *PyNone:
		return signal{}
	case *PyException:
		return raised(i.rt.raise(marker))
	case *PyInt:
		sig := signal{
			why: why(v.Value.Int64()),
		}
		switch sig.why {
		case whyReturn:
			sig.value = f.pop()
		case whyContinue:
			sig.target = int(f.pop().value.(*PyInt).Value.Int64())
		case whyBreak:
		default:
			return raised(NewError(SystemError, "bad finally marker %d", sig.why))
		}
		return sig
	}
	return raised(NewError(SystemError, "bad finally marker %s", i.rt.TypeName(marker)))
}
