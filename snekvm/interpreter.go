package snekvm

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
)

const DefaultRecursionLimit = 1000

// Interpreter runs code on one frame chain. It is not safe for concurrent use.
type Interpreter struct {
	rt      *Runtime
	globals *Handle
	frames  []*Handle
	// single is the persistent frame of ExecOne.
	single *Handle
	ctx    context.Context

	Logger         *slog.Logger
	RecursionLimit int
	// Trace logs every executed instruction at debug level.
	Trace bool
}

type InterpreterOption func(*Interpreter)

func WithLogger(logger *slog.Logger) InterpreterOption {
	return func(i *Interpreter) {
		i.Logger = logger
	}
}

func WithRecursionLimit(n int) InterpreterOption {
	return func(i *Interpreter) {
		i.RecursionLimit = n
	}
}

func WithTrace(trace bool) InterpreterOption {
	return func(i *Interpreter) {
		i.Trace = trace
	}
}

func NewInterpreter(rt *Runtime, opts ...InterpreterOption) *Interpreter {
	i := &Interpreter{
		rt:             rt,
		globals:        rt.Dict(),
		Logger:         slog.New(slog.DiscardHandler),
		RecursionLimit: DefaultRecursionLimit,
	}
	for _, opt := range opts {
		opt(i)
	}
	globals := dictOf(i.globals)
	for name, value := range map[string]*Handle{
		"__name__":     rt.Str("__main__"),
		"__builtins__": rt.builtins,
	} {
		if err := globals.store(rt, rt.Str(name), value); err != nil {
			panic(err)
		}
	}
	rt.interp = i
	return i
}

func (i *Interpreter) Runtime() *Runtime {
	return i.rt
}

// Globals is the module namespace shared by Exec and ExecOne.
func (i *Interpreter) Globals() *Handle {
	return i.globals
}

// Get resolves name in the globals, then the builtins.
func (i *Interpreter) Get(name string) (*Handle, error) {
	if v, ok := dictOf(i.globals).lookupStr(name); ok {
		return v, nil
	}
	return i.rt.GetBuiltin(name)
}

// current returns the running frame, or nil outside execution.
func (i *Interpreter) current() *PyFrame {
	if len(i.frames) == 0 {
		return nil
	}
	return i.frames[len(i.frames)-1].value.(*PyFrame)
}

func (i *Interpreter) newFrame(code *Code, globals, locals *Handle) *PyFrame {
	f := &PyFrame{
		Code:     code,
		Globals:  globals,
		Locals:   locals,
		Builtins: i.rt.builtins,
		Fast:     make([]*Handle, len(code.VarNames)),
		Line:     code.FirstLine,
	}
	if len(i.frames) > 0 {
		f.Back = i.frames[len(i.frames)-1].Downgrade()
	}
	return f
}

func (i *Interpreter) pushFrame(fh *Handle) error {
	if len(i.frames) >= i.RecursionLimit {
		return NewError(RecursionError, "maximum recursion depth exceeded")
	}
	i.frames = append(i.frames, fh)
	i.Logger.DebugContext(i.ctx, "push frame",
		"code", fh.value.(*PyFrame).Code.Name,
		"depth", len(i.frames),
	)
	return nil
}

func (i *Interpreter) popFrame() {
	fh := i.frames[len(i.frames)-1]
	i.frames[len(i.frames)-1] = nil
	i.frames = i.frames[:len(i.frames)-1]
	i.Logger.DebugContext(i.ctx, "pop frame",
		"code", fh.value.(*PyFrame).Code.Name,
		"depth", len(i.frames),
	)
}

// Exec runs code as a module body in the interpreter globals.
func (i *Interpreter) Exec(ctx context.Context, code *Code) (*Handle, error) {
	fh := i.rt.Frame(i.newFrame(code, i.globals, i.globals))
	ret, err := i.run(ctx, fh)
	if err != nil {
		i.Logger.InfoContext(ctx, "unhandled exception",
			"code", code.Name,
			"error", err,
		)
		return nil, err
	}
	return ret, nil
}

// ExecOne executes a single non-jumping instruction in a persistent module
// frame. It returns the top of the operand stack, or nil when it is empty.
func (i *Interpreter) ExecOne(ctx context.Context, instr Instr) (*Handle, error) {
	if instr.Op.Jump() {
		return nil, NewError(SystemError, "%s cannot be executed outside a code unit", instr.Op)
	}
	code := &Code{
		Name:     "<module>",
		Filename: "<stdin>",
		Instrs:   []Instr{instr},
	}
	if i.single == nil {
		i.single = i.rt.Frame(i.newFrame(code, i.globals, i.globals))
	}
	f := i.single.value.(*PyFrame)
	f.Code = code
	f.LastI = 0
	if _, err := i.run(ctx, i.single); err != nil {
		f.truncate(0)
		f.blocks = f.blocks[:0]
		return nil, err
	}
	if len(f.stack) == 0 {
		return nil, nil
	}
	return f.top(), nil
}

// run executes entry and everything it calls until entry returns or raises.
func (i *Interpreter) run(ctx context.Context, entry *Handle) (*Handle, error) {
	prev := i.ctx
	i.ctx = ctx
	defer func() {
		i.ctx = prev
	}()

	base := len(i.frames)
	if err := i.pushFrame(entry); err != nil {
		return nil, err
	}

	var sig signal
	for {
		fh := i.frames[len(i.frames)-1]
		f := fh.value.(*PyFrame)

		if sig.why == whyNot {
			if f.LastI >= len(f.Code.Instrs) {
				sig = signal{
					why:   whyReturn,
					value: i.rt.None(),
				}
			} else {
				instr := f.Code.Instrs[f.LastI]
				f.LastI++
				if i.Trace {
					i.Logger.DebugContext(i.ctx, "exec",
						"code", f.Code.Name,
						"offset", f.LastI-1,
						"instr", instr.String(),
						"stack", len(f.stack),
					)
				}
				sig = i.step(f, instr)
				if sig.why == whyNot {
					continue
				}
			}
		}

		if sig.why == whyAbort {
			for len(i.frames) > base {
				i.popFrame()
			}
			return nil, sig.abort
		}

		sig = i.unwind(f, sig)
		if sig.why == whyNot {
			continue
		}

		// the frame is finished
		i.popFrame()
		if sig.why == whyException {
			sig.err.Traceback = append(sig.err.Traceback, f.traceEntry())
		}
		if len(i.frames) == base {
			if sig.why == whyException {
				return nil, sig.err
			}
			return sig.value, nil
		}
		if sig.why == whyReturn {
			i.current().push(sig.value)
			sig = signal{}
		}
	}
}

func (i *Interpreter) constant(lit Literal) *Handle {
	rt := i.rt
	switch v := lit.(type) {
	case nil, NoneLit:
		return rt.None()
	case BoolLit:
		return rt.Bool(bool(v))
	case IntLit:
		return rt.Int(new(big.Int).Set(v.Value))
	case CountLit:
		return rt.IntFromInt64(int64(v))
	case FloatLit:
		return rt.Float(float64(v))
	case ComplexLit:
		return rt.Complex(complex128(v))
	case StrLit:
		return rt.Str(string(v))
	case BytesLit:
		return rt.Bytes([]byte(v))
	case CodeLit:
		return rt.CodeObject(v.Code)
	case ListLit:
		elems := make([]*Handle, len(v))
		for j, elem := range v {
			elems[j] = i.constant(elem)
		}
		return rt.Tuple(elems)
	}
	panic(fmt.Errorf("bad literal %T", lit))
}

func nameArg(instr Instr) (string, error) {
	if s, ok := instr.Arg.(StrLit); ok {
		return string(s), nil
	}
	return "", NewError(SystemError, "%s expects a name operand, got %v", instr.Op, instr.Arg)
}

func countArg(instr Instr) (int, error) {
	if n, ok := instr.Arg.(CountLit); ok {
		return int(n), nil
	}
	return 0, NewError(SystemError, "%s expects a count operand, got %v", instr.Op, instr.Arg)
}

func (i *Interpreter) fastArg(f *PyFrame, instr Instr) (int, error) {
	n, err := countArg(instr)
	if err != nil {
		return 0, err
	}
	if n < 0 || n >= len(f.Fast) {
		return 0, NewError(SystemError, "%s: local slot %d out of range", instr.Op, n)
	}
	return n, nil
}

var binaryOps = map[OpCode]BinaryOperator{
	OpBinaryAdd:            BinAdd,
	OpBinarySubtract:       BinSub,
	OpBinaryMultiply:       BinMul,
	OpBinaryMatrixMultiply: BinMatMul,
	OpBinaryTrueDivide:     BinTrueDiv,
	OpBinaryFloorDivide:    BinFloorDiv,
	OpBinaryModulo:         BinMod,
	OpBinaryPower:          BinPow,
	OpBinaryLShift:         BinLShift,
	OpBinaryRShift:         BinRShift,
	OpBinaryAnd:            BinAnd,
	OpBinaryXor:            BinXor,
	OpBinaryOr:             BinOr,
}

var inplaceOps = map[OpCode]BinaryOperator{
	OpInplaceAdd:            BinAdd,
	OpInplaceSubtract:       BinSub,
	OpInplaceMultiply:       BinMul,
	OpInplaceMatrixMultiply: BinMatMul,
	OpInplaceTrueDivide:     BinTrueDiv,
	OpInplaceFloorDivide:    BinFloorDiv,
	OpInplaceModulo:         BinMod,
	OpInplacePower:          BinPow,
	OpInplaceLShift:         BinLShift,
	OpInplaceRShift:         BinRShift,
	OpInplaceAnd:            BinAnd,
	OpInplaceXor:            BinXor,
	OpInplaceOr:             BinOr,
}

var compareOps = map[OpCode]CompareOperator{
	OpCompareEqual:          CmpEq,
	OpCompareNotEqual:       CmpNe,
	OpCompareLess:           CmpLt,
	OpCompareLessOrEqual:    CmpLe,
	OpCompareGreater:        CmpGt,
	OpCompareGreaterOrEqual: CmpGe,
}

var unaryOps = map[OpCode]UnaryOperator{
	OpUnaryPositive: UnaryPos,
	OpUnaryNegative: UnaryNeg,
	OpUnaryInvert:   UnaryInvert,
}

// step executes one instruction of f.
func (i *Interpreter) step(f *PyFrame, instr Instr) signal {
	sig, err := i.dispatch(f, instr)
	if err != nil {
		return raised(err)
	}
	return sig
}

func (i *Interpreter) dispatch(f *PyFrame, instr Instr) (signal, error) {
	rt := i.rt
	var none signal

	if op, ok := binaryOps[instr.Op]; ok {
		b := f.pop()
		a := f.pop()
		r, err := rt.Binary(op, a, b)
		if err != nil {
			return none, err
		}
		f.push(r)
		return none, nil
	}
	if op, ok := inplaceOps[instr.Op]; ok {
		b := f.pop()
		a := f.pop()
		r, err := rt.Inplace(op, a, b)
		if err != nil {
			return none, err
		}
		f.push(r)
		return none, nil
	}
	if op, ok := compareOps[instr.Op]; ok {
		b := f.pop()
		a := f.pop()
		r, err := rt.Compare(op, a, b)
		if err != nil {
			return none, err
		}
		f.push(r)
		return none, nil
	}
	if op, ok := unaryOps[instr.Op]; ok {
		r, err := rt.Unary(op, f.pop())
		if err != nil {
			return none, err
		}
		f.push(r)
		return none, nil
	}

	switch instr.Op {

	case OpNop:

	case OpPopTop:
		f.pop()

	case OpRotTwo:
		n := len(f.stack)
		f.stack[n-1], f.stack[n-2] = f.stack[n-2], f.stack[n-1]

	case OpRotThree:
		n := len(f.stack)
		f.stack[n-1], f.stack[n-2], f.stack[n-3] = f.stack[n-2], f.stack[n-3], f.stack[n-1]

	case OpDupTop:
		f.push(f.top())

	case OpDupTopTwo:
		a, b := f.peek(1), f.peek(0)
		f.push(a)
		f.push(b)

	case OpPrintExpr:
		v := f.pop()
		if v.Is(rt.None()) {
			break
		}
		s, err := rt.ReprOf(v)
		if err != nil {
			return none, err
		}
		if _, err := fmt.Fprintln(rt.Stdout, s); err != nil {
			return none, NewError(RuntimeError, "print: %v", err)
		}

	case OpUnaryNot:
		b, err := rt.Truthy(f.pop())
		if err != nil {
			return none, err
		}
		f.push(rt.Bool(!b))

	case OpBinarySubscr:
		key := f.pop()
		container := f.pop()
		r, err := rt.GetItem(container, key)
		if err != nil {
			return none, err
		}
		f.push(r)

	case OpStoreSubscr:
		key := f.pop()
		container := f.pop()
		value := f.pop()
		if err := rt.SetItem(container, key, value); err != nil {
			return none, err
		}

	case OpDeleteSubscr:
		key := f.pop()
		container := f.pop()
		if err := rt.DelItem(container, key); err != nil {
			return none, err
		}

	case OpCompareIn, OpCompareNotIn:
		container := f.pop()
		item := f.pop()
		b, err := rt.Contains(container, item)
		if err != nil {
			return none, err
		}
		f.push(rt.Bool(b == (instr.Op == OpCompareIn)))

	case OpCompareIs:
		b := f.pop()
		a := f.pop()
		f.push(rt.Bool(a.Is(b)))

	case OpCompareIsNot:
		b := f.pop()
		a := f.pop()
		f.push(rt.Bool(a.IsNot(b)))

	case OpCompareExceptionMatch:
		class := f.pop()
		exc := f.pop()
		ok, err := rt.exceptionMatch(exc, class)
		if err != nil {
			return none, err
		}
		f.push(rt.Bool(ok))

	case OpLogicalAnd, OpLogicalOr:
		b := f.pop()
		a := f.pop()
		t, err := rt.Truthy(a)
		if err != nil {
			return none, err
		}
		if t == (instr.Op == OpLogicalAnd) {
			f.push(b)
		} else {
			f.push(a)
		}

	case OpJumpAbsolute:
		target, err := countArg(instr)
		if err != nil {
			return none, err
		}
		f.LastI = target

	case OpPopJumpIfFalse, OpPopJumpIfTrue:
		target, err := countArg(instr)
		if err != nil {
			return none, err
		}
		t, err := rt.Truthy(f.pop())
		if err != nil {
			return none, err
		}
		if t == (instr.Op == OpPopJumpIfTrue) {
			f.LastI = target
		}

	case OpJumpIfFalseOrPop, OpJumpIfTrueOrPop:
		target, err := countArg(instr)
		if err != nil {
			return none, err
		}
		t, err := rt.Truthy(f.top())
		if err != nil {
			return none, err
		}
		if t == (instr.Op == OpJumpIfTrueOrPop) {
			f.LastI = target
		} else {
			f.pop()
		}

	case OpLoadConst:
		f.push(i.constant(instr.Arg))

	case OpLoadName:
		name, err := nameArg(instr)
		if err != nil {
			return none, err
		}
		if f.Locals != nil {
			if v, ok := dictOf(f.Locals).lookupStr(name); ok {
				f.push(v)
				break
			}
		}
		v, err := i.loadGlobal(f, name)
		if err != nil {
			return none, err
		}
		f.push(v)

	case OpStoreName:
		name, err := nameArg(instr)
		if err != nil {
			return none, err
		}
		ns := f.Locals
		if ns == nil {
			ns = f.Globals
		}
		if err := dictOf(ns).store(rt, rt.Str(name), f.pop()); err != nil {
			return none, err
		}

	case OpDeleteName:
		name, err := nameArg(instr)
		if err != nil {
			return none, err
		}
		ns := f.Locals
		if ns == nil {
			ns = f.Globals
		}
		if err := i.deleteName(ns, name); err != nil {
			return none, err
		}

	case OpLoadFast:
		n, err := i.fastArg(f, instr)
		if err != nil {
			return none, err
		}
		v := f.Fast[n]
		if v == nil {
			return none, NewError(NameError, "local variable '%s' referenced before assignment", f.Code.VarNames[n])
		}
		f.push(v)

	case OpStoreFast:
		n, err := i.fastArg(f, instr)
		if err != nil {
			return none, err
		}
		f.Fast[n] = f.pop()

	case OpDeleteFast:
		n, err := i.fastArg(f, instr)
		if err != nil {
			return none, err
		}
		if f.Fast[n] == nil {
			return none, NewError(NameError, "local variable '%s' referenced before assignment", f.Code.VarNames[n])
		}
		f.Fast[n] = nil

	case OpLoadGlobal:
		name, err := nameArg(instr)
		if err != nil {
			return none, err
		}
		v, err := i.loadGlobal(f, name)
		if err != nil {
			return none, err
		}
		f.push(v)

	case OpStoreGlobal:
		name, err := nameArg(instr)
		if err != nil {
			return none, err
		}
		if err := dictOf(f.Globals).store(rt, rt.Str(name), f.pop()); err != nil {
			return none, err
		}

	case OpDeleteGlobal:
		name, err := nameArg(instr)
		if err != nil {
			return none, err
		}
		if err := i.deleteName(f.Globals, name); err != nil {
			return none, err
		}

	case OpLoadAttr:
		name, err := nameArg(instr)
		if err != nil {
			return none, err
		}
		v, err := rt.GetAttr(f.pop(), name)
		if err != nil {
			return none, err
		}
		f.push(v)

	case OpStoreAttr:
		name, err := nameArg(instr)
		if err != nil {
			return none, err
		}
		obj := f.pop()
		value := f.pop()
		if err := rt.SetAttr(obj, name, value); err != nil {
			return none, err
		}

	case OpDeleteAttr:
		name, err := nameArg(instr)
		if err != nil {
			return none, err
		}
		if err := rt.DelAttr(f.pop(), name); err != nil {
			return none, err
		}

	case OpImportName:
		name, err := nameArg(instr)
		if err != nil {
			return none, err
		}
		m, err := rt.ImportModule(name)
		if err != nil {
			return none, err
		}
		f.push(m)

	case OpBuildTuple, OpBuildList, OpBuildSet:
		n, err := countArg(instr)
		if err != nil {
			return none, err
		}
		elems := f.popN(n)
		switch instr.Op {
		case OpBuildTuple:
			f.push(rt.Tuple(elems))
		case OpBuildList:
			f.push(rt.List(elems))
		default:
			set := rt.Set()
			for _, elem := range elems {
				if err := set.value.(*PySet).add(rt, elem); err != nil {
					return none, err
				}
			}
			f.push(set)
		}

	case OpBuildMap:
		n, err := countArg(instr)
		if err != nil {
			return none, err
		}
		items := f.popN(2 * n)
		dict := rt.Dict()
		for j := 0; j < len(items); j += 2 {
			if err := dictOf(dict).store(rt, items[j], items[j+1]); err != nil {
				return none, err
			}
		}
		f.push(dict)

	case OpListAppend, OpSetAdd, OpListExtend, OpDictMerge:
		depth, err := countArg(instr)
		if err != nil {
			return none, err
		}
		v := f.pop()
		target := f.peek(depth - 1)
		switch instr.Op {
		case OpListAppend:
			_, err = target.Append(rt, v)
		case OpSetAdd:
			_, err = target.SetAdd(rt, v)
		case OpListExtend:
			_, err = target.Extend(rt, v)
		case OpDictMerge:
			_, err = target.Update(rt, v)
		}
		if err != nil {
			return none, err
		}

	case OpMapAdd:
		depth, err := countArg(instr)
		if err != nil {
			return none, err
		}
		value := f.pop()
		key := f.pop()
		if err := rt.SetItem(f.peek(depth-1), key, value); err != nil {
			return none, err
		}

	case OpUnpackSequence:
		n, err := countArg(instr)
		if err != nil {
			return none, err
		}
		elems, err := rt.Collect(f.pop())
		if err != nil {
			return none, err
		}
		switch {
		case len(elems) > n:
			return none, NewError(ValueError, "too many values to unpack (expected %d)", n)
		case len(elems) < n:
			return none, NewError(ValueError, "not enough values to unpack (expected %d, got %d)", n, len(elems))
		}
		for j := len(elems) - 1; j >= 0; j-- {
			f.push(elems[j])
		}

	case OpGetIter:
		it, err := rt.Iter(f.pop())
		if err != nil {
			return none, err
		}
		f.push(it)

	case OpForIter:
		target, err := countArg(instr)
		if err != nil {
			return none, err
		}
		v, err := rt.Next(f.top())
		if isKind(err, StopIteration) {
			f.pop()
			f.LastI = target
			break
		}
		if err != nil {
			return none, err
		}
		f.push(v)

	case OpMakeFunction:
		fn, err := i.makeFunction(f, instr)
		if err != nil {
			return none, err
		}
		f.push(fn)

	case OpCallFunction:
		n, err := countArg(instr)
		if err != nil {
			return none, err
		}
		args := f.popN(n)
		return i.call(f, f.pop(), args, nil)

	case OpCallFunctionKw:
		n, err := countArg(instr)
		if err != nil {
			return none, err
		}
		names, ok := f.pop().value.(*PyTuple)
		if !ok || len(names.Elems) > n {
			return none, NewError(SystemError, "CallFunctionKw expects a tuple of keyword names")
		}
		values := f.popN(n)
		callee := f.pop()
		split := n - len(names.Elems)
		kwargs := make([]KwArg, len(names.Elems))
		for j, name := range names.Elems {
			s, ok := name.value.(*PyStr)
			if !ok {
				return none, typeErrorf("keywords must be strings")
			}
			kwargs[j] = KwArg{
				Name:  s.Value,
				Value: values[split+j],
			}
		}
		return i.call(f, callee, values[:split], kwargs)

	case OpCallFunctionVarKw:
		flags, err := countArg(instr)
		if err != nil {
			return none, err
		}
		var kwargs []KwArg
		if flags&1 != 0 {
			kwargs, err = i.keywordArgs(f.pop())
			if err != nil {
				return none, err
			}
		}
		args, err := rt.Collect(f.pop())
		if err != nil {
			return none, err
		}
		return i.call(f, f.pop(), args, kwargs)

	case OpReturnValue:
		return signal{
			why:   whyReturn,
			value: f.pop(),
		}, nil

	case OpSetupLoop, OpSetupExcept, OpSetupFinally:
		target, err := countArg(instr)
		if err != nil {
			return none, err
		}
		kind := blockLoop
		switch instr.Op {
		case OpSetupExcept:
			kind = blockExcept
		case OpSetupFinally:
			kind = blockFinally
		}
		f.pushBlock(kind, target)

	case OpBreakLoop:
		return signal{
			why: whyBreak,
		}, nil

	case OpContinueLoop:
		target, err := countArg(instr)
		if err != nil {
			return none, err
		}
		return signal{
			why:    whyContinue,
			target: target,
		}, nil

	case OpSetupWith:
		target, err := countArg(instr)
		if err != nil {
			return none, err
		}
		mgr := f.pop()
		exit, err := rt.GetAttr(mgr, "__exit__")
		if err != nil {
			return none, err
		}
		enter, err := rt.GetAttr(mgr, "__enter__")
		if err != nil {
			return none, err
		}
		f.push(exit)
		r, err := rt.Call(enter, nil, nil)
		if err != nil {
			return none, err
		}
		f.pushBlock(blockFinally, target)
		f.push(r)

	case OpWithCleanup:
		return i.withCleanup(f)

	case OpPopBlock:
		if _, ok := f.popBlock(); !ok {
			return none, NewError(SystemError, "PopBlock with empty block stack")
		}

	case OpPopExcept:
		b, ok := f.popBlock()
		if !ok || b.kind != blockExceptHandler {
			return none, NewError(SystemError, "popped block is not an except handler")
		}
		f.truncate(b.level)

	case OpEndFinally:
		return i.endFinally(f), nil

	case OpRaiseVarargs:
		n, err := countArg(instr)
		if err != nil {
			return none, err
		}
		switch n {
		case 0:
			exc := f.handling()
			if exc == nil {
				return none, NewError(RuntimeError, "No active exception to reraise")
			}
			return none, rt.raise(exc)
		case 1, 2:
			if n == 2 {
				f.pop()
			}
			return none, rt.raise(f.pop())
		}
		return none, NewError(SystemError, "bad RaiseVarargs count %d", n)

	case OpAssertCondition:
		n, err := countArg(instr)
		if err != nil {
			return none, err
		}
		var msg *Handle
		if n == 2 {
			msg = f.pop()
		}
		ok, err := rt.Truthy(f.pop())
		if err != nil {
			return none, err
		}
		if ok {
			break
		}
		if msg == nil {
			return none, NewError(AssertionError, "")
		}
		s, err := rt.StrOf(msg)
		if err != nil {
			return none, err
		}
		return none, NewError(AssertionError, "%s", s)

	case OpSetLineNumber:
		line, err := countArg(instr)
		if err != nil {
			return none, err
		}
		f.Line = line
		if len(i.frames) == 1 && i.ctx != nil {
			if err := i.ctx.Err(); err != nil {
				return signal{
					why:   whyAbort,
					abort: err,
				}, nil
			}
		}

	default:
		return none, NewError(SystemError, "unknown opcode %s", instr.Op)
	}

	return none, nil
}

func (i *Interpreter) loadGlobal(f *PyFrame, name string) (*Handle, error) {
	if v, ok := dictOf(f.Globals).lookupStr(name); ok {
		return v, nil
	}
	return i.rt.GetBuiltin(name)
}

func (i *Interpreter) deleteName(ns *Handle, name string) error {
	_, ok, err := dictOf(ns).remove(i.rt, i.rt.Str(name))
	if err != nil {
		return err
	}
	if !ok {
		return NewError(NameError, "name '%s' is not defined", name)
	}
	return nil
}

// exceptionMatch reports whether exc is an instance of class, or of any
// class in a tuple.
func (rt *Runtime) exceptionMatch(exc, class *Handle) (bool, error) {
	if tuple, ok := class.value.(*PyTuple); ok {
		for _, elem := range tuple.Elems {
			ok, err := rt.exceptionMatch(exc, elem)
			if err != nil || ok {
				return ok, err
			}
		}
		return false, nil
	}
	t, ok := class.value.(*PyType)
	if !ok || !t.exception {
		return false, typeErrorf("catching classes that do not inherit from BaseException is not allowed")
	}
	return IsSubclass(rt.TypeOf(exc), class), nil
}

// withCleanup calls __exit__ of a with block. The stack holds the exit
// method, an optional value saved by the finally marker, then the marker.
func (i *Interpreter) withCleanup(f *PyFrame) (signal, error) {
	rt := i.rt
	marker := f.pop()
	var saved *Handle
	if v, ok := marker.value.(*PyInt); ok {
		switch why(v.Value.Int64()) {
		case whyReturn, whyContinue:
			saved = f.pop()
		}
	}
	exit := f.pop()

	args := []*Handle{rt.None(), rt.None(), rt.None()}
	_, isExc := marker.value.(*PyException)
	if isExc {
		args[0] = rt.TypeOf(marker)
		args[1] = marker
	}
	r, err := rt.Call(exit, args, nil)
	if err != nil {
		return signal{}, err
	}
	if isExc {
		suppress, err := rt.Truthy(r)
		if err != nil {
			return signal{}, err
		}
		if suppress {
			marker = rt.None()
		}
	}
	if saved != nil {
		f.push(saved)
	}
	f.push(marker)
	return signal{}, nil
}
