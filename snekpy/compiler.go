package snekpy

import (
	"fmt"
	"math/big"

	"github.com/reusee/snek/snekvm"
	"go.starlark.net/syntax"
)

type compiler struct {
	code *snekvm.Code
	// locals maps fast local names to slots. It is nil at module level.
	locals      map[string]int
	interactive bool
	// loops holds the continue target of each enclosing loop.
	loops []int
}

func newCompiler(code *snekvm.Code, function bool) *compiler {
	c := &compiler{
		code: code,
	}
	if function {
		c.locals = make(map[string]int, len(code.VarNames))
		for i, name := range code.VarNames {
			c.locals[name] = i
		}
	}
	return c
}

func (c *compiler) function() bool {
	return c.locals != nil
}

func (c *compiler) finish() *snekvm.Code {
	if c.function() {
		n := len(c.code.Instrs)
		if n == 0 || c.code.Instrs[n-1].Op != snekvm.OpReturnValue {
			c.emit(snekvm.OpLoadConst, snekvm.NoneLit{})
			c.emit(snekvm.OpReturnValue)
		}
	}
	return c.code
}

func (c *compiler) emit(op snekvm.OpCode, arg ...snekvm.Literal) int {
	instr := snekvm.Instr{Op: op}
	if len(arg) > 0 {
		instr.Arg = arg[0]
	}
	c.code.Instrs = append(c.code.Instrs, instr)
	return len(c.code.Instrs) - 1
}

func (c *compiler) here() int {
	return len(c.code.Instrs)
}

// patch points the jump at ip to the next instruction.
func (c *compiler) patch(ip int) {
	c.code.Instrs[ip].Arg = snekvm.CountLit(c.here())
}

func (c *compiler) errorf(node syntax.Node, format string, args ...any) error {
	start, _ := node.Span()
	return snekvm.NewError(snekvm.SyntaxError, "%s: %s", start, fmt.Sprintf(format, args...))
}

func (c *compiler) compileStmts(stmts []syntax.Stmt) error {
	for _, stmt := range stmts {
		if err := c.compileStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (c *compiler) compileStmt(stmt syntax.Stmt) error {
	start, _ := stmt.Span()
	c.emit(snekvm.OpSetLineNumber, snekvm.CountLit(start.Line))

	switch s := stmt.(type) {
	case *syntax.ExprStmt:
		if err := c.compileExpr(s.X); err != nil {
			return err
		}
		if c.interactive && !c.function() {
			c.emit(snekvm.OpPrintExpr)
		} else {
			c.emit(snekvm.OpPopTop)
		}
	case *syntax.AssignStmt:
		if s.Op == syntax.EQ {
			if err := c.compileExpr(s.RHS); err != nil {
				return err
			}
			return c.compileStore(s.LHS)
		}
		return c.compileAugmentedAssign(s)
	case *syntax.DefStmt:
		if err := c.compileFunction(s.Name.Name, s.Def, s.Params, s.Body, nil); err != nil {
			return err
		}
		c.store(s.Name.Name)
	case *syntax.ReturnStmt:
		if !c.function() {
			return c.errorf(s, "'return' outside function")
		}
		if s.Result != nil {
			if err := c.compileExpr(s.Result); err != nil {
				return err
			}
		} else {
			c.emit(snekvm.OpLoadConst, snekvm.NoneLit{})
		}
		c.emit(snekvm.OpReturnValue)
	case *syntax.IfStmt:
		return c.compileIf(s)
	case *syntax.WhileStmt:
		return c.compileWhile(s)
	case *syntax.ForStmt:
		return c.compileFor(s)
	case *syntax.BranchStmt:
		return c.compileBranch(s)
	case *syntax.LoadStmt:
		c.emit(snekvm.OpImportName, snekvm.StrLit(s.ModuleName()))
		for i, from := range s.From {
			c.emit(snekvm.OpDupTop)
			c.emit(snekvm.OpLoadAttr, snekvm.StrLit(from.Name))
			c.store(s.To[i].Name)
		}
		c.emit(snekvm.OpPopTop)
	default:
		return c.errorf(stmt, "unsupported statement %T", stmt)
	}
	return nil
}

func (c *compiler) compileIf(s *syntax.IfStmt) error {
	if err := c.compileExpr(s.Cond); err != nil {
		return err
	}
	skip := c.emit(snekvm.OpPopJumpIfFalse, snekvm.CountLit(0))
	if err := c.compileStmts(s.True); err != nil {
		return err
	}
	if len(s.False) == 0 {
		c.patch(skip)
		return nil
	}
	end := c.emit(snekvm.OpJumpAbsolute, snekvm.CountLit(0))
	c.patch(skip)
	if err := c.compileStmts(s.False); err != nil {
		return err
	}
	c.patch(end)
	return nil
}

func (c *compiler) compileWhile(s *syntax.WhileStmt) error {
	end := c.emit(snekvm.OpSetupLoop, snekvm.CountLit(0))
	head := c.here()
	if err := c.compileExpr(s.Cond); err != nil {
		return err
	}
	exit := c.emit(snekvm.OpPopJumpIfFalse, snekvm.CountLit(0))
	if err := c.compileLoopBody(head, s.Body); err != nil {
		return err
	}
	c.emit(snekvm.OpJumpAbsolute, snekvm.CountLit(head))
	c.patch(exit)
	c.emit(snekvm.OpPopBlock)
	c.patch(end)
	return nil
}

func (c *compiler) compileFor(s *syntax.ForStmt) error {
	end := c.emit(snekvm.OpSetupLoop, snekvm.CountLit(0))
	if err := c.compileExpr(s.X); err != nil {
		return err
	}
	c.emit(snekvm.OpGetIter)
	head := c.here()
	exit := c.emit(snekvm.OpForIter, snekvm.CountLit(0))
	if err := c.compileStore(s.Vars); err != nil {
		return err
	}
	if err := c.compileLoopBody(head, s.Body); err != nil {
		return err
	}
	c.emit(snekvm.OpJumpAbsolute, snekvm.CountLit(head))
	c.patch(exit)
	c.emit(snekvm.OpPopBlock)
	c.patch(end)
	return nil
}

func (c *compiler) compileLoopBody(head int, body []syntax.Stmt) error {
	c.loops = append(c.loops, head)
	defer func() {
		c.loops = c.loops[:len(c.loops)-1]
	}()
	return c.compileStmts(body)
}

func (c *compiler) compileBranch(s *syntax.BranchStmt) error {
	if s.Token == syntax.PASS {
		return nil
	}
	if len(c.loops) == 0 {
		return c.errorf(s, "'%s' outside loop", s.Token)
	}
	switch s.Token {
	case syntax.BREAK:
		c.emit(snekvm.OpBreakLoop)
	case syntax.CONTINUE:
		c.emit(snekvm.OpContinueLoop, snekvm.CountLit(c.loops[len(c.loops)-1]))
	}
	return nil
}

var constantNames = map[string]snekvm.Literal{
	"None":  snekvm.NoneLit{},
	"True":  snekvm.BoolLit(true),
	"False": snekvm.BoolLit(false),
}

func (c *compiler) load(name string) {
	if lit, ok := constantNames[name]; ok {
		c.emit(snekvm.OpLoadConst, lit)
		return
	}
	if slot, ok := c.locals[name]; ok {
		c.emit(snekvm.OpLoadFast, snekvm.CountLit(slot))
		return
	}
	if c.function() {
		c.emit(snekvm.OpLoadGlobal, snekvm.StrLit(name))
		return
	}
	c.emit(snekvm.OpLoadName, snekvm.StrLit(name))
}

func (c *compiler) store(name string) {
	if slot, ok := c.locals[name]; ok {
		c.emit(snekvm.OpStoreFast, snekvm.CountLit(slot))
		return
	}
	if c.function() {
		c.emit(snekvm.OpStoreGlobal, snekvm.StrLit(name))
		return
	}
	c.emit(snekvm.OpStoreName, snekvm.StrLit(name))
}

// compileStore stores the value on top of the stack into target.
func (c *compiler) compileStore(target syntax.Expr) error {
	switch t := target.(type) {
	case *syntax.Ident:
		if _, ok := constantNames[t.Name]; ok {
			return c.errorf(t, "cannot assign to %s", t.Name)
		}
		c.store(t.Name)
	case *syntax.ParenExpr:
		return c.compileStore(t.X)
	case *syntax.TupleExpr:
		return c.compileUnpack(t.List)
	case *syntax.ListExpr:
		return c.compileUnpack(t.List)
	case *syntax.DotExpr:
		if err := c.compileExpr(t.X); err != nil {
			return err
		}
		c.emit(snekvm.OpStoreAttr, snekvm.StrLit(t.Name.Name))
	case *syntax.IndexExpr:
		if err := c.compileExpr(t.X); err != nil {
			return err
		}
		if err := c.compileExpr(t.Y); err != nil {
			return err
		}
		c.emit(snekvm.OpStoreSubscr)
	case *syntax.SliceExpr:
		return c.errorf(t, "slice assignment is not supported")
	default:
		return c.errorf(target, "cannot assign to %T", target)
	}
	return nil
}

func (c *compiler) compileUnpack(targets []syntax.Expr) error {
	c.emit(snekvm.OpUnpackSequence, snekvm.CountLit(len(targets)))
	for _, target := range targets {
		if err := c.compileStore(target); err != nil {
			return err
		}
	}
	return nil
}

var augmentedOps = map[syntax.Token]snekvm.OpCode{
	syntax.PLUS_EQ:       snekvm.OpInplaceAdd,
	syntax.MINUS_EQ:      snekvm.OpInplaceSubtract,
	syntax.STAR_EQ:       snekvm.OpInplaceMultiply,
	syntax.SLASH_EQ:      snekvm.OpInplaceTrueDivide,
	syntax.SLASHSLASH_EQ: snekvm.OpInplaceFloorDivide,
	syntax.PERCENT_EQ:    snekvm.OpInplaceModulo,
	syntax.AMP_EQ:        snekvm.OpInplaceAnd,
	syntax.PIPE_EQ:       snekvm.OpInplaceOr,
	syntax.CIRCUMFLEX_EQ: snekvm.OpInplaceXor,
	syntax.LTLT_EQ:       snekvm.OpInplaceLShift,
	syntax.GTGT_EQ:       snekvm.OpInplaceRShift,
}

func (c *compiler) compileAugmentedAssign(s *syntax.AssignStmt) error {
	op, ok := augmentedOps[s.Op]
	if !ok {
		return c.errorf(s, "augmented assignment %s is not supported", s.Op)
	}

	lhs := s.LHS
	for {
		paren, ok := lhs.(*syntax.ParenExpr)
		if !ok {
			break
		}
		lhs = paren.X
	}

	switch target := lhs.(type) {
	case *syntax.Ident:
		if err := c.compileExpr(target); err != nil {
			return err
		}
		if err := c.compileExpr(s.RHS); err != nil {
			return err
		}
		c.emit(op)
		return c.compileStore(target)

	case *syntax.DotExpr:
		if err := c.compileExpr(target.X); err != nil {
			return err
		}
		c.emit(snekvm.OpDupTop)
		c.emit(snekvm.OpLoadAttr, snekvm.StrLit(target.Name.Name))
		if err := c.compileExpr(s.RHS); err != nil {
			return err
		}
		c.emit(op)
		c.emit(snekvm.OpRotTwo)
		c.emit(snekvm.OpStoreAttr, snekvm.StrLit(target.Name.Name))

	case *syntax.IndexExpr:
		if err := c.compileExpr(target.X); err != nil {
			return err
		}
		if err := c.compileExpr(target.Y); err != nil {
			return err
		}
		c.emit(snekvm.OpDupTopTwo)
		c.emit(snekvm.OpBinarySubscr)
		if err := c.compileExpr(s.RHS); err != nil {
			return err
		}
		c.emit(op)
		c.emit(snekvm.OpRotThree)
		c.emit(snekvm.OpStoreSubscr)

	default:
		return c.errorf(s.LHS, "illegal expression for augmented assignment")
	}
	return nil
}

var binaryOps = map[syntax.Token]snekvm.OpCode{
	syntax.PLUS:       snekvm.OpBinaryAdd,
	syntax.MINUS:      snekvm.OpBinarySubtract,
	syntax.STAR:       snekvm.OpBinaryMultiply,
	syntax.SLASH:      snekvm.OpBinaryTrueDivide,
	syntax.SLASHSLASH: snekvm.OpBinaryFloorDivide,
	syntax.PERCENT:    snekvm.OpBinaryModulo,
	syntax.STARSTAR:   snekvm.OpBinaryPower,
	syntax.AMP:        snekvm.OpBinaryAnd,
	syntax.PIPE:       snekvm.OpBinaryOr,
	syntax.CIRCUMFLEX: snekvm.OpBinaryXor,
	syntax.LTLT:       snekvm.OpBinaryLShift,
	syntax.GTGT:       snekvm.OpBinaryRShift,
	syntax.EQL:        snekvm.OpCompareEqual,
	syntax.NEQ:        snekvm.OpCompareNotEqual,
	syntax.LT:         snekvm.OpCompareLess,
	syntax.LE:         snekvm.OpCompareLessOrEqual,
	syntax.GT:         snekvm.OpCompareGreater,
	syntax.GE:         snekvm.OpCompareGreaterOrEqual,
	syntax.IN:         snekvm.OpCompareIn,
	syntax.NOT_IN:     snekvm.OpCompareNotIn,
}

var unaryOps = map[syntax.Token]snekvm.OpCode{
	syntax.PLUS:  snekvm.OpUnaryPositive,
	syntax.MINUS: snekvm.OpUnaryNegative,
	syntax.NOT:   snekvm.OpUnaryNot,
	syntax.TILDE: snekvm.OpUnaryInvert,
}

func (c *compiler) compileExpr(expr syntax.Expr) error {
	switch e := expr.(type) {
	case *syntax.Literal:
		lit, err := c.literal(e, false)
		if err != nil {
			return err
		}
		c.emit(snekvm.OpLoadConst, lit)
	case *syntax.Ident:
		c.load(e.Name)
	case *syntax.ParenExpr:
		return c.compileExpr(e.X)
	case *syntax.UnaryExpr:
		return c.compileUnary(e)
	case *syntax.BinaryExpr:
		return c.compileBinary(e)
	case *syntax.CallExpr:
		return c.compileCall(e)
	case *syntax.ListExpr:
		if err := c.compileExprs(e.List); err != nil {
			return err
		}
		c.emit(snekvm.OpBuildList, snekvm.CountLit(len(e.List)))
	case *syntax.TupleExpr:
		if err := c.compileExprs(e.List); err != nil {
			return err
		}
		c.emit(snekvm.OpBuildTuple, snekvm.CountLit(len(e.List)))
	case *syntax.DictExpr:
		for _, elem := range e.List {
			entry := elem.(*syntax.DictEntry)
			if err := c.compileExpr(entry.Key); err != nil {
				return err
			}
			if err := c.compileExpr(entry.Value); err != nil {
				return err
			}
		}
		c.emit(snekvm.OpBuildMap, snekvm.CountLit(len(e.List)))
	case *syntax.IndexExpr:
		if err := c.compileExpr(e.X); err != nil {
			return err
		}
		if err := c.compileExpr(e.Y); err != nil {
			return err
		}
		c.emit(snekvm.OpBinarySubscr)
	case *syntax.DotExpr:
		if err := c.compileExpr(e.X); err != nil {
			return err
		}
		c.emit(snekvm.OpLoadAttr, snekvm.StrLit(e.Name.Name))
	case *syntax.CondExpr:
		if err := c.compileExpr(e.Cond); err != nil {
			return err
		}
		skip := c.emit(snekvm.OpPopJumpIfFalse, snekvm.CountLit(0))
		if err := c.compileExpr(e.True); err != nil {
			return err
		}
		end := c.emit(snekvm.OpJumpAbsolute, snekvm.CountLit(0))
		c.patch(skip)
		if err := c.compileExpr(e.False); err != nil {
			return err
		}
		c.patch(end)
	case *syntax.LambdaExpr:
		return c.compileFunction("<lambda>", e.Lambda, e.Params, nil, e.Body)
	case *syntax.Comprehension:
		if e.Curly {
			c.emit(snekvm.OpBuildMap, snekvm.CountLit(0))
		} else {
			c.emit(snekvm.OpBuildList, snekvm.CountLit(0))
		}
		return c.compileClauses(e, 0, 1)
	case *syntax.SliceExpr:
		return c.errorf(e, "slicing is not supported")
	default:
		return c.errorf(expr, "unsupported expression %T", expr)
	}
	return nil
}

func (c *compiler) compileExprs(exprs []syntax.Expr) error {
	for _, expr := range exprs {
		if err := c.compileExpr(expr); err != nil {
			return err
		}
	}
	return nil
}

func (c *compiler) literal(e *syntax.Literal, negate bool) (snekvm.Literal, error) {
	switch v := e.Value.(type) {
	case int64:
		if negate {
			v = -v
		}
		return snekvm.Int64Lit(v), nil
	case *big.Int:
		if negate {
			v = new(big.Int).Neg(v)
		}
		return snekvm.IntLit{Value: v}, nil
	case float64:
		if negate {
			v = -v
		}
		return snekvm.FloatLit(v), nil
	case string:
		if e.Token == syntax.BYTES {
			return snekvm.BytesLit(v), nil
		}
		return snekvm.StrLit(v), nil
	}
	return nil, c.errorf(e, "unsupported literal %s", e.Raw)
}

func (c *compiler) compileUnary(e *syntax.UnaryExpr) error {
	if lit, ok := e.X.(*syntax.Literal); ok && e.Op == syntax.MINUS && lit.Token != syntax.STRING && lit.Token != syntax.BYTES {
		v, err := c.literal(lit, true)
		if err != nil {
			return err
		}
		c.emit(snekvm.OpLoadConst, v)
		return nil
	}
	op, ok := unaryOps[e.Op]
	if !ok {
		return c.errorf(e, "unexpected %s", e.Op)
	}
	if err := c.compileExpr(e.X); err != nil {
		return err
	}
	c.emit(op)
	return nil
}

func (c *compiler) compileBinary(e *syntax.BinaryExpr) error {
	switch e.Op {
	case syntax.AND, syntax.OR:
		if err := c.compileExpr(e.X); err != nil {
			return err
		}
		// literal right operands are evaluated eagerly
		if _, ok := e.Y.(*syntax.Literal); ok {
			if err := c.compileExpr(e.Y); err != nil {
				return err
			}
			if e.Op == syntax.AND {
				c.emit(snekvm.OpLogicalAnd)
			} else {
				c.emit(snekvm.OpLogicalOr)
			}
			return nil
		}
		jump := snekvm.OpJumpIfFalseOrPop
		if e.Op == syntax.OR {
			jump = snekvm.OpJumpIfTrueOrPop
		}
		end := c.emit(jump, snekvm.CountLit(0))
		if err := c.compileExpr(e.Y); err != nil {
			return err
		}
		c.patch(end)
		return nil
	}

	op, ok := binaryOps[e.Op]
	if !ok {
		return c.errorf(e, "unexpected %s", e.Op)
	}
	if err := c.compileExpr(e.X); err != nil {
		return err
	}
	if err := c.compileExpr(e.Y); err != nil {
		return err
	}
	c.emit(op)
	return nil
}

// argument kinds of a call
const (
	argPositional = iota
	argKeyword
	argStar
	argStarStar
)

func argKind(arg syntax.Expr) int {
	switch a := arg.(type) {
	case *syntax.BinaryExpr:
		if a.Op == syntax.EQ {
			return argKeyword
		}
	case *syntax.UnaryExpr:
		switch a.Op {
		case syntax.STAR:
			return argStar
		case syntax.STARSTAR:
			return argStarStar
		}
	}
	return argPositional
}

func (c *compiler) compileCall(e *syntax.CallExpr) error {
	if id, ok := e.Fn.(*syntax.Ident); ok && id.Name == "assert_" {
		return c.compileAssert(e)
	}

	if err := c.compileExpr(e.Fn); err != nil {
		return err
	}

	var names snekvm.ListLit
	dynamic := false
	for _, arg := range e.Args {
		switch argKind(arg) {
		case argKeyword:
			names = append(names, snekvm.StrLit(arg.(*syntax.BinaryExpr).X.(*syntax.Ident).Name))
		case argStar, argStarStar:
			dynamic = true
		}
	}

	if !dynamic {
		for _, arg := range e.Args {
			if argKind(arg) == argKeyword {
				arg = arg.(*syntax.BinaryExpr).Y
			}
			if err := c.compileExpr(arg); err != nil {
				return err
			}
		}
		if len(names) == 0 {
			c.emit(snekvm.OpCallFunction, snekvm.CountLit(len(e.Args)))
			return nil
		}
		c.emit(snekvm.OpLoadConst, names)
		c.emit(snekvm.OpCallFunctionKw, snekvm.CountLit(len(e.Args)))
		return nil
	}

	c.emit(snekvm.OpBuildList, snekvm.CountLit(0))
	hasKw := false
	for _, arg := range e.Args {
		switch argKind(arg) {
		case argPositional:
			if err := c.compileExpr(arg); err != nil {
				return err
			}
			c.emit(snekvm.OpListAppend, snekvm.CountLit(1))
		case argStar:
			if err := c.compileExpr(arg.(*syntax.UnaryExpr).X); err != nil {
				return err
			}
			c.emit(snekvm.OpListExtend, snekvm.CountLit(1))
		default:
			hasKw = true
		}
	}
	if !hasKw {
		c.emit(snekvm.OpCallFunctionVarKw, snekvm.CountLit(0))
		return nil
	}

	c.emit(snekvm.OpBuildMap, snekvm.CountLit(0))
	for _, arg := range e.Args {
		switch argKind(arg) {
		case argKeyword:
			kw := arg.(*syntax.BinaryExpr)
			c.emit(snekvm.OpLoadConst, snekvm.StrLit(kw.X.(*syntax.Ident).Name))
			if err := c.compileExpr(kw.Y); err != nil {
				return err
			}
			c.emit(snekvm.OpMapAdd, snekvm.CountLit(1))
		case argStarStar:
			if err := c.compileExpr(arg.(*syntax.UnaryExpr).X); err != nil {
				return err
			}
			c.emit(snekvm.OpDictMerge, snekvm.CountLit(1))
		}
	}
	c.emit(snekvm.OpCallFunctionVarKw, snekvm.CountLit(1))
	return nil
}

// compileAssert lowers assert_(cond[, msg]). The call evaluates to None.
func (c *compiler) compileAssert(e *syntax.CallExpr) error {
	if len(e.Args) < 1 || len(e.Args) > 2 {
		return c.errorf(e, "assert_ takes a condition and an optional message")
	}
	for _, arg := range e.Args {
		if argKind(arg) != argPositional {
			return c.errorf(arg, "assert_ takes positional arguments only")
		}
		if err := c.compileExpr(arg); err != nil {
			return err
		}
	}
	c.emit(snekvm.OpAssertCondition, snekvm.CountLit(len(e.Args)))
	c.emit(snekvm.OpLoadConst, snekvm.NoneLit{})
	return nil
}

// compileClauses emits the loops of a comprehension. depth is the distance
// of the result container from the top of the stack at the body.
func (c *compiler) compileClauses(e *syntax.Comprehension, idx int, depth int) error {
	if idx == len(e.Clauses) {
		if !e.Curly {
			if err := c.compileExpr(e.Body); err != nil {
				return err
			}
			c.emit(snekvm.OpListAppend, snekvm.CountLit(depth))
			return nil
		}
		entry, ok := e.Body.(*syntax.DictEntry)
		if !ok {
			return c.errorf(e.Body, "dict comprehension body must be a key: value entry")
		}
		if err := c.compileExpr(entry.Key); err != nil {
			return err
		}
		if err := c.compileExpr(entry.Value); err != nil {
			return err
		}
		c.emit(snekvm.OpMapAdd, snekvm.CountLit(depth))
		return nil
	}

	switch clause := e.Clauses[idx].(type) {
	case *syntax.ForClause:
		if err := c.compileExpr(clause.X); err != nil {
			return err
		}
		c.emit(snekvm.OpGetIter)
		head := c.here()
		exit := c.emit(snekvm.OpForIter, snekvm.CountLit(0))
		if err := c.compileStore(clause.Vars); err != nil {
			return err
		}
		if err := c.compileClauses(e, idx+1, depth+1); err != nil {
			return err
		}
		c.emit(snekvm.OpJumpAbsolute, snekvm.CountLit(head))
		c.patch(exit)
	case *syntax.IfClause:
		if err := c.compileExpr(clause.Cond); err != nil {
			return err
		}
		skip := c.emit(snekvm.OpPopJumpIfFalse, snekvm.CountLit(0))
		if err := c.compileClauses(e, idx+1, depth); err != nil {
			return err
		}
		c.patch(skip)
	default:
		return c.errorf(clause, "unsupported comprehension clause %T", clause)
	}
	return nil
}
