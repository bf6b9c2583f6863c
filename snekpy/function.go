package snekpy

import (
	"slices"

	"github.com/reusee/snek/snekvm"
	"go.starlark.net/syntax"
)

type parameters struct {
	args       []string
	kwOnly     []string
	varArgs    string
	varKw      string
	defaults   []syntax.Expr
	kwDefaults []kwDefault
}

type kwDefault struct {
	name  string
	value syntax.Expr
}

func (c *compiler) parameters(exprs []syntax.Expr) (*parameters, error) {
	p := new(parameters)
	seen := make(map[string]bool)
	star := false

	name := func(expr syntax.Expr) (string, error) {
		id, ok := expr.(*syntax.Ident)
		if !ok {
			return "", c.errorf(expr, "parameter name must be an identifier")
		}
		if seen[id.Name] {
			return "", c.errorf(id, "duplicate argument '%s' in function definition", id.Name)
		}
		seen[id.Name] = true
		return id.Name, nil
	}

	for _, expr := range exprs {
		if p.varKw != "" {
			return nil, c.errorf(expr, "parameter after **%s", p.varKw)
		}
		switch e := expr.(type) {
		case *syntax.Ident:
			n, err := name(e)
			if err != nil {
				return nil, err
			}
			if star {
				p.kwOnly = append(p.kwOnly, n)
				continue
			}
			if len(p.defaults) > 0 {
				return nil, c.errorf(e, "non-default argument follows default argument")
			}
			p.args = append(p.args, n)

		case *syntax.BinaryExpr:
			if e.Op != syntax.EQ {
				return nil, c.errorf(e, "unsupported parameter")
			}
			n, err := name(e.X)
			if err != nil {
				return nil, err
			}
			if star {
				p.kwOnly = append(p.kwOnly, n)
				p.kwDefaults = append(p.kwDefaults, kwDefault{
					name:  n,
					value: e.Y,
				})
				continue
			}
			p.args = append(p.args, n)
			p.defaults = append(p.defaults, e.Y)

		case *syntax.UnaryExpr:
			switch e.Op {
			case syntax.STAR:
				if star {
					return nil, c.errorf(e, "multiple * parameters")
				}
				star = true
				if e.X != nil {
					n, err := name(e.X)
					if err != nil {
						return nil, err
					}
					p.varArgs = n
				}
			case syntax.STARSTAR:
				n, err := name(e.X)
				if err != nil {
					return nil, err
				}
				p.varKw = n
			default:
				return nil, c.errorf(e, "unsupported parameter")
			}

		default:
			return nil, c.errorf(expr, "unsupported parameter")
		}
	}
	return p, nil
}

// compileFunction compiles a def body, or a lambda when body is nil, and
// leaves the new function on the stack. Defaults are evaluated in the
// defining scope.
func (c *compiler) compileFunction(name string, pos syntax.Position, params []syntax.Expr, body []syntax.Stmt, expr syntax.Expr) error {
	p, err := c.parameters(params)
	if err != nil {
		return err
	}

	varNames := slices.Concat(p.args, p.kwOnly)
	if p.varArgs != "" {
		varNames = append(varNames, p.varArgs)
	}
	if p.varKw != "" {
		varNames = append(varNames, p.varKw)
	}
	var nodes []syntax.Node
	if expr != nil {
		nodes = append(nodes, expr)
	}
	for _, stmt := range body {
		nodes = append(nodes, stmt)
	}
	for _, local := range boundNames(nodes) {
		if !slices.Contains(varNames, local) {
			varNames = append(varNames, local)
		}
	}

	sub := newCompiler(&snekvm.Code{
		Name:      name,
		Filename:  c.code.Filename,
		FirstLine: int(pos.Line),
		VarNames:  varNames,
		ArgNames:  p.args,
		KwOnly:    p.kwOnly,
		VarArgs:   p.varArgs,
		VarKw:     p.varKw,
	}, true)
	if expr != nil {
		if err := sub.compileExpr(expr); err != nil {
			return err
		}
		sub.emit(snekvm.OpReturnValue)
	} else if err := sub.compileStmts(body); err != nil {
		return err
	}

	if err := c.compileExprs(p.defaults); err != nil {
		return err
	}
	for _, kw := range p.kwDefaults {
		c.emit(snekvm.OpLoadConst, snekvm.StrLit(kw.name))
		if err := c.compileExpr(kw.value); err != nil {
			return err
		}
	}
	c.emit(snekvm.OpLoadConst, snekvm.CodeLit{Code: sub.finish()})
	if len(p.kwDefaults) == 0 {
		c.emit(snekvm.OpMakeFunction, snekvm.CountLit(len(p.defaults)))
	} else {
		c.emit(snekvm.OpMakeFunction, snekvm.ListLit{
			snekvm.CountLit(len(p.defaults)),
			snekvm.CountLit(len(p.kwDefaults)),
		})
	}
	return nil
}

// boundNames returns the names assigned in a function body, in order of
// first binding. Nested function bodies are not entered.
func boundNames(nodes []syntax.Node) []string {
	var names []string
	seen := make(map[string]bool)
	bind := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	var bindTarget func(syntax.Expr)
	bindTarget = func(expr syntax.Expr) {
		switch e := expr.(type) {
		case *syntax.Ident:
			bind(e.Name)
		case *syntax.ParenExpr:
			bindTarget(e.X)
		case *syntax.TupleExpr:
			for _, elem := range e.List {
				bindTarget(elem)
			}
		case *syntax.ListExpr:
			for _, elem := range e.List {
				bindTarget(elem)
			}
		}
	}

	for _, node := range nodes {
		syntax.Walk(node, func(n syntax.Node) bool {
			switch n := n.(type) {
			case *syntax.AssignStmt:
				bindTarget(n.LHS)
			case *syntax.ForStmt:
				bindTarget(n.Vars)
			case *syntax.ForClause:
				bindTarget(n.Vars)
			case *syntax.LoadStmt:
				for _, to := range n.To {
					bind(to.Name)
				}
			case *syntax.DefStmt:
				bind(n.Name.Name)
				return false
			case *syntax.LambdaExpr:
				return false
			}
			return true
		})
	}
	return names
}
