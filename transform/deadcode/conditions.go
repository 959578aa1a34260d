package deadcode

import (
	"golang.org/x/exp/slices"

	"github.com/t14raptor/jsdce/ast"
	"github.com/t14raptor/jsdce/ast/ext"
	"github.com/t14raptor/jsdce/evaluator"
	"github.com/t14raptor/jsdce/resolver"
)

// foldConditional replaces a ternary with a constant test by the branch
// it selects.
func (e *eliminator) foldConditional(n *ast.Expression, c *ast.ConditionalExpression, pos position) {
	truthy := evaluator.EvaluateTruthy(c.Test)
	if truthy.Unknown() {
		return
	}
	keep, drop := c.Consequent, c.Alternate
	if ext.IsFalse(truthy) {
		keep, drop = drop, keep
	}
	e.release(c.Test)
	e.release(drop)

	if needsIndirection(keep, pos) {
		n.Expr = &ast.SequenceExpression{Sequence: ast.Expressions{
			{Expr: &ast.NumberLiteral{Value: 0}},
			*keep,
		}}
	} else {
		n.Expr = keep.Expr
	}
	e.record(&e.stats.ConditionsFolded, "fold")
}

// needsIndirection returns true if keep would behave differently as a bare
// reference in pos than as the value of a conditional.
func needsIndirection(keep *ast.Expression, pos position) bool {
	switch k := keep.Expr.(type) {
	case *ast.MemberExpression:
		return pos == positionCallee || pos == positionDelete
	case *ast.Identifier:
		switch pos {
		case positionCallee:
			return k.Name == "eval"
		case positionDelete:
			return true
		case positionTypeof:
			return k.ScopeContext == resolver.UnresolvedMark
		}
	}
	return false
}

// foldIf replaces an if statement with a constant test by the statements
// of the branch it selects. Other if statements are normalized.
func (e *eliminator) foldIf(n *ast.Statement, s *ast.IfStatement) ast.Statements {
	truthy := evaluator.EvaluateTruthy(s.Test)
	if truthy.Unknown() {
		e.normalize(s)
		return ast.Statements{*n}
	}

	keep, drop := s.Consequent, s.Alternate
	if ext.IsFalse(truthy) {
		keep, drop = drop, keep
	}
	e.release(s.Test)

	var out ast.Statements
	if drop != nil {
		e.release(drop)
		if vars := e.survivingVars(drop); vars != nil {
			out = append(out, *vars)
		}
	}
	if keep != nil {
		out = append(out, toStatements(keep)...)
	}
	e.record(&e.stats.ConditionsFolded, "fold")
	return out
}

// normalize drops an empty alternate, or moves a non-empty alternate into
// an empty consequent and negates the test.
func (e *eliminator) normalize(s *ast.IfStatement) {
	if s.Alternate == nil {
		return
	}
	switch {
	case isEmpty(s.Alternate.Stmt):
		s.Alternate = nil
	case isEmpty(s.Consequent.Stmt):
		s.Test = ext.Negate(s.Test)
		s.Consequent, s.Alternate = s.Alternate, nil
	default:
		return
	}
	e.record(&e.stats.ConditionalsNormalized, "normalize")
}

// toStatements unwraps a block into its statements unless one of them is
// scoped to the block.
func toStatements(n *ast.Statement) ast.Statements {
	block, ok := n.Stmt.(*ast.BlockStatement)
	if !ok {
		if ast.IsBlockScoped(n.Stmt) {
			return ast.Statements{{Stmt: &ast.BlockStatement{List: ast.Statements{*n}}}}
		}
		return ast.Statements{*n}
	}
	if slices.ContainsFunc(block.List, func(s ast.Statement) bool {
		return ast.IsBlockScoped(s.Stmt)
	}) {
		return ast.Statements{*n}
	}
	return block.List
}
