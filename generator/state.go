package generator

import (
	"strings"

	"github.com/t14raptor/jsdce/ast"
)

type state struct {
	out    *strings.Builder
	node   ast.VisitableNode
	parent *state
	indent int
	// prec is the lowest expression precedence the slot accepts without
	// parentheses.
	prec int
}

func (s *state) wrap(node ast.VisitableNode) *state {
	return &state{
		out:    s.out,
		node:   node,
		parent: s,
		indent: s.indent,
	}
}

func (s *state) wrapExpr(expr *ast.Expression, prec int) *state {
	w := s.wrap(expr.Expr)
	w.prec = prec
	return w
}

func (s *state) write(str string) {
	s.out.WriteString(str)
}

func (s *state) line() {
	s.out.WriteString("\n")
}

func (s *state) lineAndPad() {
	s.line()
	s.out.WriteString(strings.Repeat("    ", s.indent))
}
