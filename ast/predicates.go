package ast

import "github.com/t14raptor/jsdce/token"

// IsExportDeclaration returns true for export and export default
// declarations.
func IsExportDeclaration(n VisitableNode) bool {
	switch n.(type) {
	case *ExportDeclaration, *ExportDefaultDeclaration:
		return true
	}
	return false
}

// IsBlockScoped returns true if s declares a name scoped to its enclosing
// block: let, const, class and function declarations.
func IsBlockScoped(s Stmt) bool {
	switch s := s.(type) {
	case *VariableDeclaration:
		return s.Token == token.Let || s.Token == token.Const
	case *ClassDeclaration, *FunctionDeclaration:
		return true
	}
	return false
}

// IsCompletionStatement returns true if control never falls through s.
func IsCompletionStatement(s Stmt) bool {
	switch s.(type) {
	case *ReturnStatement, *ThrowStatement, *BreakStatement, *ContinueStatement:
		return true
	}
	return false
}

func IsFunctionLike(e Expr) bool {
	switch e.(type) {
	case *FunctionLiteral, *ArrowFunctionLiteral:
		return true
	}
	return false
}

func IsClassLike(e Expr) bool {
	_, ok := e.(*ClassLiteral)
	return ok
}

// HasDecorators returns true if the class carries a decorator.
func HasDecorators(c *ClassLiteral) bool {
	return len(c.Decorators) > 0
}

// WalkBindingNames calls fn for every identifier bound by n, in source
// order.
func WalkBindingNames(n *BindingTarget, fn func(id *Identifier)) {
	if n == nil {
		return
	}
	switch t := n.Target.(type) {
	case *Identifier:
		fn(t)
	case *ArrayPattern:
		for i := range t.Elements {
			WalkBindingNames(t.Elements[i].Target, fn)
		}
		WalkBindingNames(t.Rest, fn)
	case *ObjectPattern:
		for i := range t.Properties {
			WalkBindingNames(t.Properties[i].Value.Target, fn)
		}
		WalkBindingNames(t.Rest, fn)
	}
}

// Unwrap returns the statement list of a block, or s alone.
func Unwrap(s Stmt) Statements {
	if b, ok := s.(*BlockStatement); ok {
		return b.List
	}
	return Statements{{Stmt: s}}
}
