package deadcode

import (
	"github.com/t14raptor/jsdce/ast"
	"github.com/t14raptor/jsdce/ast/ext"
	"github.com/t14raptor/jsdce/resolver"
	"github.com/t14raptor/jsdce/token"
)

// inline returns the value to substitute for the reference id, or nil if
// id must stay. On success the binding is removed from its scope and its
// declaration is left for sweep.
func (e *eliminator) inline(id *ast.Identifier) *ast.Expression {
	if e.moved[id] {
		return nil
	}
	b := e.info.BindingOf(id)
	if b == nil || b.References != 1 || !b.Constant || b.Exported || b.ForwardReferenced || e.cyclic[b] {
		return nil
	}
	if b.Scope.DirectEval || b.Scope.Bindings[b.Name] != b {
		return nil
	}
	switch b.Kind {
	case resolver.KindParam, resolver.KindModule, resolver.KindCatch, resolver.KindLocal:
		return nil
	}

	value := e.valueOf(b)
	if value == nil || !ext.IsPureConstant(value, e) {
		return nil
	}
	scope := e.info.ScopeOf(id)
	if allocates(value) && scope != b.DeclScope {
		return nil
	}
	if contains(value, id) || e.shadowed(value, scope, b.DeclScope) {
		return nil
	}

	walkReferences(value, func(ref *ast.Identifier) {
		e.moved[ref] = true
	})
	b.Scope.Remove(b.Name)
	b.References = 0
	e.dead[b.Node] = true
	e.record(&e.stats.Inlined, "inline", "binding", b.Name)
	return value
}

// valueOf returns the expression a binding is initialized with, or nil if
// the declaration does not run unconditionally before its references.
func (e *eliminator) valueOf(b *resolver.Binding) *ast.Expression {
	switch n := b.Node.(type) {
	case *ast.VariableDeclarator:
		if _, ok := n.Target.Target.(*ast.Identifier); !ok {
			return nil
		}
		decl, ok := b.Container.(*ast.VariableDeclaration)
		if !ok || !e.listed[decl] {
			return nil
		}
		// A var declared in a nested block may be skipped at runtime.
		if decl.Token == token.Var && b.DeclScope != b.Scope {
			return nil
		}
		return n.Initializer
	case *ast.FunctionDeclaration:
		return &ast.Expression{Expr: n.Function}
	case *ast.ClassDeclaration:
		return &ast.Expression{Expr: n.Class}
	}
	return nil
}

// shadowed returns true if a free reference inside value would resolve to
// a different binding when moved into scope. References to bindings
// declared inside value itself are ignored.
func (e *eliminator) shadowed(value *ast.Expression, scope, declScope *resolver.Scope) bool {
	if scope == nil {
		return true
	}
	found := false
	walkReferences(value, func(ref *ast.Identifier) {
		b := e.info.BindingOf(ref)
		if b != nil && !b.Scope.Encloses(declScope) {
			return
		}
		if scope.Lookup(ref.Name) != b {
			found = true
		}
	})
	return found
}

// allocates returns true if evaluating n creates a new object, which
// makes the place of evaluation observable.
func allocates(n *ast.Expression) bool {
	a := &allocationFinder{}
	a.V = a
	n.VisitWith(a)
	return a.found
}

type allocationFinder struct {
	ast.NoopVisitor
	found bool
}

func (a *allocationFinder) VisitExpression(n *ast.Expression) {
	switch n.Expr.(type) {
	case *ast.FunctionLiteral, *ast.ArrowFunctionLiteral, *ast.ClassLiteral,
		*ast.ObjectLiteral, *ast.ArrayLiteral, *ast.RegExpLiteral:
		a.found = true
		return
	}
	n.VisitChildrenWith(a)
}

// contains returns true if id occurs inside value.
func contains(value *ast.Expression, id *ast.Identifier) bool {
	found := false
	walkReferences(value, func(ref *ast.Identifier) {
		found = found || ref == id
	})
	return found
}

// walkReferences calls fn for every identifier of n used as a value.
func walkReferences(n ast.VisitableNode, fn func(*ast.Identifier)) {
	w := &referenceWalker{fn: fn}
	w.V = w
	n.VisitWith(w)
}

type referenceWalker struct {
	ast.NoopVisitor
	fn func(*ast.Identifier)
}

func (w *referenceWalker) VisitExpression(n *ast.Expression) {
	if id, ok := n.Expr.(*ast.Identifier); ok {
		w.fn(id)
		return
	}
	n.VisitChildrenWith(w)
}

func (w *referenceWalker) VisitPropertyShort(n *ast.PropertyShort) {
	w.fn(n.Name)
	if n.Initializer != nil {
		n.Initializer.VisitWith(w)
	}
}
