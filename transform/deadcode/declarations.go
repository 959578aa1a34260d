package deadcode

import (
	"github.com/t14raptor/jsdce/ast"
	"github.com/t14raptor/jsdce/ast/ext"
	"github.com/t14raptor/jsdce/resolver"
	"github.com/t14raptor/jsdce/token"
)

// removable returns true if the declaration of b can be deleted.
func (e *eliminator) removable(b *resolver.Binding) bool {
	if b == nil || b.Exported || b.Scope.DirectEval || b.Scope.Bindings[b.Name] != b {
		return false
	}
	switch b.Kind {
	case resolver.KindParam, resolver.KindModule, resolver.KindCatch, resolver.KindLocal:
		return false
	}
	return !b.Referenced() || e.cyclic[b]
}

// removeDeclaration deletes an unreferenced function, class or variable
// declaration and returns true if n is gone.
func (e *eliminator) removeDeclaration(n *ast.Statement) bool {
	switch s := n.Stmt.(type) {
	case *ast.FunctionDeclaration:
		if !e.removable(e.info.Declaration(s.Function.Name)) {
			return false
		}
		e.release(s)
		e.record(&e.stats.DeclarationsRemoved, "remove", "binding", s.Function.Name.Name)
		return true
	case *ast.ClassDeclaration:
		// Decorators may register the class somewhere else.
		if ast.HasDecorators(s.Class) || !e.removable(e.info.Declaration(s.Class.Name)) {
			return false
		}
		if ext.MayHaveSideEffectsStmt(*n) {
			return false
		}
		e.release(s)
		e.record(&e.stats.DeclarationsRemoved, "remove", "binding", s.Class.Name.Name)
		return true
	case *ast.VariableDeclaration:
		return e.removeDeclarators(s)
	}
	return false
}

// removeDeclarators marks the unreferenced declarators of n with a pure
// initializer as dead. It returns true if no declarator of n is left.
func (e *eliminator) removeDeclarators(n *ast.VariableDeclaration) bool {
	left := false
	for i := range n.List {
		d := &n.List[i]
		if e.dead[d] {
			continue
		}
		id, ok := d.Target.Target.(*ast.Identifier)
		if !ok || !e.removable(e.info.Declaration(id)) || !ext.IsPureConstant(d.Initializer, e) {
			left = true
			continue
		}
		if d.Initializer != nil {
			e.release(d.Initializer)
		}
		e.dead[d] = true
		e.record(&e.stats.DeclarationsRemoved, "remove", "binding", id.Name)
	}
	return !left
}

// unreachable handles a statement following a completion statement and
// returns what is left of it. Function declarations are hoisted and stay.
// Other declarations stay while their bindings are referenced, without the
// initializers that can no longer run.
func (e *eliminator) unreachable(n *ast.Statement) ast.Statements {
	switch s := n.Stmt.(type) {
	case *ast.FunctionDeclaration:
		return e.reduce(n)
	case *ast.EmptyStatement:
		return nil
	case *ast.VariableDeclaration:
		if e.keepDeclarators(s) {
			n.VisitChildrenWith(e)
			return ast.Statements{*n}
		}
	case *ast.ClassDeclaration:
		if e.referenced(e.info.Declaration(s.Class.Name)) {
			n.VisitChildrenWith(e)
			return ast.Statements{*n}
		}
	}

	e.release(n)
	e.record(&e.stats.StatementsPruned, "prune")
	if vars := e.survivingVars(n); vars != nil {
		return ast.Statements{*vars}
	}
	return nil
}

// keepDeclarators trims an unreachable variable declaration. It returns
// false if none of its bindings is referenced.
func (e *eliminator) keepDeclarators(n *ast.VariableDeclaration) bool {
	keep := false
	for i := range n.List {
		if d := &n.List[i]; !e.dead[d] && e.bindsReferenced(d.Target) {
			keep = true
		}
	}
	if !keep {
		return false
	}

	for i := range n.List {
		d := &n.List[i]
		if e.dead[d] {
			continue
		}
		if !e.bindsReferenced(d.Target) {
			if d.Initializer != nil {
				e.release(d.Initializer)
			}
			e.dead[d] = true
			e.record(&e.stats.DeclarationsRemoved, "remove")
			continue
		}
		// A const needs its initializer and a pattern needs a value to
		// destructure.
		if _, ok := d.Target.Target.(*ast.Identifier); !ok || n.Token == token.Const || d.Initializer == nil {
			continue
		}
		e.release(d.Initializer)
		d.Initializer = nil
		e.record(&e.stats.StatementsPruned, "prune")
	}
	return true
}

func (e *eliminator) referenced(b *resolver.Binding) bool {
	return b != nil && b.Referenced() && !e.cyclic[b]
}

func (e *eliminator) bindsReferenced(target *ast.BindingTarget) bool {
	found := false
	ast.WalkBindingNames(target, func(id *ast.Identifier) {
		found = found || e.referenced(e.info.Declaration(id))
	})
	return found
}

// survivingVars returns a declaration of the var bindings declared in the
// discarded statement n that are still referenced elsewhere, or nil. A var
// is hoisted out of its block, so dropping its declaration would turn the
// remaining references into globals.
func (e *eliminator) survivingVars(n ast.VisitableNode) *ast.Statement {
	c := &varCollector{}
	c.V = c
	n.VisitWith(c)

	seen := make(map[*resolver.Binding]bool)
	decl := &ast.VariableDeclaration{Token: token.Var}
	for _, id := range c.ids {
		b := e.info.Declaration(id)
		if !e.referenced(b) || seen[b] {
			continue
		}
		seen[b] = true
		decl.List = append(decl.List, ast.VariableDeclarator{
			Target: &ast.BindingTarget{Target: &ast.Identifier{Name: id.Name, ScopeContext: id.ScopeContext}},
		})
	}
	if len(decl.List) == 0 {
		return nil
	}
	return &ast.Statement{Stmt: decl}
}

// varCollector gathers the names declared by var statements, without
// entering nested functions and classes.
type varCollector struct {
	ast.NoopVisitor
	ids []*ast.Identifier
}

func (c *varCollector) VisitVariableDeclaration(n *ast.VariableDeclaration) {
	if n.Token == token.Var {
		for i := range n.List {
			ast.WalkBindingNames(n.List[i].Target, func(id *ast.Identifier) {
				c.ids = append(c.ids, id)
			})
		}
	}
	n.VisitChildrenWith(c)
}

func (c *varCollector) VisitFunctionLiteral(*ast.FunctionLiteral) {}

func (c *varCollector) VisitArrowFunctionLiteral(*ast.ArrowFunctionLiteral) {}

func (c *varCollector) VisitClassLiteral(*ast.ClassLiteral) {}
