package resolver

import (
	"github.com/t14raptor/jsdce/ast"
)

// declare binds id in the scope its kind hoists to. In the resolve phase
// it only stamps the identifier and marks the binding initialized.
func (r *Resolver) declare(id *ast.Identifier, kind BindingKind, node ast.VisitableNode) *Binding {
	if r.phase == phaseResolve {
		b := r.info.decls[id]
		if b != nil {
			id.ScopeContext = b.Scope.Mark
			b.initialized = true
		}
		return b
	}

	scope := r.current
	switch kind {
	case KindVar:
		scope = scope.functionScope()
	case KindModule:
		scope = r.info.Program
	}

	container := r.container
	switch kind {
	case KindParam, KindCatch, KindLocal:
		container = nil
	}

	b, exists := scope.Bindings[id.Name]
	if exists {
		// Redeclared var or function: more than one assignment.
		b.Constant = false
	} else {
		b = &Binding{
			Name:        id.Name,
			Kind:        kind,
			Scope:       scope,
			DeclScope:   r.current,
			Ident:       id,
			Node:        node,
			Container:   container,
			Constant:    true,
			initialized: kind.hoisted(),
		}
		scope.Bindings[id.Name] = b
	}
	if ast.IsExportDeclaration(container) {
		b.Exported = true
	}
	if r.forHead {
		b.Constant = false
	}
	r.info.decls[id] = b
	return b
}

// pattern declares every name bound by a binding target.
func (r *Resolver) pattern(n *ast.BindingTarget, kind BindingKind, node ast.VisitableNode) {
	if n == nil {
		return
	}
	switch t := n.Target.(type) {
	case *ast.Identifier:
		r.declare(t, kind, node)
	case *ast.ArrayPattern:
		for i := range t.Elements {
			r.element(&t.Elements[i], kind, node)
		}
		r.pattern(t.Rest, kind, node)
	case *ast.ObjectPattern:
		for i := range t.Properties {
			p := &t.Properties[i]
			if p.Computed {
				p.Key.VisitWith(r)
			}
			r.element(&p.Value, kind, node)
		}
		r.pattern(t.Rest, kind, node)
	}
}

// element declares a pattern element after resolving its default value.
func (r *Resolver) element(n *ast.VariableDeclarator, kind BindingKind, node ast.VisitableNode) {
	if n.Target == nil {
		return
	}
	if n.Initializer != nil {
		n.Initializer.VisitWith(r)
	}
	r.pattern(n.Target, kind, node)
}

func (r *Resolver) markExported(n *ast.BindingTarget) {
	ast.WalkBindingNames(n, func(id *ast.Identifier) {
		if b := r.info.decls[id]; b != nil {
			b.Exported = true
		}
	})
}
