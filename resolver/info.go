package resolver

import "github.com/t14raptor/jsdce/ast"

// Info is the result of resolving a program.
type Info struct {
	Program *Scope

	scopes    map[ast.VisitableNode]*Scope
	refs      map[*ast.Identifier]*Binding
	refScopes map[*ast.Identifier]*Scope
	decls     map[*ast.Identifier]*Binding
}

func newInfo() *Info {
	return &Info{
		scopes:    make(map[ast.VisitableNode]*Scope),
		refs:      make(map[*ast.Identifier]*Binding),
		refScopes: make(map[*ast.Identifier]*Scope),
		decls:     make(map[*ast.Identifier]*Binding),
	}
}

// BindingOf returns the binding a reference resolves to, or nil if id is
// not a reference or refers to a global.
func (i *Info) BindingOf(id *ast.Identifier) *Binding {
	return i.refs[id]
}

// ScopeOf returns the innermost scope containing the reference id.
func (i *Info) ScopeOf(id *ast.Identifier) *Scope {
	return i.refScopes[id]
}

// Declaration returns the binding declared by id, or nil if id is not a
// declaring identifier.
func (i *Info) Declaration(id *ast.Identifier) *Binding {
	return i.decls[id]
}

// ScopeOfNode returns the scope opened by node, or nil.
func (i *Info) ScopeOfNode(node ast.VisitableNode) *Scope {
	return i.scopes[node]
}
