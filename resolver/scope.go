package resolver

import (
	"slices"

	"golang.org/x/exp/maps"

	"github.com/t14raptor/jsdce/ast"
)

type BindingKind int

const (
	KindVar BindingKind = iota
	KindLet
	KindConst
	KindFunction
	KindClass
	KindParam
	KindCatch
	KindModule
	// KindLocal is the name of a function or class expression, bound
	// inside the expression itself.
	KindLocal
)

var kindNames = [...]string{
	KindVar:      "var",
	KindLet:      "let",
	KindConst:    "const",
	KindFunction: "function",
	KindClass:    "class",
	KindParam:    "param",
	KindCatch:    "catch",
	KindModule:   "module",
	KindLocal:    "local",
}

func (k BindingKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// hoisted kinds are usable from the start of their scope.
func (k BindingKind) hoisted() bool {
	switch k {
	case KindVar, KindLet, KindConst, KindClass:
		return false
	}
	return true
}

type ScopeKind int

const (
	ScopeKindProgram ScopeKind = iota
	ScopeKindFunction
	ScopeKindBlock
	ScopeKindClass
)

// Binding is a declared name.
type Binding struct {
	Name string
	Kind BindingKind

	// Scope holds the binding. DeclScope is the scope the declaration
	// appears in, which differs from Scope for hoisted var declarations.
	Scope     *Scope
	DeclScope *Scope

	// Ident is the first declaring identifier.
	Ident *ast.Identifier
	// Node is the declaring node: a *ast.VariableDeclarator,
	// *ast.FunctionDeclaration, *ast.ClassDeclaration,
	// *ast.ImportDeclaration, *ast.CatchStatement, or the function or
	// class literal for parameters and local names.
	Node ast.VisitableNode
	// Container is the statement holding Node, if any: the
	// *ast.VariableDeclaration of a declarator, or the export declaration
	// wrapping a function or class declaration.
	Container ast.VisitableNode

	// References counts reads and writes, excluding declarations.
	References int
	// Constant is true if the name is never reassigned after its
	// declaration.
	Constant bool
	// Exported is true if the binding is visible to other modules.
	Exported bool
	// ForwardReferenced is true if the name is used before its declaration
	// runs, in source order.
	ForwardReferenced bool

	initialized bool
}

// Referenced returns true if the binding has at least one reference.
func (b *Binding) Referenced() bool {
	return b.References > 0
}

// Scope is a binding table in the scope chain.
type Scope struct {
	Parent *Scope
	Kind   ScopeKind
	Node   ast.VisitableNode
	Mark   ast.ScopeContext

	// DirectEval is set when a direct call to eval can observe the
	// bindings of this scope.
	DirectEval bool

	Bindings map[string]*Binding
}

func newScope(parent *Scope, kind ScopeKind, node ast.VisitableNode, mark ast.ScopeContext) *Scope {
	return &Scope{
		Parent:   parent,
		Kind:     kind,
		Node:     node,
		Mark:     mark,
		Bindings: make(map[string]*Binding),
	}
}

// Lookup walks the scope chain outward and returns the binding for name,
// or nil if name is a global.
func (s *Scope) Lookup(name string) *Binding {
	for scope := s; scope != nil; scope = scope.Parent {
		if b, ok := scope.Bindings[name]; ok {
			return b
		}
	}
	return nil
}

// Remove deletes the binding for name from this scope.
func (s *Scope) Remove(name string) {
	delete(s.Bindings, name)
}

// Names returns the names bound in this scope, sorted.
func (s *Scope) Names() []string {
	names := maps.Keys(s.Bindings)
	slices.Sort(names)
	return names
}

// Encloses returns true if s is other or one of its ancestors.
func (s *Scope) Encloses(other *Scope) bool {
	for scope := other; scope != nil; scope = scope.Parent {
		if scope == s {
			return true
		}
	}
	return false
}

func (s *Scope) functionScope() *Scope {
	scope := s
	for scope.Kind != ScopeKindFunction && scope.Kind != ScopeKindProgram {
		scope = scope.Parent
	}
	return scope
}
