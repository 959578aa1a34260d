package deadcode

import (
	"github.com/t14raptor/jsdce/ast"
	"github.com/t14raptor/jsdce/resolver"
	"github.com/t14raptor/jsdce/transform/internal/cfg"
)

// collectCycles returns the bindings that are only referenced from
// declarations which are themselves unreachable from the rest of the
// program, like a pair of mutually recursive functions nobody calls.
func collectCycles(p *ast.Program, info *resolver.Info) map[*resolver.Binding]bool {
	a := &usageAnalyzer{
		info:    info,
		graph:   cfg.NewDirectedGraph[*resolver.Binding, int](),
		entries: make(map[*resolver.Binding]bool),
	}
	a.V = a
	p.VisitWith(a)

	cyclic := make(map[*resolver.Binding]bool)
	for _, scc := range cfg.NewTarjanSCC[*resolver.Binding](a.graph).StronglyConnectedComponents() {
		if a.unreachable(scc) {
			for _, b := range scc {
				cyclic[b] = true
			}
		}
	}
	return cyclic
}

// usageAnalyzer builds a graph with an edge from every function or class
// declaration to the bindings it references. References made outside any
// such declaration mark their binding as an entry.
type usageAnalyzer struct {
	ast.NoopVisitor

	info    *resolver.Info
	graph   *cfg.DirectedGraph[*resolver.Binding, int]
	entries map[*resolver.Binding]bool
	path    []*resolver.Binding
}

func (a *usageAnalyzer) within(b *resolver.Binding, visit func()) {
	if b == nil {
		visit()
		return
	}
	a.graph.AddNode(b)
	a.path = append(a.path, b)
	visit()
	a.path = a.path[:len(a.path)-1]
}

func (a *usageAnalyzer) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	a.within(a.info.Declaration(n.Function.Name), func() {
		n.VisitChildrenWith(a)
	})
}

func (a *usageAnalyzer) VisitClassDeclaration(n *ast.ClassDeclaration) {
	a.within(a.info.Declaration(n.Class.Name), func() {
		n.VisitChildrenWith(a)
	})
}

func (a *usageAnalyzer) VisitVariableDeclarator(n *ast.VariableDeclarator) {
	id, ok := n.Target.Target.(*ast.Identifier)
	if !ok || n.Initializer == nil || !(ast.IsFunctionLike(n.Initializer.Expr) || ast.IsClassLike(n.Initializer.Expr)) {
		n.VisitChildrenWith(a)
		return
	}
	n.Target.VisitWith(a)
	a.within(a.info.Declaration(id), func() {
		n.Initializer.VisitWith(a)
	})
}

func (a *usageAnalyzer) VisitIdentifier(n *ast.Identifier) {
	b := a.info.BindingOf(n)
	if b == nil {
		return
	}
	if len(a.path) == 0 {
		a.entries[b] = true
		return
	}
	from := a.path[len(a.path)-1]
	w, _ := a.graph.EdgeWeight(from, b)
	a.graph.AddEdge(from, b, w+1)
}

// unreachable returns true if every reference to the members of scc comes
// from inside scc.
func (a *usageAnalyzer) unreachable(scc []*resolver.Binding) bool {
	if len(scc) == 1 {
		if _, self := a.graph.EdgeWeight(scc[0], scc[0]); !self {
			return false
		}
	}
	members := make(map[*resolver.Binding]bool, len(scc))
	for _, b := range scc {
		members[b] = true
	}
	for _, b := range scc {
		if a.entries[b] || b.Exported {
			return false
		}
		total := 0
		for from := range a.graph.NeighborsDirected(b, cfg.Incoming) {
			if !members[from] {
				return false
			}
			w, _ := a.graph.EdgeWeight(from, b)
			total += w
		}
		if total != b.References {
			return false
		}
	}
	return true
}
