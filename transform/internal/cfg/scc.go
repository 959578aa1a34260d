package cfg

import "iter"

// Graph is the view of a graph needed to find its strongly connected
// components.
type Graph[N comparable] interface {
	Nodes() iter.Seq[N]
	Neighbors(node N) iter.Seq[N]
}

// TarjanSCC finds strongly connected components with Tarjan's algorithm.
type TarjanSCC[N comparable] struct {
	graph   Graph[N]
	next    int
	stack   []N
	onStack map[N]bool
	index   map[N]int
	low     map[N]int
	sccs    [][]N
}

func NewTarjanSCC[N comparable](graph Graph[N]) *TarjanSCC[N] {
	return &TarjanSCC[N]{
		graph:   graph,
		onStack: make(map[N]bool),
		index:   make(map[N]int),
		low:     make(map[N]int),
	}
}

// StronglyConnectedComponents returns the components in reverse
// topological order: a component is listed before every component that
// reaches it.
func (t *TarjanSCC[N]) StronglyConnectedComponents() [][]N {
	for node := range t.graph.Nodes() {
		if _, seen := t.index[node]; !seen {
			t.connect(node)
		}
	}
	return t.sccs
}

func (t *TarjanSCC[N]) connect(node N) {
	t.index[node] = t.next
	t.low[node] = t.next
	t.next++
	t.stack = append(t.stack, node)
	t.onStack[node] = true

	for succ := range t.graph.Neighbors(node) {
		if _, seen := t.index[succ]; !seen {
			t.connect(succ)
			t.low[node] = min(t.low[node], t.low[succ])
		} else if t.onStack[succ] {
			t.low[node] = min(t.low[node], t.index[succ])
		}
	}

	if t.low[node] != t.index[node] {
		return
	}
	var scc []N
	for {
		top := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.onStack[top] = false
		scc = append(scc, top)
		if top == node {
			break
		}
	}
	t.sccs = append(t.sccs, scc)
}
