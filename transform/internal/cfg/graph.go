package cfg

import (
	"iter"

	"golang.org/x/exp/slices"
)

// Direction selects which edges of a node to follow.
type Direction int

const (
	Outgoing Direction = iota
	Incoming
)

type edgeKey[N comparable] struct {
	from, to N
}

// DirectedGraph is a directed graph with weighted edges. Nodes are kept in
// insertion order so that traversals are deterministic.
type DirectedGraph[N comparable, E any] struct {
	order    []N
	outgoing map[N][]N
	incoming map[N][]N
	weights  map[edgeKey[N]]E
}

// NewDirectedGraph returns an empty graph.
func NewDirectedGraph[N comparable, E any]() *DirectedGraph[N, E] {
	return &DirectedGraph[N, E]{
		outgoing: make(map[N][]N),
		incoming: make(map[N][]N),
		weights:  make(map[edgeKey[N]]E),
	}
}

// AddNode adds node if it is not in the graph yet.
func (g *DirectedGraph[N, E]) AddNode(node N) {
	if _, ok := g.outgoing[node]; ok {
		return
	}
	g.order = append(g.order, node)
	g.outgoing[node] = nil
}

// HasNode returns true if node was added to the graph.
func (g *DirectedGraph[N, E]) HasNode(node N) bool {
	_, ok := g.outgoing[node]
	return ok
}

// AddEdge connects from to to, adding missing nodes. Adding an existing
// edge replaces its weight.
func (g *DirectedGraph[N, E]) AddEdge(from, to N, weight E) {
	g.AddNode(from)
	g.AddNode(to)
	key := edgeKey[N]{from, to}
	if _, ok := g.weights[key]; !ok {
		g.outgoing[from] = append(g.outgoing[from], to)
		g.incoming[to] = append(g.incoming[to], from)
	}
	g.weights[key] = weight
}

// RemoveNode deletes node and every edge touching it.
func (g *DirectedGraph[N, E]) RemoveNode(node N) {
	if !g.HasNode(node) {
		return
	}
	for _, to := range g.outgoing[node] {
		g.incoming[to] = slices.DeleteFunc(g.incoming[to], func(n N) bool { return n == node })
		delete(g.weights, edgeKey[N]{node, to})
	}
	for _, from := range g.incoming[node] {
		g.outgoing[from] = slices.DeleteFunc(g.outgoing[from], func(n N) bool { return n == node })
		delete(g.weights, edgeKey[N]{from, node})
	}
	delete(g.outgoing, node)
	delete(g.incoming, node)
	g.order = slices.DeleteFunc(g.order, func(n N) bool { return n == node })
}

// EdgeWeight returns the weight of the edge from -> to.
func (g *DirectedGraph[N, E]) EdgeWeight(from, to N) (E, bool) {
	w, ok := g.weights[edgeKey[N]{from, to}]
	return w, ok
}

// Nodes iterates over the nodes in insertion order.
func (g *DirectedGraph[N, E]) Nodes() iter.Seq[N] {
	return func(yield func(N) bool) {
		for _, n := range g.order {
			if !yield(n) {
				return
			}
		}
	}
}

// Neighbors iterates over the successors of node.
func (g *DirectedGraph[N, E]) Neighbors(node N) iter.Seq[N] {
	return g.NeighborsDirected(node, Outgoing)
}

// NeighborsDirected iterates over the successors or predecessors of node.
func (g *DirectedGraph[N, E]) NeighborsDirected(node N, dir Direction) iter.Seq[N] {
	edges := g.outgoing[node]
	if dir == Incoming {
		edges = g.incoming[node]
	}
	return func(yield func(N) bool) {
		for _, n := range edges {
			if !yield(n) {
				return
			}
		}
	}
}
