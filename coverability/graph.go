package coverability

import (
	"strconv"
	"strings"
)

// Edge is one outgoing transition from a graph key: Consume is the firing
// transition's consume projection, which identifies it when transitions are
// distinct, and Target is the resulting marking.
type Edge struct {
	Consume []int
	Target  Marking
}

// Graph is the CoverabilityGraph: an insertion-ordered mapping from Marking
// to its ordered, duplicate-free edge list. A Graph is built incrementally
// by Explore and is never mutated once returned.
type Graph struct {
	order []Marking
	index map[string]int
	edges map[string][]Edge
}

func newGraph() *Graph {
	return &Graph{
		index: make(map[string]int),
		edges: make(map[string][]Edge),
	}
}

// Has reports whether m is already a key of the graph.
func (g *Graph) Has(m Marking) bool {
	_, ok := g.index[m.Key()]
	return ok
}

// addKey registers m as a key if it is not already present, preserving
// insertion order. Returns true if m was newly added.
func (g *Graph) addKey(m Marking) bool {
	key := m.Key()
	if _, ok := g.index[key]; ok {
		return false
	}
	g.index[key] = len(g.order)
	g.order = append(g.order, m)
	return true
}

// setEdges stores the outgoing edge list for an already-keyed marking,
// deduplicating edges that share both transition identity and target.
func (g *Graph) setEdges(from Marking, candidates []Edge) {
	key := from.Key()
	seen := make(map[string]bool, len(candidates))
	deduped := make([]Edge, 0, len(candidates))
	for _, e := range candidates {
		dedupKey := consumeKey(e.Consume) + "|" + e.Target.Key()
		if seen[dedupKey] {
			continue
		}
		seen[dedupKey] = true
		deduped = append(deduped, e)
	}
	g.edges[key] = deduped
}

// Keys returns the graph's keys in insertion (discovery) order.
func (g *Graph) Keys() []Marking {
	out := make([]Marking, len(g.order))
	copy(out, g.order)
	return out
}

// Edges returns the outgoing edges of m, in the order they were stored.
func (g *Graph) Edges(m Marking) []Edge {
	edges := g.edges[m.Key()]
	out := make([]Edge, len(edges))
	copy(out, edges)
	return out
}

func consumeKey(consume []int) string {
	var b strings.Builder
	for _, c := range consume {
		b.WriteString(strconv.Itoa(c))
		b.WriteByte(',')
	}
	return b.String()
}
