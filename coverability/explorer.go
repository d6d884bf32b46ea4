package coverability

// Explore builds the finite CoverabilityGraph for input by Karp-Miller-style
// fixed-point iteration with ancestor acceleration: every reachable marking
// is explored exactly once, and any successor that dominates one of its
// ancestors in the graph-under-construction is accelerated to ω at the
// positions that grew. Explore terminates on every input whose transitions
// pass Input.Validate.
func Explore(input Input) (*Graph, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	g := newGraph()
	initial := NewMarking(input.InitialMarking...)
	g.addKey(initial)

	queue := []Marking{initial}
	for len(queue) > 0 {
		m := queue[0]
		queue = queue[1:]

		var candidates []Edge
		for _, t := range input.Transitions {
			n, ok := Fire(t, m)
			if !ok {
				continue
			}
			candidates = append(candidates, Edge{
				Consume: consumeVector(t),
				Target:  accelerate(g, n, m),
			})
		}

		g.setEdges(m, candidates)
		for _, e := range g.Edges(m) {
			if g.addKey(e.Target) {
				queue = append(queue, e.Target)
			}
		}
	}

	return g, nil
}

// accelerate applies ω-acceleration to a raw fire result n: every ancestor
// of n in the graph-so-far (the marking currently being expanded included)
// that n dominates contributes its ω positions, which accumulate onto n.
func accelerate(g *Graph, n, expanding Marking) Marking {
	accumulated := n
	for _, ancestor := range ancestorsOf(g, n, expanding) {
		if n.Dominates(ancestor) {
			accumulated = OmegaJoin(accumulated, ancestor)
		}
	}
	return accumulated
}

// ancestorsOf returns every key in g that can reach target or expanding via
// one or more stored edges, plus expanding itself (whose own edges are not
// yet stored while it is being processed). Traversal is a reverse search
// guarded by a visited set to avoid revisiting a key already accounted for.
func ancestorsOf(g *Graph, target, expanding Marking) []Marking {
	seen := map[string]bool{}
	var result []Marking

	add := func(m Marking) {
		key := m.Key()
		if !seen[key] {
			seen[key] = true
			result = append(result, m)
		}
	}
	add(expanding)

	visited := map[string]bool{}
	var visit func(m Marking)
	visit = func(m Marking) {
		key := m.Key()
		if visited[key] {
			return
		}
		visited[key] = true
		for _, candidate := range g.Keys() {
			for _, e := range g.Edges(candidate) {
				if e.Target.Equal(m) {
					add(candidate)
					visit(candidate)
				}
			}
		}
	}
	visit(target)
	visit(expanding)

	return result
}

func consumeVector(t []Arc) []int {
	out := make([]int, len(t))
	for i, a := range t {
		out[i] = a.Consume
	}
	return out
}
