package coverability

// OmegaCap is the finite sentinel substituted for ω when a place's range
// must be projected onto a printable upper bound (the SMV dialect has no
// infinite range). This loses precision for liveness properties over
// unbounded places; it is documented rather than avoided, per the trade-off
// the emitted SMV header calls out.
const OmegaCap = 1000

// PlaceBounds is the inferred {alias, index, min, max} for one place across
// every key of a CoverabilityGraph.
type PlaceBounds struct {
	Alias string
	Index int
	Min   int
	Max   int
}

// InferBounds computes, for each place, the minimum and maximum finite
// value observed across every key of g (seeded from the initial marking),
// with Max pinned to OmegaCap for any place observed at ω in any key.
func InferBounds(placeNames []string, initial []int, g *Graph) []PlaceBounds {
	bounds := make([]PlaceBounds, len(placeNames))
	for i, name := range placeNames {
		bounds[i] = PlaceBounds{Alias: name, Index: i, Min: initial[i], Max: initial[i]}
	}

	for _, key := range g.Keys() {
		for i, pos := range key {
			if pos.IsOmega() {
				bounds[i].Max = OmegaCap
				continue
			}
			if pos.Value() < bounds[i].Min {
				bounds[i].Min = pos.Value()
			}
			if pos.Value() > bounds[i].Max && bounds[i].Max != OmegaCap {
				bounds[i].Max = pos.Value()
			}
		}
	}

	return bounds
}
