// Package coverability implements the Karp-Miller-style coverability graph
// construction: the marking algebra (Fire, Dominates, OmegaJoin), the
// fixed-point explorer that builds a finite CoverabilityGraph with
// ω-acceleration, and the per-place bounds it implies. The package is pure:
// Explore and InferBounds allocate transient work structures and hand back
// immutable results, with no I/O of their own.
package coverability

import "github.com/pflow-xyz/petri-coverability/petrierr"

// Arc is one place's consume/produce pair within a transition's vector.
type Arc struct {
	Consume int
	Produce int
}

// Input is the positional net description consumed by Explore: an ordered
// place list, its initial marking, and one consume/produce vector per
// transition, each of length len(PlaceNames).
type Input struct {
	PlaceNames     []string
	InitialMarking []int
	Transitions    [][]Arc
}

// Validate checks that every transition vector has exactly one arc per
// declared place. It is the only failure mode the core accounts for; all
// other rejections (duplicate names, dangling references) belong to the
// parser that produced this Input.
func (in Input) Validate() error {
	p := len(in.PlaceNames)
	for i, t := range in.Transitions {
		if len(t) != p {
			return petrierr.TransitionArityMismatch(p, len(t), i)
		}
	}
	return nil
}
