// Package petri implements the Petri net data structures accepted by both
// input dialects: places holding integer token counts, transitions, and the
// arcs connecting them. A PetriNet built incrementally via AddPlace,
// AddTransition and AddArc can be lowered into the coverability package's
// positional Input via ToInput.
package petri

import "github.com/pflow-xyz/petri-coverability/petrierr"

// Place is a state in a Petri net holding a non-negative integer token count.
type Place struct {
	Label   string
	Initial int
}

// Transition is an event that consumes tokens from its input places and
// produces tokens in its output places according to arc weights.
type Transition struct {
	Label string
}

// Arc is a directed, weighted connection between a place and a transition.
// Source/Target name either a place or a transition label; exactly one side
// of an arc names a place and the other a transition.
type Arc struct {
	Source string
	Target string
	Weight int
}

// PetriNet is a complete Petri net description, built incrementally.
// Place and transition order is preserved in placeOrder/transOrder so that
// ToInput produces deterministic, declaration-ordered output.
type PetriNet struct {
	Places      map[string]*Place
	Transitions map[string]*Transition
	Arcs        []*Arc

	placeOrder []string
	transOrder []string

	// arcDirection records every (place, transition, direction) triple
	// already declared, direction being "in" or "out", to detect a repeated
	// arc in the same direction between the same place and transition.
	arcDirection map[string]string
}

// NewPetriNet creates an empty Petri net.
func NewPetriNet() *PetriNet {
	return &PetriNet{
		Places:       make(map[string]*Place),
		Transitions:  make(map[string]*Transition),
		Arcs:         make([]*Arc, 0),
		arcDirection: make(map[string]string),
	}
}

// AddPlace declares a new place with the given initial token count. It
// fails with petrierr.DuplicatePlace if label was already declared as a
// place.
func (n *PetriNet) AddPlace(label string, initial int) (*Place, error) {
	if _, exists := n.Places[label]; exists {
		return nil, petrierr.DuplicatePlace(label)
	}
	p := &Place{Label: label, Initial: initial}
	n.Places[label] = p
	n.placeOrder = append(n.placeOrder, label)
	return p, nil
}

// AddTransition declares a new transition. Re-declaring the same label is
// idempotent: the editor dialect may emit a transition line once per node
// but this guards against accidental duplicates silently overwriting state.
func (n *PetriNet) AddTransition(label string) (*Transition, error) {
	if t, exists := n.Transitions[label]; exists {
		return t, nil
	}
	t := &Transition{Label: label}
	n.Transitions[label] = t
	n.transOrder = append(n.transOrder, label)
	return t, nil
}

// AddArc declares an arc between a place and a transition. One of source or
// target must already be a declared place and the other a declared
// transition; otherwise petrierr.UndeclaredPlaceReference is returned. A
// second arc between the same place and transition in the same direction
// (place->transition or transition->place) is rejected with
// petrierr.RepeatedPlaceInTransition.
func (n *PetriNet) AddArc(source, target string, weight int) (*Arc, error) {
	place, transition, direction, err := n.classifyArc(source, target)
	if err != nil {
		return nil, err
	}

	key := place + "\x00" + transition + "\x00" + direction
	if _, seen := n.arcDirection[key]; seen {
		return nil, petrierr.RepeatedPlaceInTransition(place, transition)
	}
	n.arcDirection[key] = direction

	a := &Arc{Source: source, Target: target, Weight: weight}
	n.Arcs = append(n.Arcs, a)
	return a, nil
}

// classifyArc determines which endpoint is the place, which is the
// transition, and whether the arc is an input ("in", place->transition) or
// an output ("out", transition->place).
func (n *PetriNet) classifyArc(source, target string) (place, transition, direction string, err error) {
	_, sourceIsPlace := n.Places[source]
	_, sourceIsTransition := n.Transitions[source]
	_, targetIsPlace := n.Places[target]
	_, targetIsTransition := n.Transitions[target]

	switch {
	case sourceIsPlace && targetIsTransition:
		return source, target, "in", nil
	case sourceIsTransition && targetIsPlace:
		return target, source, "out", nil
	case !sourceIsPlace && !sourceIsTransition:
		return "", "", "", petrierr.UndeclaredPlaceReference(source)
	case !targetIsPlace && !targetIsTransition:
		return "", "", "", petrierr.UndeclaredPlaceReference(target)
	default:
		// Both endpoints are declared, but as the same kind; an arc must
		// connect a place to a transition.
		return "", "", "", petrierr.UndeclaredPlaceReference(source)
	}
}

// GetInputArcs returns all arcs that lead into the given transition.
func (n *PetriNet) GetInputArcs(transitionLabel string) []*Arc {
	var result []*Arc
	for _, arc := range n.Arcs {
		if arc.Target == transitionLabel {
			result = append(result, arc)
		}
	}
	return result
}

// GetOutputArcs returns all arcs that lead out from the given transition.
func (n *PetriNet) GetOutputArcs(transitionLabel string) []*Arc {
	var result []*Arc
	for _, arc := range n.Arcs {
		if arc.Source == transitionLabel {
			result = append(result, arc)
		}
	}
	return result
}

// PlaceNames returns place labels in declaration order.
func (n *PetriNet) PlaceNames() []string {
	out := make([]string, len(n.placeOrder))
	copy(out, n.placeOrder)
	return out
}

// TransitionNames returns transition labels in declaration order.
func (n *PetriNet) TransitionNames() []string {
	out := make([]string, len(n.transOrder))
	copy(out, n.transOrder)
	return out
}
