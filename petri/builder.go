package petri

// Builder provides a fluent API for constructing Petri nets.
//
// Example:
//
//	net, err := petri.Build().
//	    Place("A", 1).
//	    Place("B", 0).
//	    Transition("t0").
//	    Arc("A", "t0", 1).
//	    Arc("t0", "B", 1).
//	    Done()
type Builder struct {
	net *PetriNet
	err error
}

// Build starts a new Builder.
func Build() *Builder {
	return &Builder{net: NewPetriNet()}
}

// Place declares a place with the given initial token count.
func (b *Builder) Place(label string, initial int) *Builder {
	if b.err != nil {
		return b
	}
	_, b.err = b.net.AddPlace(label, initial)
	return b
}

// Transition declares a transition.
func (b *Builder) Transition(label string) *Builder {
	if b.err != nil {
		return b
	}
	_, b.err = b.net.AddTransition(label)
	return b
}

// Arc declares an arc between a place and a transition.
func (b *Builder) Arc(source, target string, weight int) *Builder {
	if b.err != nil {
		return b
	}
	_, b.err = b.net.AddArc(source, target, weight)
	return b
}

// Flow adds the pair of arcs for the common place -> transition -> place
// pattern: weight tokens flow from fromPlace into transition and back out
// to toPlace.
func (b *Builder) Flow(fromPlace, transition, toPlace string, weight int) *Builder {
	return b.Arc(fromPlace, transition, weight).Arc(transition, toPlace, weight)
}

// Chain declares a sequential place/transition/place/... chain. elements
// must alternate place, transition, place, ... and have odd length; the
// first place receives initialTokens, every other place starts empty.
func (b *Builder) Chain(initialTokens int, elements ...string) *Builder {
	if b.err != nil {
		return b
	}
	if len(elements) < 3 || len(elements)%2 == 0 {
		return b
	}

	b.Place(elements[0], initialTokens)
	for i := 1; i < len(elements) && b.err == nil; i += 2 {
		trans := elements[i]
		nextPlace := elements[i+1]
		b.Transition(trans)
		b.Place(nextPlace, 0)
		b.Arc(elements[i-1], trans, 1)
		b.Arc(trans, nextPlace, 1)
	}
	return b
}

// Done returns the completed Petri net, or the first error encountered
// while building it.
func (b *Builder) Done() (*PetriNet, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.net, nil
}
