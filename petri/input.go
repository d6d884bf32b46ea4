package petri

import "github.com/pflow-xyz/petri-coverability/coverability"

// ToInput lowers a built PetriNet into the positional Input consumed by the
// coverability explorer. Each transition's consume/produce vector is
// assembled from its input and output arcs against the declared place
// order.
func (n *PetriNet) ToInput() (coverability.Input, error) {
	placeNames := n.PlaceNames()
	placeIndex := make(map[string]int, len(placeNames))
	for i, name := range placeNames {
		placeIndex[name] = i
	}

	initial := make([]int, len(placeNames))
	for i, name := range placeNames {
		initial[i] = n.Places[name].Initial
	}

	transitions := make([][]coverability.Arc, 0, len(n.transOrder))
	for _, label := range n.transOrder {
		row := make([]coverability.Arc, len(placeNames))
		for _, arc := range n.GetInputArcs(label) {
			row[placeIndex[arc.Source]].Consume += arc.Weight
		}
		for _, arc := range n.GetOutputArcs(label) {
			row[placeIndex[arc.Target]].Produce += arc.Weight
		}
		transitions = append(transitions, row)
	}

	input := coverability.Input{
		PlaceNames:     placeNames,
		InitialMarking: initial,
		Transitions:    transitions,
	}
	return input, input.Validate()
}
