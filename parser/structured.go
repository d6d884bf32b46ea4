package parser

import (
	"encoding/json"
	"fmt"

	"github.com/pflow-xyz/petri-coverability/coverability"
	"github.com/pflow-xyz/petri-coverability/petrierr"
)

// structuredDoc mirrors the structured dialect's top-level object:
//
//	{
//	  "m_names": ["p0", "p1"],
//	  "m_init": [1, 0],
//	  "transitions": [[[1, 0], [0, 1]]]
//	}
//
// m_init is decoded through []*int rather than []int so that a JSON null
// entry is distinguishable from an absent-but-zero one: encoding/json
// silently leaves a non-pointer scalar at its zero value for a null array
// element, which would defeat the rejection ParseStructured must perform
// (the initial marking must be fully specified with finite values).
type structuredDoc struct {
	MNames      []string   `json:"m_names"`
	MInit       []*int     `json:"m_init"`
	Transitions [][][2]int `json:"transitions"`
}

// ParseStructured decodes the structured dialect into an Input. It fails
// with petrierr.DuplicatePlace on a repeated place name, with
// petrierr.FileIOFailed on a null m_init entry (the initial marking must be
// fully specified with finite, non-negative integers), and with
// petrierr.TransitionArityMismatch when a transition's length does not
// match len(m_names); all checks happen before any graph construction.
func ParseStructured(data []byte) (coverability.Input, error) {
	var doc structuredDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return coverability.Input{}, petrierr.FileIOFailed("invalid structured input", err)
	}

	seen := make(map[string]bool, len(doc.MNames))
	for _, name := range doc.MNames {
		if seen[name] {
			return coverability.Input{}, petrierr.DuplicatePlace(name)
		}
		seen[name] = true
	}

	initial := make([]int, len(doc.MInit))
	for i, v := range doc.MInit {
		if v == nil {
			return coverability.Input{}, petrierr.FileIOFailed(fmt.Sprintf("m_init[%d] is null; the initial marking must be fully specified", i), nil)
		}
		initial[i] = *v
	}

	transitions := make([][]coverability.Arc, len(doc.Transitions))
	for i, t := range doc.Transitions {
		row := make([]coverability.Arc, len(t))
		for j, pair := range t {
			row[j] = coverability.Arc{Consume: pair[0], Produce: pair[1]}
		}
		transitions[i] = row
	}

	input := coverability.Input{
		PlaceNames:     doc.MNames,
		InitialMarking: initial,
		Transitions:    transitions,
	}
	return input, input.Validate()
}
