package parser

import (
	"strconv"
	"strings"

	"github.com/pflow-xyz/petri-coverability/coverability"
	"github.com/pflow-xyz/petri-coverability/petri"
)

// ParseEditor parses the line-oriented graphical-editor dialect:
//
//	p <x> <y> <name> <tokens> <anchor>   declares a place
//	t <x> <y> <name> <delay> <kind> <anchor>  declares a transition
//	e <A> <B> <weight> <anchor>          declares an arc between A and B
//
// Any other line is ignored. Declaration order is preserved through
// petri.Builder, whose Place/Transition/Arc already enforce the
// place-uniqueness, reference, and repeated-arc checks this dialect needs;
// the first such error short-circuits the remaining lines and surfaces from
// Done.
func ParseEditor(code string) (coverability.Input, error) {
	b := petri.Build()

	for _, line := range strings.Split(code, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "p":
			b = applyPlaceLine(b, fields)
		case "t":
			b = applyTransitionLine(b, fields)
		case "e":
			b = applyArcLine(b, fields)
		}
	}

	net, err := b.Done()
	if err != nil {
		return coverability.Input{}, err
	}
	return net.ToInput()
}

func applyPlaceLine(b *petri.Builder, fields []string) *petri.Builder {
	if len(fields) < 5 {
		return b
	}
	tokens, err := strconv.Atoi(fields[4])
	if err != nil {
		return b
	}
	return b.Place(fields[3], tokens)
}

func applyTransitionLine(b *petri.Builder, fields []string) *petri.Builder {
	if len(fields) < 4 {
		return b
	}
	return b.Transition(fields[3])
}

func applyArcLine(b *petri.Builder, fields []string) *petri.Builder {
	if len(fields) < 4 {
		return b
	}
	weight, err := strconv.Atoi(fields[3])
	if err != nil {
		return b
	}
	return b.Arc(fields[1], fields[2], weight)
}
