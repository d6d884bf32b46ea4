// Package dotgraph translates an explored coverability graph into a
// Graphviz dot textual description, labeling each edge with the index of
// the transition whose consume projection produced it.
package dotgraph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pflow-xyz/petri-coverability/coverability"
)

// Emit builds the dot text for g. transitions is the net's full transition
// list in definition order, used to resolve each edge's consume vector back
// to a transition index for its "tK" label; ties go to the first matching
// index. Emit is a pure string builder and never fails: an edge whose
// stored consume vector matches no transition means the graph was built
// from a different transition set than the one passed here, which is a
// programmer error and panics.
func Emit(placeNames []string, g *coverability.Graph, transitions [][]coverability.Arc) string {
	var body strings.Builder
	fmt.Fprintf(&body, "  %q\n", strings.Join(placeNames, "-"))

	for _, key := range g.Keys() {
		for _, e := range g.Edges(key) {
			index := transitionIndex(e.Consume, transitions)
			fmt.Fprintf(&body, "  %q -> %q [label = \"t%d\"]\n", key.DotName(), e.Target.DotName(), index)
		}
	}

	return fmt.Sprintf("digraph {\n%s}\n", body.String())
}

// transitionIndex finds the first transition whose consume projection
// equals consume. The graph's edges are always derived from the transition
// list handed to Emit, so a miss can only come from mismatched inputs.
func transitionIndex(consume []int, transitions [][]coverability.Arc) int {
	for i, t := range transitions {
		if consumeProjectionEqual(consume, t) {
			return i
		}
	}
	panic("dotgraph: no transition matches edge consume vector " + consumeVectorString(consume))
}

func consumeProjectionEqual(consume []int, t []coverability.Arc) bool {
	if len(consume) != len(t) {
		return false
	}
	for i, c := range consume {
		if t[i].Consume != c {
			return false
		}
	}
	return true
}

func consumeVectorString(consume []int) string {
	parts := make([]string, len(consume))
	for i, c := range consume {
		parts[i] = strconv.Itoa(c)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
