// Package smv translates an explored coverability graph into a symbolic
// transition system in the SMV family's textual input dialect: a single
// MODULE main with an enumerated state variable over the graph's keys and
// one integer-ranged variable per place.
package smv

import (
	"fmt"
	"strings"

	"github.com/pflow-xyz/petri-coverability/coverability"
)

// Emit builds the SMV text for a CoverabilityGraph. It is a pure string
// builder: it never fails, and never performs I/O. initial is the graph's
// root marking, and bounds is the per-place range inferred by
// coverability.InferBounds for the same graph.
func Emit(initial coverability.Marking, g *coverability.Graph, bounds []coverability.PlaceBounds) string {
	keys := g.Keys()

	var out strings.Builder
	out.WriteString("-- Unbounded places are projected onto a fixed finite cap used as their\n")
	out.WriteString("-- range's upper bound; liveness properties over such places lose precision.\n")
	out.WriteString("MODULE main\n")
	out.WriteString("  VAR\n")
	fmt.Fprintf(&out, "    s : %s;\n", stateSet(keys))
	for _, b := range bounds {
		fmt.Fprintf(&out, "    %s;\n", placeRange(b))
	}
	out.WriteString("  ASSIGN\n")
	fmt.Fprintf(&out, "    init(s) := %s;\n", initial.StateName())
	out.WriteString("    next(s) := case\n")
	for _, k := range keys {
		fmt.Fprintf(&out, "        %s\n", stateTransitionArm(k, g.Edges(k)))
	}
	out.WriteString("    esac;\n")
	for _, b := range bounds {
		out.WriteString("    ")
		out.WriteString(placeProjection(b, keys, g))
		out.WriteString("\n")
	}

	return out.String()
}

// stateSet renders the enumerated domain of s: one s_<marking> literal per
// graph key, in discovery order.
func stateSet(keys []coverability.Marking) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.StateName()
	}
	return fmt.Sprintf("{%s}", strings.Join(names, ","))
}

// placeRange renders a place's declaration: alias : lo..hi;. When min and
// max coincide the range is widened to 0..max so the declaration stays a
// valid (non-degenerate) SMV range.
func placeRange(b coverability.PlaceBounds) string {
	lo := b.Min
	if b.Min == b.Max {
		lo = 0
	}
	return fmt.Sprintf("%s : %d..%d", b.Alias, lo, b.Max)
}

// stateTransitionArm renders one arm of the next(s) case block. A key with
// no stored edges self-retains.
func stateTransitionArm(key coverability.Marking, edges []coverability.Edge) string {
	if len(edges) == 0 {
		return fmt.Sprintf("s = %s : { s };", key.StateName())
	}
	succ := make([]string, len(edges))
	for i, e := range edges {
		succ[i] = e.Target.StateName()
	}
	return fmt.Sprintf("s = %s : { %s };", key.StateName(), strings.Join(succ, ", "))
}

// placeProjection renders a single place's projection case block: one arm
// per graph key, giving that place's value at the key (its range ceiling
// when the value is ω).
func placeProjection(b coverability.PlaceBounds, keys []coverability.Marking, g *coverability.Graph) string {
	var out strings.Builder
	fmt.Fprintf(&out, "%s := case\n", b.Alias)
	for _, k := range keys {
		v := k[b.Index]
		value := b.Max
		if !v.IsOmega() {
			value = v.Value()
		}
		fmt.Fprintf(&out, "        s = %s : { %d };\n", k.StateName(), value)
	}
	out.WriteString("    esac;")
	return out.String()
}
