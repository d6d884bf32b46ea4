package coverability

import (
	"errors"
	"testing"

	"github.com/pflow-xyz/petri-coverability/petrierr"
)

func TestExploreBoundedThreePlaceNet(t *testing.T) {
	// A toggles with B, each exchange spends one token from C; C starts at
	// 2 and is never replenished, so the reachable set is finite and omega
	// never appears.
	input := Input{
		PlaceNames:     []string{"A", "B", "C"},
		InitialMarking: []int{1, 0, 2},
		Transitions: [][]Arc{
			{ // t1: A -> B, spending one C
				{Consume: 1, Produce: 0},
				{Consume: 0, Produce: 1},
				{Consume: 1, Produce: 0},
			},
			{ // t2: B -> A, spending one C
				{Consume: 0, Produce: 1},
				{Consume: 1, Produce: 0},
				{Consume: 1, Produce: 0},
			},
		},
	}

	g, err := Explore(input)
	if err != nil {
		t.Fatalf("Explore returned error: %v", err)
	}

	for _, key := range g.Keys() {
		for _, pos := range key {
			if pos.IsOmega() {
				t.Fatalf("bounded net should never reach omega, got key %v", g.Keys())
			}
		}
	}

	bounds := InferBounds(input.PlaceNames, input.InitialMarking, g)
	want := map[string][2]int{"A": {0, 1}, "B": {0, 1}, "C": {0, 2}}
	for _, b := range bounds {
		lo, hi := want[b.Alias][0], want[b.Alias][1]
		if b.Min != lo || b.Max != hi {
			t.Errorf("place %s bounds = %d..%d, want %d..%d", b.Alias, b.Min, b.Max, lo, hi)
		}
	}
}

func TestExploreProducerOnlyNet(t *testing.T) {
	input := Input{
		PlaceNames:     []string{"P"},
		InitialMarking: []int{0},
		Transitions: [][]Arc{
			{{Consume: 0, Produce: 1}},
		},
	}

	g, err := Explore(input)
	if err != nil {
		t.Fatalf("Explore returned error: %v", err)
	}

	keys := g.Keys()
	if len(keys) != 2 {
		t.Fatalf("expected exactly 2 keys, got %d: %v", len(keys), keys)
	}

	zero := NewMarking(0)
	omega := Marking{Omega}

	var zeroEdges, omegaEdges []Edge
	for _, k := range keys {
		switch {
		case k.Equal(zero):
			zeroEdges = g.Edges(k)
		case k.Equal(omega):
			omegaEdges = g.Edges(k)
		default:
			t.Fatalf("unexpected key %v", k)
		}
	}

	if len(zeroEdges) != 1 || !zeroEdges[0].Target.Equal(omega) {
		t.Errorf("edge from [0] should target [omega], got %v", zeroEdges)
	}
	if len(omegaEdges) != 1 || !omegaEdges[0].Target.Equal(omega) {
		t.Errorf("expected a self-edge at [omega], got %v", omegaEdges)
	}
}

func TestExploreDisabledTransitionsTerminalState(t *testing.T) {
	input := Input{
		PlaceNames:     []string{"A", "B"},
		InitialMarking: []int{0, 0},
		Transitions: [][]Arc{
			{{Consume: 1, Produce: 0}, {Consume: 0, Produce: 0}},
			{{Consume: 0, Produce: 0}, {Consume: 1, Produce: 0}},
		},
	}

	g, err := Explore(input)
	if err != nil {
		t.Fatalf("Explore returned error: %v", err)
	}

	keys := g.Keys()
	if len(keys) != 1 {
		t.Fatalf("expected a single terminal key, got %d: %v", len(keys), keys)
	}
	if edges := g.Edges(keys[0]); len(edges) != 0 {
		t.Errorf("terminal key should have no stored edges, got %v", edges)
	}
}

func TestExploreArityMismatch(t *testing.T) {
	input := Input{
		PlaceNames:     []string{"A", "B", "C"},
		InitialMarking: []int{0, 0, 0},
		Transitions: [][]Arc{
			{{Consume: 1, Produce: 0}, {Consume: 0, Produce: 1}},
		},
	}

	_, err := Explore(input)
	var pErr *petrierr.Error
	if !errors.As(err, &pErr) || pErr.Kind != petrierr.KindTransitionArityMismatch {
		t.Fatalf("expected TransitionArityMismatch, got %v", err)
	}
}

func TestExploreClosure(t *testing.T) {
	input := Input{
		PlaceNames:     []string{"P"},
		InitialMarking: []int{0},
		Transitions:    [][]Arc{{{Consume: 0, Produce: 1}}},
	}
	g, err := Explore(input)
	if err != nil {
		t.Fatalf("Explore returned error: %v", err)
	}
	for _, k := range g.Keys() {
		for _, e := range g.Edges(k) {
			if !g.Has(e.Target) {
				t.Errorf("edge target %v is not itself a key", e.Target)
			}
		}
	}
}

func TestExploreOmegaMonotonic(t *testing.T) {
	// t0 grows A without bound; t1 drains A into B, so B grows without
	// bound too. Once a position reaches omega in a key, every successor
	// of that key must keep omega there.
	input := Input{
		PlaceNames:     []string{"A", "B"},
		InitialMarking: []int{1, 0},
		Transitions: [][]Arc{
			{{Consume: 0, Produce: 1}, {Consume: 0, Produce: 0}},
			{{Consume: 1, Produce: 0}, {Consume: 0, Produce: 1}},
		},
	}

	g, err := Explore(input)
	if err != nil {
		t.Fatalf("Explore returned error: %v", err)
	}

	sawOmega := false
	for _, k := range g.Keys() {
		for _, e := range g.Edges(k) {
			for i := range k {
				if k[i].IsOmega() {
					sawOmega = true
					if !e.Target[i].IsOmega() {
						t.Errorf("position %d is omega in %v but finite in successor %v", i, k, e.Target)
					}
				}
			}
		}
	}
	if !sawOmega {
		t.Fatal("expected the unbounded net to reach omega somewhere")
	}
}

func TestExploreDeterministic(t *testing.T) {
	input := Input{
		PlaceNames:     []string{"A", "B"},
		InitialMarking: []int{1, 0},
		Transitions: [][]Arc{
			{{Consume: 1, Produce: 0}, {Consume: 0, Produce: 1}},
			{{Consume: 0, Produce: 1}, {Consume: 1, Produce: 0}},
		},
	}

	g1, err := Explore(input)
	if err != nil {
		t.Fatalf("Explore returned error: %v", err)
	}
	g2, err := Explore(input)
	if err != nil {
		t.Fatalf("Explore returned error: %v", err)
	}

	keys1, keys2 := g1.Keys(), g2.Keys()
	if len(keys1) != len(keys2) {
		t.Fatalf("key counts differ: %d vs %d", len(keys1), len(keys2))
	}
	for i := range keys1 {
		if !keys1[i].Equal(keys2[i]) {
			t.Errorf("key %d differs: %v vs %v", i, keys1[i], keys2[i])
		}
		e1, e2 := g1.Edges(keys1[i]), g2.Edges(keys2[i])
		if len(e1) != len(e2) {
			t.Errorf("edge counts for key %v differ: %d vs %d", keys1[i], len(e1), len(e2))
		}
	}
}
