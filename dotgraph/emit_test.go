package dotgraph

import (
	"strings"
	"testing"

	"github.com/pflow-xyz/petri-coverability/coverability"
)

func TestEmitProducerOnlyNet(t *testing.T) {
	input := coverability.Input{
		PlaceNames:     []string{"P"},
		InitialMarking: []int{0},
		Transitions:    [][]coverability.Arc{{{Consume: 0, Produce: 1}}},
	}
	g, err := coverability.Explore(input)
	if err != nil {
		t.Fatalf("Explore returned error: %v", err)
	}

	text := Emit(input.PlaceNames, g, input.Transitions)

	if !strings.HasPrefix(text, "digraph {\n") {
		t.Errorf("missing digraph header, got:\n%s", text)
	}
	if !strings.Contains(text, `"0" -> "n" [label = "t0"]`) {
		t.Errorf("missing edge 0 -> n, got:\n%s", text)
	}
	if !strings.Contains(text, `"n" -> "n" [label = "t0"]`) {
		t.Errorf("missing self-edge at n, got:\n%s", text)
	}
	if !strings.Contains(text, `"P"`) {
		t.Errorf("missing place-name header, got:\n%s", text)
	}
}

func TestEmitEdgeCountMatchesSuccessorLists(t *testing.T) {
	input := coverability.Input{
		PlaceNames:     []string{"A", "B"},
		InitialMarking: []int{1, 0},
		Transitions: [][]coverability.Arc{
			{{Consume: 1, Produce: 0}, {Consume: 0, Produce: 1}},
			{{Consume: 0, Produce: 1}, {Consume: 1, Produce: 0}},
		},
	}
	g, err := coverability.Explore(input)
	if err != nil {
		t.Fatalf("Explore returned error: %v", err)
	}

	text := Emit(input.PlaceNames, g, input.Transitions)

	wantEdges := 0
	for _, key := range g.Keys() {
		wantEdges += len(g.Edges(key))
	}
	gotEdges := strings.Count(text, "->")
	if gotEdges != wantEdges {
		t.Errorf("dot edge count = %d, want %d", gotEdges, wantEdges)
	}
}

func TestEmitUnmatchedTransitionPanics(t *testing.T) {
	input := coverability.Input{
		PlaceNames:     []string{"P"},
		InitialMarking: []int{0},
		Transitions:    [][]coverability.Arc{{{Consume: 0, Produce: 1}}},
	}
	g, err := coverability.Explore(input)
	if err != nil {
		t.Fatalf("Explore returned error: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("Emit against a mismatched transition set should panic")
		}
	}()
	Emit(input.PlaceNames, g, nil)
}
