package coverability

import "testing"

func TestFireEnabled(t *testing.T) {
	t1 := []Arc{{Consume: 1, Produce: 0}, {Consume: 0, Produce: 1}}
	m := NewMarking(1, 0)

	next, ok := Fire(t1, m)
	if !ok {
		t.Fatal("transition should be enabled")
	}
	want := NewMarking(0, 1)
	if !next.Equal(want) {
		t.Errorf("Fire = %v, want %v", next, want)
	}
}

func TestFireDisabled(t *testing.T) {
	t1 := []Arc{{Consume: 1, Produce: 0}}
	m := NewMarking(0)

	if _, ok := Fire(t1, m); ok {
		t.Fatal("transition requiring 1 token from an empty place must be disabled")
	}
}

func TestFireOmegaPositionAlwaysEnabled(t *testing.T) {
	t1 := []Arc{{Consume: 100, Produce: 1}}
	m := Marking{Omega}

	next, ok := Fire(t1, m)
	if !ok {
		t.Fatal("an omega position can never fail its guard")
	}
	if !next[0].IsOmega() {
		t.Error("omega absorbs finite consume/produce")
	}
}

func TestFireSelfLoop(t *testing.T) {
	t1 := []Arc{{Consume: 1, Produce: 1}}
	m := NewMarking(1)

	next, ok := Fire(t1, m)
	if !ok || !next.Equal(m) {
		t.Errorf("consume==produce should be a self-loop, got %v ok=%v", next, ok)
	}
}

func TestOmegaJoinAccelerates(t *testing.T) {
	newer := NewMarking(5, 2)
	ancestor := NewMarking(3, 2)

	joined := OmegaJoin(newer, ancestor)
	if !joined[0].IsOmega() {
		t.Error("position 0 strictly exceeds its ancestor and should become omega")
	}
	if joined[1].IsOmega() || joined[1].Value() != 2 {
		t.Errorf("position 1 is unchanged from its ancestor, want finite 2, got %v", joined[1])
	}
}

func TestOmegaJoinAncestorAlreadyOmega(t *testing.T) {
	newer := NewMarking(5)
	ancestor := Marking{Omega}

	joined := OmegaJoin(newer, ancestor)
	if joined[0].IsOmega() {
		t.Error("an omega ancestor must not force newer to omega; newer passes through")
	}
	if joined[0].Value() != 5 {
		t.Errorf("joined = %v, want 5", joined)
	}
}

func TestOmegaJoinEqualValuesStayFinite(t *testing.T) {
	newer := NewMarking(3)
	ancestor := NewMarking(3)

	joined := OmegaJoin(newer, ancestor)
	if joined[0].IsOmega() {
		t.Error("equal values must never introduce omega")
	}
}
