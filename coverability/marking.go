package coverability

import (
	"fmt"
	"strconv"
	"strings"
)

// ExtendedInt is either a non-negative finite integer or ω, the abstract
// value denoting an unbounded count. ω absorbs finite addition and
// subtraction and dominates every finite value.
type ExtendedInt struct {
	omega bool
	value int
}

// Omega is the unbounded sentinel value.
var Omega = ExtendedInt{omega: true}

// Finite wraps a non-negative integer as an ExtendedInt.
func Finite(v int) ExtendedInt {
	return ExtendedInt{value: v}
}

// IsOmega reports whether e is ω.
func (e ExtendedInt) IsOmega() bool { return e.omega }

// Value returns the underlying integer. It is only meaningful when
// !e.IsOmega().
func (e ExtendedInt) Value() int { return e.value }

// Add returns e + k. ω + k = ω for any finite k.
func (e ExtendedInt) Add(k int) ExtendedInt {
	if e.omega {
		return Omega
	}
	return Finite(e.value + k)
}

// Sub returns e - k. ω - k = ω for any finite k ≥ 0.
func (e ExtendedInt) Sub(k int) ExtendedInt {
	if e.omega {
		return Omega
	}
	return Finite(e.value - k)
}

// GreaterOrEqual reports e ≥ other, with ω ≥ anything and nothing finite ≥ ω
// unless it is also ω.
func (e ExtendedInt) GreaterOrEqual(other ExtendedInt) bool {
	if e.omega {
		return true
	}
	if other.omega {
		return false
	}
	return e.value >= other.value
}

// GreaterThan reports e > other under the same ordering as GreaterOrEqual.
func (e ExtendedInt) GreaterThan(other ExtendedInt) bool {
	if e.omega {
		return !other.omega
	}
	if other.omega {
		return false
	}
	return e.value > other.value
}

// Equal reports structural equality.
func (e ExtendedInt) Equal(other ExtendedInt) bool {
	if e.omega != other.omega {
		return false
	}
	return e.omega || e.value == other.value
}

// String renders ω as the literal "n", matching the emitted state-name and
// projection conventions.
func (e ExtendedInt) String() string {
	if e.omega {
		return "n"
	}
	return strconv.Itoa(e.value)
}

// Marking is an ordered sequence of ExtendedInt, one per place.
type Marking []ExtendedInt

// NewMarking builds a finite Marking from plain integers.
func NewMarking(values ...int) Marking {
	m := make(Marking, len(values))
	for i, v := range values {
		m[i] = Finite(v)
	}
	return m
}

// Equal reports componentwise equality.
func (m Marking) Equal(other Marking) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if !m[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// Dominates reports whether m[i] ≥ other[i] for every index i.
func (m Marking) Dominates(other Marking) bool {
	for i := range m {
		if !m[i].GreaterOrEqual(other[i]) {
			return false
		}
	}
	return true
}

// StrictlyDominates reports Dominates plus at least one strictly greater
// position.
func (m Marking) StrictlyDominates(other Marking) bool {
	if !m.Dominates(other) {
		return false
	}
	for i := range m {
		if m[i].GreaterThan(other[i]) {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of m.
func (m Marking) Clone() Marking {
	out := make(Marking, len(m))
	copy(out, m)
	return out
}

// Key returns a string uniquely identifying m's value, suitable as a map
// key and as the graph's insertion-unique key space.
func (m Marking) Key() string {
	parts := make([]string, len(m))
	for i, v := range m {
		parts[i] = v.String()
	}
	return strings.Join(parts, ",")
}

// StateName renders m using the SMV state-naming convention: prefix "s_",
// components joined by "_", ω as "n".
func (m Marking) StateName() string {
	parts := make([]string, len(m))
	for i, v := range m {
		parts[i] = v.String()
	}
	return fmt.Sprintf("s_%s", strings.Join(parts, "_"))
}

// DotName renders m using the dot label convention: components joined by
// "-", ω as "n".
func (m Marking) DotName() string {
	parts := make([]string, len(m))
	for i, v := range m {
		parts[i] = v.String()
	}
	return strings.Join(parts, "-")
}
