package coverability

// Fire computes the successor of m under transition vector t. ok is false
// when any finite position of m is below its consume requirement; the
// returned Marking is only meaningful when ok is true.
func Fire(t []Arc, m Marking) (Marking, bool) {
	next := make(Marking, len(m))
	for i, pos := range m {
		if pos.IsOmega() {
			next[i] = Omega
			continue
		}
		if pos.Value() < t[i].Consume {
			return nil, false
		}
		next[i] = Finite(pos.Value() - t[i].Consume + t[i].Produce)
	}
	return next, true
}

// OmegaJoin accelerates newer against a dominated ancestor: every position
// where newer is finite and strictly exceeds a finite ancestor value
// collapses to ω. Positions where the ancestor is already ω are left as
// newer reports them; all other positions pass through unchanged.
func OmegaJoin(newer, ancestor Marking) Marking {
	joined := make(Marking, len(newer))
	for i := range newer {
		switch {
		case ancestor[i].IsOmega():
			joined[i] = newer[i]
		case !newer[i].IsOmega() && newer[i].Value() > ancestor[i].Value():
			joined[i] = Omega
		default:
			joined[i] = newer[i]
		}
	}
	return joined
}
