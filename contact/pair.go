package contact

// CanonicalPair is the unordered identity of two participants.
// Low ≤ High in byte order, so (a,b) and (b,a) share one key.
type CanonicalPair struct {
	Low  string
	High string
}

// Canonicalize maps an unordered pair of participant IDs to its canonical key.
// It never fails; self-pairs are reported by IsSelf and rejected downstream.
func Canonicalize(a, b string) CanonicalPair {
	if b < a {
		a, b = b, a
	}
	return CanonicalPair{Low: a, High: b}
}

// IsSelf reports whether both ends are the same participant.
func (p CanonicalPair) IsSelf() bool { return p.Low == p.High }

// String renders the pair as "Low–High".
func (p CanonicalPair) String() string { return p.Low + "–" + p.High }

// Less orders pairs by Low, then High.
func (p CanonicalPair) Less(q CanonicalPair) bool {
	if p.Low != q.Low {
		return p.Low < q.Low
	}
	return p.High < q.High
}
