package vrp

// TabuList is a bounded, most-recent-first history of forbidden swap
// pairs, stored in normalised (I <= J) form. Insert trims the oldest
// entries once the list exceeds its maximum length.
type TabuList struct {
	items  []Pair
	maxLen int
}

// NewTabuList returns an empty TabuList with the given maximum length.
func NewTabuList(maxLen int) *TabuList {
	return &TabuList{maxLen: maxLen}
}

// Insert normalises p and pushes it to the front, trimming from the back
// while the list exceeds MaxLen.
//
// Complexity: O(n) for the shift; n is bounded by MaxLen (typically < 30).
func (t *TabuList) Insert(p Pair) {
	p = p.Normalize()
	t.items = append([]Pair{p}, t.items...)
	for len(t.items) > t.maxLen {
		t.items = t.items[:len(t.items)-1]
	}
}

// Contains reports whether p (in either order) is currently tabu.
func (t *TabuList) Contains(p Pair) bool {
	p = p.Normalize()
	for _, item := range t.items {
		if item == p {
			return true
		}
	}

	return false
}

// Len returns the number of entries currently held.
func (t *TabuList) Len() int {
	return len(t.items)
}

// MaxLen returns the configured maximum length.
func (t *TabuList) MaxLen() int {
	return t.maxLen
}

// SetMaxLen changes the maximum length, trimming from the back if the
// list is already longer than the new bound.
func (t *TabuList) SetMaxLen(n int) {
	t.maxLen = n
	for len(t.items) > t.maxLen {
		t.items = t.items[:len(t.items)-1]
	}
}
