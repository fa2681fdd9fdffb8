package match

// Tracker records which bank transactions have been consumed within a
// single matching pass. A tracker belongs to exactly one pass and is
// discarded with it; passes never share consumption state.
type Tracker struct {
	used []bool
}

// NewTracker creates a tracker for a batch of n bank transactions.
func NewTracker(n int) *Tracker {
	return &Tracker{used: make([]bool, n)}
}

// Consumed reports whether transaction i has already satisfied an entry.
func (t *Tracker) Consumed(i int) bool {
	return t.used[i]
}

// Consume marks transaction i as used, making it ineligible for reuse.
func (t *Tracker) Consume(i int) {
	t.used[i] = true
}
