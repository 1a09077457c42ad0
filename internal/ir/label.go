package ir

import "strconv"

// LabelAllocator produces unique labels from a human-readable hint
// (L_while_cond, L_if_else, ...), so a quadruple dump reads like
// structured control flow instead of an opaque numeric CFG.
type LabelAllocator struct {
	counts map[string]int
}

// NewLabelAllocator creates an empty LabelAllocator.
func NewLabelAllocator() *LabelAllocator {
	return &LabelAllocator{counts: make(map[string]int)}
}

// New returns a label of the form "L_<hint>_<n>", unique per hint.
func (a *LabelAllocator) New(hint string) string {
	n := a.counts[hint]
	a.counts[hint] = n + 1
	return "L_" + hint + "_" + strconv.Itoa(n)
}
