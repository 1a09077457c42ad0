package ir

import "strconv"

// TempManager hands out temporary names (t1, t2, ...) and reuses them
// once released, the way a register allocator would, instead of letting
// the temp count grow without bound across a long function (§4.4).
type TempManager struct {
	next int
	free []int
}

// NewTempManager creates a TempManager starting the count at 1 (t0 reads
// awkwardly next to source variables that start at index 0 in the
// symbol table dump, so temps start at 1).
func NewTempManager() *TempManager {
	return &TempManager{next: 1}
}

// New allocates a temp name, reusing the most recently released index
// if one is available.
func (m *TempManager) New() string {
	if n := len(m.free); n > 0 {
		idx := m.free[n-1]
		m.free = m.free[:n-1]
		return "t" + strconv.Itoa(idx)
	}
	idx := m.next
	m.next++
	return "t" + strconv.Itoa(idx)
}

// Release returns name to the free list if it looks like a temp this
// manager produced. Releasing a name it didn't produce is a silent
// no-op: callers release defensively (e.g. after using an operand that
// might or might not be a temp) and an invalid release should never
// corrupt a still-live temp's slot.
func (m *TempManager) Release(name string) {
	if len(name) < 2 || name[0] != 't' {
		return
	}
	idx, err := strconv.Atoi(name[1:])
	if err != nil || idx <= 0 || idx >= m.next {
		return
	}
	m.free = append(m.free, idx)
}
