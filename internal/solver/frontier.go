package solver

import "container/heap"

// entry is a frontier slot: an arena node plus the scores the heap orders
// by. index is the entry's current heap position, maintained by Swap so
// update can re-sift a changed entry in O(log n).
type entry struct {
	node  int
	key   string
	f, h  int
	index int
}

// frontier is the A* open set: a binary heap keyed by f (h breaks ties,
// keeping expansion goal-directed among equal-f candidates) plus a board-key
// map so "is this board already queued, and at what f" is O(1). The map
// holds at most one entry per distinct board.
type frontier struct {
	entries []*entry
	byKey   map[string]*entry
}

func newFrontier() *frontier {
	return &frontier{byKey: make(map[string]*entry)}
}

func (fr *frontier) Len() int { return len(fr.entries) }

func (fr *frontier) Less(i, j int) bool {
	a, b := fr.entries[i], fr.entries[j]
	if a.f != b.f {
		return a.f < b.f
	}
	return a.h < b.h
}

func (fr *frontier) Swap(i, j int) {
	fr.entries[i], fr.entries[j] = fr.entries[j], fr.entries[i]
	fr.entries[i].index = i
	fr.entries[j].index = j
}

func (fr *frontier) Push(x any) {
	e := x.(*entry)
	e.index = len(fr.entries)
	fr.entries = append(fr.entries, e)
}

func (fr *frontier) Pop() any {
	old := fr.entries
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	fr.entries = old[:n-1]
	return e
}

// push inserts a new entry and records it in the key map.
func (fr *frontier) push(e *entry) {
	heap.Push(fr, e)
	fr.byKey[e.key] = e
}

// pop removes and returns the entry with the smallest f.
func (fr *frontier) pop() *entry {
	e := heap.Pop(fr).(*entry)
	delete(fr.byKey, e.key)
	return e
}

// update repoints an existing entry at a better node and re-sifts it.
func (fr *frontier) update(e *entry, nodeIdx, f, h int) {
	e.node = nodeIdx
	e.f = f
	e.h = h
	heap.Fix(fr, e.index)
}
