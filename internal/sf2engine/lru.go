// Package sf2engine ties the voice pool, preset selection, MIDI dispatch,
// and render loop together into the top-level synthesizer engine.
package sf2engine

// lruNode is one slot of the intrusive doubly-linked list backing the
// active-voice LRU, indexed by voice index so no separate node allocation
// is ever needed.
type lruNode struct {
	prev, next int
	inUse      bool
}

const sentinel = -1

// lru is a bounded, allocation-free doubly-linked list over a pre-sized
// node array, giving O(1) Add (append as most-recently-started), Remove,
// and TakeOldest (pop the least-recently-started), per spec §4.1's LRU
// cache requirement and §9's "bounded intrusive doubly-linked list over a
// pre-sized node array indexed by voice index" design note.
type lru struct {
	nodes      []lruNode
	head, tail int
}

// newLRU preallocates a node for every voice index in [0, poolSize); this
// allocation happens once at engine construction (off the RT thread), and
// no further allocation occurs during Add/Remove/TakeOldest.
func newLRU(poolSize int) *lru {
	nodes := make([]lruNode, poolSize)
	for i := range nodes {
		nodes[i] = lruNode{prev: sentinel, next: sentinel}
	}
	return &lru{nodes: nodes, head: sentinel, tail: sentinel}
}

// Add appends voiceIndex as the most-recently-started active voice.
func (l *lru) Add(voiceIndex int) {
	n := &l.nodes[voiceIndex]
	n.prev, n.next, n.inUse = l.tail, sentinel, true
	if l.tail != sentinel {
		l.nodes[l.tail].next = voiceIndex
	} else {
		l.head = voiceIndex
	}
	l.tail = voiceIndex
}

// Remove unlinks voiceIndex from the list; a no-op if it is not present.
func (l *lru) Remove(voiceIndex int) {
	n := &l.nodes[voiceIndex]
	if !n.inUse {
		return
	}
	if n.prev != sentinel {
		l.nodes[n.prev].next = n.next
	} else {
		l.head = n.next
	}
	if n.next != sentinel {
		l.nodes[n.next].prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next, n.inUse = sentinel, sentinel, false
}

// TakeOldest removes and returns the least-recently-started active voice.
func (l *lru) TakeOldest() (int, bool) {
	if l.head == sentinel {
		return 0, false
	}
	idx := l.head
	l.Remove(idx)
	return idx, true
}

// Len reports how many voices are currently tracked.
func (l *lru) Len() int {
	n := 0
	for i := l.head; i != sentinel; i = l.nodes[i].next {
		n++
	}
	return n
}

// ForEach visits every tracked voice index in oldest-to-newest order. The
// next link is captured before fn runs, so fn may safely call Remove on
// the current index (e.g. to retire or steal a voice mid-iteration)
// without corrupting the traversal.
func (l *lru) ForEach(fn func(voiceIndex int)) {
	i := l.head
	for i != sentinel {
		next := l.nodes[i].next
		fn(i)
		i = next
	}
}
