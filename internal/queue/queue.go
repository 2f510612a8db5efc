// Package queue implements the bounded priority queue backing top-k
// search.
package queue

// Item represents a scored candidate in the priority queue.
// Value-based (no pointers) for cache locality and zero allocations.
type Item struct {
	Index int     // Index is the candidate's position in the scan order.
	Score float32 // Score is the priority of the item in the queue.
}

// PriorityQueue is a binary min-heap of Items ordered by (Score
// ascending, Index descending), so the root is always the item a
// bounded top-k search should evict first: the lowest score, and among
// equal scores the latest-scanned candidate.
type PriorityQueue struct {
	items []Item
}

// NewMin initializes a new priority queue with the given capacity.
func NewMin(capacity int) *PriorityQueue {
	return &PriorityQueue{
		items: make([]Item, 0, capacity),
	}
}

// Len returns the number of elements in the priority queue.
func (pq *PriorityQueue) Len() int { return len(pq.items) }

// TopItem returns the root of the heap without removing it.
func (pq *PriorityQueue) TopItem() (Item, bool) {
	if len(pq.items) == 0 {
		return Item{}, false
	}
	return pq.items[0], true
}

// PushItem inserts an item while maintaining the heap invariant.
func (pq *PriorityQueue) PushItem(item Item) {
	pq.items = append(pq.items, item)
	pq.siftUp(len(pq.items) - 1)
}

// PopItem removes and returns the root while maintaining the heap
// invariant.
func (pq *PriorityQueue) PopItem() (Item, bool) {
	n := len(pq.items)
	if n == 0 {
		return Item{}, false
	}
	root := pq.items[0]
	last := pq.items[n-1]
	pq.items[n-1] = Item{}
	pq.items = pq.items[:n-1]
	if n-1 > 0 {
		pq.items[0] = last
		pq.siftDown(0)
	}
	return root, true
}

// Reset clears the priority queue for reuse.
func (pq *PriorityQueue) Reset() {
	pq.items = pq.items[:0]
}

func (pq *PriorityQueue) less(i, j int) bool {
	if pq.items[i].Score != pq.items[j].Score {
		return pq.items[i].Score < pq.items[j].Score
	}
	return pq.items[i].Index > pq.items[j].Index
}

func (pq *PriorityQueue) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !pq.less(i, p) {
			return
		}
		pq.items[i], pq.items[p] = pq.items[p], pq.items[i]
		i = p
	}
}

func (pq *PriorityQueue) siftDown(i int) {
	n := len(pq.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && pq.less(r, l) {
			best = r
		}
		if !pq.less(best, i) {
			return
		}
		pq.items[i], pq.items[best] = pq.items[best], pq.items[i]
		i = best
	}
}
