package edge

import "container/heap"

// maxPQ implements heap.Interface as a max-heap of edges under Compare.
type maxPQ []Edge

func (pq maxPQ) Len() int           { return len(pq) }
func (pq maxPQ) Less(i, j int) bool { return Compare(pq[i], pq[j]) > 0 }
func (pq maxPQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *maxPQ) Push(x any) { *pq = append(*pq, x.(Edge)) }

func (pq *maxPQ) Pop() any {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}

// bounded retains the cap smallest edges offered to it.
type bounded struct {
	pq  maxPQ
	cap int
}

func newBounded(capacity int) *bounded {
	return &bounded{pq: make(maxPQ, 0, capacity+1), cap: capacity}
}

// offer inserts e and evicts the current maximum when the heap exceeds its capacity.
func (b *bounded) offer(e Edge) {
	if b.cap == 0 {
		return
	}
	// Full heap and e is not smaller than the max: pushing would evict e itself.
	if len(b.pq) == b.cap && Compare(e, b.pq[0]) >= 0 {
		return
	}
	heap.Push(&b.pq, e)
	if len(b.pq) > b.cap {
		heap.Pop(&b.pq)
	}
}

// edges returns the retained edges; the heap must not be used afterwards.
func (b *bounded) edges() []Edge {
	return b.pq
}
