package simplify

import "container/heap"

// candidate is one entry in the scheduler's min-heap: an edge handle and
// the cost it had when pushed. A single edge handle may be pushed more than
// once as its cost is recomputed after neighboring contractions; stale
// entries are discarded on pop by checking meshgraph liveness, not by
// removing them from the heap (spec §4.4, §9 "lazy heap invalidation" — the
// same trade lvlath/dijkstra and lvlath/prim_kruskal make to avoid
// supporting decrease-key).
type candidate struct {
	cost   float64
	edgeID int
	tieKey int // smaller of the edge's two endpoint handles, for deterministic tie-break
}

// edgeHeap implements heap.Interface for a min-heap of candidates, ordered
// by cost and then by tieKey (spec §4.4's "fix ties by a secondary key"
// alternative). Modeled on prim_kruskal's edgePQ.
type edgeHeap []candidate

func (h edgeHeap) Len() int { return len(h) }

func (h edgeHeap) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}

	return h[i].tieKey < h[j].tieKey
}

func (h edgeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *edgeHeap) Push(x interface{}) { *h = append(*h, x.(candidate)) }

func (h *edgeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	entry := old[n-1]
	*h = old[:n-1]

	return entry
}

var _ heap.Interface = (*edgeHeap)(nil)
