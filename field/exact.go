package field

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/gridmap"
)

// buildExact computes true shortest costs to dest with Dijkstra.
// It uses a "lazy" decrease-key strategy: duplicates are pushed into the heap
// and stale entries are skipped when popped.
func buildExact(g *gridmap.Grid, dest gridmap.Cell) *Field {
	r := &runner{
		g:       g,
		f:       newField(g, dest, Exact),
		visited: make([]bool, g.Len()),
		pq:      make(cellPQ, 0, g.Len()),
	}
	r.init(dest)
	r.process()

	return r.f
}

// runner holds the mutable state for a single Exact build.
type runner struct {
	g       *gridmap.Grid // The input grid; read-only.
	f       *Field        // Output field; Unset doubles as +∞.
	visited []bool        // Tracks if a cell's cost is finalized.
	pq      cellPQ        // Min-heap of *cellItem.
}

// init sets the destination to 0 and pushes it onto the heap.
func (r *runner) init(dest gridmap.Cell) {
	r.f.set(r.g.Index(dest), 0)
	heap.Init(&r.pq)
	heap.Push(&r.pq, &cellItem{cell: dest, cost: 0})
}

// process pops the cheapest cell, finalizes it and relaxes its neighbours
// until the heap is empty.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*cellItem)
		u := r.g.Index(item.cell)
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		r.relax(item.cell, item.cost)
	}
}

// relax improves the cost of every traversable neighbour of u reachable
// through u. Only strictly better costs are pushed.
func (r *runner) relax(u gridmap.Cell, cu float64) {
	for _, v := range r.g.Neighbors(u) {
		if !r.g.Traversable(v) {
			continue
		}
		vi := r.g.Index(v)
		if r.visited[vi] {
			continue
		}
		nd := cu + stepCost(u, v)
		if old := r.f.At(v); old != Unset && nd >= old {
			continue
		}
		r.f.set(vi, nd)
		heap.Push(&r.pq, &cellItem{cell: v, cost: nd})
	}
}

// cellItem is a cell and its tentative cost, stored in the priority queue.
type cellItem struct {
	cell gridmap.Cell
	cost float64
}

// cellPQ is a min-heap of *cellItem ordered by cost ascending.
type cellPQ []*cellItem

func (pq cellPQ) Len() int            { return len(pq) }
func (pq cellPQ) Less(i, j int) bool  { return pq[i].cost < pq[j].cost }
func (pq cellPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(*cellItem)) }

// Pop removes and returns the last element; heap.Pop has already swapped the
// minimum there.
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
