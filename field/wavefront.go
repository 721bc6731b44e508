package field

import "github.com/katalvlaran/gridpath/gridmap"

// buildWavefront runs the layer-by-layer expansion.
//
// Behavior:
//  1. Every entry starts Unset; dest gets 0.
//  2. The first frontier is dest's traversable neighbours, all seeded with 1.
//  3. Each frontier cell, in order, claims its traversable Unset neighbours at
//     cost(cell)+step and queues them for the next layer. A claimed cell is
//     never revisited, so later cheaper routes do not relax it.
//  4. Stop when a layer adds nothing.
func buildWavefront(g *gridmap.Grid, dest gridmap.Cell) *Field {
	f := newField(g, dest, Wavefront)
	f.set(g.Index(dest), 0)

	frontier := make([]gridmap.Cell, 0, 8)
	for _, n := range g.Neighbors(dest) {
		if g.Traversable(n) {
			f.set(g.Index(n), 1)
			frontier = append(frontier, n)
		}
	}

	for len(frontier) > 0 {
		next := make([]gridmap.Cell, 0, len(frontier)*2)
		for _, u := range frontier {
			cu := f.At(u)
			for _, v := range g.Neighbors(u) {
				if !g.Traversable(v) || f.IsSet(v) {
					continue
				}
				f.set(g.Index(v), cu+stepCost(u, v))
				next = append(next, v)
			}
		}
		frontier = next
	}

	return f
}
