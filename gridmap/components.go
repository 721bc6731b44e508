package gridmap

// Components finds all contiguous regions of traversable cells under
// 8-connectivity. Returns a slice of components; each component is a slice of
// row-major cell indices in BFS discovery order.
//
// To convert an index back to a Cell, use Coordinate(idx).
//
// Time:   O(W·H·8).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components() [][]int {
	labels, n := g.label()
	comps := make([][]int, n)
	for i, l := range labels {
		if l >= 0 {
			comps[l] = append(comps[l], i)
		}
	}

	return comps
}

// Connected reports whether a and b are both traversable and lie in the same
// 8-connected region.
func (g *Grid) Connected(a, b Cell) bool {
	if !g.Traversable(a) || !g.Traversable(b) {
		return false
	}
	labels, _ := g.label()

	return labels[g.Index(a)] == labels[g.Index(b)]
}

// label assigns every traversable cell its component number and every
// obstacle -1. Returns the labels and the number of components.
func (g *Grid) label() ([]int, int) {
	total := g.Len()
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	n := 0
	for i0 := 0; i0 < total; i0++ {
		if !g.open[i0] || labels[i0] >= 0 {
			continue
		}
		// BFS to flood the component
		queue := []int{i0}
		labels[i0] = n
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range g.Neighbors(g.Coordinate(queue[qi])) {
				vi := g.Index(v)
				if g.open[vi] && labels[vi] < 0 {
					labels[vi] = n
					queue = append(queue, vi)
				}
			}
		}
		n++
	}

	return labels, n
}
