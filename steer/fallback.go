package steer

import (
	"fmt"

	"github.com/katalvlaran/gridpath/field"
	"github.com/katalvlaran/gridpath/gridmap"
)

// NearestReachable searches outward from origin, layer by layer over
// 8-connectivity, and returns the first cell with a set field value.
// Obstacles are crossed during the search; they simply never qualify.
// If origin itself is set it is returned unchanged.
//
// Returns ErrNoReachableCell when the whole grid holds no set value, so a
// legitimate (0,0) answer is never confused with failure.
//
// Complexity: O(W×H×8) time, O(W×H) memory.
func NearestReachable(g *gridmap.Grid, f *field.Field, origin gridmap.Cell) (gridmap.Cell, error) {
	if err := checkShape(g, f); err != nil {
		return gridmap.Cell{}, err
	}
	if err := g.Check(origin); err != nil {
		return gridmap.Cell{}, err
	}
	if f.IsSet(origin) {
		return origin, nil
	}

	s := &searcher{
		g:       g,
		f:       f,
		queue:   make([]gridmap.Cell, 0, g.Len()),
		visited: make([]bool, g.Len()),
	}
	s.enqueue(origin)
	if c, ok := s.loop(); ok {
		return c, nil
	}

	return gridmap.Cell{}, fmt.Errorf("%w: from %v", ErrNoReachableCell, origin)
}

// searcher encapsulates mutable fallback BFS state.
type searcher struct {
	g       *gridmap.Grid
	f       *field.Field
	queue   []gridmap.Cell
	visited []bool
}

// enqueue marks c visited and appends it to the queue.
func (s *searcher) enqueue(c gridmap.Cell) {
	s.visited[s.g.Index(c)] = true
	s.queue = append(s.queue, c)
}

// loop processes the queue until a set cell is met or the queue drains.
func (s *searcher) loop() (gridmap.Cell, bool) {
	for len(s.queue) > 0 {
		cur := s.queue[0]
		s.queue = s.queue[1:]
		for _, n := range s.g.Neighbors(cur) {
			if s.visited[s.g.Index(n)] {
				continue
			}
			if s.f.IsSet(n) {
				return n, true
			}
			s.enqueue(n)
		}
	}

	return gridmap.Cell{}, false
}
