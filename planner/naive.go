package planner

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/simplify"
	"github.com/katalvlaran/gridpath/steer"
)

// FollowNaive looks ahead along the descent and returns a steering Step to
// the farthest cell that still lies near a straight line from the pose.
//
// Each round appends the current candidate to the retained cells, advances
// the candidate by one NextFrom step and re-tests every retained cell against
// a line through the new candidate:
//
//   - same row as the pose: |cell.Row − candidate.Row| < epsilon
//   - otherwise: slope = Δcol/Δrow from the pose, the line passes through the
//     candidate, and the cell's distance to it must be below epsilon.
//
// The walk stops once any retained cell fails the test, or early when the
// candidate's field value is set and below the bound. The first round always
// runs. The result targets the last retained cell.
//
// This is a heuristic; the dense BuildPath plus ReducePath is the reliable
// pipeline. The walk is capped at IterationLimit rounds (ErrPathNotFound).
func (s *Session) FollowNaive(epsilon float64) (steer.Step, error) {
	if !(epsilon > 0) {
		return steer.Step{}, fmt.Errorf("%w: got %v", simplify.ErrBadEpsilon, epsilon)
	}
	if s.field == nil {
		return steer.Step{}, ErrFieldNotComputed
	}

	next, err := s.NextStep()
	if err != nil {
		return steer.Step{}, err
	}
	var (
		nodes  []gridmap.Cell
		within []bool
	)
	for i := 0; allTrue(within); i++ {
		if i >= s.opts.IterationLimit {
			return steer.Step{}, fmt.Errorf("%w: naive follower after %d rounds", ErrPathNotFound, i)
		}
		nodes = append(nodes, next)
		within = append(within, true)
		if next, err = s.NextFrom(next); err != nil {
			return steer.Step{}, err
		}
		if s.field.IsSet(next) && s.field.At(next) < s.opts.Bound {
			break
		}
		s.testAlignment(nodes, within, next, epsilon)
	}

	target := nodes[len(nodes)-1]
	return s.Translation(&target)
}

// testAlignment rewrites within[i] for every retained node against the line
// through next.
func (s *Session) testAlignment(nodes []gridmap.Cell, within []bool, next gridmap.Cell, epsilon float64) {
	dRow := next.Row - s.pose.Row
	if dRow == 0 {
		for i, n := range nodes {
			within[i] = math.Abs(float64(n.Row-next.Row)) < epsilon
		}
		return
	}

	slope := float64(next.Col-s.pose.Col) / float64(dRow)
	offset := float64(next.Col) - slope*float64(next.Row)
	for i, n := range nodes {
		x, y := float64(n.Row), float64(n.Col)
		z := (x + slope*(y-offset)) / (1 + slope*slope)
		within[i] = math.Hypot(x-z, y-slope*z-offset) < epsilon
	}
}

func allTrue(bs []bool) bool {
	for _, b := range bs {
		if !b {
			return false
		}
	}
	return true
}
