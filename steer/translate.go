package steer

import (
	"github.com/katalvlaran/gridpath/field"
	"github.com/katalvlaran/gridpath/gridmap"
)

// Direction returns the unit vector from one cell to another, or the zero
// vector when they coincide.
func Direction(from, to gridmap.Cell) Vec2 {
	d := Vec2{Row: float64(to.Row - from.Row), Col: float64(to.Col - from.Col)}
	n := d.Norm()
	if n == 0 {
		return Vec2{}
	}
	return Vec2{Row: d.Row / n, Col: d.Col / n}
}

// Translate builds the steering Step from pose towards target.
// When both pose and target are Unset, the agent is outside the reachable
// region and the target is replaced by NearestReachable(pose).
func Translate(g *gridmap.Grid, f *field.Field, pose, target gridmap.Cell) (Step, error) {
	if err := checkShape(g, f); err != nil {
		return Step{}, err
	}
	step := Step{Target: target}
	if !f.IsSet(pose) && !f.IsSet(target) {
		c, err := NearestReachable(g, f, pose)
		if err != nil {
			return Step{}, err
		}
		step.Target, step.Fallback = c, true
	}
	step.Vector = Direction(pose, step.Target)

	return step, nil
}

// Toward is Translate with the default target Next(pose).
func Toward(g *gridmap.Grid, f *field.Field, pose gridmap.Cell) (Step, error) {
	target, err := Next(g, f, pose)
	if err != nil {
		return Step{}, err
	}
	return Translate(g, f, pose, target)
}
