package field

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/gridpath/gridmap"
)

// Unset marks a cell not reached from the destination.
const Unset = -1.0

// Sentinel errors returned by Build.
var (
	// ErrNilGrid indicates that a nil *gridmap.Grid was passed to Build.
	ErrNilGrid = errors.New("field: grid is nil")

	// ErrBlockedDestination indicates that the destination cell is an obstacle.
	ErrBlockedDestination = errors.New("field: destination is not traversable")

	// ErrUnknownStrategy indicates a Strategy value outside the defined set.
	ErrUnknownStrategy = errors.New("field: unknown strategy")

	// ErrStrategyNotImplemented indicates a reserved Strategy with no builder yet.
	ErrStrategyNotImplemented = errors.New("field: strategy not implemented")
)

// Strategy selects how a Field is computed.
type Strategy int

const (
	// Wavefront expands layer by layer in FIFO order (reference behaviour).
	Wavefront Strategy = iota

	// Exact runs priority-queue Dijkstra and yields true shortest costs.
	Exact

	// AStar is reserved for a goal-directed builder.
	AStar
)

var strategyNames = map[Strategy]string{
	Wavefront: "wavefront",
	Exact:     "exact",
	AStar:     "astar",
}

// String returns the lower-case name used in configuration files.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a configuration name to a Strategy.
// Matching is case-insensitive; "dijkstra" is accepted as an alias of Wavefront.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "wavefront", "dijkstra":
		return Wavefront, nil
	case "exact":
		return Exact, nil
	case "astar", "a_star":
		return AStar, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Field holds the per-cell cost to a single destination.
// Values are stored row-major with the same shape as the source grid.
type Field struct {
	Rows, Cols  int
	Destination gridmap.Cell
	Strategy    Strategy
	values      []float64
}

// newField allocates a Field with every entry Unset.
func newField(g *gridmap.Grid, dest gridmap.Cell, s Strategy) *Field {
	values := make([]float64, g.Len())
	for i := range values {
		values[i] = Unset
	}
	return &Field{Rows: g.Rows, Cols: g.Cols, Destination: dest, Strategy: s, values: values}
}

// At returns the cost stored for c, or Unset when c is out of bounds.
func (f *Field) At(c gridmap.Cell) float64 {
	if c.Row < 0 || c.Row >= f.Rows || c.Col < 0 || c.Col >= f.Cols {
		return Unset
	}
	return f.values[c.Row*f.Cols+c.Col]
}

// IsSet reports whether c was reached from the destination.
func (f *Field) IsSet(c gridmap.Cell) bool {
	return f.At(c) != Unset
}

// Less orders two cells by field value with Unset ranked worse than any set
// value: it reports whether a is a strictly better step target than b.
func (f *Field) Less(a, b gridmap.Cell) bool {
	va, vb := f.At(a), f.At(b)
	if va == Unset {
		return false
	}
	return vb == Unset || va < vb
}

// Reached counts the cells with a set value, destination included.
func (f *Field) Reached() int {
	n := 0
	for _, v := range f.values {
		if v != Unset {
			n++
		}
	}
	return n
}

// Rows2D copies the field into a fresh [][]float64, one slice per grid row.
func (f *Field) Rows2D() [][]float64 {
	out := make([][]float64, f.Rows)
	for r := range out {
		out[r] = make([]float64, f.Cols)
		copy(out[r], f.values[r*f.Cols:(r+1)*f.Cols])
	}
	return out
}

func (f *Field) set(i int, v float64) {
	f.values[i] = v
}

// ErrBadValue indicates a table entry that is neither Unset nor a finite
// non-negative cost.
var ErrBadValue = errors.New("field: value must be Unset or a finite non-negative cost")

// FromRows restores a Field from a rectangular table such as Rows2D returns.
// Destination is the first cell holding 0, or {-1,-1} when there is none.
// Strategy is left as Wavefront; it only records provenance.
func FromRows(rows [][]float64) (*Field, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, gridmap.ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	f := &Field{Rows: h, Cols: w, Destination: gridmap.Cell{Row: -1, Col: -1}, values: make([]float64, 0, h*w)}
	for r, row := range rows {
		if len(row) != w {
			return nil, gridmap.ErrNonRectangular
		}
		for c, v := range row {
			if v != Unset && (v < 0 || math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, fmt.Errorf("%w: %v at (%d,%d)", ErrBadValue, v, r, c)
			}
			if v == 0 && f.Destination.Row < 0 {
				f.Destination = gridmap.Cell{Row: r, Col: c}
			}
			f.values = append(f.values, v)
		}
	}
	return f, nil
}
