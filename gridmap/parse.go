package gridmap

import "fmt"

// Parse builds a Grid from text rows, one string per grid row.
// '.' and '1' mark free cells; '#' and '0' mark obstacles.
// Any other rune yields ErrBadSymbol with its position.
func Parse(rows []string) (*Grid, error) {
	cells := make([][]bool, len(rows))
	for r, line := range rows {
		row := make([]bool, 0, len(line))
		for c, ch := range []rune(line) {
			switch ch {
			case '.', '1':
				row = append(row, true)
			case '#', '0':
				row = append(row, false)
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadSymbol, ch, r, c)
			}
		}
		cells[r] = row
	}

	return New(cells)
}

// Format renders g back into '.'/'#' rows, the inverse of Parse.
func (g *Grid) Format() []string {
	out := make([]string, g.Rows)
	buf := make([]byte, g.Cols)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			buf[c] = '#'
			if g.open[r*g.Cols+c] {
				buf[c] = '.'
			}
		}
		out[r] = string(buf)
	}

	return out
}
