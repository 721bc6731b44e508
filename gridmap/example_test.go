package gridmap_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridmap"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Components
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Components identifies free regions separated by a wall.
// Scenario:
//
//   - '.' free, '#' obstacle
//   - 8-connectivity, so the two left columns form one region
//   - the right column is cut off by the wall
func ExampleGrid_Components() {
	g, _ := gridmap.Parse([]string{
		"..#.",
		"..#.",
	})

	comps := g.Components()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			fmt.Printf(" %v", g.Coordinate(idx))
		}
		fmt.Println()
	}

	// Output:
	// components: 2
	// component 0: (0,0) (0,1) (1,0) (1,1)
	// component 1: (0,3) (1,3)
}
