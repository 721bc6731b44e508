// Package gridpath plans paths for a mobile agent across a 2D occupancy grid.
//
// 🚀 What is gridpath?
//
//	A small planning stack that turns an occupancy map into steering commands:
//		• Grid maps: traversability tables parsed from text or ints
//		• Distance fields: wavefront (layered) or exact (Dijkstra) costs to a destination
//		• Steering: greedy next step, fallback to the nearest reachable cell, unit vectors
//		• Path reduction: Douglas–Peucker with exact point-to-segment distance
//		• Sessions: pose and destination state with logging, tracing and metrics
//
// Under the hood, everything is organized under these subpackages:
//
//	gridmap/   Cell and Grid types, 8-neighbour adjacency, connected regions
//	field/     distance field builders (Wavefront, Exact; AStar reserved)
//	steer/     next-step selection, fallback search, translation vectors
//	simplify/  Douglas–Peucker keep masks over points or cells
//	planner/   Session: ComputeField, BuildPath, ReducePath, Plan, FollowNaive
//
//	cmd/gridpath      CLI over YAML scenario files
//	internal/config   scenario loading and validation
//
// Quick ⚡ example:
//
//	g, _ := gridmap.Parse([]string{"......", "#####.", "#####.", "#####."})
//	s, _ := planner.NewSession(g, gridmap.Cell{}, gridmap.Cell{Row: 3, Col: 5})
//	waypoints, _ := s.Plan(context.Background(), 1)
//	// waypoints: [(0,0) (0,4) (3,5)]
package gridpath
