// Package pedflow is a Monte Carlo study of pedestrian foot traffic on a
// random city grid.
//
// 🚶 What does pedflow do?
//
//	A city is a rectangular grid of typed cells — residences, businesses,
//	walkways and blockages. The grid derives a 4-neighbor connectivity
//	graph; removing blockages yields the traversable view pedestrians walk
//	on. Each simulation samples commuter pairs without replacement, routes
//	them over BFS shortest paths (with a commute-keyed cache), and counts
//	where the routes cross.
//
// Everything is organized under focused subpackages:
//
//	city/       — cells, coordinates, weighted random grids, ASCII rendering
//	graph/      — undirected graph with blocked-edge tags
//	pathing/    — BFS, shortest paths, commute cache
//	pedestrian/ — sampling and routing of commuter populations
//	collision/  — interior-cell aggregation and hot-spot selection
//	sim/        — the batch driver sweeping pedestrian counts
//	export/     — GEXF export of the connectivity graph
//
// The cmd/pedflow command ties it together: generate a city, run the batch,
// print the per-repetition table and the overall busiest location.
//
//	go get github.com/urbansim/pedflow
package pedflow
