// Package pedestrian samples simulated pedestrian populations on a city grid
// and resolves each pedestrian's shortest commute path.
//
// Sampling policy:
//
//   - Origin pool: Residence and Walkway cells. Destination pool: Business
//     and Walkway cells. WithStrictPools restores the stricter
//     Residence-only / Business-only policy.
//   - n distinct origins and n distinct destinations are drawn without
//     replacement from each pool independently, then paired positionally.
//     A cell may serve as origin for one pedestrian and destination for
//     another, and a pedestrian may draw the same Walkway cell for both
//     ends of its trip; neither case is excluded.
//   - A pool smaller than n yields ErrInsufficientCapacity — a reported
//     failure the caller reacts to, never a crash.
//   - A pedestrian whose endpoints are disconnected in the traversable view
//     is silently dropped (best-effort policy); the returned population may
//     therefore be smaller than n.
//
// Paths are resolved through a pathing.Cache bound to the run's traversable
// graph, so repeated (origin, destination) pairs are computed once.
package pedestrian
