// Package planner implements the connection search over the fixed three-leg
// route.
//
// The search is intentionally greedy: for every leg-1 train inside the
// requested window it takes the earliest reachable leg-2 train after the
// first interchange buffer, then the earliest reachable leg-3 train after
// the second, producing at most one itinerary per leg-1 departure. There is
// no exhaustive search over later leg-2/leg-3 combinations.
//
// All times are minutes since midnight on a single service day.
package planner
