// Package sim holds the simulated state behind the NEXUS dashboard and the
// pure tick that advances it.
//
// Nothing in this package touches a terminal, a socket, or a clock on its
// own. Every tick is a transform:
//
//	next, effects := Step(prev, source, now)
//
// followed by a separate render step:
//
//	frame := Present(next, now)
//
// The random source and the wall clock are parameters, so tests can script
// exact draws and assert exact post-tick values.
//
// # Draw Order
//
// Step consumes random draws in a fixed order. Scripted sources in
// internal/sim/testing rely on it:
//
//  1. users IntN(40), then Float64 for bandwidth, cpu, memory, disk I/O
//  2. alert-count chance Float64 (direction Float64 when it fires)
//  3. inbound Float64, outbound Float64
//  4. one IntN(10) per non-offline server, in seed order
//  5. log chance Float64 (catalog IntN(8) when it fires)
//  6. alert popup chance Float64 (catalog IntN(4) when it fires)
//
// A paused state consumes no draws.
package sim
