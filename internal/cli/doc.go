// Package cli implements the nexus command-line interface.
//
// Each Cobra command loads config, applies the global flag overrides and
// hands off to one of three front ends over the same simulation:
//
//	nexus [dashboard]   - full-screen Bubble Tea dashboard, or one text
//	                      line per tick when stdout is not a terminal
//	nexus snapshot      - run N ticks on a virtual clock, print the frame
//	nexus serve         - JSON API over the engine
//	nexus init          - write .nexus.yaml
//	nexus version       - build information
//
// # Flag Handling
//
// Global flags (--config, --seed, --interval, --no-color) live on the root
// command. A flag only overrides the config file when it was actually
// passed, so "--seed 0" still means "pick a seed from the clock" even when
// the file pins one.
package cli
