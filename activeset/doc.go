// Package activeset provides the pluggable active-node containers the
// engines pop discharge candidates from: a plain Stack and Queue (used by
// the assignment engine's LIFO/FIFO option and by min-cost-flow's refine
// loop), and a Buckets priority container that gives the max-flow engine
// highest-label-first ordering without a heap.
//
// Each container is a concrete type selected by engine configuration, not a
// runtime-dispatched interface, so no virtual call sits inside the hot
// discharge loop.
package activeset
