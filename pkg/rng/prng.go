// Package rng provides the two deterministic pseudo-random generators the
// mapgen core depends on: a small-state PseudoRandom seeded per call site,
// and a process-wide RandRange used by schematic probability masks.
package rng

import "sync"

const randomRange = 32767

// PseudoRandom is a small-state LCG. Its sequence is fully determined by
// its seed and is reproducible across platforms and Go versions: all
// arithmetic is done in uint32, so it never depends on native int width
// or on signed-overflow behaviour.
type PseudoRandom struct {
	next uint32
}

// New creates a PseudoRandom seeded with seed.
func New(seed uint32) *PseudoRandom {
	return &PseudoRandom{next: seed}
}

// Seed resets the generator's state.
func (r *PseudoRandom) Seed(seed uint32) {
	r.next = seed
}

// Next advances the generator and returns a value in [0, 32767].
func (r *PseudoRandom) Next() int {
	r.next = r.next*1103515245 + 12345
	return int((r.next / 65536) % (randomRange + 1))
}

// Range returns a uniform integer in [lo, hi] inclusive. Callers must
// have hi >= lo; Range does not validate this (mirrors the source's
// undefined behaviour on a swapped range rather than silently swapping
// bounds and changing draw counts).
func (r *PseudoRandom) Range(lo, hi int) int {
	span := hi - lo + 1
	return (r.Next() % span) + lo
}

var (
	globalMu   sync.Mutex
	globalRand = New(0)
)

// RandRange draws from the process-wide generator used by schematic
// probability masks (pkg/deco's DecoSchematic.Generate/PlaceStructure).
// It is intentionally not per-call-site seeded: spec §9 flags this as a
// design smell inherited from the source ("a per-call generator would
// restore full determinism"), preserved here for wire compatibility.
func RandRange(lo, hi int) int {
	globalMu.Lock()
	defer globalMu.Unlock()
	return globalRand.Range(lo, hi)
}

// Reseed reinitialises the process-wide generator, e.g. at world load.
func Reseed(seed uint32) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalRand.Seed(seed)
}
