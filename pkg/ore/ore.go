// Package ore places ore clusters into a chunk's voxel buffer:
// OreScatter (randomly-positioned clusters filtered by an optional 3D
// noise threshold) and OreSheet (noise-modulated horizontal veins).
// Both share the common in-range/vertical-room gate in PlaceOre.
package ore

import (
	"github.com/OCharnyshevich/voxelmapgen/pkg/nodedef"
	"github.com/OCharnyshevich/voxelmapgen/pkg/noise"
	"github.com/OCharnyshevich/voxelmapgen/pkg/rng"
	"github.com/OCharnyshevich/voxelmapgen/pkg/voxel"
)

// Flags are the ore-level bit flags from spec §6.
type Flags uint32

const (
	FlagAbsheight Flags = 1 << iota
	FlagDensity
	FlagNodeIsnt
)

// Has reports whether f is set in flags.
func (flags Flags) Has(f Flags) bool {
	return flags&f != 0
}

// Common holds the attributes every ore variant shares, resolved once
// the node registry is ready.
type Common struct {
	Name string

	Ore        uint16 // resolved target content id
	Wherein    uint16 // resolved host content id
	OreParam2  uint8
	Flags      Flags
	ClustScarcity int
	ClustNumOres  int
	ClustSize     int
	HeightMin     int
	HeightMax     int
	Nthresh       float64
	NP            *noise.Params // nil if unconfigured
}

// ResolveIDs looks up Ore and Wherein by name via ndef, logging nothing
// itself — callers own the spec §7 taxon-1 warning-and-substitute
// behaviour when a name fails to resolve.
func (c *Common) ResolveIDs(ndef nodedef.NodeDef, oreName, whereinName string) {
	c.Ore = ndef.GetID(oreName)
	c.Wherein = ndef.GetID(whereinName)
}

// Generator is implemented by Scatter and Sheet.
type Generator interface {
	Generate(manip *voxel.Manip, worldSeed int64, blockseed uint32, nmin, nmax voxel.Pos)
}

// inRange computes the placeOre in-range bits and the clamped Y range
// to use. Bit 1 (mirrored ABSHEIGHT range) takes precedence over bit 0
// when both are set, matching the source's branch order exactly.
func (c *Common) inRange(nmin, nmax voxel.Pos) (ok bool, ymin, ymax int) {
	bit0 := rangesIntersect(nmin.Y, nmax.Y, c.HeightMin, c.HeightMax)
	var bit1 bool
	if c.Flags.Has(FlagAbsheight) {
		bit1 = rangesIntersect(nmin.Y, nmax.Y, -c.HeightMax, -c.HeightMin)
	}
	if !bit0 && !bit1 {
		return false, 0, 0
	}
	if bit1 {
		ymin = maxInt(nmin.Y, -c.HeightMax)
		ymax = minInt(nmax.Y, -c.HeightMin)
		return true, ymin, ymax
	}
	ymin = maxInt(nmin.Y, c.HeightMin)
	ymax = minInt(nmax.Y, c.HeightMax)
	return true, ymin, ymax
}

// PlaceOre is the common placeOre frame from spec §4.2: it computes the
// in-range flag, clamps Y, checks vertical room, then delegates to gen.
func PlaceOre(gen Generator, c *Common, manip *voxel.Manip, worldSeed int64, blockseed uint32, nmin, nmax voxel.Pos) {
	ok, ymin, ymax := c.inRange(nmin, nmax)
	if !ok {
		return
	}
	if c.ClustSize >= ymax-ymin+1 {
		return
	}
	clamped := nmin
	clamped.Y = ymin
	clampedMax := nmax
	clampedMax.Y = ymax
	gen.Generate(manip, worldSeed, blockseed, clamped, clampedMax)
}

func rangesIntersect(aMin, aMax, bMin, bMax int) bool {
	return aMin <= bMax && bMin <= aMax
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// newPR builds the PseudoRandom for a placement call from blockseed and
// the salt appropriate to the variant (0 for scatter, 4234 for sheet).
func newPR(blockseed uint32, salt uint32) *rng.PseudoRandom {
	return rng.New(blockseed + salt)
}
