// Package mapgen holds the state and utility layer shared by every
// generation component: heightmap recomputation, liquid-transition
// queueing, and the two-phase sunlight-cast-then-diffuse lighting pass.
// Ore placement operates on the voxel buffer alone. Decoration placement
// reads a *State's heightmap when one is present, and the stand-alone
// schematic path (deco.PlaceStructure) runs CalcLighting over the
// region it wrote.
package mapgen

import (
	"github.com/OCharnyshevich/voxelmapgen/pkg/nodedef"
	"github.com/OCharnyshevich/voxelmapgen/pkg/voxel"
)

// MapBlockSize is the side length of a map block, used by decoration
// placement to compute how far above nmax.Y a schematic or simple
// decoration may write.
const MapBlockSize = 16

// LightSun is the low-nibble param1 value denoting full sunlight.
const LightSun uint8 = 15

// LightMax is the maximum light level a cell can carry.
const LightMax uint8 = 15

// GeneratorFlags are the bit flags a mapgen variant is configured with.
type GeneratorFlags uint32

const (
	FlagTrees GeneratorFlags = 1 << iota
	FlagCaves
	FlagDungeons
	FlagV6Jungles
	FlagV6BiomeBlend
	FlagFlat
)

// Has reports whether f is set in flags.
func (flags GeneratorFlags) Has(f GeneratorFlags) bool {
	return flags&f != 0
}

// State is the mapgen state block from spec §3: world seed, water
// level, the active voxel buffer, and the optional heightmap/biomemap
// side tables, plus the node-definition registry every placement
// component consults for capability bits.
type State struct {
	Seed       int64
	WaterLevel int
	Manip      *voxel.Manip
	NDef       nodedef.NodeDef

	// Heightmap holds one Y value per (x,z) column across the chunk
	// footprint, or is nil until UpdateHeightmap has run.
	Heightmap []int16
	// Biomemap holds one biome id per (x,z) column, or is nil if the
	// active generator variant does not use biomes.
	Biomemap []uint8

	HeightmapSizeX int
}

// HeightmapIndex returns the Heightmap/Biomemap slot for column (x, z)
// relative to nmin, matching updateHeightmap's own indexing formula.
func (s *State) HeightmapIndex(x, z, nminX, nminZ int) int {
	return (z-nminZ)*s.HeightmapSizeX + (x - nminX)
}

// LiquidTransition is one coordinate emitted onto the liquid queue by
// UpdateLiquid.
type LiquidTransition struct {
	Pos voxel.Pos
}
