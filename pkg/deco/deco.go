// Package deco places decorations (simple upward-growing decorations
// and pre-authored schematics) into a chunk, subdividing the chunk
// footprint into a grid of noise- or fill-ratio-driven placement cells.
package deco

import (
	"log/slog"

	"github.com/OCharnyshevich/voxelmapgen/pkg/mapgen"
	"github.com/OCharnyshevich/voxelmapgen/pkg/noise"
	"github.com/OCharnyshevich/voxelmapgen/pkg/rng"
	"github.com/OCharnyshevich/voxelmapgen/pkg/voxel"
)

// Common holds the attributes every decoration variant shares.
type Common struct {
	Name string

	CPlaceOn  uint16 // IGNORE means "any"
	NP        *noise.Params
	FillRatio float64
	Sidelen   int
	Biomes    map[uint8]bool // nil or empty means "no filter"
}

// Decoration is implemented by Simple and Schematic.
type Decoration interface {
	Generate(mg *mapgen.State, pr *rng.PseudoRandom, maxY int, p voxel.Pos)
	GetHeight() int
}

// moorePositions is the fixed 8-direction traversal order the spec
// requires be preserved for seed compatibility.
var moorePositions = [8]voxel.Pos{
	{Z: 1}, {Z: -1}, {X: 1}, {X: -1},
	{X: 1, Z: 1}, {X: -1, Z: 1}, {X: -1, Z: -1}, {X: 1, Z: -1},
}

// PlaceDeco is the decoration driver from spec §4.5. It subdivides the
// chunk footprint into a sidelen x sidelen grid, computes a
// noise-or-fill-ratio count per cell, and dispatches deco_count random
// placements per cell to the variant's Generate.
func PlaceDeco(deco Decoration, c *Common, mg *mapgen.State, log *slog.Logger, mapseed int64, blockseed uint32, nmin, nmax voxel.Pos) {
	careaSize := nmax.X - nmin.X + 1

	sidelen := c.Sidelen
	if sidelen <= 0 || careaSize%sidelen != 0 {
		if log != nil {
			log.Warn("decoration sidelen does not divide chunk extent, using full extent",
				"decoration", c.Name, "sidelen", sidelen, "chunk_extent", careaSize)
		}
		sidelen = careaSize
	}

	divlen := careaSize / sidelen
	area := sidelen * sidelen

	pr := rng.New(blockseed + 53)
	maxY := nmax.Y + mapgen.MapBlockSize

	for z0 := 0; z0 < divlen; z0++ {
		for x0 := 0; x0 < divlen; x0++ {
			pcX := nmin.X + sidelen/2 + sidelen*x0
			pcZ := nmin.Z + sidelen/2 + sidelen*z0

			pMinX := nmin.X + sidelen*x0
			pMinZ := nmin.Z + sidelen*z0
			pMaxX := pMinX + sidelen - 1
			pMaxZ := pMinZ + sidelen - 1

			var nval float64
			if c.NP != nil {
				nval = noise.Perlin2D(c.NP, float64(pcX), float64(pcZ), mapseed)
			} else {
				nval = c.FillRatio
			}
			if nval < 0 {
				nval = 0
			}
			decoCount := int(float64(area) * nval)

			for i := 0; i < decoCount; i++ {
				x := pr.Range(pMinX, pMaxX)
				z := pr.Range(pMinZ, pMaxZ)

				var y int
				if mg.Heightmap != nil {
					y = int(mg.Heightmap[mg.HeightmapIndex(x, z, nmin.X, nmin.Z)])
				} else {
					y = mg.FindGroundLevel(x, z, nmin.Y, nmax.Y)
				}
				if y < nmin.Y || y > nmax.Y {
					continue
				}

				height := deco.GetHeight()
				if y+1+height > maxY {
					continue
				}

				if len(c.Biomes) > 0 && mg.Biomemap != nil {
					idx := careaSize*(z-nmin.Z) + (x - nmin.X)
					if !c.Biomes[mg.Biomemap[idx]] {
						continue
					}
				}

				deco.Generate(mg, pr, maxY, voxel.Pos{X: x, Y: y, Z: z})
			}
		}
	}
}

// mooreCount counts cells among the 8 horizontal Moore neighbours of
// base equal to want.
func mooreCount(mg *mapgen.State, base voxel.Pos, want uint16) int {
	count := 0
	for _, off := range moorePositions {
		p := voxel.Pos{X: base.X + off.X, Y: base.Y, Z: base.Z + off.Z}
		if !mg.Manip.Area.Contains(p) {
			continue
		}
		if mg.Manip.At(p).Content == want {
			count++
		}
	}
	return count
}
