package deco

import (
	"github.com/OCharnyshevich/voxelmapgen/pkg/mapgen"
	"github.com/OCharnyshevich/voxelmapgen/pkg/rng"
	"github.com/OCharnyshevich/voxelmapgen/pkg/schematic"
	"github.com/OCharnyshevich/voxelmapgen/pkg/voxel"
)

// PlaceFlags are the DECO_PLACE_CENTER_* bit flags from spec §6.
type PlaceFlags uint32

const (
	FlagPlaceCenterX PlaceFlags = 1 << iota
	FlagPlaceCenterY
	FlagPlaceCenterZ
)

// Schematic places a pre-authored voxel template, optionally centred on
// one or more axes, with a per-cell placement probability mask carried
// in the template's param1 field.
type Schematic struct {
	Common

	Schema *schematic.Schematic
	Flags  PlaceFlags
}

// GetHeight implements Decoration: the driver's cutoff test uses the
// template's full Y extent.
func (s *Schematic) GetHeight() int {
	return s.Schema.Size.Y
}

func (s *Schematic) anchor(p voxel.Pos) voxel.Pos {
	if s.Flags&FlagPlaceCenterX != 0 {
		p.X -= (s.Schema.Size.X + 1) / 2
	}
	if s.Flags&FlagPlaceCenterY != 0 {
		p.Y -= (s.Schema.Size.Y + 1) / 2
	}
	if s.Flags&FlagPlaceCenterZ != 0 {
		p.Z -= (s.Schema.Size.Z + 1) / 2
	}
	return p
}

// Generate implements Decoration, following the chunk-generation
// placement path: the c_place_on gate applies, and only AIR/IGNORE
// cells in the target buffer are overwritten.
func (s *Schematic) Generate(mg *mapgen.State, pr *rng.PseudoRandom, maxY int, p voxel.Pos) {
	p = s.anchor(p)

	if s.CPlaceOn != voxel.ContentIgnore {
		if mg.Manip.At(p).Content != s.CPlaceOn {
			return
		}
	}

	s.place(mg.Manip, p, true)
}

// PlaceStructure is the stand-alone placement path used outside chunk
// generation (spec §4.7): it skips the c_place_on gate and the
// AIR/IGNORE check, overwriting unconditionally subject only to the
// probability mask, then triggers a full lighting update over the
// affected region.
func PlaceStructure(mg *mapgen.State, s *Schematic, p voxel.Pos) {
	p = s.anchor(p)
	s.place(mg.Manip, p, false)

	nmin := p
	nmax := voxel.Pos{X: p.X + s.Schema.Size.X - 1, Y: p.Y + s.Schema.Size.Y - 1, Z: p.Z + s.Schema.Size.Z - 1}
	mg.CalcLighting(nmin, nmax)
}

// place runs the shared z,y,x nested placement loop with coupled
// template index i and voxel-buffer index vi, both incrementing by 1
// down the X axis. When gated is true this is the chunk-generation
// path (only AIR/IGNORE cells are replaced); when false it is the
// stand-alone PlaceStructure path (unconditional overwrite subject only
// to the probability mask).
func (s *Schematic) place(manip *voxel.Manip, p voxel.Pos, gated bool) {
	sz := s.Schema.Size
	i := 0
	for z := 0; z < sz.Z; z++ {
		for y := 0; y < sz.Y; y++ {
			vi := voxel.Pos{X: p.X, Y: p.Y + y, Z: p.Z + z}
			for x := 0; x < sz.X; x++ {
				cur := voxel.Pos{X: vi.X + x, Y: vi.Y, Z: vi.Z}
				if !manip.Area.Contains(cur) {
					i++
					continue
				}

				cell := s.Schema.Data[i]
				if gated {
					c := manip.At(cur)
					if !c.IsAir() && !c.IsIgnore() {
						i++
						continue
					}
				}

				if cell.Param1 != 0 && rng.RandRange(1, 256) > int(cell.Param1) {
					i++
					continue
				}

				out := cell
				out.Param1 = 0
				manip.Set(cur, out)
				i++
			}
		}
	}
}
