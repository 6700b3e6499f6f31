package ore

import (
	"testing"

	"github.com/OCharnyshevich/voxelmapgen/pkg/nodedef"
	"github.com/OCharnyshevich/voxelmapgen/pkg/noise"
	"github.com/OCharnyshevich/voxelmapgen/pkg/voxel"
)

func TestInRangeAbsheightMirrorTakesPrecedence(t *testing.T) {
	c := &Common{
		HeightMin: 10, HeightMax: 20,
		Flags:     FlagAbsheight,
		ClustSize: 1,
	}
	// Chunk sits entirely in the mirrored range [-20,-10]; the plain
	// [10,20] range does not intersect it.
	nmin := voxel.Pos{Y: -20}
	nmax := voxel.Pos{Y: -10}

	ok, ymin, ymax := c.inRange(nmin, nmax)
	if !ok {
		t.Fatalf("expected mirrored range to be in range")
	}
	if ymin != -20 || ymax != -10 {
		t.Fatalf("clamped range = [%d,%d], want [-20,-10]", ymin, ymax)
	}
}

func TestInRangeBothBitsPrefersMirrored(t *testing.T) {
	c := &Common{
		HeightMin: -5, HeightMax: 5,
		Flags:     FlagAbsheight,
		ClustSize: 1,
	}
	// [-5,5] intersects both the plain range and its own mirror.
	nmin := voxel.Pos{Y: -3}
	nmax := voxel.Pos{Y: 3}

	ok, ymin, ymax := c.inRange(nmin, nmax)
	if !ok {
		t.Fatalf("expected in-range")
	}
	// Mirrored range is [-5,5] too here, so clamp is identical either
	// way; the important assertion is that bit1's branch executes
	// without falling through to bit0's clamp using the wrong range.
	if ymin != -3 || ymax != 3 {
		t.Fatalf("clamped range = [%d,%d], want [-3,3]", ymin, ymax)
	}
}

func TestPlaceOreNotEnoughVerticalRoomSkips(t *testing.T) {
	c := &Common{
		HeightMin: 0, HeightMax: 100,
		ClustSize:     10,
		ClustNumOres:  1,
		ClustScarcity: 1,
	}
	reg := nodedef.NewRegistry()
	stone := reg.Register(nodedef.Def{Name: "default:stone", Walkable: true})
	c.Wherein = stone
	c.Ore = reg.Register(nodedef.Def{Name: "default:gold", Walkable: true})

	area := voxel.NewArea(voxel.Pos{X: 0, Y: 0, Z: 0}, voxel.Pos{X: 15, Y: 5, Z: 15})
	manip := voxel.NewManip(area)
	manip.Fill(voxel.NewNode(stone, 0))

	s := &Scatter{Common: *c}
	before := make([]voxel.Node, len(manip.Data))
	copy(before, manip.Data)

	// nmax.Y - nmin.Y + 1 = 6, clust_size = 10 >= 6, must be a no-op.
	PlaceOre(s, c, manip, 1, 1, area.MinEdge, area.MaxEdge)

	for i, n := range manip.Data {
		if n != before[i] {
			t.Fatalf("PlaceOre must not modify buffer when vertical room is insufficient")
		}
	}
}

func TestSheetNthreshGatesPlacement(t *testing.T) {
	reg := nodedef.NewRegistry()
	stone := reg.Register(nodedef.Def{Name: "default:stone", Walkable: true})
	gold := reg.Register(nodedef.Def{Name: "default:gold", Walkable: true})

	area := voxel.NewArea(voxel.Pos{X: 0, Y: 0, Z: 0}, voxel.Pos{X: 15, Y: 15, Z: 15})
	manip := voxel.NewManip(area)
	manip.Fill(voxel.NewNode(stone, 0))

	c := Common{
		Wherein: stone, Ore: gold,
		ClustSize: 3,
		HeightMin: 0, HeightMax: 15,
		Nthresh: 0.5,
		// Offset 0, Scale 0: noise map is constant 0.0, below Nthresh
		// everywhere, so the sheet must write nothing.
		NP: &noise.Params{Offset: 0, Scale: 0, SpreadX: 1, SpreadY: 1, SpreadZ: 1, Octaves: 1, Persistence: 0.5, Lacunarity: 2.0},
	}
	sh := &Sheet{Common: c}
	sh.Generate(manip, 42, 777, area.MinEdge, area.MaxEdge)

	for _, n := range manip.Data {
		if n.Content == gold {
			t.Fatalf("constant noise below nthresh must gate out all placement")
		}
	}
}

func TestSheetAboveThresholdWritesSlab(t *testing.T) {
	reg := nodedef.NewRegistry()
	stone := reg.Register(nodedef.Def{Name: "default:stone", Walkable: true})
	gold := reg.Register(nodedef.Def{Name: "default:gold", Walkable: true})

	area := voxel.NewArea(voxel.Pos{X: 0, Y: 0, Z: 0}, voxel.Pos{X: 15, Y: 15, Z: 15})
	manip := voxel.NewManip(area)
	manip.Fill(voxel.NewNode(stone, 0))

	const clustSize = 3
	c := Common{
		Wherein: stone, Ore: gold,
		ClustSize: clustSize,
		HeightMin: 0, HeightMax: 15,
		Nthresh: 0,
		// Offset 0.5, Scale 0: noise map is constant 0.5, at/above
		// nthresh everywhere, and scale=0 pins y0 to y_start for every
		// column, so a clust_size-tall slab must be written.
		NP: &noise.Params{Offset: 0.5, Scale: 0, SpreadX: 1, SpreadY: 1, SpreadZ: 1, Octaves: 1, Persistence: 0.5, Lacunarity: 2.0},
	}
	sh := &Sheet{Common: c}
	sh.Generate(manip, 42, 777, area.MinEdge, area.MaxEdge)

	minY, maxY := -1, -1
	wrote := false
	for y := area.MinEdge.Y; y <= area.MaxEdge.Y; y++ {
		if manip.At(voxel.Pos{X: 0, Y: y, Z: 0}).Content == gold {
			wrote = true
			if minY == -1 {
				minY = y
			}
			maxY = y
		}
	}
	if !wrote {
		t.Fatalf("expected at least one cell replaced by ore at/above nthresh")
	}
	if maxY-minY+1 > clustSize {
		t.Fatalf("slab height = %d, must not exceed clust_size %d", maxY-minY+1, clustSize)
	}
}

func TestScatterOnlyReplacesWherein(t *testing.T) {
	reg := nodedef.NewRegistry()
	stone := reg.Register(nodedef.Def{Name: "default:stone", Walkable: true})
	dirt := reg.Register(nodedef.Def{Name: "default:dirt", Walkable: true})
	gold := reg.Register(nodedef.Def{Name: "default:gold", Walkable: true})

	area := voxel.NewArea(voxel.Pos{X: 0, Y: 0, Z: 0}, voxel.Pos{X: 15, Y: 15, Z: 15})
	manip := voxel.NewManip(area)
	manip.Fill(voxel.NewNode(dirt, 0))

	c := Common{
		Wherein: stone, Ore: gold,
		ClustScarcity: 4, ClustNumOres: 3, ClustSize: 3,
		HeightMin: 0, HeightMax: 15,
	}
	s := &Scatter{Common: c}
	s.Generate(manip, 42, 777, area.MinEdge, area.MaxEdge)

	for _, n := range manip.Data {
		if n.Content == gold {
			t.Fatalf("gold should never appear since no cell equals wherein (stone)")
		}
	}
}
