package deco

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/OCharnyshevich/voxelmapgen/pkg/mapgen"
	"github.com/OCharnyshevich/voxelmapgen/pkg/nodedef"
	"github.com/OCharnyshevich/voxelmapgen/pkg/rng"
	"github.com/OCharnyshevich/voxelmapgen/pkg/voxel"
)

func newTestMapgen(t *testing.T, nmin, nmax voxel.Pos) (*mapgen.State, *nodedef.Registry, uint16, uint16) {
	t.Helper()
	reg := nodedef.NewRegistry()
	stone := reg.Register(nodedef.Def{Name: "default:stone", Walkable: true})
	sapling := reg.Register(nodedef.Def{Name: "default:sapling", Walkable: false})

	area := voxel.NewArea(nmin, nmax)
	manip := voxel.NewManip(area)
	manip.Fill(voxel.NewNode(voxel.ContentAir, 0))

	mg := &mapgen.State{Manip: manip, NDef: reg}
	return mg, reg, stone, sapling
}

func TestSimpleGenerateSkipsWrongPlaceOn(t *testing.T) {
	nmin, nmax := voxel.Pos{X: 0, Y: 0, Z: 0}, voxel.Pos{X: 5, Y: 5, Z: 5}
	mg, reg, stone, sapling := newTestMapgen(t, nmin, nmax)
	dirt := reg.Register(nodedef.Def{Name: "default:dirt", Walkable: true})

	s := &Simple{
		Common:     Common{CPlaceOn: stone},
		CDeco:      sapling,
		DecoHeight: 1,
	}
	base := voxel.Pos{X: 2, Y: 2, Z: 2}
	mg.Manip.Set(base, voxel.NewNode(dirt, 0)) // not stone

	pr := rng.New(12345)
	s.Generate(mg, pr, 100, base)

	above := voxel.Pos{X: 2, Y: 3, Z: 2}
	if mg.Manip.At(above).Content == sapling {
		t.Fatalf("should not place decoration when c_place_on does not match")
	}
}

func TestSimpleGenerateWritesAboveBase(t *testing.T) {
	nmin, nmax := voxel.Pos{X: 0, Y: 0, Z: 0}, voxel.Pos{X: 5, Y: 5, Z: 5}
	mg, _, stone, sapling := newTestMapgen(t, nmin, nmax)

	s := &Simple{
		Common:     Common{CPlaceOn: stone},
		CDeco:      sapling,
		DecoHeight: 2,
	}
	base := voxel.Pos{X: 2, Y: 2, Z: 2}
	mg.Manip.Set(base, voxel.NewNode(stone, 0))

	pr := rng.New(12345)
	s.Generate(mg, pr, 100, base)

	if mg.Manip.At(voxel.Pos{X: 2, Y: 3, Z: 2}).Content != sapling {
		t.Fatalf("expected sapling at base.Y+1")
	}
	if mg.Manip.At(voxel.Pos{X: 2, Y: 4, Z: 2}).Content != sapling {
		t.Fatalf("expected sapling at base.Y+2")
	}
	if mg.Manip.At(base).Content == sapling {
		t.Fatalf("base cell itself must not be overwritten (growth starts at base.Y+1)")
	}
}

func TestSimpleGenerateStopsAtObstruction(t *testing.T) {
	nmin, nmax := voxel.Pos{X: 0, Y: 0, Z: 0}, voxel.Pos{X: 5, Y: 5, Z: 5}
	mg, _, stone, sapling := newTestMapgen(t, nmin, nmax)

	s := &Simple{
		Common:     Common{CPlaceOn: voxel.ContentIgnore},
		CDeco:      sapling,
		DecoHeight: 3,
		Nspawnby:   -1,
	}
	base := voxel.Pos{X: 1, Y: 1, Z: 1}
	mg.Manip.Set(voxel.Pos{X: 1, Y: 2, Z: 1}, voxel.NewNode(stone, 0)) // obstruction right above base

	pr := rng.New(12345)
	s.Generate(mg, pr, 100, base)

	if mg.Manip.At(voxel.Pos{X: 1, Y: 2, Z: 1}).Content != stone {
		t.Fatalf("obstruction cell should not be overwritten")
	}
	if mg.Manip.At(voxel.Pos{X: 1, Y: 3, Z: 1}).Content == sapling {
		t.Fatalf("growth must stop at the first obstruction")
	}
}

func TestSimpleGenerateSpawnbyGate(t *testing.T) {
	nmin, nmax := voxel.Pos{X: 0, Y: 0, Z: 0}, voxel.Pos{X: 5, Y: 5, Z: 5}
	mg, reg, stone, sapling := newTestMapgen(t, nmin, nmax)
	grass := reg.Register(nodedef.Def{Name: "default:grass", Walkable: true})

	base := voxel.Pos{X: 2, Y: 2, Z: 2}
	mg.Manip.Set(base, voxel.NewNode(stone, 0))

	s := &Simple{
		Common:     Common{CPlaceOn: stone},
		CDeco:      sapling,
		DecoHeight: 1,
		CSpawnby:   grass,
		Nspawnby:   3,
	}

	// Only 2 of the 8 Moore neighbours are grass: gate must reject.
	mg.Manip.Set(voxel.Pos{X: 2, Y: 2, Z: 3}, voxel.NewNode(grass, 0))
	mg.Manip.Set(voxel.Pos{X: 2, Y: 2, Z: 1}, voxel.NewNode(grass, 0))

	pr := rng.New(12345)
	s.Generate(mg, pr, 100, base)

	if mg.Manip.At(voxel.Pos{X: 2, Y: 3, Z: 2}).Content == sapling {
		t.Fatalf("spawn-by gate should reject placement with only 2 of 3 required neighbours")
	}

	// A 3rd grass neighbour satisfies Nspawnby: placement must proceed.
	mg.Manip.Set(voxel.Pos{X: 3, Y: 2, Z: 2}, voxel.NewNode(grass, 0))

	pr = rng.New(12345)
	s.Generate(mg, pr, 100, base)

	if mg.Manip.At(voxel.Pos{X: 2, Y: 3, Z: 2}).Content != sapling {
		t.Fatalf("spawn-by gate should accept placement once 3 neighbours match")
	}
}

func TestPlaceDecoSidelenSelfCorrects(t *testing.T) {
	nmin, nmax := voxel.Pos{X: 0, Y: 0, Z: 0}, voxel.Pos{X: 15, Y: 15, Z: 15}
	mg, _, stone, sapling := newTestMapgen(t, nmin, nmax)
	mg.Manip.Fill(voxel.NewNode(stone, 0))
	mg.UpdateHeightmap(nmin, nmax)

	c := Common{CPlaceOn: stone, FillRatio: 1.0, Sidelen: 7} // 16 % 7 != 0
	s := &Simple{Common: c, CDeco: sapling, DecoHeight: 1}

	// Must not panic and must take the self-correction branch, which
	// logs a warning before falling back to the full chunk extent.
	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))
	PlaceDeco(s, &c, mg, logger, 1, 99, nmin, nmax)
	if !strings.Contains(logBuf.String(), "using full extent") {
		t.Fatalf("expected sidelen self-correction warning, got log %q", logBuf.String())
	}
}
