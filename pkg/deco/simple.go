package deco

import (
	"github.com/OCharnyshevich/voxelmapgen/pkg/mapgen"
	"github.com/OCharnyshevich/voxelmapgen/pkg/rng"
	"github.com/OCharnyshevich/voxelmapgen/pkg/voxel"
)

// Simple grows a single content upward from the placement point, with
// optional spawn-by gating on the Moore neighbourhood of the base cell.
type Simple struct {
	Common

	CDeco    uint16   // used when CDecolist is empty
	CDecolist []uint16 // if non-empty, one entry is picked uniformly per placement

	DecoHeight    int
	DecoHeightMax int // 0 means fixed height (DecoHeight)

	CSpawnby  uint16 // content counted among the Moore neighbours by the spawn-by gate
	Nspawnby  int    // negative means "no gating"
}

// GetHeight implements Decoration.
func (s *Simple) GetHeight() int {
	if s.DecoHeightMax > 0 {
		return s.DecoHeightMax
	}
	return s.DecoHeight
}

// Generate implements Decoration.
func (s *Simple) Generate(mg *mapgen.State, pr *rng.PseudoRandom, maxY int, p voxel.Pos) {
	if s.CPlaceOn != voxel.ContentIgnore {
		if mg.Manip.At(p).Content != s.CPlaceOn {
			return
		}
	}

	if s.Nspawnby >= 0 {
		if mooreCount(mg, p, s.CSpawnby) < s.Nspawnby {
			return
		}
	}

	content := s.CDeco
	if len(s.CDecolist) > 0 {
		content = s.CDecolist[pr.Range(0, len(s.CDecolist)-1)]
	}

	var h int
	if s.DecoHeightMax > 0 {
		h = pr.Range(s.DecoHeight, s.DecoHeightMax)
	} else {
		h = s.DecoHeight
	}
	if limit := maxY - p.Y; h > limit {
		h = limit
	}

	cur := p
	for i := 0; i < h; i++ {
		cur.Y++
		if !mg.Manip.Area.Contains(cur) {
			break
		}
		n := mg.Manip.At(cur)
		if !n.IsAir() && !n.IsIgnore() {
			break
		}
		mg.Manip.Set(cur, voxel.NewNode(content, 0))
	}
}
