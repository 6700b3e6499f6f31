package ore

import (
	"math"

	"github.com/OCharnyshevich/voxelmapgen/pkg/noise"
	"github.com/OCharnyshevich/voxelmapgen/pkg/voxel"
)

// Sheet places noise-modulated horizontal veins: a single y_start is
// chosen for the whole chunk, then a 2D noise map over the chunk's XZ
// footprint decides, per column, whether a vein starts and its Y offset
// from y_start. Each vein's height is clust_size divided by a random
// draw of 1, 2 or 3. Salt: blockseed + 4234.
type Sheet struct {
	Common
}

// Generate implements Generator.
func (o *Sheet) Generate(manip *voxel.Manip, worldSeed int64, blockseed uint32, nmin, nmax voxel.Pos) {
	pr := newPR(blockseed, 4234)

	maxHeight := o.ClustSize
	yStart := pr.Range(nmin.Y, nmax.Y-maxHeight)

	sizeX := nmax.X - nmin.X + 1
	sizeZ := nmax.Z - nmin.Z + 1

	np := o.NP
	if np == nil {
		np = noise.DefaultParams()
	}
	m := noise.NewMap2D(np, worldSeed+int64(yStart), sizeX, sizeZ)
	values := m.PerlinMap2D(float64(nmin.X), float64(nmin.Z))

	idx := 0
	for z := nmin.Z; z <= nmax.Z; z++ {
		for x := nmin.X; x <= nmax.X; x++ {
			noiseval := values[idx]
			idx++
			if noiseval < o.Nthresh {
				continue
			}

			height := maxHeight / pr.Range(1, 3)
			y0 := yStart + int(math.Floor(np.Scale*noiseval))
			y1 := y0 + height

			for y := y0; y < y1; y++ {
				p := voxel.Pos{X: x, Y: y, Z: z}
				if !manip.Area.Contains(p) {
					continue
				}
				n := manip.At(p)
				if n.Content != o.Wherein {
					continue
				}
				manip.Set(p, voxel.NewNode(o.Ore, o.OreParam2))
			}
		}
	}
}
