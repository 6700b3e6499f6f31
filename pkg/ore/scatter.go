package ore

import (
	"github.com/OCharnyshevich/voxelmapgen/pkg/noise"
	"github.com/OCharnyshevich/voxelmapgen/pkg/voxel"
)

// Scatter places clust_size^3 cube clusters at nclusters random origins
// across the chunk volume, each cell of a cluster placed independently
// with probability 1/orechance, optionally gated by a 3D noise
// threshold sampled once per cluster origin. Salt: blockseed (no
// offset).
type Scatter struct {
	Common
}

// Generate implements Generator.
func (o *Scatter) Generate(manip *voxel.Manip, worldSeed int64, blockseed uint32, nmin, nmax voxel.Pos) {
	pr := newPR(blockseed, 0)

	dx := nmax.X - nmin.X
	dy := nmax.Y - nmin.Y
	dz := nmax.Z - nmin.Z
	volume := (dx + 1) * (dy + 1) * (dz + 1)

	orechance := o.ClustSize * o.ClustSize * o.ClustSize / o.ClustNumOres
	if orechance < 1 {
		orechance = 1
	}
	nclusters := volume / o.ClustScarcity

	size := o.ClustSize
	for i := 0; i < nclusters; i++ {
		x0 := pr.Range(nmin.X, nmax.X-size+1)
		y0 := pr.Range(nmin.Y, nmax.Y-size+1)
		z0 := pr.Range(nmin.Z, nmax.Z-size+1)

		if o.NP != nil && noise.Perlin3D(o.NP, float64(x0), float64(y0), float64(z0), worldSeed) < o.Nthresh {
			continue
		}

		for zi := 0; zi < size; zi++ {
			for yi := 0; yi < size; yi++ {
				for xi := 0; xi < size; xi++ {
					if pr.Range(1, orechance) != 1 {
						continue
					}
					p := voxel.Pos{X: x0 + xi, Y: y0 + yi, Z: z0 + zi}
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
}
