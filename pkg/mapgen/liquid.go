package mapgen

import "github.com/OCharnyshevich/voxelmapgen/pkg/voxel"

// UpdateLiquid scans every column in [nmin, nmax] top-down, appending a
// LiquidTransition to queue every time the "is liquid" state changes
// between consecutive cells. Each column starts as though the cell
// above it were liquid (wasliquid = true), so the very top cell of a
// column is only reported if it is itself non-liquid — this matches
// the source behaviour and is preserved deliberately rather than
// "fixed", since callers already depend on it.
func (s *State) UpdateLiquid(queue *[]LiquidTransition, nmin, nmax voxel.Pos) {
	for z := nmin.Z; z <= nmax.Z; z++ {
		for x := nmin.X; x <= nmax.X; x++ {
			wasLiquid := true
			for y := nmax.Y; y >= nmin.Y; y-- {
				p := voxel.Pos{X: x, Y: y, Z: z}
				n := s.Manip.At(p)
				isLiquid := s.NDef.Get(n.Content).IsLiquid()
				if isLiquid != wasLiquid {
					*queue = append(*queue, LiquidTransition{Pos: p})
				}
				wasLiquid = isLiquid
			}
		}
	}
}
