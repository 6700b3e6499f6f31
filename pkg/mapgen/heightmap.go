package mapgen

import "github.com/OCharnyshevich/voxelmapgen/pkg/voxel"

// FindGroundLevelFull scans the full height of the voxel buffer's area
// at column (x, z), from top to bottom, and returns the Y of the first
// walkable cell. It returns MinEdge.Y-1 if the column has no walkable
// cell at all.
func (s *State) FindGroundLevelFull(x, z int) int {
	area := s.Manip.Area
	for y := area.MaxEdge.Y; y >= area.MinEdge.Y; y-- {
		n := s.Manip.At(voxel.Pos{X: x, Y: y, Z: z})
		if s.NDef.Get(n.Content).Walkable {
			return y
		}
	}
	return area.MinEdge.Y - 1
}

// FindGroundLevel is FindGroundLevelFull bounded to [ymin, ymax]. It
// returns ymin-1 if no walkable cell is found in that range, so callers
// can treat any result < ymin as "no ground in this chunk".
func (s *State) FindGroundLevel(x, z, ymin, ymax int) int {
	for y := ymax; y >= ymin; y-- {
		n := s.Manip.At(voxel.Pos{X: x, Y: y, Z: z})
		if s.NDef.Get(n.Content).Walkable {
			return y
		}
	}
	return ymin - 1
}

// UpdateHeightmap fills s.Heightmap over the [nmin, nmax] footprint,
// allocating it (and setting HeightmapSizeX) if necessary.
func (s *State) UpdateHeightmap(nmin, nmax voxel.Pos) {
	sx := nmax.X - nmin.X + 1
	sz := nmax.Z - nmin.Z + 1
	if s.Heightmap == nil {
		s.Heightmap = make([]int16, sx*sz)
	}
	s.HeightmapSizeX = sx

	for z := nmin.Z; z <= nmax.Z; z++ {
		for x := nmin.X; x <= nmax.X; x++ {
			y := s.FindGroundLevel(x, z, nmin.Y, nmax.Y)
			s.Heightmap[s.HeightmapIndex(x, z, nmin.X, nmin.Z)] = int16(y)
		}
	}
}
