package mapgen

import "github.com/OCharnyshevich/voxelmapgen/pkg/voxel"

// SetLighting assigns param1 = light for every cell in [nmin, nmax].
func (s *State) SetLighting(nmin, nmax voxel.Pos, light uint8) {
	for z := nmin.Z; z <= nmax.Z; z++ {
		for y := nmin.Y; y <= nmax.Y; y++ {
			for x := nmin.X; x <= nmax.X; x++ {
				p := voxel.Pos{X: x, Y: y, Z: z}
				n := s.Manip.At(p)
				n.Param1 = light
				s.Manip.Set(p, n)
			}
		}
	}
}

var neighbourOffsets = [6]voxel.Pos{
	{X: 1}, {X: -1},
	{Y: 1}, {Y: -1},
	{Z: 1}, {Z: -1},
}

// LightSpread recursively diffuses light outward from p. Recursion
// depth is bounded by LightMax (<=15) because each step strictly
// decrements light and the write guard below is monotone: a cell is
// only written, and only recursed past, when the new value is strictly
// greater than what it already holds.
func (s *State) LightSpread(area voxel.Area, p voxel.Pos, light uint8) {
	if light <= 1 || !area.Contains(p) {
		return
	}
	light--

	n := s.Manip.At(p)
	if light <= n.Param1 || !s.NDef.Get(n.Content).LightPropagates {
		return
	}

	n.Param1 = light
	s.Manip.Set(p, n)

	for _, off := range neighbourOffsets {
		s.LightSpread(area, p.Add(off), light)
	}
}

// CalcLighting runs the two-phase lighting pass over [nmin, nmax]:
// a sunlight column cast from the layer above the chunk, then source
// diffusion from every emissive or already-lit cell in the box.
func (s *State) CalcLighting(nmin, nmax voxel.Pos) {
	s.castSunlight(nmin, nmax)
	s.diffuseLight(nmin, nmax)
}

func (s *State) castSunlight(nmin, nmax voxel.Pos) {
	area := s.Manip.Area
	for z := nmin.Z; z <= nmax.Z; z++ {
		for x := nmin.X; x <= nmax.X; x++ {
			above := voxel.Pos{X: x, Y: nmax.Y + 1, Z: z}
			var sunlit bool
			if !area.Contains(above) {
				sunlit = s.WaterLevel < nmax.Y
			} else {
				top := s.Manip.At(above)
				if top.IsIgnore() {
					sunlit = s.WaterLevel < nmax.Y
				} else {
					sunlit = top.Param1&0x0F == LightSun
				}
			}
			if !sunlit {
				continue
			}

			for y := nmax.Y; y >= nmin.Y; y-- {
				p := voxel.Pos{X: x, Y: y, Z: z}
				n := s.Manip.At(p)
				if !s.NDef.Get(n.Content).SunlightPropagates {
					break
				}
				n.Param1 = LightSun
				s.Manip.Set(p, n)
			}
		}
	}
}

func (s *State) diffuseLight(nmin, nmax voxel.Pos) {
	area := s.Manip.Area
	for z := nmin.Z; z <= nmax.Z; z++ {
		for y := nmin.Y; y <= nmax.Y; y++ {
			for x := nmin.X; x <= nmax.X; x++ {
				p := voxel.Pos{X: x, Y: y, Z: z}
				n := s.Manip.At(p)
				if n.IsIgnore() {
					continue
				}
				def := s.NDef.Get(n.Content)
				if !def.LightPropagates {
					continue
				}

				emission := n.Param1 & 0x0F
				if def.LightSource&0x0F > emission {
					emission = def.LightSource & 0x0F
					n.Param1 = emission
					s.Manip.Set(p, n)
				}
				if emission == 0 {
					continue
				}
				for _, off := range neighbourOffsets {
					s.LightSpread(area, p.Add(off), emission)
				}
			}
		}
	}
}
