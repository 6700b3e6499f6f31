// Package exampleterrain fills a voxel buffer with a trivial layered
// stone/dirt/grass column, for demos and as a base layer under ore,
// decoration and lighting tests. It is deliberately not a mapgen
// variant: no biome selection, no cave carving, no tree placement — a
// real generator would build the terrain that ore/deco/lighting then
// operate on, but that terrain-shaping algorithm is out of scope here.
package exampleterrain

import (
	"github.com/OCharnyshevich/voxelmapgen/pkg/nodedef"
	"github.com/OCharnyshevich/voxelmapgen/pkg/voxel"
)

// Layers names the resolved content ids used by Fill.
type Layers struct {
	Stone uint16
	Dirt  uint16
	Grass uint16
	Air   uint16
}

// ResolveLayers looks up the standard layer names in ndef, falling
// back to registering them if they are not already present — useful
// for a self-contained demo world that hasn't loaded a full node
// definition set.
func ResolveLayers(reg *nodedef.Registry) Layers {
	get := func(name string, def nodedef.Def) uint16 {
		if id := reg.GetID(name); id != voxel.ContentIgnore {
			return id
		}
		return reg.Register(def)
	}
	return Layers{
		Stone: get("default:stone", nodedef.Def{Name: "default:stone", Walkable: true}),
		Dirt:  get("default:dirt", nodedef.Def{Name: "default:dirt", Walkable: true}),
		Grass: get("default:dirt_with_grass", nodedef.Def{Name: "default:dirt_with_grass", Walkable: true}),
		Air:   voxel.ContentAir,
	}
}

// Fill writes a flat terrain column into manip: stone from the area's
// bottom up to groundY-4, dirt for the next 3 layers, grass at
// groundY, air above. groundY must lie within manip.Area's Y range for
// the column to end up fully shaped; cells outside are left untouched.
func Fill(manip *voxel.Manip, layers Layers, groundY int) {
	area := manip.Area
	for z := area.MinEdge.Z; z <= area.MaxEdge.Z; z++ {
		for x := area.MinEdge.X; x <= area.MaxEdge.X; x++ {
			for y := area.MinEdge.Y; y <= area.MaxEdge.Y; y++ {
				p := voxel.Pos{X: x, Y: y, Z: z}
				var content uint16
				switch {
				case y > groundY:
					content = layers.Air
				case y == groundY:
					content = layers.Grass
				case y >= groundY-3:
					content = layers.Dirt
				default:
					content = layers.Stone
				}
				manip.Set(p, voxel.NewNode(content, 0))
			}
		}
	}
}
