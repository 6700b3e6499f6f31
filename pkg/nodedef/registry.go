// Package nodedef is the external node-definition registry collaborator
// from spec §6: read-only after world bootstrap, consumed by the ore,
// decoration, schematic, and mapgen packages purely through the NodeDef
// interface. Registry is an in-memory implementation sufficient for
// tests and for a single-process embedding of the mapgen core, in the
// same ByID/ByName/All shape the teacher used for its own game-data
// registries.
package nodedef

import "github.com/OCharnyshevich/voxelmapgen/pkg/voxel"

// Def carries the capability bits ore/decoration/mapgen logic reads off
// a node: whether it blocks movement/ground-level scans, whether it
// lets light or sunlight through, whether it counts as a liquid for
// updateLiquid, and what light level (if any) it emits on its own.
type Def struct {
	Name               string
	Walkable           bool
	LightPropagates    bool
	SunlightPropagates bool
	Liquid             bool
	LightSource        uint8
}

// IsLiquid reports whether this node counts as a liquid for
// Mapgen.UpdateLiquid's transition scan.
func (d Def) IsLiquid() bool {
	return d.Liquid
}

// NodeDef is the read-only registry interface every generation
// component depends on. GetID returns voxel.ContentIgnore for an
// unknown name; Get returns the zero Def for an unknown id (all
// capability bits false: non-walkable, opaque, non-liquid, and
// emitting no light). Name is the reverse lookup Save uses to serialise a
// name-id table instead of raw content ids; it returns "" for an
// unknown id.
type NodeDef interface {
	GetID(name string) uint16
	Get(id uint16) Def
	Name(id uint16) string
}

// Registry is a simple in-memory NodeDef, built once at world bootstrap
// and never mutated afterward (see spec §5: ndef is read-only after
// bootstrap).
type Registry struct {
	byName map[string]uint16
	byID   map[uint16]Def
	nextID uint16
}

// NewRegistry creates an empty Registry with AIR pre-registered. IGNORE
// is not registered: GetID never returns it for a known name, and
// Get(voxel.ContentIgnore) returns the zero Def.
func NewRegistry() *Registry {
	r := &Registry{
		byName: make(map[string]uint16),
		byID:   make(map[uint16]Def),
	}
	r.byID[voxel.ContentAir] = Def{Name: "air", LightPropagates: true, SunlightPropagates: true}
	r.byName["air"] = voxel.ContentAir
	r.nextID = 1
	return r
}

// Register assigns the next free content id to def and returns it. The
// caller is responsible for keeping ids stable across a world's
// lifetime; Registry does not persist an id table itself.
func (r *Registry) Register(def Def) uint16 {
	id := r.nextID
	r.nextID++
	r.byID[id] = def
	r.byName[def.Name] = id
	return id
}

// RegisterAt registers def at a caller-chosen id, for fixtures that need
// specific ids (e.g. tests reproducing a fixed schematic file).
func (r *Registry) RegisterAt(id uint16, def Def) {
	r.byID[id] = def
	r.byName[def.Name] = id
	if id >= r.nextID {
		r.nextID = id + 1
	}
}

// GetID implements NodeDef.
func (r *Registry) GetID(name string) uint16 {
	if id, ok := r.byName[name]; ok {
		return id
	}
	return voxel.ContentIgnore
}

// Get implements NodeDef.
func (r *Registry) Get(id uint16) Def {
	return r.byID[id]
}

// Name reverse-looks-up id, used by schematic Save to serialise a
// name-id table instead of raw content ids.
func (r *Registry) Name(id uint16) string {
	return r.byID[id].Name
}
