package nodedef

import (
	"testing"

	"github.com/OCharnyshevich/voxelmapgen/pkg/voxel"
)

func TestRegistryAirPreregistered(t *testing.T) {
	r := NewRegistry()
	if id := r.GetID("air"); id != voxel.ContentAir {
		t.Fatalf("GetID(air) = %d, want %d", id, voxel.ContentAir)
	}
	if def := r.Get(voxel.ContentAir); !def.LightPropagates || !def.SunlightPropagates {
		t.Fatalf("air should propagate light and sunlight, got %+v", def)
	}
}

func TestRegistryRegisterAssignsSequentialIDs(t *testing.T) {
	r := NewRegistry()
	stone := r.Register(Def{Name: "default:stone", Walkable: true})
	water := r.Register(Def{Name: "default:water", Liquid: true, LightPropagates: true})

	if stone == water {
		t.Fatalf("expected distinct ids, got %d and %d", stone, water)
	}
	if r.GetID("default:stone") != stone {
		t.Fatalf("GetID round-trip failed for stone")
	}
	if !r.Get(water).IsLiquid() {
		t.Fatalf("water should report IsLiquid() true")
	}
	if r.Name(stone) != "default:stone" {
		t.Fatalf("Name(%d) = %q, want default:stone", stone, r.Name(stone))
	}
}

func TestRegistryUnknownNameReturnsIgnore(t *testing.T) {
	r := NewRegistry()
	if id := r.GetID("nonexistent:node"); id != voxel.ContentIgnore {
		t.Fatalf("GetID(unknown) = %d, want ContentIgnore", id)
	}
}

func TestRegistryAtFixedID(t *testing.T) {
	r := NewRegistry()
	r.RegisterAt(200, Def{Name: "default:dirt", Walkable: true})
	if r.GetID("default:dirt") != 200 {
		t.Fatalf("RegisterAt did not bind requested id")
	}
	next := r.Register(Def{Name: "default:sand", Walkable: true})
	if next <= 200 {
		t.Fatalf("Register after RegisterAt(200,...) should continue past it, got %d", next)
	}
}
