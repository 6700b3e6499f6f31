package exampleterrain

import (
	"testing"

	"github.com/OCharnyshevich/voxelmapgen/pkg/nodedef"
	"github.com/OCharnyshevich/voxelmapgen/pkg/voxel"
)

func TestFillLayersColumn(t *testing.T) {
	reg := nodedef.NewRegistry()
	layers := ResolveLayers(reg)

	area := voxel.NewArea(voxel.Pos{X: 0, Y: -5, Z: 0}, voxel.Pos{X: 0, Y: 5, Z: 0})
	manip := voxel.NewManip(area)

	Fill(manip, layers, 2)

	if manip.At(voxel.Pos{X: 0, Y: 5, Z: 0}).Content != layers.Air {
		t.Fatalf("above ground should be air")
	}
	if manip.At(voxel.Pos{X: 0, Y: 2, Z: 0}).Content != layers.Grass {
		t.Fatalf("ground level should be grass")
	}
	if manip.At(voxel.Pos{X: 0, Y: 0, Z: 0}).Content != layers.Dirt {
		t.Fatalf("just below ground should be dirt")
	}
	if manip.At(voxel.Pos{X: 0, Y: -5, Z: 0}).Content != layers.Stone {
		t.Fatalf("deep column should be stone")
	}
}
