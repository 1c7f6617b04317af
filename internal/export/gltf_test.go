package export

import (
	"testing"

	"github.com/cubenav/cubenav"
)

func TestBuildDocumentShape(t *testing.T) {
	cube := cubenav.NewCube(cubenav.DefaultConfig())
	doc := BuildDocument(cube)

	if len(doc.Meshes) != 1 || len(doc.Meshes[0].Primitives) != 1 {
		t.Fatalf("expected one mesh with one primitive")
	}
	if len(doc.Nodes) != 1 || len(doc.Scenes[0].Nodes) != 1 {
		t.Error("expected a single node attached to the scene")
	}
	if len(doc.Materials) != 1 {
		t.Error("expected a single material")
	}

	// 26 sub-cubes, 8 corners each, 12 triangles each.
	prim := doc.Meshes[0].Primitives[0]
	if _, ok := prim.Attributes["POSITION"]; !ok {
		t.Error("primitive should carry positions")
	}
	if _, ok := prim.Attributes["COLOR_0"]; !ok {
		t.Error("primitive should carry vertex colors")
	}

	pos := doc.Accessors[int(prim.Attributes["POSITION"])]
	if pos.Count != 26*8 {
		t.Errorf("position count = %d, want %d", pos.Count, 26*8)
	}
	idx := doc.Accessors[int(*prim.Indices)]
	if idx.Count != 26*12*3 {
		t.Errorf("index count = %d, want %d", idx.Count, 26*12*3)
	}
}

func TestFaceMarkerColorPaintsOutwardFaces(t *testing.T) {
	cube := cubenav.NewCube(cubenav.DefaultConfig())

	// The corner at (2,2,2) carries three markers and should paint the +x,
	// +y and +z box faces.
	for _, s := range cube.SubCubes() {
		if s.Coord != (cubenav.Coord{X: 2, Y: 2, Z: 2}) {
			continue
		}
		painted := 0
		for fi := range boxFaces {
			if _, ok := faceMarkerColor(cube, s, fi); ok {
				painted++
			}
		}
		if painted != 3 {
			t.Errorf("corner sub-cube painted %d faces, want 3", painted)
		}
		return
	}
	t.Fatal("corner sub-cube not found")
}
