// Package export writes the cube model as a binary glTF document so the
// widget geometry can be previewed in standard 3D tooling.
package export

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/cubenav/cubenav"
)

// bodyColor is the plastic between the face markers.
var bodyColor = [4]float32{0.08, 0.08, 0.1, 1}

// markerColors maps marker color tags to display RGBA.
var markerColors = map[cubenav.Color][4]float32{
	cubenav.White:  {0.95, 0.95, 0.95, 1},
	cubenav.Yellow: {1.0, 0.84, 0.0, 1},
	cubenav.Green:  {0.0, 0.62, 0.38, 1},
	cubenav.Blue:   {0.0, 0.27, 0.68, 1},
	cubenav.Red:    {0.72, 0.07, 0.2, 1},
	cubenav.Orange: {1.0, 0.35, 0.0, 1},
}

// BuildDocument converts the cube into a glTF document: one box primitive
// per sub-cube in its current transform, marker colors painted as vertex
// colors on the matching box face.
func BuildDocument(cube *cubenav.Cube) *gltf.Document {
	var positions [][3]float32
	var colors [][4]float32
	var indices []uint32

	// The bevel shrinks each box slightly; real edge geometry is beyond
	// what a preview needs.
	half := float32((cube.Segment() - cube.Config().Bevel) / 2)

	for _, s := range cube.SubCubes() {
		base := uint32(len(positions))
		center := s.Position
		for _, corner := range boxCorners {
			local := s.Orientation.Rotate(mglVec(corner, half))
			positions = append(positions, [3]float32{
				float32(center.X() + local.X()),
				float32(center.Y() + local.Y()),
				float32(center.Z() + local.Z()),
			})
			colors = append(colors, bodyColor)
		}
		for fi, face := range boxFaces {
			col, painted := faceMarkerColor(cube, s, fi)
			for _, tri := range face.tris {
				indices = append(indices, base+tri[0], base+tri[1], base+tri[2])
			}
			if painted {
				for _, vi := range face.corners {
					colors[base+uint32(vi)] = col
				}
			}
		}
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = "cubenav export"

	posAccessor := modeler.WritePosition(doc, positions)
	colorAccessor := modeler.WriteColor(doc, colors)
	indicesAccessor := modeler.WriteIndices(doc, indices)

	prim := &gltf.Primitive{
		Attributes: map[string]uint32{
			gltf.POSITION: uint32(posAccessor),
			gltf.COLOR_0:  uint32(colorAccessor),
		},
		Indices: gltf.Index(uint32(indicesAccessor)),
	}

	pbr := &gltf.PBRMetallicRoughness{
		BaseColorFactor: &[4]float32{1, 1, 1, 1},
		MetallicFactor:  gltf.Float(0),
		RoughnessFactor: gltf.Float(0.6),
	}
	doc.Materials = []*gltf.Material{{PBRMetallicRoughness: pbr, AlphaMode: gltf.AlphaOpaque}}
	prim.Material = gltf.Index(0)

	doc.Meshes = []*gltf.Mesh{{Name: "Cube", Primitives: []*gltf.Primitive{prim}}}
	doc.Nodes = []*gltf.Node{{Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(0))

	return doc
}

// Save writes the cube as a binary glTF file.
func Save(cube *cubenav.Cube, path string) error {
	return gltf.SaveBinary(BuildDocument(cube), path)
}

// boxCorners enumerates the 8 corners of a unit box as +-1 factors.
var boxCorners = [8][3]float32{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

// boxFace describes one side of the box: its corner indices and the two
// triangles covering it, wound outward.
type boxFace struct {
	normal  [3]float32
	corners [4]int
	tris    [2][3]uint32
}

var boxFaces = [6]boxFace{
	{normal: [3]float32{1, 0, 0}, corners: [4]int{1, 2, 6, 5}, tris: [2][3]uint32{{1, 2, 6}, {1, 6, 5}}},
	{normal: [3]float32{-1, 0, 0}, corners: [4]int{0, 4, 7, 3}, tris: [2][3]uint32{{0, 4, 7}, {0, 7, 3}}},
	{normal: [3]float32{0, 1, 0}, corners: [4]int{2, 3, 7, 6}, tris: [2][3]uint32{{2, 3, 7}, {2, 7, 6}}},
	{normal: [3]float32{0, -1, 0}, corners: [4]int{0, 1, 5, 4}, tris: [2][3]uint32{{0, 1, 5}, {0, 5, 4}}},
	{normal: [3]float32{0, 0, 1}, corners: [4]int{4, 5, 6, 7}, tris: [2][3]uint32{{4, 5, 6}, {4, 6, 7}}},
	{normal: [3]float32{0, 0, -1}, corners: [4]int{0, 3, 2, 1}, tris: [2][3]uint32{{0, 3, 2}, {0, 2, 1}}},
}

// faceMarkerColor finds the marker sitting on the fi-th local box face, if
// any: markers live on the sub-cube's local axes, so a marker offset
// aligned with the face normal paints that face.
func faceMarkerColor(cube *cubenav.Cube, s *cubenav.SubCube, fi int) ([4]float32, bool) {
	n := boxFaces[fi].normal
	for _, m := range s.Markers {
		dot := float64(n[0])*m.Offset.X() + float64(n[1])*m.Offset.Y() + float64(n[2])*m.Offset.Z()
		if dot > cube.Segment()/4 {
			return markerColors[m.Color], true
		}
	}
	return bodyColor, false
}

func mglVec(corner [3]float32, half float32) mgl64.Vec3 {
	return mgl64.Vec3{
		float64(corner[0] * half),
		float64(corner[1] * half),
		float64(corner[2] * half),
	}
}
