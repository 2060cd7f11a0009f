package models

import (
	"math"

	"github.com/juliaray/raster3d/pkg/math3d"
)

// NewPlane builds a single flat quad (two triangles) in the XY plane,
// centered at the origin, spanning [-size/2, size/2] on both axes.
func NewPlane(size float64) *Mesh {
	mesh := NewMesh("plane")
	h := size / 2
	mesh.Vertices = []MeshVertex{
		{Position: math3d.V3(-h, -h, 0), UV: math3d.V2(0, 0)},
		{Position: math3d.V3(h, -h, 0), UV: math3d.V2(1, 0)},
		{Position: math3d.V3(h, h, 0), UV: math3d.V2(1, 1)},
		{Position: math3d.V3(-h, h, 0), UV: math3d.V2(0, 1)},
	}
	mesh.Faces = []Face{
		{V: [3]int{0, 1, 2}},
		{V: [3]int{0, 2, 3}},
	}
	mesh.CalculateBounds()
	return mesh
}

// NewCube builds an axis-aligned cube centered at the origin with the given
// edge length, one independently-UV-mapped quad per face.
func NewCube(size float64) *Mesh {
	mesh := NewMesh("cube")
	h := size / 2

	type faceDef struct {
		corners [4]math3d.Vec3
	}
	faces := []faceDef{
		{[4]math3d.Vec3{{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h}, {X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h}}},    // +Z
		{[4]math3d.Vec3{{X: h, Y: -h, Z: -h}, {X: -h, Y: -h, Z: -h}, {X: -h, Y: h, Z: -h}, {X: h, Y: h, Z: -h}}}, // -Z
		{[4]math3d.Vec3{{X: -h, Y: -h, Z: -h}, {X: -h, Y: -h, Z: h}, {X: -h, Y: h, Z: h}, {X: -h, Y: h, Z: -h}}}, // -X
		{[4]math3d.Vec3{{X: h, Y: -h, Z: h}, {X: h, Y: -h, Z: -h}, {X: h, Y: h, Z: -h}, {X: h, Y: h, Z: h}}},     // +X
		{[4]math3d.Vec3{{X: -h, Y: h, Z: h}, {X: h, Y: h, Z: h}, {X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h}}},     // +Y
		{[4]math3d.Vec3{{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h}, {X: h, Y: -h, Z: h}, {X: -h, Y: -h, Z: h}}}, // -Y
	}
	uv := [4]math3d.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	for _, f := range faces {
		base := len(mesh.Vertices)
		for i, corner := range f.corners {
			mesh.Vertices = append(mesh.Vertices, MeshVertex{Position: corner, UV: uv[i]})
		}
		mesh.Faces = append(mesh.Faces,
			Face{V: [3]int{base, base + 1, base + 2}},
			Face{V: [3]int{base, base + 2, base + 3}},
		)
	}

	mesh.CalculateBounds()
	return mesh
}

// NewUVSphere builds a UV-mapped sphere of the given radius, latitudes and
// longitudes controlling tessellation density. latitudes and longitudes
// must each be at least 2.
func NewUVSphere(radius float64, latitudes, longitudes int) *Mesh {
	mesh := NewMesh("sphere")

	for lat := 0; lat <= latitudes; lat++ {
		theta := math.Pi * float64(lat) / float64(latitudes)
		sinT, cosT := math.Sin(theta), math.Cos(theta)

		for lon := 0; lon <= longitudes; lon++ {
			phi := 2 * math.Pi * float64(lon) / float64(longitudes)
			sinP, cosP := math.Sin(phi), math.Cos(phi)

			pos := math3d.V3(radius*sinT*cosP, radius*cosT, radius*sinT*sinP)
			uv := math3d.V2(float64(lon)/float64(longitudes), 1-float64(lat)/float64(latitudes))
			mesh.Vertices = append(mesh.Vertices, MeshVertex{Position: pos, UV: uv})
		}
	}

	stride := longitudes + 1
	for lat := 0; lat < latitudes; lat++ {
		for lon := 0; lon < longitudes; lon++ {
			a := lat*stride + lon
			b := a + stride
			mesh.Faces = append(mesh.Faces,
				Face{V: [3]int{a, b, a + 1}},
				Face{V: [3]int{a + 1, b, b + 1}},
			)
		}
	}

	mesh.CalculateBounds()
	return mesh
}
