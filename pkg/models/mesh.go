// Package models provides 3D mesh loading and procedural construction.
package models

import (
	"github.com/juliaray/raster3d/pkg/math3d"
	"github.com/juliaray/raster3d/pkg/raster"
)

// Mesh represents a 3D mesh with vertices and faces, ready to be submitted
// to a raster.Renderer via ToInputVertices/ToFaces.
type Mesh struct {
	Name     string
	Vertices []MeshVertex
	Faces    []Face

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// MeshVertex holds a mesh vertex's position, texture coordinates, and
// optional vertex color (populated from a glTF COLOR_0 accessor when
// present, black otherwise).
type MeshVertex struct {
	Position math3d.Vec3
	UV       math3d.Vec2
	Color    math3d.Vec3
}

// Face represents a triangle face with vertex indices.
type Face struct {
	V [3]int // Indices into Mesh.Vertices
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:      name,
		Vertices:  make([]MeshVertex, 0),
		Faces:     make([]Face, 0),
		BoundsMin: math3d.V3(0, 0, 0),
		BoundsMax: math3d.V3(0, 0, 0),
	}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0].Position
	m.BoundsMax = m.Vertices[0].Position

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v.Position)
		m.BoundsMax = m.BoundsMax.Max(v.Position)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Transform applies a transformation matrix to all vertex positions and
// recomputes the bounding box.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Vertices {
		m.Vertices[i].Position = mat.MulVec3(m.Vertices[i].Position)
	}
	m.CalculateBounds()
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]MeshVertex, len(m.Vertices)),
		Faces:     make([]Face, len(m.Faces)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	return clone
}

// Bounds returns the axis-aligned bounding box, implementing the bounded
// mesh contract the scene package's frustum culling relies on.
func (m *Mesh) Bounds() (min, max math3d.Vec3) {
	return m.BoundsMin, m.BoundsMax
}

// ToInputVertices converts the mesh's vertices into the form the core
// rasterizer consumes.
func (m *Mesh) ToInputVertices() []raster.InputVertex {
	out := make([]raster.InputVertex, len(m.Vertices))
	for i, v := range m.Vertices {
		out[i] = raster.InputVertex{Position: v.Position, UV: v.UV, Color: v.Color}
	}
	return out
}

// ToFaces converts the mesh's faces into the core rasterizer's Face type.
func (m *Mesh) ToFaces() []raster.Face {
	out := make([]raster.Face, len(m.Faces))
	for i, f := range m.Faces {
		out[i] = raster.Face{A: f.V[0], B: f.V[1], C: f.V[2]}
	}
	return out
}
