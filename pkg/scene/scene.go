package scene

import (
	"github.com/juliaray/raster3d/pkg/math3d"
	"github.com/juliaray/raster3d/pkg/raster"
)

// BoundedMesh is the contract a mesh must satisfy to participate in scene
// culling: it supplies the core pipeline's vertex/face data plus a local
// axis-aligned bounding box.
type BoundedMesh interface {
	ToInputVertices() []raster.InputVertex
	ToFaces() []raster.Face
	Bounds() (min, max math3d.Vec3)
}

// Instance places a BoundedMesh in the world with its own transform and
// texture.
type Instance struct {
	Mesh      BoundedMesh
	Transform math3d.Mat4
	Texture   raster.Sampler
}

// Scene holds a camera and a set of mesh instances, performing whole-mesh
// frustum culling before handing surviving instances to a Renderer. This is
// a coarse, pre-rasterization optimization stage; it is not part of the
// core per-triangle draw contract and never touches individual triangles.
type Scene struct {
	Camera    *Camera
	Instances []Instance

	// Drawn and Culled report the outcome of the most recent Draw call.
	Drawn  int
	Culled int
}

// NewScene creates an empty scene around the given camera.
func NewScene(camera *Camera) *Scene {
	return &Scene{Camera: camera}
}

// Add appends an instance to the scene.
func (s *Scene) Add(inst Instance) {
	s.Instances = append(s.Instances, inst)
}

// Draw culls instances whose world-space bounding box does not intersect
// the camera's view frustum, then draws the survivors into r using the
// camera's (affine, projection-free) view matrix composed with each
// instance's own transform.
func (s *Scene) Draw(r *raster.Renderer) {
	frustum := s.Camera.GetFrustum()
	view := s.Camera.ViewMatrix()

	s.Drawn, s.Culled = 0, 0

	for _, inst := range s.Instances {
		min, max := inst.Mesh.Bounds()
		worldBox := AABB{Min: min, Max: max}.Transform(inst.Transform)

		if !frustum.IntersectAABB(worldBox) {
			s.Culled++
			continue
		}
		s.Drawn++

		model := view.Mul(inst.Transform)
		r.Draw(inst.Mesh.ToInputVertices(), inst.Mesh.ToFaces(), inst.Texture, model)
	}
}
