package scene

import (
	"math"
	"testing"

	"github.com/juliaray/raster3d/pkg/math3d"
)

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()
	if c.Position != math3d.V3(0, 0, 5) {
		t.Fatalf("Position = %v, want (0,0,5)", c.Position)
	}
}

func TestCameraForwardAtZeroRotation(t *testing.T) {
	c := NewCamera()
	f := c.Forward()
	if math.Abs(f.X) > 1e-9 || math.Abs(f.Y) > 1e-9 || f.Z >= 0 {
		t.Fatalf("Forward() at zero rotation = %v, want pointing down -Z", f)
	}
}

func TestCameraRotateClampsPitch(t *testing.T) {
	c := NewCamera()
	c.Rotate(math.Pi, 0, 0)
	if c.Pitch > math.Pi/2 {
		t.Fatalf("Pitch = %v, should be clamped below pi/2", c.Pitch)
	}
}

func TestCameraViewMatrixIdentityAtOrigin(t *testing.T) {
	c := NewCamera()
	c.SetPosition(math3d.V3(0, 0, 0))
	c.SetRotation(0, 0, 0)
	v := c.ViewMatrix()
	got := v.MulVec3(math3d.V3(1, 2, 3))
	if got != math3d.V3(1, 2, 3) {
		t.Fatalf("ViewMatrix at origin/no rotation = %v, want identity behavior", got)
	}
}

func TestCameraLookAtFacesTarget(t *testing.T) {
	c := NewCamera()
	c.SetPosition(math3d.V3(0, 0, 5))
	c.LookAt(math3d.V3(0, 0, 0))
	f := c.Forward()
	if f.Z >= 0 {
		t.Fatalf("Forward() after LookAt(origin) = %v, want pointing toward -Z", f)
	}
}
