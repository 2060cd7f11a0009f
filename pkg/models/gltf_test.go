package models

import "testing"

func TestLoadGLBInvalidPath(t *testing.T) {
	_, err := LoadGLB("/nonexistent/path.glb")
	if err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.gltf")
	if err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestLoadGLTFWithTexturesInvalidPath(t *testing.T) {
	_, _, err := LoadGLTFWithTextures("/nonexistent/path.glb")
	if err == nil {
		t.Error("expected error for nonexistent file")
	}
}
