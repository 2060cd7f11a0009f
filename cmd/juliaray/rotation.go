package main

import "github.com/charmbracelet/harmonica"

// rotationAxis tracks position and velocity for one rotation axis, with
// velocity decaying toward zero via a critically damped spring.
type rotationAxis struct {
	Position  float64
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64
}

func newRotationAxis(fps int) rotationAxis {
	return rotationAxis{
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update applies velocity to position, then decays velocity toward 0.
func (a *rotationAxis) Update() {
	a.Position += a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
}

// rotationState holds pitch/yaw/roll, each with its own spring physics.
type rotationState struct {
	Pitch, Yaw, Roll rotationAxis
	fps              int
}

func newRotationState(fps int) *rotationState {
	return &rotationState{
		Pitch: newRotationAxis(fps),
		Yaw:   newRotationAxis(fps),
		Roll:  newRotationAxis(fps),
		fps:   fps,
	}
}

func (r *rotationState) Update() {
	r.Pitch.Update()
	r.Yaw.Update()
	r.Roll.Update()
}

func (r *rotationState) ApplyImpulse(pitch, yaw, roll float64) {
	r.Pitch.Velocity += pitch
	r.Yaw.Velocity += yaw
	r.Roll.Velocity += roll
}

func (r *rotationState) Reset() {
	r.Pitch = newRotationAxis(r.fps)
	r.Yaw = newRotationAxis(r.fps)
	r.Roll = newRotationAxis(r.fps)
}
