// Package scene holds the camera, mesh sources and per-instance orbit
// parameters that feed the raster pipeline.
package scene

import (
	"math"

	"orbit-renderer/internal/mathutil"
)

// Eye may never reach the center; Zoom clamps the distance here.
const minZoomDistance = 0.1

// Pitch stops just short of the poles so the fixed up vector never becomes
// parallel to the view direction.
const maxPitch = math.Pi/2 - 0.01

// Camera is an orbiting eye/center/up rig. Mutated only between frames by
// input handling; the view matrix is rebuilt from scratch every frame.
type Camera struct {
	Eye    mathutil.Vec3
	Center mathutil.Vec3
	Up     mathutil.Vec3
}

// NewCamera returns a camera with the given rig vectors.
func NewCamera(eye, center, up mathutil.Vec3) *Camera {
	return &Camera{Eye: eye, Center: center, Up: up}
}

// Orbit rotates the eye around the center by the given yaw/pitch deltas
// (radians), keeping the eye-center distance and the up vector fixed.
func (c *Camera) Orbit(deltaYaw, deltaPitch float64) {
	v := c.Eye.Sub(c.Center)
	radius := v.Len()
	if radius < 1e-12 {
		return
	}

	yaw := math.Atan2(v[0], v[2]) + deltaYaw
	pitch := math.Asin(v[1]/radius) + deltaPitch
	if pitch > maxPitch {
		pitch = maxPitch
	}
	if pitch < -maxPitch {
		pitch = -maxPitch
	}

	cosPitch := math.Cos(pitch)
	c.Eye = c.Center.Add(mathutil.Vec3{
		radius * cosPitch * math.Sin(yaw),
		radius * math.Sin(pitch),
		radius * cosPitch * math.Cos(yaw),
	})
}

// Zoom moves the eye along the eye→center axis. Positive delta moves in.
// The eye is clamped so it never crosses or reaches the center.
func (c *Camera) Zoom(delta float64) {
	dir := c.Center.Sub(c.Eye)
	dist := dir.Len()
	if dist < 1e-12 {
		return
	}
	newDist := dist - delta
	if newDist < minZoomDistance {
		newDist = minZoomDistance
	}
	c.Eye = c.Center.Sub(dir.Normalize().Scale(newDist))
}

// ViewMatrix builds the view matrix from the current rig state.
func (c *Camera) ViewMatrix() mathutil.Mat4 {
	return mathutil.LookAt(c.Eye, c.Center, c.Up)
}
