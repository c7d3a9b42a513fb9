package raster

import "orbit-renderer/internal/mathutil"

// Fixed directional light over the viewer's right shoulder, with a small
// ambient floor so the dark limb of a body never goes fully black.
var lightDir = mathutil.Vec3{0.4, 0.6, 0.8}.Normalize()

const ambient = 0.2

// shadeIntensity returns the lighting scalar for an interpolated normal,
// clamped to [0, 1].
func shadeIntensity(normal mathutil.Vec3) float64 {
	d := normal.Normalize().Dot(lightDir)
	if d < 0 {
		d = 0
	}
	v := ambient + (1-ambient)*d
	if v > 1 {
		v = 1
	}
	return v
}
