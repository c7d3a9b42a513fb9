package mathutil

import "math"

// ModelMatrix builds translation · scale · rotation for one scene instance.
// Rotation is Euler XYZ in radians, applied as Rz·Ry·Rx.
func ModelMatrix(translation Vec3, scale float64, rotation Vec3) Mat4 {
	rot := Mat3Mul(Mat3Mul(RotZ(rotation[2]), RotY(rotation[1])), RotX(rotation[0]))
	linear := Mat3Mul(Mat3Diag(scale, scale, scale), rot)
	return FromMat3Translation(linear, translation)
}

// LookAt builds a right-handed view matrix from eye/center/up.
func LookAt(eye, center, up Vec3) Mat4 {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)
	return Mat4{
		s[0], s[1], s[2], -s.Dot(eye),
		u[0], u[1], u[2], -u.Dot(eye),
		-f[0], -f[1], -f[2], f.Dot(eye),
		0, 0, 0, 1,
	}
}

// Perspective builds a right-handed perspective projection mapping the view
// frustum to NDC with z in [-1, 1]. fovY is in radians.
func Perspective(fovY, aspect, near, far float64) Mat4 {
	f := 1.0 / math.Tan(fovY/2)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) / (near - far), 2 * far * near / (near - far),
		0, 0, -1, 0,
	}
}

// Viewport maps NDC to pixel coordinates of a w×h target. The Y axis is
// flipped so +Y in NDC is up on screen; Z passes through for depth testing.
func Viewport(w, h float64) Mat4 {
	return Mat4{
		w / 2, 0, 0, w / 2,
		0, -h / 2, 0, h / 2,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}
