package raster

import "orbit-renderer/internal/mathutil"

// Homogeneous w below this magnitude means the point sits on the camera
// plane; the divide is undefined and the vertex is dropped.
const minW = 1e-8

// ShadeVertex transforms one vertex from object space to screen space.
// The object-space fields pass through unchanged; TransformedPosition and
// TransformedNormal are populated on the returned copy. ok is false for a
// degenerate homogeneous w, in which case the triangle using this vertex
// must be skipped rather than drawn.
func ShadeVertex(v Vertex, u *Uniforms) (Vertex, bool) {
	pos := mathutil.Vec4FromPoint(v.Position)
	clip := u.Projection.MulVec4(u.View.MulVec4(u.Model.MulVec4(pos)))

	w := clip[3]
	if w < minW && w > -minW {
		return v, false
	}
	ndc := mathutil.Vec4{clip[0] / w, clip[1] / w, clip[2] / w, 1}
	screen := u.Viewport.MulVec4(ndc)

	// Inverse-transpose keeps normals correct under non-uniform scale.
	// Mat3.Inverse returns identity for a singular matrix, which doubles as
	// the documented fallback.
	normalMat := u.Model.Mat3Part().Transpose().Inverse()

	out := v
	out.TransformedPosition = screen.XYZ()
	out.TransformedNormal = normalMat.MulVec3(v.Normal)
	return out, true
}
