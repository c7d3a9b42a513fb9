package raster

import (
	"orbit-renderer/internal/mathutil"
	"orbit-renderer/internal/noise"
)

// Vertex carries one mesh vertex through the pipeline. The object-space
// fields are set by the mesh provider and never mutated; the vertex stage
// returns a copy with the Transformed fields populated.
type Vertex struct {
	Position  mathutil.Vec3
	Normal    mathutil.Vec3
	TexCoords mathutil.Vec2
	Color     Color

	// TransformedPosition is in screen space (pixels, z in NDC depth range).
	TransformedPosition mathutil.Vec3
	// TransformedNormal is oriented in world space.
	TransformedNormal mathutil.Vec3
}

// Fragment is one candidate pixel produced by the rasterizer. Fragments are
// consumed once by a material shader and discarded.
type Fragment struct {
	X, Y int
	// Depth is the interpolated NDC depth used for the z-test.
	Depth float64
	// VertexPosition is the barycentric interpolation of the triangle's
	// object-space positions; shaders sample noise at this coordinate.
	VertexPosition mathutil.Vec3
	Normal         mathutil.Vec3
	// Intensity is the directional lighting factor in [0, 1].
	Intensity float64
}

// Uniforms bundles everything one draw call reads. The orchestrator builds a
// fresh value per instance per frame; it is read-only for the duration of
// the call, which keeps the row-parallel rasterizer safe.
type Uniforms struct {
	Model      mathutil.Mat4
	View       mathutil.Mat4
	Projection mathutil.Mat4
	Viewport   mathutil.Mat4
	Time       uint32
	Noise      *noise.Field
}
