// Package engine is the per-frame driver: it rebuilds matrices and uniforms
// for every scene instance and pushes them through the raster pipeline.
package engine

import (
	"orbit-renderer/internal/material"
	"orbit-renderer/internal/mathutil"
	"orbit-renderer/internal/noise"
	"orbit-renderer/internal/raster"
	"orbit-renderer/internal/scene"
)

// Params fixes the target and projection for an engine's lifetime.
type Params struct {
	Width, Height int
	// FOV is the vertical field of view in radians.
	FOV        float64
	Near, Far  float64
	Background raster.Color
	Workers    int
}

// Engine renders one scene into one framebuffer, single-threaded and
// frame-stepped: RenderFrame completes all work before returning. Sequence
// rendering uses one Engine per worker.
type Engine struct {
	Camera *scene.Camera

	fb       *raster.FrameBuffer
	renderer *raster.Renderer

	projection mathutil.Mat4
	viewport   mathutil.Mat4

	field     *noise.Field
	mesh      []raster.Vertex
	instances []scene.Instance

	time uint32
}

// New builds an engine. The mesh is read-only and may be shared between
// engines; the noise field is immutable and shared the same way.
func New(p Params, cam *scene.Camera, field *noise.Field, mesh []raster.Vertex, instances []scene.Instance) *Engine {
	fb := raster.NewFrameBuffer(p.Width, p.Height)
	fb.SetBackground(p.Background)
	fb.Clear()

	aspect := float64(p.Width) / float64(p.Height)
	return &Engine{
		Camera:     cam,
		fb:         fb,
		renderer:   raster.NewRenderer(p.Workers),
		projection: mathutil.Perspective(p.FOV, aspect, p.Near, p.Far),
		viewport:   mathutil.Viewport(float64(p.Width), float64(p.Height)),
		field:      field,
		mesh:       mesh,
		instances:  instances,
	}
}

// Advance steps the animation clock by one frame.
func (e *Engine) Advance() { e.time++ }

// SetTime jumps the animation clock, for headless sequence rendering.
func (e *Engine) SetTime(t uint32) { e.time = t }

func (e *Engine) Time() uint32 { return e.time }

// Framebuffer exposes the render target for display sinks and export.
func (e *Engine) Framebuffer() *raster.FrameBuffer { return e.fb }

// RenderFrame clears the target and draws every instance at the current
// animation time. Matrices and uniforms are rebuilt from scratch each frame.
func (e *Engine) RenderFrame() *raster.FrameBuffer {
	e.fb.Clear()
	view := e.Camera.ViewMatrix()

	for _, inst := range e.instances {
		model := mathutil.ModelMatrix(inst.OrbitPosition(e.time), inst.Scale, mathutil.Vec3{})

		u := raster.Uniforms{
			Model:      model,
			View:       view,
			Projection: e.projection,
			Viewport:   e.viewport,
			Time:       e.time,
			Noise:      e.field,
		}
		e.renderer.Draw(e.fb, &u, e.mesh, material.ByIndex(inst.Material))
	}
	return e.fb
}
