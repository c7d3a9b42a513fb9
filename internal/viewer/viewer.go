// Package viewer runs the interactive window: it polls input, steps the
// engine once per tick and blits the software framebuffer to the screen.
package viewer

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"orbit-renderer/internal/engine"
	"orbit-renderer/internal/snapshot"
)

// Per-tick camera increments.
const (
	orbitStep = math.Pi / 50
	zoomStep  = 0.1
)

// Game adapts the engine to ebiten's Update/Draw/Layout loop.
type Game struct {
	eng         *engine.Engine
	fbImg       *ebiten.Image
	scratch     []byte
	snapshotDir string
}

// New wraps an engine for display. Snapshots land in snapshotDir.
func New(eng *engine.Engine, snapshotDir string) *Game {
	return &Game{eng: eng, snapshotDir: snapshotDir}
}

// Update polls input, mutates the camera, then renders the next frame.
// Camera mutation happens strictly before matrix construction for the frame.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	cam := g.eng.Camera
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		cam.Orbit(orbitStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		cam.Orbit(-orbitStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		cam.Orbit(0, -orbitStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		cam.Orbit(0, orbitStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		cam.Zoom(zoomStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		cam.Zoom(-zoomStep)
	}

	g.eng.Advance()
	g.eng.RenderFrame()

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		path := filepath.Join(g.snapshotDir, fmt.Sprintf("snapshot_%06d.webp", g.eng.Time()))
		if err := snapshot.Write(path, snapshot.Image(g.eng.Framebuffer())); err != nil {
			return err
		}
		fmt.Printf("Snapshot: %s\n", path)
	}
	return nil
}

// Draw blits the framebuffer into the window.
func (g *Game) Draw(screen *ebiten.Image) {
	fb := g.eng.Framebuffer()
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(fb.Width(), fb.Height())
	}
	g.scratch = fb.RGBA(g.scratch)
	g.fbImg.WritePixels(g.scratch)
	screen.DrawImage(g.fbImg, nil)
}

// Layout fixes the logical screen to the framebuffer size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	fb := g.eng.Framebuffer()
	return fb.Width(), fb.Height()
}
