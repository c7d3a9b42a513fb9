package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"orbit-renderer/internal/config"
	"orbit-renderer/internal/engine"
	"orbit-renderer/internal/mathutil"
	"orbit-renderer/internal/noise"
	"orbit-renderer/internal/raster"
	"orbit-renderer/internal/scene"
	"orbit-renderer/internal/viewer"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	width := flag.Int("width", 0, "Window width (default: 800)")
	height := flag.Int("height", 0, "Window height (default: 600)")
	mesh := flag.String("mesh", "", "Wavefront OBJ mesh (default: generated sphere)")
	workers := flag.Int("workers", 0, "Rasterizer worker goroutines (default: NumCPU)")
	snapshotDir := flag.String("snapshots", "snapshots", "Directory for P-key snapshots")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		Width:   *width,
		Height:  *height,
		Mesh:    *mesh,
		Workers: *workers,
	})

	vertices, err := loadMesh(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
		os.Exit(1)
	}

	cam := scene.NewCamera(
		mathutil.Vec3{0, 3, 5},
		mathutil.Vec3{0, 0, 0},
		mathutil.Vec3{0, 1, 0},
	)

	eng := engine.New(engine.Params{
		Width:      cfg.Width,
		Height:     cfg.Height,
		FOV:        mathutil.Deg2Rad(cfg.FOVDegrees),
		Near:       cfg.Near,
		Far:        cfg.Far,
		Background: raster.FromHex(cfg.Background),
		Workers:    cfg.Workers,
	}, cam, noise.NewFractal(cfg.Seed, cfg.Octaves), vertices, cfg.Instances)

	fmt.Printf("Bodies: %d, Mesh: %d triangles, Workers: %d\n",
		len(cfg.Instances), len(vertices)/3, cfg.Workers)

	ebiten.SetWindowTitle("orbit-renderer")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(viewer.New(eng, *snapshotDir)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadMesh(cfg config.Config) ([]raster.Vertex, error) {
	if cfg.Mesh == "" {
		return scene.Sphere(1, 32, 16), nil
	}
	return scene.LoadOBJ(cfg.Mesh)
}
