package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"orbit-renderer/internal/config"
	"orbit-renderer/internal/engine"
	"orbit-renderer/internal/mathutil"
	"orbit-renderer/internal/noise"
	"orbit-renderer/internal/raster"
	"orbit-renderer/internal/scene"
	"orbit-renderer/internal/snapshot"
)

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int    `json:"frame"`
	Path    string `json:"path"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	width := flag.Int("width", 0, "Frame width (default: 800)")
	height := flag.Int("height", 0, "Frame height (default: 600)")
	mesh := flag.String("mesh", "", "Wavefront OBJ mesh (default: generated sphere)")
	frames := flag.Int("frames", 0, "Number of frames to render (default: 120)")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	format := flag.String("format", "", "Output format: webp or tga (default: webp)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")

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
		Width:     *width,
		Height:    *height,
		Mesh:      *mesh,
		Frames:    *frames,
		OutputDir: *outputDir,
		Format:    *format,
		Workers:   *workers,
	})

	if cfg.Format != "webp" && cfg.Format != "tga" {
		fmt.Fprintf(os.Stderr, "Error: unsupported format %q (want webp or tga)\n", cfg.Format)
		os.Exit(1)
	}

	var vertices []raster.Vertex
	if cfg.Mesh == "" {
		vertices = scene.Sphere(1, 32, 16)
	} else {
		var err error
		vertices, err = scene.LoadOBJ(cfg.Mesh)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Orbit sequence renderer → %s\n", cfg.Format)
	fmt.Printf("Frames: %d, Size: %dx%d, Supersample: %dx, Workers: %d\n",
		cfg.Frames, cfg.Width, cfg.Height, cfg.Supersample, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	results := run(cfg, vertices)
	elapsed := time.Since(start)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	success, failed := 0, 0
	var errors []Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}
	fmt.Printf("Rendered: %d/%d\n", success, cfg.Frames)

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  frame %d: %s\n", e.Frame, e.Error)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := writeManifest(manifestPath, cfg, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// run renders all frames across a worker pool. Frames are independent: each
// worker owns its engine and framebuffer, only camera/mesh/noise are shared
// read-only.
func run(cfg config.Config, vertices []raster.Vertex) []Result {
	total := cfg.Frames
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	cam := scene.NewCamera(
		mathutil.Vec3{0, 3, 5},
		mathutil.Vec3{0, 0, 0},
		mathutil.Vec3{0, 1, 0},
	)
	field := noise.NewFractal(cfg.Seed, cfg.Octaves)
	params := engine.Params{
		Width:      cfg.Width * cfg.Supersample,
		Height:     cfg.Height * cfg.Supersample,
		FOV:        mathutil.Deg2Rad(cfg.FOVDegrees),
		Near:       cfg.Near,
		Far:        cfg.Far,
		Background: raster.FromHex(cfg.Background),
		Workers:    1, // parallelism is across frames here
	}

	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			eng := engine.New(params, cam, field, vertices, cfg.Instances)
			for idx := range frameChan {
				results[idx] = renderFrame(cfg, eng, idx)
				processed.Add(1)
			}
		}()
	}

	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func renderFrame(cfg config.Config, eng *engine.Engine, idx int) Result {
	eng.SetTime(uint32(idx))
	fb := eng.RenderFrame()

	img := snapshot.Image(fb)
	if cfg.Supersample > 1 {
		img = snapshot.Downsample(img, cfg.Width, cfg.Height)
	}

	path := filepath.Join(cfg.OutputDir, fmt.Sprintf("frame_%06d.%s", idx, cfg.Format))
	if err := snapshot.Write(path, img); err != nil {
		return Result{Frame: idx, Path: path, Error: err.Error()}
	}
	return Result{Frame: idx, Path: path, Success: true}
}

type manifest struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Format string   `json:"format"`
	Frames []Result `json:"frames"`
}

func writeManifest(path string, cfg config.Config, results []Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(manifest{
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: cfg.Format,
		Frames: results,
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
