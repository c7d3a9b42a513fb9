// Package snapshot exports rendered frames to image files.
package snapshot

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"

	"orbit-renderer/internal/raster"
)

// Image wraps a framebuffer's pixels into an opaque RGBA image.
func Image(fb *raster.FrameBuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
	fb.RGBA(img.Pix[:0])
	return img
}

// Downsample scales an image down to target dimensions with CatmullRom
// filtering. Frames rendered at a supersample factor pass through here.
// Pixels are opaque, so no premultiplication round-trip is needed.
func Downsample(img *image.RGBA, targetW, targetH int) *image.RGBA {
	b := img.Bounds()
	if b.Dx() <= targetW && b.Dy() <= targetH {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Write encodes img to path. The format is chosen by extension: .webp or
// .tga. Parent directories are created as needed.
func Write(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("snapshot: mkdir for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: create %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".webp":
		if err := nativewebp.Encode(f, img, nil); err != nil {
			return fmt.Errorf("snapshot: webp encode %s: %w", path, err)
		}
	case ".tga":
		if err := tga.Encode(f, img); err != nil {
			return fmt.Errorf("snapshot: tga encode %s: %w", path, err)
		}
	default:
		return fmt.Errorf("snapshot: unknown extension: %s", path)
	}
	return nil
}
