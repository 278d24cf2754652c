// Package export writes synthesized textures and built slices to disk so they
// can be inspected or loaded by an external renderer.
package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/vasilopita/internal/logger"
	"github.com/Faultbox/vasilopita/internal/texture"
)

// Texture file names written by WriteBundle, keyed by role.
const (
	SurfaceHeightFile    = "surface_height.png"
	SurfaceColorFile     = "surface_color.png"
	SurfaceRoughnessFile = "surface_roughness.png"
	SurfaceNormalFile    = "surface_normal.png"
	SurfaceAOFile        = "surface_ao.png"
	FillingColorFile     = "filling_color.png"
	FillingBumpFile      = "filling_bump.png"
	TileColorFile        = "tile_color.png"
)

// ImageWriter saves images as PNG files into one output directory.
type ImageWriter struct {
	outputDir string
}

// NewImageWriter creates a writer rooted at outputDir. An empty outputDir
// writes into the working directory.
func NewImageWriter(outputDir string) *ImageWriter {
	return &ImageWriter{outputDir: outputDir}
}

// Path returns where name would be written.
func (w *ImageWriter) Path(name string) string {
	if w.outputDir == "" {
		return name
	}
	return filepath.Join(w.outputDir, name)
}

// WriteImage encodes img as PNG under name and returns the written path.
func (w *ImageWriter) WriteImage(name string, img image.Image) (string, error) {
	if w.outputDir != "" {
		if err := os.MkdirAll(w.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := w.Path(name)
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return "", fmt.Errorf("encoding PNG %s: %w", name, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", name, err)
	}
	return filename, nil
}

// WriteBundle writes every map in b and returns the written paths in a
// stable order. Nil parts of the bundle are skipped.
func (w *ImageWriter) WriteBundle(b *texture.Bundle) ([]string, error) {
	type entry struct {
		name string
		img  image.Image
	}
	var entries []entry
	if s := b.Surface; s != nil {
		entries = append(entries,
			entry{SurfaceHeightFile, s.Height},
			entry{SurfaceColorFile, s.Color},
			entry{SurfaceRoughnessFile, s.Roughness},
			entry{SurfaceNormalFile, s.Normal},
			entry{SurfaceAOFile, s.AmbientOcclusion},
		)
	}
	if f := b.Filling; f != nil {
		entries = append(entries,
			entry{FillingColorFile, f.Color},
			entry{FillingBumpFile, f.Bump},
		)
	}
	if t := b.Tile; t != nil {
		entries = append(entries, entry{TileColorFile, t.Color})
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		path, err := w.WriteImage(e.name, e.img)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	logger.Named("export").Debug("wrote texture bundle",
		zap.String("dir", w.outputDir),
		zap.Int("files", len(paths)),
	)
	return paths, nil
}
