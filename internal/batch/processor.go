// Package batch renders turntable frame sequences with a worker pool. Each
// frame owns a private frame buffer, so triangles within a frame are always
// rasterized sequentially; parallelism is only across frames.
package batch

import (
	"encoding/json"
	"fmt"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"softrender/internal/mesh"
	"softrender/internal/pipeline"
	"softrender/internal/postprocess"
	"softrender/internal/raster"
	"softrender/internal/texture"

	"github.com/HugoSmits86/nativewebp"
)

// Config holds all shared resources for a batch run.
type Config struct {
	Mesh        *mesh.Mesh // read-only during the run
	TexturePath string
	TexResolver texture.Resolver
	OutputDir   string
	RenderSize  int
	Supersample int
	Frames      int
	Format      string // "webp" or "png"
	Mode        pipeline.Mode
	Background  uint32
	Workers     int
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int    `json:"frame"`
	Path    string `json:"path"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Run renders all frames using a worker pool and returns one result per
// frame.
func Run(cfg Config) []Result {
	total := cfg.Frames
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Fit the mesh once; every frame reuses the same camera distance.
	opts := pipeline.DefaultOptions()
	opts.Mode = cfg.Mode
	scale := math.Max(cfg.Mesh.Scale[0], math.Max(cfg.Mesh.Scale[1], cfg.Mesh.Scale[2]))
	dist := pipeline.FitDistance(cfg.Mesh.Radius()*scale, opts.FOV)

	// Progress reporter
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

	// Worker pool
	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = renderFrame(cfg, opts, dist, idx)
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

func renderFrame(cfg Config, opts pipeline.Options, dist float64, frame int) Result {
	// Private copy: the turntable mutates rotation and translation, the
	// vertex and face slices stay shared read-only.
	m := *cfg.Mesh
	m.Rotation[1] += 2 * math.Pi * float64(frame) / float64(cfg.Frames)
	m.Translation[2] += dist

	var tex *texture.Texture
	if cfg.TexResolver != nil {
		tex = cfg.TexResolver.Resolve(cfg.TexturePath)
	}

	renderSize := cfg.RenderSize * cfg.Supersample
	fb := raster.NewFrameBuffer(renderSize, renderSize)
	fb.Clear(cfg.Background)

	pipeline.RenderMesh(fb, &m, tex, pipeline.DefaultCamera(), opts)

	img := fb.ToNRGBA()
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.RenderSize, cfg.RenderSize)
	}

	ext := cfg.Format
	outPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("frame_%03d.%s", frame, ext))
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return Result{Frame: frame, Path: outPath, Error: err.Error()}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return Result{Frame: frame, Path: outPath, Error: err.Error()}
	}
	defer f.Close()

	switch cfg.Format {
	case "png":
		err = png.Encode(f, img)
	default:
		err = nativewebp.Encode(f, img, nil)
	}
	if err != nil {
		return Result{Frame: frame, Path: outPath, Error: fmt.Sprintf("encode: %v", err)}
	}

	return Result{Frame: frame, Path: outPath, Success: true}
}

// Manifest describes one finished batch run.
type Manifest struct {
	Model      string   `json:"model"`
	RenderSize int      `json:"render_size"`
	Format     string   `json:"format"`
	Frames     []Result `json:"frames"`
}

// WriteManifest writes a JSON manifest next to the rendered frames.
func WriteManifest(path, model string, cfg Config, results []Result) error {
	m := Manifest{
		Model:      model,
		RenderSize: cfg.RenderSize,
		Format:     cfg.Format,
		Frames:     results,
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("batch: manifest: %w", err)
	}
	return nil
}
