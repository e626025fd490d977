package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"softrender/internal/batch"
	"softrender/internal/config"
	"softrender/internal/mesh"
	"softrender/internal/pipeline"
	"softrender/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	model := flag.String("model", "", "Path to OBJ model (default: built-in cube)")
	tex := flag.String("texture", "", "Path to texture image (PNG/JPEG/TGA/BMP)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	size := flag.Int("size", 0, "Output image size in pixels (default: 512)")
	supersample := flag.Int("supersample", 0, "Supersampling factor (default: 2)")
	frames := flag.Int("frames", 0, "Number of turntable frames (default: 12)")
	format := flag.String("format", "", "Output format: webp or png (default: webp)")
	mode := flag.String("mode", "", "Render mode: wireframe, vertex, filled, filled-wire, textured, textured-wire")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Model:       *model,
		Texture:     *tex,
		OutputDir:   *outputDir,
		Size:        *size,
		Supersample: *supersample,
		Frames:      *frames,
		Format:      *format,
		Mode:        *mode,
		Workers:     *workers,
	})

	renderMode, ok := pipeline.ParseMode(cfg.Mode)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown render mode %q\n", cfg.Mode)
		os.Exit(1)
	}

	background, err := cfg.BackgroundColor()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	// Load model
	var m *mesh.Mesh
	modelName := cfg.ModelPath
	if cfg.ModelPath != "" {
		m, err = mesh.LoadOBJ(cfg.ModelPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading model: %v\n", err)
			os.Exit(1)
		}
	} else {
		m = mesh.NewCube()
		modelName = "cube"
	}

	fmt.Printf("Software Scanline Renderer\n")
	fmt.Printf("Model: %s (%d vertices, %d faces)\n", modelName, len(m.Vertices), len(m.Faces))
	fmt.Printf("Frames: %d, Size: %d, Mode: %s, Workers: %d\n", cfg.Frames, cfg.RenderSize, cfg.Mode, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	batchCfg := batch.Config{
		Mesh:        m,
		TexturePath: cfg.TexturePath,
		TexResolver: texture.NewCache(),
		OutputDir:   cfg.OutputDir,
		RenderSize:  cfg.RenderSize,
		Supersample: cfg.Supersample,
		Frames:      cfg.Frames,
		Format:      cfg.Format,
		Mode:        renderMode,
		Background:  background,
		Workers:     cfg.Workers,
	}

	results := batch.Run(batchCfg)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(results))

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
	if err := batch.WriteManifest(manifestPath, modelName, batchCfg, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
