// Interactive viewer: renders the model with the software rasterizer every
// frame and presents the frame buffer in a desktop window.
//
// Keys: 1 wireframe+vertices, 2 wireframe, 3 filled, 4 filled+wire,
// 5 textured, 6 textured+wire, C toggles backface culling, Space pauses.
package main

import (
	"flag"
	"fmt"
	"os"

	"softrender/internal/mesh"
	"softrender/internal/pipeline"
	"softrender/internal/raster"
	"softrender/internal/texture"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func main() {
	model := flag.String("model", "", "Path to OBJ model (default: built-in cube)")
	texPath := flag.String("texture", "", "Path to texture image (PNG/JPEG/TGA/BMP)")
	size := flag.Int("size", 640, "Window size in pixels")
	flag.Parse()

	var m *mesh.Mesh
	var err error
	if *model != "" {
		m, err = mesh.LoadOBJ(*model)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading model: %v\n", err)
			os.Exit(1)
		}
	} else {
		m = mesh.NewCube()
	}

	var tex *texture.Texture
	if *texPath != "" {
		tex, err = texture.Load(*texPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading texture: %v\n", err)
			os.Exit(1)
		}
	}

	opts := pipeline.DefaultOptions()
	if tex == nil {
		opts.Mode = pipeline.ModeFilled
	}

	m.Translation[2] = pipeline.FitDistance(m.Radius(), opts.FOV)

	g := &game{
		mesh: m,
		tex:  tex,
		fb:   raster.NewFrameBuffer(*size, *size),
		cam:  pipeline.DefaultCamera(),
		opts: opts,
	}

	ebiten.SetWindowTitle("softrender")
	ebiten.SetWindowSize(*size, *size)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type game struct {
	mesh *mesh.Mesh
	tex  *texture.Texture
	fb   *raster.FrameBuffer
	cam  pipeline.Camera
	opts pipeline.Options

	fbImg   *ebiten.Image
	scratch []byte
	paused  bool
}

func (g *game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		g.opts.Mode = pipeline.ModeWireframeVertex
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		g.opts.Mode = pipeline.ModeWireframe
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		g.opts.Mode = pipeline.ModeFilled
	case inpututil.IsKeyJustPressed(ebiten.Key4):
		g.opts.Mode = pipeline.ModeFilledWire
	case inpututil.IsKeyJustPressed(ebiten.Key5):
		g.opts.Mode = pipeline.ModeTextured
	case inpututil.IsKeyJustPressed(ebiten.Key6):
		g.opts.Mode = pipeline.ModeTexturedWire
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.opts.BackfaceCulling = !g.opts.BackfaceCulling
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.paused = !g.paused
	}

	if !g.paused {
		g.mesh.Rotation[0] += 0.005
		g.mesh.Rotation[1] += 0.01
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	fb := g.fb
	fb.Clear(0xFF000000)
	fb.ClearDepth()
	fb.DrawGrid(20, 0xFF333333)

	pipeline.RenderMesh(fb, g.mesh, g.tex, g.cam, g.opts)

	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(fb.Width, fb.Height)
		g.scratch = make([]byte, len(fb.Pix)*4)
	}

	// Unpack AARRGGBB into RGBA bytes. The render is opaque, so the
	// premultiplied form ebiten expects is the same.
	for i, c := range fb.Pix {
		j := i * 4
		g.scratch[j] = uint8(c >> 16)
		g.scratch[j+1] = uint8(c >> 8)
		g.scratch[j+2] = uint8(c)
		g.scratch[j+3] = uint8(c >> 24)
	}

	g.fbImg.WritePixels(g.scratch)
	screen.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.Width, g.fb.Height
}
