package main

import (
	"flag"
	"log"
	"runtime"

	"glplayground/internal/app"
	"glplayground/internal/config"
	"glplayground/internal/graphics"
	"glplayground/internal/imageio"
	"glplayground/internal/render"
	"glplayground/internal/scene"
	"glplayground/internal/window"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	out := flag.String("out", "output.png", "output image; the extension picks png, bmp, tif or ppm")
	configPath := flag.String("config", "", "TOML file overriding the window settings")
	flag.Parse()

	lc := app.Start("capture")

	base := config.Default()
	base.Title = "capture"
	base.Hidden = true
	base.ClearColor = [4]float32{0.2, 0, 0, 0}
	settings, err := config.Load(*configPath, base)
	if err != nil {
		lc.Fatal(err)
	}

	if err := window.Init(); err != nil {
		lc.Fatal(err)
	}
	lc.Defer(window.Terminate)

	win, err := window.New(settings)
	if err != nil {
		lc.Fatal(err)
	}
	if err := graphics.Init(); err != nil {
		lc.Fatal(err)
	}

	shader, err := graphics.NewShaderFromSource(graphics.TriangleVertex, graphics.CaptureFragment)
	if err != nil {
		lc.Fatal(err)
	}
	lc.Defer(shader.Delete)

	vp, err := shader.AttribLocation(graphics.TrianglePositionAttrib)
	if err != nil {
		lc.Fatal(err)
	}
	mesh := scene.Triangle()
	buf, err := graphics.NewVertexBuffer(mesh, graphics.VertexAttrib{Location: vp, Size: int32(mesh.Components)})
	if err != nil {
		lc.Fatal(err)
	}
	lc.Defer(buf.Delete)

	rc, err := render.NewContext(shader.ID, buf.VAO, buf.Count, settings.ClearColor)
	if err != nil {
		lc.Fatal(err)
	}

	// Hidden windows still own a back buffer; read it before any swap
	rc.Render(graphics.Commands{})
	w, h := win.GetFramebufferSize()
	img := graphics.ReadImage(0, 0, w, h)
	if err := graphics.CheckError("capture"); err != nil {
		lc.Fatal(err)
	}

	if err := imageio.Save(*out, img); err != nil {
		lc.Fatal(err)
	}
	log.Printf("wrote %s (%dx%d)", *out, w, h)
	lc.Exit()
}
