package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"glplayground/internal/app"
	"glplayground/internal/config"
	"glplayground/internal/graphics/legacy"
	"glplayground/internal/imageio"
	"glplayground/internal/input"
	"glplayground/internal/render"
	"glplayground/internal/scene"
	"glplayground/internal/window"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Degrees per second
const spinSpeed = 45

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "TOML file overriding the window settings")
	spin := flag.Bool("spin", false, "rotate the triangle; click to save tmpN.ppm")
	flag.Parse()

	lc := app.Start("immediate")

	settings, err := config.Load(*configPath, config.Immediate())
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
	if err := legacy.Init(); err != nil {
		lc.Fatal(err)
	}
	log.Printf("OpenGL %s", legacy.Version())

	s := &render.ImmediateScene{
		Vertices:    scene.ScreenTriangle(),
		ClearColor:  settings.ClearColor,
		ScreenSpace: true,
	}
	if *spin {
		s.Vertices = scene.SpinTriangle()
		s.ScreenSpace = false
		s.Spin = scene.NewSpin(spinSpeed)
	}

	var cmd legacy.Commands
	width, height := win.GetFramebufferSize()
	s.Reshape(cmd, width, height)
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		width, height = w, h
		s.Reshape(cmd, w, h)
	})

	keys := input.NewManager()
	keys.Attach(win.Window)

	shots := 0
	last := time.Now()
	render.Run(lc.Context(), win, func() {
		if keys.JustPressed(input.ActionQuit) {
			win.SetShouldClose(true)
		}

		now := time.Now()
		if s.Spin != nil {
			s.Spin.Advance(now.Sub(last).Seconds())
		}
		last = now

		s.Frame(cmd)

		if s.Spin != nil && keys.JustPressed(input.ActionScreenshot) {
			name := fmt.Sprintf("tmp%d.ppm", shots)
			if err := screenshot(name, width, height); err != nil {
				log.Println(err)
			} else {
				log.Printf("saved %s", name)
				shots++
			}
		}

		win.SwapBuffers()
		keys.PostUpdate()
	})

	lc.Exit()
}

func screenshot(name string, width, height int) error {
	img := legacy.ReadBack(width, height)
	imageio.FlipVertical(img)
	return imageio.Save(name, img)
}
