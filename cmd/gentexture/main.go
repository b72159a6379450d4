package main

import (
	"flag"
	"log"
	"runtime"

	"glplayground/internal/app"
	"glplayground/internal/compute"
	"glplayground/internal/config"
	"glplayground/internal/graphics"
	"glplayground/internal/input"
	"glplayground/internal/kernel"
	"glplayground/internal/render"
	"glplayground/internal/window"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	frames := flag.Int("frames", kernel.TextureFrames, "frames to render before exiting, 0 runs until closed")
	flag.Parse()

	lc := app.Start("gentexture")

	settings := config.Headless("compute texture")
	settings.Hidden = false
	settings.Width, settings.Height = 800, 600

	if err := window.Init(); err != nil {
		lc.Fatal(err)
	}
	lc.Defer(window.Terminate)

	win, err := window.New(settings)
	if err != nil {
		lc.Fatal(err)
	}
	// Compute and image calls come from 4.3, the quad from 4.1
	if err := compute.Init(); err != nil {
		lc.Fatal(err)
	}
	if err := graphics.Init(); err != nil {
		lc.Fatal(err)
	}

	tex := compute.NewImageTexture(kernel.TextureSize, kernel.TextureSize, kernel.TextureImageUnit)
	lc.Defer(tex.Delete)

	gen, err := compute.NewProgram(kernel.TextureSource)
	if err != nil {
		lc.Fatal(err)
	}
	lc.Defer(gen.Delete)

	shader, err := graphics.NewShaderFromSource(graphics.QuadVertex, graphics.ImageFragment)
	if err != nil {
		lc.Fatal(err)
	}
	lc.Defer(shader.Delete)

	quad, err := graphics.NewQuad(shader)
	if err != nil {
		lc.Fatal(err)
	}
	lc.Defer(quad.Delete)

	shader.Use()
	shader.SetInt("u_tex", 0)

	keys := input.NewManager()
	keys.Attach(win.Window)

	groups := kernel.WorkGroups(kernel.TextureSize, kernel.TextureLocalSize)
	log.Printf("%dx%d texture, %dx%d work groups", kernel.TextureSize, kernel.TextureSize, groups, groups)

	var cmd graphics.Commands
	var runErr error
	frame := 0
	render.Run(lc.Context(), win, func() {
		if keys.JustPressed(input.ActionQuit) {
			win.SetShouldClose(true)
		}

		gen.SetFloat(kernel.TextureRoll, kernel.Roll(frame))
		if err := gen.Dispatch(groups, groups, 1); err != nil {
			runErr = err
			win.SetShouldClose(true)
			return
		}

		w, h := win.GetFramebufferSize()
		graphics.Viewport(w, h)
		cmd.Clear(render.ColorBufferBit)
		shader.Use()
		tex.Bind(0)
		quad.Draw()
		if err := graphics.CheckError("draw screen"); err != nil {
			runErr = err
			win.SetShouldClose(true)
			return
		}
		win.SwapBuffers()
		keys.PostUpdate()

		frame++
		if *frames > 0 && frame >= *frames {
			win.SetShouldClose(true)
		}
	})

	if runErr != nil {
		lc.Fatal(runErr)
	}
	log.Printf("rendered %d frames", frame)
	lc.Exit()
}
