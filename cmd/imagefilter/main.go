package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"glplayground/internal/app"
	"glplayground/internal/config"
	"glplayground/internal/graphics"
	"glplayground/internal/imageio"
	"glplayground/internal/input"
	"glplayground/internal/render"
	"glplayground/internal/window"
)

func init() {
	runtime.LockOSThread()
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [-out file] [-filter box|none|cpu] image\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	out := flag.String("out", "", "write the filtered image here instead of opening a window")
	filter := flag.String("filter", "box", "box, none, or cpu (box filter without a GL context, needs -out)")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	lc := app.Start("imagefilter")

	img, err := imageio.Load(flag.Arg(0))
	if err != nil {
		lc.Fatal(err)
	}
	size := img.Rect.Size()

	if *filter == "cpu" {
		if *out == "" {
			lc.Fatal(errors.New("-filter cpu needs -out"))
		}
		if err := imageio.Save(*out, imageio.BoxBlur(img)); err != nil {
			lc.Fatal(err)
		}
		log.Printf("wrote %s (%dx%d)", *out, size.X, size.Y)
		lc.Exit()
		return
	}

	fragment, ok := fragments[*filter]
	if !ok {
		lc.Fatal(fmt.Errorf("unknown filter %q", *filter))
	}

	settings := config.Default()
	settings.Title = "imagefilter"
	settings.Width, settings.Height = size.X, size.Y
	settings.Hidden = *out != ""
	settings = settings.Clamp()

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

	shader, err := graphics.NewShaderFromSource(graphics.QuadVertex, fragment)
	if err != nil {
		lc.Fatal(err)
	}
	lc.Defer(shader.Delete)

	quad, err := graphics.NewQuad(shader)
	if err != nil {
		lc.Fatal(err)
	}
	lc.Defer(quad.Delete)

	tex := graphics.NewTexture(img)
	lc.Defer(tex.Delete)

	shader.Use()
	shader.SetInt("u_tex", 0)
	shader.SetVector2("u_textureSize", float32(size.X), float32(size.Y))

	var cmd graphics.Commands
	draw := func() {
		cc := settings.ClearColor
		cmd.ClearColor(cc[0], cc[1], cc[2], cc[3])
		cmd.Clear(render.ColorBufferBit)
		shader.Use()
		tex.Bind(0)
		quad.Draw()
	}

	if *out != "" {
		fb, err := graphics.NewFramebuffer(size.X, size.Y)
		if err != nil {
			lc.Fatal(err)
		}
		lc.Defer(fb.Delete)

		fb.Bind()
		draw()
		result := fb.Read()
		fb.Unbind()
		if err := graphics.CheckError("filter"); err != nil {
			lc.Fatal(err)
		}
		if err := imageio.Save(*out, result); err != nil {
			lc.Fatal(err)
		}
		log.Printf("wrote %s (%dx%d)", *out, size.X, size.Y)
		lc.Exit()
		return
	}

	keys := input.NewManager()
	keys.Attach(win.Window)

	render.Run(lc.Context(), win, func() {
		if keys.JustPressed(input.ActionQuit) {
			win.SetShouldClose(true)
		}
		w, h := win.GetFramebufferSize()
		graphics.Viewport(w, h)
		draw()
		win.SwapBuffers()
		keys.PostUpdate()
	})

	lc.Exit()
}

var fragments = map[string]string{
	"box":  graphics.BoxBlurFragment,
	"none": graphics.ImageFragment,
}
