package main

import (
	"errors"
	"flag"
	"log"
	"runtime"
	"time"

	"glplayground/internal/app"
	"glplayground/internal/config"
	"glplayground/internal/graphics"
	"glplayground/internal/input"
	"glplayground/internal/profiling"
	"glplayground/internal/render"
	"glplayground/internal/scene"
	"glplayground/internal/shadercache"
	"glplayground/internal/window"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "TOML file overriding the window settings")
	vertPath := flag.String("vert", "", "vertex shader file (default: built-in)")
	fragPath := flag.String("frag", "", "fragment shader file (default: built-in)")
	showFPS := flag.Bool("fps", false, "log frame rate and average frame time once per second")
	saveBinary := flag.String("save-binary", "", "write the linked program binary to this file")
	loadBinary := flag.String("load-binary", "", "load the program from a binary written by -save-binary")
	flag.Parse()

	lc := app.Start("triangle")

	settings, err := config.Load(*configPath, config.Default())
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
	info := graphics.QueryInfo()
	log.Printf("OpenGL %s (%s)", info.Version, info.Renderer)

	shader, err := loadShader(*vertPath, *fragPath, *loadBinary)
	if err != nil {
		lc.Fatal(err)
	}
	lc.Defer(shader.Delete)

	if *saveBinary != "" {
		if err := saveShader(shader, *saveBinary); err != nil {
			lc.Fatal(err)
		}
	}

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

	keys := input.NewManager()
	keys.Attach(win.Window)

	var cmd graphics.Commands
	fps := profiling.NewFPSCounter(time.Now(), time.Second)
	prof := profiling.NewFrame()
	limiter := profiling.NewLimiter(settings.FPSLimit)

	render.Run(lc.Context(), win, func() {
		if keys.JustPressed(input.ActionQuit) {
			win.SetShouldClose(true)
		}

		endFrame := prof.Track("frame")
		rc.Frame(cmd, win)
		endFrame()
		prof.EndFrame()

		keys.PostUpdate()
		limiter.Wait()
		if rate, ok := fps.Frame(time.Now()); ok {
			if *showFPS {
				log.Printf("FPS: %d (avg %s)", rate, prof.Average(1))
			}
			prof.Reset()
		}
	})

	if err := graphics.CheckError("triangle"); err != nil {
		log.Println(err)
	}
	lc.Exit()
}

func loadShader(vertPath, fragPath, binaryPath string) (*graphics.Shader, error) {
	if binaryPath != "" {
		format, data, err := shadercache.Load(binaryPath)
		if err != nil {
			return nil, err
		}
		log.Printf("loading %s, %d bytes, binary format = %d", binaryPath, len(data), format)
		return graphics.NewShaderFromBinary(format, data)
	}
	if vertPath == "" && fragPath == "" {
		return graphics.NewShaderFromSource(graphics.TriangleVertex, graphics.TriangleFragment)
	}
	if vertPath == "" || fragPath == "" {
		return nil, errors.New("-vert and -frag must be given together")
	}
	return graphics.NewShader(vertPath, fragPath)
}

func saveShader(s *graphics.Shader, path string) error {
	format, data, err := s.Binary()
	if err != nil {
		return err
	}
	if err := shadercache.Save(path, format, data); err != nil {
		return err
	}
	log.Printf("wrote %s, %d bytes, binary format = %d", path, len(data), format)
	return nil
}
