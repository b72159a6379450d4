// Package window creates GLFW windows and GL contexts from config settings.
package window

import (
	"fmt"

	"glplayground/internal/config"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window wraps a GLFW window so it satisfies render.Window
type Window struct {
	*glfw.Window
}

// PollEvents processes pending window events
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Init initializes GLFW. Pair with Terminate.
func Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw.Init failed: %w", err)
	}
	return nil
}

// Terminate releases every window and GLFW itself
func Terminate() {
	glfw.Terminate()
}

// New creates a window with a current GL context per s
func New(s config.Settings) (*Window, error) {
	glfw.DefaultWindowHints()
	applyHints(s)

	win, err := glfw.CreateWindow(s.Width, s.Height, s.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}
	win.MakeContextCurrent()

	if s.VSync {
		glfw.SwapInterval(1)
	} else {
		// Disable VSync for max raw framerate
		glfw.SwapInterval(0)
	}

	return &Window{Window: win}, nil
}

func applyHints(s config.Settings) {
	glfw.WindowHint(glfw.ContextVersionMajor, s.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, s.GLMinor)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolHint(s.Resizable))
	glfw.WindowHint(glfw.Visible, boolHint(!s.Hidden))

	// Profiles only exist from 3.2 on
	if s.GLMajor > 3 || (s.GLMajor == 3 && s.GLMinor >= 2) {
		if s.Compat {
			glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCompatProfile)
		} else {
			glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
			glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
		}
	}
}

func boolHint(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}
