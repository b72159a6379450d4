package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const (
	minDimension = 1
	maxDimension = 8192

	// Nonzero frame caps are kept in this range
	minFPSCap = 30
	maxFPSCap = 240
)

// Settings holds window and render configuration
type Settings struct {
	Width      int
	Height     int
	Title      string
	VSync      bool
	Resizable  bool
	Hidden     bool
	ClearColor [4]float32
	// FPSLimit caps the frame rate; 0 is unlimited
	FPSLimit int

	// Requested context version
	GLMajor int
	GLMinor int
	// Compat requests a compatibility profile instead of core
	Compat bool
}

// fileSettings mirrors Settings for decoding; nil fields keep the base value
type fileSettings struct {
	Width      *int      `toml:"width"`
	Height     *int      `toml:"height"`
	Title      *string   `toml:"title"`
	VSync      *bool     `toml:"vsync"`
	Resizable  *bool     `toml:"resizable"`
	Hidden     *bool     `toml:"hidden"`
	ClearColor []float32 `toml:"clear_color"`
	FPSLimit   *int      `toml:"fps_limit"`
	GLMajor    *int      `toml:"gl_major"`
	GLMinor    *int      `toml:"gl_minor"`
}

// Default returns the settings used by the shader pipeline demo
func Default() Settings {
	return Settings{
		Width:      500,
		Height:     500,
		Title:      "Triangle",
		ClearColor: [4]float32{0, 0, 0, 1},
		GLMajor:    4,
		GLMinor:    1,
	}
}

// Immediate returns the settings used by the immediate-mode demo
func Immediate() Settings {
	s := Default()
	s.Title = "single triangle"
	s.GLMajor = 2
	s.GLMinor = 1
	s.Compat = true
	return s
}

// Headless returns a hidden GL 4.3 core context for compute and probe programs
func Headless(title string) Settings {
	s := Default()
	s.Title = title
	s.Width, s.Height = 64, 64
	s.Hidden = true
	s.GLMajor = 4
	s.GLMinor = 3
	return s
}

// Load overlays the TOML file at path onto base. An empty path returns base unchanged.
func Load(path string, base Settings) (Settings, error) {
	if path == "" {
		return base.Clamp(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("could not read config file: %w", err)
	}
	return Parse(data, base)
}

// Parse overlays TOML data onto base
func Parse(data []byte, base Settings) (Settings, error) {
	var fs fileSettings
	if err := toml.Unmarshal(data, &fs); err != nil {
		return base, fmt.Errorf("could not parse config: %w", err)
	}

	s := base
	if fs.Width != nil {
		s.Width = *fs.Width
	}
	if fs.Height != nil {
		s.Height = *fs.Height
	}
	if fs.Title != nil {
		s.Title = *fs.Title
	}
	if fs.VSync != nil {
		s.VSync = *fs.VSync
	}
	if fs.Resizable != nil {
		s.Resizable = *fs.Resizable
	}
	if fs.Hidden != nil {
		s.Hidden = *fs.Hidden
	}
	if fs.ClearColor != nil {
		if len(fs.ClearColor) != 4 {
			return base, fmt.Errorf("clear_color needs 4 components, got %d", len(fs.ClearColor))
		}
		copy(s.ClearColor[:], fs.ClearColor)
	}
	if fs.FPSLimit != nil {
		s.FPSLimit = *fs.FPSLimit
	}
	if fs.GLMajor != nil {
		s.GLMajor = *fs.GLMajor
	}
	if fs.GLMinor != nil {
		s.GLMinor = *fs.GLMinor
	}
	return s.Clamp(), nil
}

// Clamp returns a copy with dimensions limited to a sane range.
// A zero dimension falls back to the default.
func (s Settings) Clamp() Settings {
	d := Default()
	s.Width = clampDimension(s.Width, d.Width)
	s.Height = clampDimension(s.Height, d.Height)
	if s.Title == "" {
		s.Title = d.Title
	}
	s.FPSLimit = clampFPS(s.FPSLimit)
	return s
}

func clampDimension(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	if v < minDimension {
		return minDimension
	}
	if v > maxDimension {
		return maxDimension
	}
	return v
}

func clampFPS(v int) int {
	switch {
	case v <= 0:
		return 0
	case v < minFPSCap:
		return minFPSCap
	case v > maxFPSCap:
		return maxFPSCap
	}
	return v
}
