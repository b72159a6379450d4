package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, 500, s.Width)
	assert.Equal(t, 500, s.Height)
	assert.Equal(t, [4]float32{0, 0, 0, 1}, s.ClearColor)
	assert.Equal(t, 4, s.GLMajor)
	assert.Equal(t, 1, s.GLMinor)
	assert.False(t, s.Compat)

	im := Immediate()
	assert.Equal(t, "single triangle", im.Title)
	assert.True(t, im.Compat)
	assert.Equal(t, 2, im.GLMajor)

	h := Headless("compute")
	assert.True(t, h.Hidden)
	assert.False(t, h.Compat)
	assert.Equal(t, [2]int{4, 3}, [2]int{h.GLMajor, h.GLMinor})
	assert.Equal(t, h, h.Clamp())
}

func TestParseOverlay(t *testing.T) {
	data := []byte(`
width = 640
title = "overlay window"
vsync = true
fps_limit = 144
clear_color = [0.5, 0.5, 0.5, 1.0]
`)
	s, err := Parse(data, Default())
	require.NoError(t, err)
	assert.Equal(t, 640, s.Width)
	assert.Equal(t, 500, s.Height, "unset keys keep the base value")
	assert.Equal(t, "overlay window", s.Title)
	assert.True(t, s.VSync)
	assert.Equal(t, 144, s.FPSLimit)
	assert.Equal(t, [4]float32{0.5, 0.5, 0.5, 1}, s.ClearColor)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte(`clear_color = [1.0, 0.0]`), Default())
	assert.Error(t, err)

	_, err = Parse([]byte(`width = `), Default())
	assert.Error(t, err)
}

func TestClamp(t *testing.T) {
	s := Default()
	s.Width = -3
	s.Height = 100000
	s.Title = ""
	c := s.Clamp()
	assert.Equal(t, minDimension, c.Width)
	assert.Equal(t, maxDimension, c.Height)
	assert.Equal(t, "Triangle", c.Title)

	s.Width = 0
	assert.Equal(t, 500, s.Clamp().Width)

	for in, want := range map[int]int{-1: 0, 0: 0, 10: minFPSCap, 60: 60, 1000: maxFPSCap} {
		s.FPSLimit = in
		assert.Equal(t, want, s.Clamp().FPSLimit, "fps limit %d", in)
	}
}

func TestLoad(t *testing.T) {
	s, err := Load("", Immediate())
	require.NoError(t, err)
	assert.Equal(t, Immediate(), s)

	path := filepath.Join(t.TempDir(), "window.toml")
	require.NoError(t, os.WriteFile(path, []byte("height = 480\nhidden = true\n"), 0o644))
	s, err = Load(path, Default())
	require.NoError(t, err)
	assert.Equal(t, 480, s.Height)
	assert.True(t, s.Hidden)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"), Default())
	assert.Error(t, err)
}
