// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := New()
	assert.Equal(t, "textures", c.Textures)
	assert.Equal(t, 960, c.Width)
	assert.Equal(t, 540, c.Height)
	assert.Equal(t, float32(1), c.PixelRatio)
	assert.Equal(t, 60, c.FPS)
	assert.Equal(t, "localhost:8080", c.Addr)
	assert.True(t, c.Watch)
	assert.Equal(t, 1, c.Frames)
	assert.Equal(t, "frames", c.Out)
	assert.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	c := New()
	c.Width = 0
	assert.ErrorContains(t, c.Validate(), "viewport size")
	c = New()
	c.FPS = -1
	assert.ErrorContains(t, c.Validate(), "fps")
	c = New()
	c.Frames = -2
	assert.ErrorContains(t, c.Validate(), "frames")
}

func TestPaths(t *testing.T) {
	home, err := homedir.Dir()
	require.NoError(t, err)
	c := New()
	c.Textures = "~/planets"
	c.Out = "~/out"
	assert.Equal(t, filepath.Join(home, "planets"), c.TextureDir())
	assert.Equal(t, filepath.Join(home, "out"), c.OutDir())

	dir := t.TempDir()
	c.Textures = dir
	assert.Equal(t, dir, c.TextureDir())
}

// captureLog sends the default logger to the returned buffer
// for the rest of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(old) })
	return &buf
}

func TestTextureDirLogging(t *testing.T) {
	buf := captureLog(t)
	c := New()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "earth.jpg"), []byte("x"), 0o644))
	c.Textures = dir
	assert.Equal(t, dir, c.TextureDir())
	assert.Empty(t, buf.String())

	c.Textures = filepath.Join(dir, "missing")
	c.TextureDir()
	assert.Contains(t, buf.String(), "does not exist")

	buf.Reset()
	c.Textures = filepath.Join(dir, "earth.jpg")
	c.TextureDir()
	assert.Contains(t, buf.String(), "is not a directory")
}

func TestViewportAndInterval(t *testing.T) {
	c := New()
	c.PixelRatio = 3
	vp := c.Viewport()
	assert.Equal(t, 960, vp.Width)
	assert.Equal(t, float32(2), vp.PixelRatio())
	assert.Equal(t, time.Second/60, c.Interval())
}

func TestRand(t *testing.T) {
	c := New()
	c.Seed = 7
	a, b := c.Rand(), c.Rand()
	for range 5 {
		assert.Equal(t, a.Float32(), b.Float32())
	}
	c.Seed = 0
	assert.NotNil(t, c.Rand())
}

func TestEncode(t *testing.T) {
	c := New()
	c.Seed = 42
	b, err := c.Encode()
	require.NoError(t, err)
	assert.Contains(t, string(b), "Addr")
	assert.Contains(t, string(b), "localhost:8080")

	var d Config
	require.NoError(t, toml.Unmarshal(b, &d))
	assert.Equal(t, *c, d)
}
