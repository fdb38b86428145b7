// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides the configuration of the solarsystem command,
// set from `default:` tags, config files, and command line flags.
package config

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/fsx"
	"cogentcore.org/core/cli"
	"cogentcore.org/lab/base/randx"
	"cogentcore.org/solarsystem/render"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// File is the default configuration file name.
const File = "solarsystem.toml"

// Config is the configuration of the solarsystem command.
type Config struct {

	// Textures is the directory that texture files are loaded from.
	// A leading ~ is expanded to the home directory.
	Textures string `default:"textures"`

	// Width is the width of the viewport in window units.
	Width int `default:"960"`

	// Height is the height of the viewport in window units.
	Height int `default:"540"`

	// PixelRatio is the device pixel ratio, capped at 2 when rendering.
	PixelRatio float32 `default:"1"`

	// FPS is the number of frames per second that the loop runs at.
	FPS int `default:"60"`

	// Seed is the random seed for the starfield; 0 uses a new sky each run.
	Seed int64

	// Addr is the address that the server listens on.
	Addr string `cmd:"serve" default:"localhost:8080"`

	// Watch is whether to reload textures when their files change.
	Watch bool `cmd:"serve" default:"true"`

	// Frames is the number of frames to render.
	Frames int `cmd:"render" default:"1"`

	// Out is the directory that rendered frames are written to.
	Out string `cmd:"render" default:"frames"`
}

// New returns a new [Config] with its default values set.
func New() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

// Defaults sets the default values of the config from its `default:` tags.
func (c *Config) Defaults() {
	cli.SetFromDefaults(c)
}

// Options returns the command line options of the solarsystem command,
// which reads [File] if it exists.
func Options() *cli.Options {
	opts := cli.DefaultOptions("solarsystem", "A decorative 3D animation of the solar system.")
	opts.DefaultFiles = []string{File}
	return opts
}

// Validate returns an error if the config cannot be run.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("viewport size must be positive, not %dx%d", c.Width, c.Height)
	case c.FPS <= 0:
		return fmt.Errorf("fps must be positive, not %d", c.FPS)
	case c.Frames < 0:
		return fmt.Errorf("frames must not be negative, not %d", c.Frames)
	}
	return nil
}

// TextureDir returns the expanded texture directory. A missing
// directory is logged; bodies then fall back to their material color.
func (c *Config) TextureDir() string {
	dir := errors.Log1(homedir.Expand(c.Textures))
	st, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		errors.Log(fmt.Errorf("texture directory %q does not exist", dir))
	case err != nil:
		errors.Log(err)
	case !st.IsDir():
		errors.Log(fmt.Errorf("texture directory %q is not a directory", dir))
	default:
		slog.Debug("config: texture directory", "dir", dir, "images", len(fsx.Filenames(dir, ".jpg", ".jpeg", ".png")))
	}
	return dir
}

// OutDir returns the expanded output directory for rendered frames.
func (c *Config) OutDir() string {
	return errors.Log1(homedir.Expand(c.Out))
}

// Viewport returns the viewport of the configured size.
func (c *Config) Viewport() render.Viewport {
	return render.Viewport{Width: c.Width, Height: c.Height, DevicePixelRatio: c.PixelRatio}
}

// Interval returns the time between frames.
func (c *Config) Interval() time.Duration {
	return time.Second / time.Duration(max(c.FPS, 1))
}

// Rand returns the random source for the starfield.
func (c *Config) Rand() randx.Rand {
	if c.Seed == 0 {
		return randx.NewGlobalRand()
	}
	return randx.NewSysRand(c.Seed)
}

// Encode returns the config encoded as TOML.
func (c *Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}
