// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command solarsystem runs a decorative 3D animation of the solar system,
// served to the browser or rendered to PNG files.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"cogentcore.org/solarsystem/config"
	"cogentcore.org/solarsystem/host"
	"cogentcore.org/solarsystem/render"
	"cogentcore.org/solarsystem/solar"
	"github.com/muesli/termenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	cli.Run(config.Options(), config.New(),
		&cli.Cmd[*config.Config]{Func: Serve, Name: "serve", Root: true,
			Doc: "Serve serves the animation to the browser until interrupted."},
		&cli.Cmd[*config.Config]{Func: Render, Name: "render",
			Doc: "Render writes the given number of frames as PNG files."},
		&cli.Cmd[*config.Config]{Func: Dump, Name: "dump",
			Doc: "Dump prints the scene tree as YAML."},
		&cli.Cmd[*config.Config]{Func: Config, Name: "config",
			Doc: "Config prints the effective configuration as TOML."},
	)
}

// setup sets the default logger to the user log level and validates the config.
func setup(c *config.Config) error {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: &logx.UserLevel})))
	return c.Validate()
}

// Serve runs the server, the frame loop, and the texture watcher
// until interrupted or one of them fails.
func Serve(c *config.Config) error {
	if err := setup(c); err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := host.NewApp(c)
	loop := host.NewLoop(c.Interval())
	sv := host.NewServer(c.Addr, app, loop)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sv.Run(ctx)
	})
	g.Go(func() error {
		return loop.Run(ctx, func() error {
			img := app.Frame()
			if sv.NumClients() == 0 {
				return nil
			}
			b, err := render.EncodePNG(img)
			if err != nil {
				return fmt.Errorf("encoding frame: %w", err)
			}
			sv.Broadcast(b)
			return nil
		})
	})
	if c.Watch {
		w, err := host.NewWatcher(app.System.Scene.Textures.Base)
		if errors.Log(err) == nil {
			g.Go(func() error {
				return w.Run(ctx, host.ReloadTextures(app, loop))
			})
		}
	}
	return g.Wait()
}

// Render writes c.Frames frames to c.Out, one tick apart.
func Render(c *config.Config) error {
	if err := setup(c); err != nil {
		return err
	}
	dir := c.OutDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	app := host.NewApp(c)
	for i := range c.Frames {
		b, err := render.EncodePNG(app.Frame())
		if err != nil {
			return fmt.Errorf("encoding frame %d: %w", i, err)
		}
		fn := filepath.Join(dir, fmt.Sprintf("frame-%04d.png", i))
		if err := os.WriteFile(fn, b, 0o644); err != nil {
			return err
		}
		slog.Debug("wrote frame", "file", fn)
	}
	out := termenv.NewOutput(os.Stdout)
	sz := app.Renderer.Viewport.FrameSize()
	fmt.Fprintln(out, out.String("rendered").Foreground(out.Color("2")).Bold(),
		c.Frames, "frames of", fmt.Sprintf("%dx%d", sz.X, sz.Y), "to", out.String(dir).Foreground(out.Color("6")))
	return nil
}

// Dump prints the scene tree as YAML.
func Dump(c *config.Config) error {
	if err := setup(c); err != nil {
		return err
	}
	b, err := solar.Dump(host.NewApp(c).System)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(b)
	return err
}

// Config prints the effective configuration as TOML.
func Config(c *config.Config) error {
	b, err := c.Encode()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(b)
	return err
}
