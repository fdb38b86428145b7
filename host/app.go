// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host runs a solar system animation: it owns the scene,
// advances and renders it on a single loop goroutine, and serves the
// frames to browser clients over websockets.
package host

import (
	"image"
	"log/slog"
	"path/filepath"

	"cogentcore.org/solarsystem/config"
	"cogentcore.org/solarsystem/render"
	"cogentcore.org/solarsystem/solar"
)

// App is the application context of a running animation.
// Its methods must only be called from one goroutine at a time,
// which is the [Loop] goroutine while a loop is running.
type App struct {

	// Config is the configuration that the app was made with.
	Config *config.Config

	// System is the solar system scene.
	System *solar.System

	// Renderer renders the frames.
	Renderer *render.Renderer
}

// NewApp returns a new [App] for the given config,
// with the solar system built from the default table.
func NewApp(cfg *config.Config) *App {
	sys := solar.Build(solar.DefaultTable(), solar.Options{Rand: cfg.Rand(), TextureDir: cfg.TextureDir()})
	return &App{Config: cfg, System: sys, Renderer: render.NewRenderer(cfg.Viewport())}
}

// Frame advances the animation by one tick and renders the new frame.
func (a *App) Frame() *image.RGBA {
	solar.Advance(a.System, 1)
	return a.Renderer.Render(a.System.Scene)
}

// Resize sets the viewport that frames are rendered for.
func (a *App) Resize(vp render.Viewport) {
	a.Renderer.Viewport = vp
}

// Orbit orbits the camera around its target by the given
// number of degrees horizontally and vertically.
func (a *App) Orbit(delX, delY float32) {
	a.System.Scene.Camera.Orbit(delX, delY)
}

// Zoom moves the camera toward its target by the given fraction
// of its distance; positive values zoom out.
func (a *App) Zoom(pct float32) {
	a.System.Scene.Camera.Zoom(pct)
}

// ReloadTexture reloads the texture with the given file on its next use,
// returning false if no texture uses that file.
func (a *App) ReloadTexture(file string) bool {
	tl := a.System.Scene.Textures
	name, ok := tl.NameForFile(file)
	if !ok {
		name, ok = tl.NameForFile(filepath.Base(file))
	}
	if !ok {
		return false
	}
	slog.Info("reloading texture", "name", name, "file", file)
	return tl.Invalidate(name)
}

// MaxZoomStep is the largest zoom fraction applied for one client input,
// so that the camera never reaches or passes its target.
const MaxZoomStep = 0.9

// Input is a message from a client.
type Input struct {

	// Type is one of "resize", "orbit", or "zoom".
	Type string `json:"type"`

	// Width and Height are the new window size for resize.
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`

	// PixelRatio is the device pixel ratio for resize.
	PixelRatio float32 `json:"pixelRatio,omitempty"`

	// DX and DY are the orbit angles in degrees.
	DX float32 `json:"dx,omitempty"`
	DY float32 `json:"dy,omitempty"`

	// Delta is the zoom fraction.
	Delta float32 `json:"delta,omitempty"`
}

// Handle applies the given client input to the app.
func (a *App) Handle(in Input) {
	switch in.Type {
	case "resize":
		if in.Width <= 0 || in.Height <= 0 {
			slog.Debug("ignoring empty resize", "width", in.Width, "height", in.Height)
			return
		}
		a.Resize(render.Viewport{
			Width:            min(in.Width, render.MaxFrameSide),
			Height:           min(in.Height, render.MaxFrameSide),
			DevicePixelRatio: in.PixelRatio,
		})
	case "orbit":
		a.Orbit(in.DX, in.DY)
	case "zoom":
		a.Zoom(min(max(in.Delta, -MaxZoomStep), MaxZoomStep))
	default:
		slog.Warn("unknown input type", "type", in.Type)
	}
}
