// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"context"
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a texture directory for changed files.
type Watcher struct {
	watcher *fsnotify.Watcher
}

// NewWatcher returns a new [Watcher] of the given directory.
func NewWatcher(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}
	return &Watcher{watcher: fw}, nil
}

// Run calls changed with the path of each created or written file
// until the context is done, and then closes the watcher.
func (w *Watcher) Run(ctx context.Context, changed func(file string)) error {
	defer w.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				changed(ev.Name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("texture watcher", "err", err)
		}
	}
}

// ReloadTextures returns a function for [Watcher.Run] that reloads
// the changed textures of the app on the loop goroutine.
func ReloadTextures(app *App, loop *Loop) func(file string) {
	return func(file string) {
		loop.Do(func() { app.ReloadTexture(file) })
	}
}
