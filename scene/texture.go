// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"

	"cogentcore.org/core/base/iox/imagex"
	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
)

// Texture is an image file that covers the surface of a [Solid].
// The image is loaded lazily, the first time its color is needed.
type Texture struct {

	// Name is the name of the texture;
	// textures are connected to [Material]s by name.
	Name string

	// File is the file name of the texture, relative to the library base.
	File string

	// Image is the decoded image, nil until loaded.
	Image image.Image `display:"-"`

	// average color of the image, valid if loaded and err is nil
	color color.RGBA

	// loaded is set once a load has been attempted
	loaded bool

	// err is the load error, if any
	err error
}

// TextureLibrary holds the named textures of a [Scene], with
// files resolved relative to a base directory.
type TextureLibrary struct {

	// Base is the base directory that texture files are resolved against.
	Base string

	// FS is the filesystem for Base; defaults to [os.DirFS] of Base.
	FS fs.FS `display:"-"`

	textures map[string]*Texture
	order    []string
}

// NewTextureLibrary returns a new [TextureLibrary] rooted at the given directory.
func NewTextureLibrary(base string) *TextureLibrary {
	tl := &TextureLibrary{Base: base}
	if base != "" {
		tl.FS = os.DirFS(base)
	}
	return tl
}

// Add adds a texture with the given name and file, replacing any existing
// texture of that name.
func (tl *TextureLibrary) Add(name, file string) *Texture {
	if tl.textures == nil {
		tl.textures = make(map[string]*Texture)
	}
	if _, has := tl.textures[name]; !has {
		tl.order = append(tl.order, name)
	}
	tx := &Texture{Name: name, File: file}
	tl.textures[name] = tx
	return tx
}

// Texture returns the texture with the given name.
func (tl *TextureLibrary) Texture(name string) (*Texture, bool) {
	tx, ok := tl.textures[name]
	return tx, ok
}

// Names returns the texture names in the order they were added.
func (tl *TextureLibrary) Names() []string {
	return tl.order
}

// NameForFile returns the name of the texture using the given file,
// which may be relative to the base or include it.
func (tl *TextureLibrary) NameForFile(file string) (string, bool) {
	file = path.Clean(file)
	for _, nm := range tl.order {
		tx := tl.textures[nm]
		if tx.File == file || path.Join(tl.Base, tx.File) == file {
			return nm, true
		}
	}
	return "", false
}

// Invalidate drops the cached image of the named texture so that it is
// reloaded on next use. It returns false if there is no such texture.
func (tl *TextureLibrary) Invalidate(name string) bool {
	tx, ok := tl.textures[name]
	if !ok {
		return false
	}
	tx.Image = nil
	tx.loaded = false
	tx.err = nil
	return true
}

// Color returns the representative (average) color of the named texture,
// loading it if needed. Load errors are logged once, and returned on
// every call until the texture is invalidated.
func (tl *TextureLibrary) Color(name string) (color.RGBA, error) {
	tx, ok := tl.textures[name]
	if !ok {
		return color.RGBA{}, fmt.Errorf("texture named %q not found", name)
	}
	if !tx.loaded {
		tx.loaded = true
		tx.err = tl.load(tx)
		if tx.err != nil {
			slog.Error("scene.TextureLibrary: image load error", "file", tx.File, "error", tx.err)
		}
	}
	return tx.color, tx.err
}

// sniffLen is the number of header bytes filetype needs to match all
// the image types it knows about.
const sniffLen = 261

func (tl *TextureLibrary) load(tx *Texture) error {
	if tl.FS == nil {
		return fmt.Errorf("texture %q: no texture directory", tx.Name)
	}
	f, err := tl.FS.Open(tx.File)
	if err != nil {
		return err
	}
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	f.Close()
	if err != nil && err != io.ErrUnexpectedEOF {
		return err
	}
	if !filetype.IsImage(head[:n]) {
		return fmt.Errorf("texture %q: %s is not an image file", tx.Name, tx.File)
	}
	img, _, err := imagex.OpenFS(tl.FS, tx.File)
	if err != nil {
		return err
	}
	tx.Image = img
	tx.color = AverageColor(img)
	return nil
}

// AverageColor returns the average color of the given image,
// with full opacity.
func AverageColor(img image.Image) color.RGBA {
	px := transform.Resize(img, 1, 1, transform.Box)
	c := px.RGBAAt(0, 0)
	c.A = 255
	return c
}
