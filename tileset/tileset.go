// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package tileset loads tile atlas images for console fonts. An atlas
// is a grid of equally sized glyph tiles, conventionally 16 by 16
// tiles in code page 437 order. PNG and BMP files are supported.
package tileset

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// Errors returned by atlas loading.
var (
	ErrBadLayout = errors.New("tileset: atlas size not divisible by layout")
	ErrFormat    = errors.New("tileset: unsupported image format")
)

// Tileset is a decoded tile atlas. It implements crt.Font via
// TileSize.
type Tileset struct {
	img   *image.RGBA
	tileW int
	tileH int
	cols  int
	rows  int
}

// Load reads an atlas from disk. The format is picked by extension:
// .png and .bmp are supported. cols and rows give the glyph layout.
func Load(path string, cols, rows int) (*Tileset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tileset: open atlas: %w", err)
	}
	defer f.Close()

	var img image.Image
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		img, err = png.Decode(f)
	case ".bmp":
		img, err = bmp.Decode(f)
	default:
		return nil, fmt.Errorf("tileset: %q: %w", ext, ErrFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("tileset: decode %s: %w", path, err)
	}
	return New(img, cols, rows)
}

// Decode reads a PNG atlas from r with the given glyph layout.
func Decode(r io.Reader, cols, rows int) (*Tileset, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("tileset: decode: %w", err)
	}
	return New(img, cols, rows)
}

// New wraps an already decoded atlas image. The image dimensions must
// divide evenly into cols by rows tiles.
func New(img image.Image, cols, rows int) (*Tileset, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("tileset: layout %dx%d: %w", cols, rows, ErrBadLayout)
	}
	b := img.Bounds()
	if b.Dx()%cols != 0 || b.Dy()%rows != 0 {
		return nil, fmt.Errorf("tileset: atlas %dx%d with layout %dx%d: %w",
			b.Dx(), b.Dy(), cols, rows, ErrBadLayout)
	}

	rgba, ok := img.(*image.RGBA)
	if !ok || !b.Min.Eq(image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}
	return &Tileset{
		img:   rgba,
		tileW: b.Dx() / cols,
		tileH: b.Dy() / rows,
		cols:  cols,
		rows:  rows,
	}, nil
}

// TileSize returns the tile dimensions in pixels.
func (t *Tileset) TileSize() (width, height int) {
	return t.tileW, t.tileH
}

// Layout returns the atlas layout in tiles.
func (t *Tileset) Layout() (cols, rows int) {
	return t.cols, t.rows
}

// Image returns the decoded atlas.
func (t *Tileset) Image() *image.RGBA {
	return t.img
}

// GlyphRect returns the pixel rectangle of glyph g in the atlas.
// Glyphs are numbered row-major from the top-left tile.
func (t *Tileset) GlyphRect(g byte) image.Rectangle {
	i := int(g) % (t.cols * t.rows)
	x := (i % t.cols) * t.tileW
	y := (i / t.cols) * t.tileH
	return image.Rect(x, y, x+t.tileW, y+t.tileH)
}
