// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tileset

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func testAtlas(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	return img
}

func TestNewLayout(t *testing.T) {
	ts, err := New(testAtlas(128, 128), 16, 16)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if w, h := ts.TileSize(); w != 8 || h != 8 {
		t.Errorf("TileSize() = %dx%d, want 8x8", w, h)
	}
	if c, r := ts.Layout(); c != 16 || r != 16 {
		t.Errorf("Layout() = %dx%d, want 16x16", c, r)
	}
}

func TestNewRejectsBadLayout(t *testing.T) {
	if _, err := New(testAtlas(100, 128), 16, 16); !errors.Is(err, ErrBadLayout) {
		t.Errorf("indivisible width: %v, want ErrBadLayout", err)
	}
	if _, err := New(testAtlas(128, 128), 0, 16); !errors.Is(err, ErrBadLayout) {
		t.Errorf("zero columns: %v, want ErrBadLayout", err)
	}
}

func TestGlyphRect(t *testing.T) {
	ts, err := New(testAtlas(128, 128), 16, 16)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tests := []struct {
		glyph byte
		want  image.Rectangle
	}{
		{0, image.Rect(0, 0, 8, 8)},
		{1, image.Rect(8, 0, 16, 8)},
		{16, image.Rect(0, 8, 8, 16)},
		{255, image.Rect(120, 120, 128, 128)},
	}
	for _, tt := range tests {
		if got := ts.GlyphRect(tt.glyph); got != tt.want {
			t.Errorf("GlyphRect(%d) = %v, want %v", tt.glyph, got, tt.want)
		}
	}
}

func TestDecodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, testAtlas(64, 64)); err != nil {
		t.Fatalf("encode: %v", err)
	}
	ts, err := Decode(&buf, 16, 16)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if w, h := ts.TileSize(); w != 4 || h != 4 {
		t.Errorf("TileSize() = %dx%d, want 4x4", w, h)
	}
}

func TestLoadPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atlas.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(f, testAtlas(128, 128)); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	ts, err := Load(path, 16, 16)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if w, h := ts.TileSize(); w != 8 || h != 8 {
		t.Errorf("TileSize() = %dx%d, want 8x8", w, h)
	}
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	if _, err := Load("atlas.gif", 16, 16); !errors.Is(err, ErrFormat) {
		t.Errorf("Load(.gif) = %v, want ErrFormat", err)
	}
}

func TestGlyphMapping(t *testing.T) {
	tests := []struct {
		r    rune
		want byte
	}{
		{' ', 32},
		{'@', 64},
		{'A', 65},
		{'☺', 1},
		{'█', 219},
		{'€', fallbackGlyph}, // not representable in code page 437
	}
	for _, tt := range tests {
		if got := Glyph(tt.r); got != tt.want {
			t.Errorf("Glyph(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestGlyphRoundTrip(t *testing.T) {
	for _, r := range "Hello, ☺!" {
		g := Glyph(r)
		if back := Rune(g); back != r {
			t.Errorf("Rune(Glyph(%q)) = %q", r, back)
		}
	}
}

func TestGlyphs(t *testing.T) {
	got := Glyphs("@A ")
	want := []byte{64, 65, 32}
	if len(got) != len(want) {
		t.Fatalf("Glyphs = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Glyphs = %v, want %v", got, want)
		}
	}
}
