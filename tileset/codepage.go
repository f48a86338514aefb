// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tileset

import "golang.org/x/text/encoding/charmap"

// fallbackGlyph is '?' in code page 437, used for runes the code page
// cannot represent.
const fallbackGlyph = 0x3F

// Glyph maps r to its code page 437 glyph index. Runes outside the
// code page map to the '?' glyph.
func Glyph(r rune) byte {
	b, ok := charmap.CodePage437.EncodeRune(r)
	if !ok {
		return fallbackGlyph
	}
	return b
}

// Glyphs maps a string to code page 437 glyph indices.
func Glyphs(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		out = append(out, Glyph(r))
	}
	return out
}

// Rune maps a code page 437 glyph index back to its rune.
func Rune(g byte) rune {
	return charmap.CodePage437.DecodeByte(g)
}
