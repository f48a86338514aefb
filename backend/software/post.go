package software

import (
	"fmt"

	"github.com/gogpu/crt"
)

// Composite pass constants. scanDim is the brightness multiplier for
// odd rows; burnStrength scales the phosphor tint at the screen edge.
const (
	scanDimNum   = 3
	scanDimDen   = 4
	burnStrength = 0.65
)

// DrawComposite copies src into the bound target, darkening odd rows
// and tinting black pixels toward p.BurnColor near the screen edges
// when p.ScreenBurn is set. Differing sizes are bridged with
// nearest-neighbor mapping.
func (d *Device) DrawComposite(src crt.Target, p crt.PostParams) error {
	st, ok := src.(*target)
	if !ok || st.px == nil {
		return fmt.Errorf("software: composite: %w", crt.ErrInvalidDimensions)
	}
	dst := d.bound
	if dst.w == 0 || dst.h == 0 {
		return nil
	}

	burnR := toByte(p.BurnColor.R * burnStrength)
	burnG := toByte(p.BurnColor.G * burnStrength)
	burnB := toByte(p.BurnColor.B * burnStrength)

	for y := 0; y < dst.h; y++ {
		sy := y * st.px.h / dst.h
		srcRow := sy * st.px.w * 4
		dstRow := y * dst.w * 4
		odd := y%2 == 1
		for x := 0; x < dst.w; x++ {
			sx := x * st.px.w / dst.w
			si := srcRow + sx*4
			di := dstRow + x*4

			r := st.px.pix[si+0]
			g := st.px.pix[si+1]
			b := st.px.pix[si+2]

			if p.ScreenBurn && r == 0 && g == 0 && b == 0 {
				// Phosphor glow: strongest at the edges, absent at
				// the exact center.
				e := edgeDistance(x, y, dst.w, dst.h)
				r = uint8(float32(burnR) * e)
				g = uint8(float32(burnG) * e)
				b = uint8(float32(burnB) * e)
			}
			if odd {
				r = uint8(int(r) * scanDimNum / scanDimDen)
				g = uint8(int(g) * scanDimNum / scanDimDen)
				b = uint8(int(b) * scanDimNum / scanDimDen)
			}

			dst.pix[di+0] = r
			dst.pix[di+1] = g
			dst.pix[di+2] = b
			dst.pix[di+3] = 0xFF
		}
	}
	return nil
}

// edgeDistance returns 0 at the screen center rising to 1 at the
// nearest edge, using the dominant axis.
func edgeDistance(x, y, w, h int) float32 {
	nx := (float32(x)+0.5)/float32(w) - 0.5
	ny := (float32(y)+0.5)/float32(h) - 0.5
	if nx < 0 {
		nx = -nx
	}
	if ny < 0 {
		ny = -ny
	}
	d := nx
	if ny > d {
		d = ny
	}
	return 2 * d
}
