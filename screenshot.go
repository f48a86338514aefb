package crt

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// saveScreenshot reads the presented frame back from the device and
// writes it to path as PNG. Readback rows arrive bottom-up; the image
// is flipped to top-down during the copy.
func saveScreenshot(dev Device, width, height int, path string) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("crt: screenshot %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	pixels, err := dev.ReadPixels(width, height)
	if err != nil {
		return fmt.Errorf("crt: screenshot readback: %w", err)
	}
	stride := width * 4
	if len(pixels) < stride*height {
		return fmt.Errorf("crt: screenshot readback short: got %d bytes, want %d", len(pixels), stride*height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		src := pixels[(height-1-y)*stride : (height-y)*stride]
		copy(img.Pix[y*img.Stride:y*img.Stride+stride], src)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("crt: screenshot create: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("crt: screenshot encode: %w", err)
	}
	return f.Close()
}
