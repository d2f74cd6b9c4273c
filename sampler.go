package vibrant

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

var (
	// ErrInvalidImageSize reports a non-positive analysis width or height.
	ErrInvalidImageSize = errors.New("invalid image size")
	// ErrImageProcessingFailed reports a source image that cannot be
	// rasterized onto the analysis canvas.
	ErrImageProcessingFailed = errors.New("image processing failed")
)

// Sample stretches img onto an exactly width×height canvas and returns the
// raw pixels as a flat row-major buffer, 4 bytes per pixel (R, G, B, A).
// Aspect ratio is not preserved; the source always fills the whole canvas.
func Sample(img image.Image, width, height int) ([]uint8, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("sample to %dx%d: %w", width, height, ErrInvalidImageSize)
	}
	if img == nil {
		return nil, fmt.Errorf("sample: nil image: %w", ErrImageProcessingFailed)
	}
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("sample: source has no pixels: %w", ErrImageProcessingFailed)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(canvas, canvas.Bounds(), img, bounds, draw.Src, nil)
	return canvas.Pix, nil
}
