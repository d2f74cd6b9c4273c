// Package utils holds caller-side glue around the vibrant pipeline: image
// file I/O, palette sheet rendering, and ad hoc palette helpers that are not
// part of the core detection path.
package utils

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/stat"

	"github.com/setanarut/vibrant"
)

// SortPaletteByBrightness orders colors from darkest to brightest by linear
// luminance. Handy when the first palette entry should act as a background.
func SortPaletteByBrightness(palette []colorful.Color) {
	slices.SortFunc(palette, func(a, b colorful.Color) int {
		ri, gi, bi := a.LinearRgb()
		rj, gj, bj := b.LinearRgb()
		yi := 0.2126*ri + 0.7152*gi + 0.0722*bi
		yj := 0.2126*rj + 0.7152*gj + 0.0722*bj
		if yi < yj {
			return -1
		}
		if yi > yj {
			return 1
		}
		return 0
	})
}

// ReferencePalette extracts up to k colors with the dominantcolor package,
// strongest weight first. It bypasses the vibrant pipeline entirely and is
// meant as an independent cross-check of detection results.
func ReferencePalette(img image.Image, k int) []colorful.Color {
	if k <= 0 {
		return nil
	}
	candidates := dominantcolor.FindWeight(img, k)
	out := make([]colorful.Color, 0, len(candidates))
	for _, c := range candidates {
		col, _ := colorful.MakeColor(c.RGBA)
		out = append(out, col.Clamped())
	}
	if len(out) > k {
		out = out[:k]
	}
	return out
}

// AverageColor is the count-weighted mean color of a histogram.
func AverageColor(hist *vibrant.Histogram) colorful.Color {
	if hist == nil || hist.Len() == 0 {
		return vibrant.White
	}
	colors := hist.Colors()
	rs := make([]float64, len(colors))
	gs := make([]float64, len(colors))
	bs := make([]float64, len(colors))
	ws := make([]float64, len(colors))
	for i, c := range colors {
		rs[i] = c.R
		gs[i] = c.G
		bs[i] = c.B
		ws[i] = float64(hist.Count(c))
	}
	return colorful.Color{
		R: stat.Mean(rs, ws),
		G: stat.Mean(gs, ws),
		B: stat.Mean(bs, ws),
	}
}

func ReadImage(path string) image.Image {
	file, err := os.Open(path)
	if err != nil {
		panic(err)
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil {
		panic(err)
	}
	return img
}

func SaveImage(img image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// SavePalette renders the palette as a horizontal strip of tileSize×tileSize
// swatches and writes it as a PNG.
func SavePalette(palette []colorful.Color, tileSize int, filename string) error {
	if len(palette) == 0 {
		return fmt.Errorf("empty palette")
	}
	if tileSize <= 0 {
		tileSize = 64
	}

	w := tileSize * len(palette)
	h := tileSize
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	for i, c := range palette {
		r := uint8(max(0, min(255, c.R*255)))
		g := uint8(max(0, min(255, c.G*255)))
		b := uint8(max(0, min(255, c.B*255)))
		x0 := i * tileSize
		x1 := x0 + tileSize
		for y := 0; y < h; y++ {
			for x := x0; x < x1; x++ {
				img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
			}
		}
	}

	return SaveImage(img, filename)
}
