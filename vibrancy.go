package vibrant

import (
	"slices"

	"github.com/lucasb-eyer/go-colorful"
)

// White is the sentinel returned when there is no color to pick from. It
// also fills unused palette slots.
var White = colorful.Color{R: 1, G: 1, B: 1}

// Saturation is the range-based saturation of c: the largest channel minus
// the smallest, in [0,1]. Zero for any gray (R=G=B), 1 for pure primaries.
// This is intentionally not the HSL/HSV saturation formula.
func Saturation(c colorful.Color) float64 {
	return max(c.R, c.G, c.B) - min(c.R, c.G, c.B)
}

// FindMostVibrant returns the color with the highest range-based saturation,
// or White when colors is empty. Ties keep the earlier color (stable sort).
// The input slice is not modified.
func FindMostVibrant(colors []colorful.Color) colorful.Color {
	if len(colors) == 0 {
		return White
	}
	ranked := slices.Clone(colors)
	slices.SortStableFunc(ranked, func(a, b colorful.Color) int {
		sa, sb := Saturation(a), Saturation(b)
		if sa > sb {
			return -1
		}
		if sa < sb {
			return 1
		}
		return 0
	})
	return ranked[0]
}

// ColorDistance is the squared Euclidean distance between a and b: the sum
// of squared per-channel differences, no square root. Symmetric, zero for
// identical colors.
func ColorDistance(a, b colorful.Color) float64 {
	dr := a.R - b.R
	dg := a.G - b.G
	db := a.B - b.B
	return dr*dr + dg*dg + db*db
}

// MixColors returns the unweighted per-channel midpoint of a and b. The
// result is fully opaque, like every colorful.Color.
func MixColors(a, b colorful.Color) colorful.Color {
	return colorful.Color{
		R: (a.R + b.R) / 2,
		G: (a.G + b.G) / 2,
		B: (a.B + b.B) / 2,
	}
}
