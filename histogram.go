package vibrant

import "github.com/lucasb-eyer/go-colorful"

// Histogram counts occurrences of exact normalized colors. Equality is exact
// on the channel triple; values derived from 8-bit samples are already
// quantized to 256 levels per channel, so rounding noise cannot split counts.
//
// Colors are remembered in first-seen order, which is the order clustering
// consumes them in. That keeps runs over the same pixel buffer reproducible.
type Histogram struct {
	counts map[colorful.Color]int
	order  []colorful.Color
}

func NewHistogram() *Histogram {
	return &Histogram{counts: make(map[colorful.Color]int)}
}

// HistogramFromRGBA counts every pixel of a flat row-major RGBA buffer as
// produced by Sample. Alpha is ignored; channels are normalized to [0,1].
// Trailing bytes short of a full pixel are dropped.
func HistogramFromRGBA(pix []uint8) *Histogram {
	h := NewHistogram()
	for i := 0; i+3 < len(pix); i += 4 {
		h.Add(colorful.Color{
			R: float64(pix[i]) / 255.0,
			G: float64(pix[i+1]) / 255.0,
			B: float64(pix[i+2]) / 255.0,
		})
	}
	return h
}

func (h *Histogram) Add(c colorful.Color) {
	if _, seen := h.counts[c]; !seen {
		h.order = append(h.order, c)
	}
	h.counts[c]++
}

// Count returns how many times c was added, zero if never.
func (h *Histogram) Count(c colorful.Color) int {
	return h.counts[c]
}

// Len is the number of distinct colors.
func (h *Histogram) Len() int {
	return len(h.order)
}

// Colors returns the distinct colors in first-seen order. The returned slice
// is shared with the histogram; callers must not modify it.
func (h *Histogram) Colors() []colorful.Color {
	return h.order
}
