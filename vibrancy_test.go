package vibrant

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestSaturationRange(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{0, 0.25, 0.5, 1} {
		gray := colorful.Color{R: v, G: v, B: v}
		if s := Saturation(gray); s != 0 {
			t.Fatalf("Saturation(gray %v) = %v, want 0", v, s)
		}
	}
	for _, c := range []colorful.Color{red, green, blue} {
		if s := Saturation(c); s != 1 {
			t.Fatalf("Saturation(%v) = %v, want 1", c, s)
		}
	}
	if s := Saturation(colorful.Color{R: 0.8, G: 0.3, B: 0.5}); !near(s, 0.5) {
		t.Fatalf("Saturation = %v, want 0.5", s)
	}
}

func TestFindMostVibrant(t *testing.T) {
	t.Parallel()

	if got := FindMostVibrant(nil); got != White {
		t.Fatalf("empty input: got %v, want White", got)
	}

	muted := colorful.Color{R: 0.6, G: 0.5, B: 0.55}
	got := FindMostVibrant([]colorful.Color{muted, red, White})
	if got != red {
		t.Fatalf("got %v, want red", got)
	}
}

func TestFindMostVibrantTieKeepsFirst(t *testing.T) {
	t.Parallel()

	// red and blue are equally saturated; the earlier entry must win.
	input := []colorful.Color{blue, red, White}
	if got := FindMostVibrant(input); got != blue {
		t.Fatalf("got %v, want first tied entry blue", got)
	}
	if input[0] != blue || input[1] != red {
		t.Fatal("input slice was reordered")
	}
}

func TestColorDistance(t *testing.T) {
	t.Parallel()

	cs := []colorful.Color{red, green, blue, White, {R: 0.3, G: 0.7, B: 0.1}}
	for _, a := range cs {
		if d := ColorDistance(a, a); d != 0 {
			t.Fatalf("ColorDistance(%v, %v) = %v, want 0", a, a, d)
		}
		for _, b := range cs {
			if ColorDistance(a, b) != ColorDistance(b, a) {
				t.Fatalf("ColorDistance not symmetric for %v, %v", a, b)
			}
		}
	}
	if d := ColorDistance(red, blue); d != 2 {
		t.Fatalf("ColorDistance(red, blue) = %v, want 2 (squared, no root)", d)
	}
}

func TestMixColors(t *testing.T) {
	t.Parallel()

	a := colorful.Color{R: 0.2, G: 0.4, B: 0.6}
	b := colorful.Color{R: 0.8, G: 0.2, B: 0.1}
	ab := MixColors(a, b)
	if ab != MixColors(b, a) {
		t.Fatal("MixColors is not symmetric")
	}
	if !near(ab.R, 0.5) || !near(ab.G, 0.3) || !near(ab.B, 0.35) {
		t.Fatalf("MixColors = %v, want per-channel midpoint", ab)
	}

	_, _, _, alpha := ab.RGBA()
	if alpha != 0xffff {
		t.Fatalf("mixed color alpha = %#x, want fully opaque", alpha)
	}
}
