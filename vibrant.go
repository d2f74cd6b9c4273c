// Package vibrant extracts a small palette of dominant colors from a raster
// image and identifies the most saturated of them. Images are downscaled to a
// fixed analysis canvas, pixel colors are counted into a histogram, similar
// colors are greedily merged into at most MaxColors clusters, and the cluster
// with the highest range-based saturation wins.
package vibrant

import "fmt"

// Method selects the clustering strategy used to reduce a histogram to a
// palette.
type Method int

const (
	// MethodGreedy merges each color into its nearest cluster by unweighted
	// midpoint averaging. The representative drifts toward recently merged
	// colors; callers relying on historical output should keep this default.
	MethodGreedy Method = iota
	// MethodRunningMean tracks cluster mass and keeps the representative at
	// the true mean of all merged colors.
	MethodRunningMean
	// MethodKMeans partitions histogram samples with k-means and orders the
	// centers by population. Falls back to MethodGreedy on degenerate input.
	MethodKMeans
)

func (m Method) String() string {
	switch m {
	case MethodRunningMean:
		return "runningmean"
	case MethodKMeans:
		return "kmeans"
	default:
		return "greedy"
	}
}

// Options control one detection run.
type Options struct {
	// Analysis canvas size in pixels. The source image is stretched to
	// exactly this size before counting. Both must be positive.
	Width  int
	Height int
	// Maximum number of clusters. Zero or negative yields an empty palette.
	MaxColors int
	Method    Method
}

func DefaultOptions() Options {
	return Options{
		Width:     50,
		Height:    50,
		MaxColors: 5,
		Method:    MethodGreedy,
	}
}

func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("analysis canvas %dx%d: %w", o.Width, o.Height, ErrInvalidImageSize)
	}
	return nil
}
