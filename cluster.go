package vibrant

import (
	"log"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// Cluster greedily groups the histogram's distinct colors into at most
// maxClusters clusters and returns their representatives in creation order.
//
// Colors are visited in first-seen order. While below capacity each color
// opens a new cluster unchanged. At capacity the incoming color merges into
// the nearest representative by squared Euclidean distance (first index wins
// ties), replacing it with the unweighted midpoint of the two. The midpoint
// deliberately ignores cluster mass, so a representative leans toward the
// colors merged most recently; MethodRunningMean provides the mass-tracking
// variant.
//
// Returns fewer than maxClusters entries when the histogram has fewer
// distinct colors, and nothing when maxClusters <= 0.
func Cluster(hist *Histogram, maxClusters int) []colorful.Color {
	if maxClusters <= 0 || hist == nil {
		return nil
	}
	reps := make([]colorful.Color, 0, maxClusters)
	for _, c := range hist.Colors() {
		if len(reps) < maxClusters {
			reps = append(reps, c)
			continue
		}
		nearest := 0
		nearestDist := ColorDistance(c, reps[0])
		for i := 1; i < len(reps); i++ {
			if d := ColorDistance(c, reps[i]); d < nearestDist {
				nearestDist = d
				nearest = i
			}
		}
		reps[nearest] = MixColors(reps[nearest], c)
	}
	return reps
}

// ClusterRunningMean is Cluster with per-cluster mass tracking: each
// representative stays at the true mean of every color folded into it.
func ClusterRunningMean(hist *Histogram, maxClusters int) []colorful.Color {
	if maxClusters <= 0 || hist == nil {
		return nil
	}
	type cluster struct {
		sum colorful.Color
		n   float64
	}
	cs := make([]cluster, 0, maxClusters)
	for _, c := range hist.Colors() {
		if len(cs) < maxClusters {
			cs = append(cs, cluster{sum: c, n: 1})
			continue
		}
		nearest := 0
		nearestDist := ColorDistance(c, meanOf(cs[0].sum, cs[0].n))
		for i := 1; i < len(cs); i++ {
			if d := ColorDistance(c, meanOf(cs[i].sum, cs[i].n)); d < nearestDist {
				nearestDist = d
				nearest = i
			}
		}
		cs[nearest].sum.R += c.R
		cs[nearest].sum.G += c.G
		cs[nearest].sum.B += c.B
		cs[nearest].n++
	}
	reps := make([]colorful.Color, len(cs))
	for i, cl := range cs {
		reps[i] = meanOf(cl.sum, cl.n)
	}
	return reps
}

func meanOf(sum colorful.Color, n float64) colorful.Color {
	return colorful.Color{R: sum.R / n, G: sum.G / n, B: sum.B / n}
}

// Capped expansion keeps k-means tractable on histograms of large canvases.
const maxKMeansSamples = 12000

func clusterKMeans(hist *Histogram, maxClusters int) []colorful.Color {
	if maxClusters <= 0 || hist == nil || hist.Len() == 0 {
		return nil
	}
	if hist.Len() <= maxClusters {
		// Partitioning needs more observations than clusters; the greedy
		// pass returns every distinct color unchanged here anyway.
		return Cluster(hist, maxClusters)
	}

	// Expand histogram entries by count so populous colors pull centers,
	// scaling counts down when the total would exceed the sample cap.
	total := 0
	for _, c := range hist.Colors() {
		total += hist.Count(c)
	}
	scale := 1.0
	if total > maxKMeansSamples {
		scale = float64(maxKMeansSamples) / float64(total)
	}
	dataset := make(clusters.Observations, 0, min(total, maxKMeansSamples))
	for _, c := range hist.Colors() {
		n := max(int(float64(hist.Count(c))*scale), 1)
		for i := 0; i < n; i++ {
			dataset = append(dataset, clusters.Coordinates{c.R, c.G, c.B})
		}
	}

	km := kmeans.New()
	cc, err := km.Partition(dataset, maxClusters)
	if err != nil || len(cc) == 0 {
		log.Println("vibrant: kmeans produced no clusters, falling back to greedy")
		return Cluster(hist, maxClusters)
	}

	// Most populous clusters first, mirroring the greedy pass which seeds
	// from the earliest (typically most frequent) colors.
	slices.SortFunc(cc, func(a, b clusters.Cluster) int {
		return len(b.Observations) - len(a.Observations)
	})

	reps := make([]colorful.Color, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 {
			continue
		}
		reps = append(reps, colorful.Color{
			R: c.Center[0],
			G: c.Center[1],
			B: c.Center[2],
		}.Clamped())
	}
	if len(reps) == 0 {
		log.Println("vibrant: kmeans produced degenerate centers, falling back to greedy")
		return Cluster(hist, maxClusters)
	}
	return reps
}

func clusterByMethod(hist *Histogram, maxClusters int, method Method) []colorful.Color {
	switch method {
	case MethodRunningMean:
		return ClusterRunningMean(hist, maxClusters)
	case MethodKMeans:
		return clusterKMeans(hist, maxClusters)
	default:
		return Cluster(hist, maxClusters)
	}
}
