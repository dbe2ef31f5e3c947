package check

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/arborlab/morpho/pkg/morph"
)

// FlatnessMethod selects how principal-axis extents are reduced to a
// flatness verdict.
type FlatnessMethod int

const (
	// FlatnessTolerance flags the neurite when any extent along a
	// principal axis is smaller than the tolerance.
	FlatnessTolerance FlatnessMethod = iota
	// FlatnessRatio flags the neurite when the ratio of the smallest to
	// the second-smallest extent is below the tolerance.
	FlatnessRatio
)

// Flatness estimates whether the neurite's point cloud is flat. The cloud's
// covariance matrix is eigen-decomposed and the points are projected onto
// the principal axes; the peak-to-peak extent along each axis feeds the
// selected method. Duplicate positions are removed first so boundary-point
// duplication cannot bias the principal components.
func Flatness(n *morph.Neurite, tol float64, method FlatnessMethod) Result {
	res := pass("flatness")
	ext, ok := principalExtents(n.Points())
	if !ok {
		res.flag(Issue{
			Section: morph.NoSectionID,
			Point:   -1,
			Detail:  "fewer than three distinct points, degenerate cloud",
		})
		return res
	}

	switch method {
	case FlatnessRatio:
		ratio := 0.0
		if ext[1] > 0 {
			ratio = ext[2] / ext[1]
		}
		if ratio < tol {
			res.flag(Issue{
				Section: morph.NoSectionID,
				Point:   -1,
				Detail:  fmt.Sprintf("extent ratio %g below %g (extents %g, %g, %g)", ratio, tol, ext[0], ext[1], ext[2]),
			})
		}
	default:
		for _, e := range ext {
			if e < tol {
				res.flag(Issue{
					Section: morph.NoSectionID,
					Point:   -1,
					Detail:  fmt.Sprintf("extent %g below %g (extents %g, %g, %g)", e, tol, ext[0], ext[1], ext[2]),
				})
				break
			}
		}
	}
	return res
}

// principalExtents returns the peak-to-peak extents of the point cloud
// along the eigenvectors of its covariance matrix, sorted descending.
// Reports false when fewer than three distinct positions remain after
// deduplication.
func principalExtents(pts []morph.Point) ([3]float64, bool) {
	seen := make(map[[3]float64]struct{}, len(pts))
	var rows []float64
	for _, p := range pts {
		key := [3]float64{p.X, p.Y, p.Z}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		rows = append(rows, p.X, p.Y, p.Z)
	}
	count := len(rows) / 3
	if count < 3 {
		return [3]float64{}, false
	}

	data := mat.NewDense(count, 3, rows)
	var mean [3]float64
	for i := 0; i < count; i++ {
		for j := 0; j < 3; j++ {
			mean[j] += data.At(i, j)
		}
	}
	for j := 0; j < 3; j++ {
		mean[j] /= float64(count)
	}
	centered := mat.NewDense(count, 3, nil)
	for i := 0; i < count; i++ {
		for j := 0; j < 3; j++ {
			centered.Set(i, j, data.At(i, j)-mean[j])
		}
	}

	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, centered, nil)
	var eig mat.EigenSym
	if !eig.Factorize(&cov, true) {
		return [3]float64{}, false
	}
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	var proj mat.Dense
	proj.Mul(centered, &vecs)

	var ext [3]float64
	for j := 0; j < 3; j++ {
		lo, hi := math.Inf(1), math.Inf(-1)
		for i := 0; i < count; i++ {
			v := proj.At(i, j)
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		ext[j] = hi - lo
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(ext[:])))
	return ext, true
}
