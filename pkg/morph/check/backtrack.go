package check

import (
	"fmt"
	"math"

	"github.com/arborlab/morpho/pkg/morph"
)

// BackTracking looks for sections that double back on themselves: a later
// segment whose endpoint falls inside the cylindrical volume of an earlier,
// non-adjacent segment in the same section while pointing substantially the
// opposite way. Such zigzags come from digitization slips and corrupt
// meshing downstream. The first match per section is reported.
func BackTracking(n *morph.Neurite) Result {
	res := pass("back-tracking")
	for s := range morph.Preorder(n.RootNode()) {
		pts := s.Points()
		if len(pts) <= 2 {
			continue
		}
		segs := nonZeroSegments(pts)
		if issue, found := firstBackTrack(s.ID(), segs); found {
			res.flag(issue)
		}
	}
	return res
}

type seg struct {
	index  int // offset of the first endpoint in the section's points
	p0, p1 morph.Point
}

// nonZeroSegments pairs consecutive points, dropping zero-length segments.
func nonZeroSegments(pts []morph.Point) []seg {
	segs := make([]seg, 0, len(pts)-1)
	for i := 1; i < len(pts); i++ {
		if pts[i-1].SamePosition(pts[i]) {
			continue
		}
		segs = append(segs, seg{index: i - 1, p0: pts[i-1], p1: pts[i]})
	}
	return segs
}

func firstBackTrack(id morph.SectionID, segs []seg) (Issue, bool) {
	for a := 2; a < len(segs); a++ {
		later := segs[a]
		for b := 0; b < a-1; b++ {
			if !backTracks(later, segs[b]) {
				continue
			}
			return Issue{
				Section: id,
				Point:   later.index,
				At:      later.p1,
				Detail:  fmt.Sprintf("segment at point %d falls back onto segment at point %d", later.index, segs[b].index),
			}, true
		}
	}
	return Issue{}, false
}

// backTracks reports whether the endpoint of the later segment lies within
// the cylindrical volume of the earlier one while heading the opposite way.
func backTracks(later, earlier seg) bool {
	dirLater := sub(later.p1, later.p0)
	dirEarlier := sub(earlier.p1, earlier.p0)
	if dot(dirLater, dirEarlier) >= 0 {
		return false
	}

	// Vector from the earlier segment's center to the later endpoint,
	// split into components along and orthogonal to the segment.
	center := scale(add(vec(earlier.p0), vec(earlier.p1)), 0.5)
	cp := sub3(vec(later.p1), center)
	prj := projection(cp, dirEarlier)

	radii := maxRadius(later) + maxRadius(earlier)
	if norm(sub3(cp, prj)) > radii {
		return false
	}
	// Within the segment's span, with a 5% slack on the half-length.
	return norm(prj) < 0.55*norm(dirEarlier)
}

func vec(p morph.Point) [3]float64 { return [3]float64{p.X, p.Y, p.Z} }

func sub(p, q morph.Point) [3]float64 {
	return [3]float64{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

func sub3(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func add(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func scale(a [3]float64, f float64) [3]float64 {
	return [3]float64{a[0] * f, a[1] * f, a[2] * f}
}

func dot(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func norm(a [3]float64) float64 {
	return math.Sqrt(dot(a, a))
}

// projection returns the vector projection of a onto b.
func projection(a, b [3]float64) [3]float64 {
	bb := dot(b, b)
	if bb == 0 {
		return [3]float64{}
	}
	return scale(b, dot(a, b)/bb)
}

func maxRadius(s seg) float64 {
	return math.Max(s.p0.R, s.p1.R)
}
