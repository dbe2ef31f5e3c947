package check

import (
	"fmt"
	"math"

	"github.com/arborlab/morpho/pkg/morph"
)

// DuplicatePoints reports every pair of points in the neurite that coincide
// within tol. The first point of each non-root section is skipped, since it
// deliberately duplicates the parent's boundary point; everything else that
// coincides implies a corrupting zero-length segment somewhere downstream.
// A tolerance of zero matches exact positions only.
func DuplicatePoints(n *morph.Neurite, tol float64) Result {
	res := pass("duplicate-points")
	grid := newPointGrid(tol)
	for s := range morph.Preorder(n.RootNode()) {
		pts := s.Points()
		start := 0
		if !s.IsRoot() {
			start = 1
		}
		for i := start; i < len(pts); i++ {
			for _, prev := range grid.near(pts[i]) {
				res.flag(Issue{
					Section: prev.section,
					Point:   prev.index,
					At:      prev.point,
					Detail: fmt.Sprintf("point %d of section %d coincides with point %d of section %d",
						i, s.ID(), prev.index, prev.section),
				})
			}
			grid.insert(gridEntry{section: s.ID(), index: i, point: pts[i]})
		}
	}
	return res
}

type gridEntry struct {
	section morph.SectionID
	index   int
	point   morph.Point
}

// pointGrid is a uniform spatial hash with cell size equal to the query
// tolerance, so matches can only live in the 27 neighboring cells.
type pointGrid struct {
	tol   float64
	cells map[[3]int64][]gridEntry
}

func newPointGrid(tol float64) *pointGrid {
	return &pointGrid{tol: tol, cells: make(map[[3]int64][]gridEntry)}
}

func (g *pointGrid) cell(p morph.Point) [3]int64 {
	if g.tol == 0 {
		// Exact matching: key cells by the raw bit patterns.
		return [3]int64{int64(math.Float64bits(p.X)), int64(math.Float64bits(p.Y)), int64(math.Float64bits(p.Z))}
	}
	return [3]int64{
		int64(math.Floor(p.X / g.tol)),
		int64(math.Floor(p.Y / g.tol)),
		int64(math.Floor(p.Z / g.tol)),
	}
}

func (g *pointGrid) insert(e gridEntry) {
	key := g.cell(e.point)
	g.cells[key] = append(g.cells[key], e)
}

// near returns the previously inserted entries within tolerance of p.
func (g *pointGrid) near(p morph.Point) []gridEntry {
	var hits []gridEntry
	if g.tol == 0 {
		for _, e := range g.cells[g.cell(p)] {
			if e.point.SamePosition(p) {
				hits = append(hits, e)
			}
		}
		return hits
	}
	base := g.cell(p)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dz := int64(-1); dz <= 1; dz++ {
				key := [3]int64{base[0] + dx, base[1] + dy, base[2] + dz}
				for _, e := range g.cells[key] {
					if e.point.Distance(p) <= g.tol {
						hits = append(hits, e)
					}
				}
			}
		}
	}
	return hits
}
