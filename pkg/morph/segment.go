package morph

import "iter"

// Segment is one consecutive point pair within a section. Index is the
// offset of P0 in the section's point slice.
type Segment struct {
	Section SectionID
	Index   int
	P0, P1  Point
}

// Length returns the Euclidean length of the segment.
func (g Segment) Length() float64 { return g.P0.Distance(g.P1) }

// Segments yields every consecutive point pair of every section in the tree
// rooted at root, sections in preorder. Because a child section's first
// point duplicates its parent's last point, the pair crossing a section
// boundary is implicit and has zero length: summed segment lengths equal
// summed section lengths to floating-point precision.
func Segments(root *Section) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for s := range Preorder(root) {
			for i := 1; i < len(s.points); i++ {
				seg := Segment{
					Section: s.id,
					Index:   i - 1,
					P0:      s.points[i-1],
					P1:      s.points[i],
				}
				if !yield(seg) {
					return
				}
			}
		}
	}
}
