package check

import (
	"fmt"

	"github.com/arborlab/morpho/pkg/morph"
)

// MonotonicRadius verifies that radii never grow along the neurite: every
// point's radius must be at most its predecessor's radius plus tol, both
// within sections and across the section boundary to the parent's last
// point. Each violation is reported.
func MonotonicRadius(n *morph.Neurite, tol float64) Result {
	res := pass("monotonic-radius")
	for s := range morph.Preorder(n.RootNode()) {
		pts := s.Points()
		if parent := s.Parent(); parent != nil {
			if prev := parent.LastPoint(); pts[0].R > prev.R+tol {
				res.flag(Issue{
					Section: s.ID(),
					Point:   0,
					At:      pts[0],
					Detail:  fmt.Sprintf("first radius %g exceeds parent's last radius %g", pts[0].R, prev.R),
				})
			}
		}
		for i := 1; i < len(pts); i++ {
			if pts[i].R > pts[i-1].R+tol {
				res.flag(Issue{
					Section: s.ID(),
					Point:   i,
					At:      pts[i],
					Detail:  fmt.Sprintf("radius %g exceeds previous radius %g", pts[i].R, pts[i-1].R),
				})
			}
		}
	}
	return res
}
