package morph

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrZeroAxis is returned by [Rotate] when the rotation axis has zero length.
var ErrZeroAxis = errors.New("rotation axis must be non-zero")

// Translate shifts every point of the morphology (soma and all sections) by
// the given offset, as one atomic pass. Boundary points shared between a
// parent's tail and a child's head are stored in both sections and receive
// the identical offset, so the continuity invariant is preserved.
//
// Callers must not advance iterators derived from m across this call.
func Translate(m *Morphology, dx, dy, dz float64) {
	shift := func(pts []Point) {
		for i := range pts {
			pts[i].X += dx
			pts[i].Y += dy
			pts[i].Z += dz
		}
	}
	shift(m.soma.points)
	for _, s := range m.sections {
		if s != nil {
			shift(s.points)
		}
	}
}

// Rotate rotates every point of the morphology around the origin by angle
// radians about the given axis, as one atomic pass. Radii are untouched.
// The rotation matrix is the Rodrigues form built from the normalized axis.
func Rotate(m *Morphology, axis [3]float64, angle float64) error {
	norm := math.Sqrt(axis[0]*axis[0] + axis[1]*axis[1] + axis[2]*axis[2])
	if norm == 0 {
		return ErrZeroAxis
	}
	k := mat.NewVecDense(3, []float64{axis[0] / norm, axis[1] / norm, axis[2] / norm})

	// R = cos(a)·I + sin(a)·K + (1−cos(a))·kkᵀ with K the cross-product
	// matrix of k.
	sin, cos := math.Sincos(angle)
	cross := mat.NewDense(3, 3, []float64{
		0, -k.AtVec(2), k.AtVec(1),
		k.AtVec(2), 0, -k.AtVec(0),
		-k.AtVec(1), k.AtVec(0), 0,
	})
	var outer mat.Dense
	outer.Outer(1-cos, k, k)

	r := mat.NewDense(3, 3, []float64{
		cos, 0, 0,
		0, cos, 0,
		0, 0, cos,
	})
	var scaledCross mat.Dense
	scaledCross.Scale(sin, cross)
	r.Add(r, &scaledCross)
	r.Add(r, &outer)

	in := mat.NewVecDense(3, nil)
	var out mat.VecDense
	rotate := func(pts []Point) {
		for i := range pts {
			in.SetVec(0, pts[i].X)
			in.SetVec(1, pts[i].Y)
			in.SetVec(2, pts[i].Z)
			out.MulVec(r, in)
			pts[i].X = out.AtVec(0)
			pts[i].Y = out.AtVec(1)
			pts[i].Z = out.AtVec(2)
		}
	}
	rotate(m.soma.points)
	for _, s := range m.sections {
		if s != nil {
			rotate(s.points)
		}
	}
	return nil
}
