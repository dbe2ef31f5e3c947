package morph

// Soma is the cell body, reconstructed from the soma-tagged subset of the
// input samples. Per-convention sub-validation (single point, three-point
// cylinder, closed contour) is the job of format-specific collaborators;
// this type only guarantees a non-empty, non-bifurcating point set.
type Soma struct {
	points []Point
}

// Points returns the soma's points in file order. Like section points, the
// slice is live and rewritten in place by bulk transforms.
func (s *Soma) Points() []Point { return s.points }

// Center returns the mean position of the soma points.
func (s *Soma) Center() Point {
	if len(s.points) == 0 {
		return Point{}
	}
	var c Point
	for _, p := range s.points {
		c.X += p.X
		c.Y += p.Y
		c.Z += p.Z
	}
	n := float64(len(s.points))
	return Point{X: c.X / n, Y: c.Y / n, Z: c.Z / n}
}

// MeanRadius returns the average radius of the soma points.
func (s *Soma) MeanRadius() float64 {
	if len(s.points) == 0 {
		return 0
	}
	var total float64
	for _, p := range s.points {
		total += p.R
	}
	return total / float64(len(s.points))
}
