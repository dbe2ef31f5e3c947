package morph

import (
	"fmt"
	"math"
)

// NeuriteType classifies a point or section by the structure it belongs to.
// Values follow the SWC type column convention.
type NeuriteType int

const (
	// TypeUndefined marks points with no structure tag.
	TypeUndefined NeuriteType = 0
	// TypeSoma marks cell-body points. Soma points are consumed by soma
	// reconstruction and never appear inside neurite sections.
	TypeSoma NeuriteType = 1
	// TypeAxon marks axonal points.
	TypeAxon NeuriteType = 2
	// TypeBasalDendrite marks basal dendrite points.
	TypeBasalDendrite NeuriteType = 3
	// TypeApicalDendrite marks apical dendrite points.
	TypeApicalDendrite NeuriteType = 4
	// TypeCustom marks any tag outside the standard range.
	TypeCustom NeuriteType = 5
)

// NeuriteTypeFromTag maps a raw SWC structure tag to a NeuriteType.
// Tags above the standard range collapse to [TypeCustom].
func NeuriteTypeFromTag(tag int) NeuriteType {
	if tag >= 0 && tag <= int(TypeApicalDendrite) {
		return NeuriteType(tag)
	}
	return TypeCustom
}

// String returns a human-readable name for the type.
func (t NeuriteType) String() string {
	switch t {
	case TypeUndefined:
		return "undefined"
	case TypeSoma:
		return "soma"
	case TypeAxon:
		return "axon"
	case TypeBasalDendrite:
		return "basal dendrite"
	case TypeApicalDendrite:
		return "apical dendrite"
	case TypeCustom:
		return "custom"
	}
	return fmt.Sprintf("neurite type %d", int(t))
}

// NoParentID is the sentinel parent reference of samples with no parent.
const NoParentID = -1

// Sample is one digitized point as delivered by a format reader: a unique id
// (not necessarily contiguous), a structure tag, position, radius and the id
// of the parent sample ([NoParentID] for roots). Samples are consumed during
// one reconstruction pass and are not retained afterwards; their positional
// data lives on inside section point arrays.
type Sample struct {
	ID       int
	Type     NeuriteType
	X, Y, Z  float64
	R        float64
	ParentID int
}

// Point returns the positional part of the sample.
func (s Sample) Point() Point {
	return Point{X: s.X, Y: s.Y, Z: s.Z, R: s.R}
}

// Point is one vertex of a section polyline: position plus radius.
type Point struct {
	X, Y, Z float64
	R       float64
}

// Distance returns the Euclidean distance between the positions of p and q.
func (p Point) Distance(q Point) float64 {
	dx, dy, dz := p.X-q.X, p.Y-q.Y, p.Z-q.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// SamePosition reports whether p and q occupy the same position, ignoring
// radius. Coordinates are compared exactly; use [Point.Distance] with a
// tolerance for approximate matching.
func (p Point) SamePosition(q Point) bool {
	return p.X == q.X && p.Y == q.Y && p.Z == q.Z
}
