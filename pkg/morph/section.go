package morph

import "slices"

// SectionID addresses a section within its morphology's arena.
// Ids are dense integers assigned in construction order and stay stable for
// the lifetime of the morphology (except across [FuseUnifurcations], which
// renumbers).
type SectionID int

// NoSectionID marks the absence of a parent section.
const NoSectionID SectionID = -1

// Section is one maximal unbranched polyline between two topological
// boundaries (root, forking point, or leaf). A section owns its points and
// its children exclusively; the parent link is a non-owning back-reference
// into the same arena.
//
// The continuity invariant holds for every non-root section: its first point
// is a positional duplicate of its parent's last point.
type Section struct {
	id       SectionID
	stype    NeuriteType
	points   []Point
	parent   SectionID
	children []SectionID
	owner    *Morphology
}

// ID returns the section's stable arena id.
func (s *Section) ID() SectionID { return s.id }

// Type returns the neurite type of the section.
func (s *Section) Type() NeuriteType { return s.stype }

// Points returns the section's polyline, always at least two points long.
// The returned slice is the live backing array: coordinate values may be
// rewritten in place by bulk transforms, but callers must not grow, shrink
// or reorder it.
func (s *Section) Points() []Point { return s.points }

// Parent returns the parent section, or nil for a root.
func (s *Section) Parent() *Section {
	if s.parent == NoSectionID {
		return nil
	}
	return s.owner.sections[s.parent]
}

// Children returns the child sections in insertion order.
// Returns nil for a leaf.
func (s *Section) Children() []*Section {
	if len(s.children) == 0 {
		return nil
	}
	out := make([]*Section, len(s.children))
	for i, id := range s.children {
		out[i] = s.owner.sections[id]
	}
	return out
}

// NumChildren returns the number of child sections.
func (s *Section) NumChildren() int { return len(s.children) }

// IsRoot reports whether the section has no parent.
func (s *Section) IsRoot() bool { return s.parent == NoSectionID }

// IsLeaf reports whether the section has no children.
func (s *Section) IsLeaf() bool { return len(s.children) == 0 }

// IsForkingPoint reports whether the section ends in a forking point, i.e.
// has more than one child. This is the general multifurcation case.
func (s *Section) IsForkingPoint() bool { return len(s.children) > 1 }

// IsBifurcationPoint reports whether the section ends in a bifurcation,
// i.e. has exactly two children.
func (s *Section) IsBifurcationPoint() bool { return len(s.children) == 2 }

// AppendChild attaches child under s, transferring exclusive ownership.
// Returns [ErrSectionAttached] if the child already has a parent, or
// [ErrForeignSection] if the two sections live in different arenas.
// A section with exactly one child is a degenerate shape; see
// [FuseUnifurcations] for the caller-selectable normalization.
func (s *Section) AppendChild(child *Section) error {
	if child.owner != s.owner {
		return ErrForeignSection
	}
	if child.parent != NoSectionID {
		return ErrSectionAttached
	}
	child.parent = s.id
	s.children = append(s.children, child.id)
	return nil
}

// FirstPoint returns the first point of the section.
func (s *Section) FirstPoint() Point { return s.points[0] }

// LastPoint returns the last point of the section. For a forking section
// this is the branch point shared with every child's first point.
func (s *Section) LastPoint() Point { return s.points[len(s.points)-1] }

// Length returns the polyline length of the section: the sum of Euclidean
// distances between consecutive points.
func (s *Section) Length() float64 {
	var total float64
	for i := 1; i < len(s.points); i++ {
		total += s.points[i-1].Distance(s.points[i])
	}
	return total
}

// PathLength returns the cumulative polyline length from the section's first
// point back to the root of its tree, walking parent links iteratively.
func (s *Section) PathLength() float64 {
	var total float64
	for cur := s.Parent(); cur != nil; cur = cur.Parent() {
		total += cur.Length()
	}
	return total
}

// clone of the child id list, used by normalization passes that rewrite
// topology while iterating.
func (s *Section) childIDs() []SectionID { return slices.Clone(s.children) }
