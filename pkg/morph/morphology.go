package morph

import "fmt"

// WarningKind distinguishes the non-fatal structural findings recorded
// during reconstruction. Warnings never abort a load; they are retained for
// downstream validators and logged through [Options.Logf].
type WarningKind int

const (
	// WarnUnifurcation marks a section with exactly one child. Sections
	// must have zero or two-plus children; a single child is a degenerate
	// boundary that callers may fuse away (see [UnifurcationFuse]).
	WarnUnifurcation WarningKind = iota
	// WarnDuplicatePoint marks consecutive input points at the same
	// position that were collapsed into one during section building.
	WarnDuplicatePoint
)

// Warning is one non-fatal structural finding.
type Warning struct {
	Kind    WarningKind
	Section SectionID // affected section, NoSectionID if not yet assigned
	Sample  int       // offending sample id, or NoParentID if unknown
	Message string
}

func (w Warning) String() string { return w.Message }

// Neurite is one tree of sections rooted directly off the soma.
type Neurite struct {
	stype NeuriteType
	root  SectionID
	owner *Morphology
}

// Type returns the neurite's type, taken from its root section.
func (n *Neurite) Type() NeuriteType { return n.stype }

// RootNode returns the root section of the neurite's tree.
func (n *Neurite) RootNode() *Section { return n.owner.sections[n.root] }

// Points returns all points of the neurite in preorder. Section boundary
// points appear once per owning section, so a branch point occurs once as a
// trunk's last point and again as each child's first point.
func (n *Neurite) Points() []Point {
	var pts []Point
	for s := range Preorder(n.RootNode()) {
		pts = append(pts, s.points...)
	}
	return pts
}

// Length returns the total polyline length of all sections in the neurite.
func (n *Neurite) Length() float64 {
	var total float64
	for s := range Preorder(n.RootNode()) {
		total += s.Length()
	}
	return total
}

// Sections returns the number of sections in the neurite's tree.
func (n *Neurite) Sections() int {
	count := 0
	for range Preorder(n.RootNode()) {
		count++
	}
	return count
}

// Morphology aggregates everything loaded from one source file: one soma,
// an ordered list of neurites, and metadata. It owns the section arena;
// every section of every neurite lives in it, addressed by [SectionID].
//
// A Morphology is not safe for concurrent use. Callers must not mutate it
// (transforms, normalization) while iterators derived from it are live.
type Morphology struct {
	name     string
	soma     *Soma
	neurites []*Neurite
	sections []*Section
	warnings []Warning
}

// NewMorphology creates an empty morphology with the given name. Sections
// are added through [Morphology.NewSection]; most callers use [Build]
// instead and never assemble trees by hand.
func NewMorphology(name string) *Morphology {
	return &Morphology{name: name, soma: &Soma{}}
}

// Name returns the morphology's name metadata.
func (m *Morphology) Name() string { return m.name }

// Soma returns the reconstructed cell body.
func (m *Morphology) Soma() *Soma { return m.soma }

// Neurites returns the neurites in file order.
func (m *Morphology) Neurites() []*Neurite { return m.neurites }

// Sections returns the flattened section index in id order. Entries removed
// by [FuseUnifurcations] never appear; the slice is freshly allocated.
func (m *Morphology) Sections() []*Section {
	out := make([]*Section, 0, len(m.sections))
	for _, s := range m.sections {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

// Section returns the section with the given id and true, or nil and false
// if the id is out of range.
func (m *Morphology) Section(id SectionID) (*Section, bool) {
	if id < 0 || int(id) >= len(m.sections) || m.sections[id] == nil {
		return nil, false
	}
	return m.sections[id], true
}

// Warnings returns the structural warnings recorded during reconstruction.
func (m *Morphology) Warnings() []Warning { return m.warnings }

// NewSection allocates a section in the arena and returns it. The section
// starts detached; link it with [Section.AppendChild] or register it as a
// neurite root with [Morphology.AddNeurite]. Returns [ErrInvalidSection]
// if fewer than two points are given.
func (m *Morphology) NewSection(stype NeuriteType, points []Point) (*Section, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSection, len(points))
	}
	s := &Section{
		id:     SectionID(len(m.sections)),
		stype:  stype,
		points: points,
		parent: NoSectionID,
		owner:  m,
	}
	m.sections = append(m.sections, s)
	return s, nil
}

// AddNeurite registers root as the root section of a new neurite. The
// neurite's type is taken from the root section. Returns
// [ErrSectionAttached] if root already has a parent, or [ErrForeignSection]
// if it lives in another arena.
func (m *Morphology) AddNeurite(root *Section) (*Neurite, error) {
	if root.owner != m {
		return nil, ErrForeignSection
	}
	if root.parent != NoSectionID {
		return nil, ErrSectionAttached
	}
	n := &Neurite{stype: root.stype, root: root.id, owner: m}
	m.neurites = append(m.neurites, n)
	return n, nil
}

func (m *Morphology) warn(w Warning) {
	m.warnings = append(m.warnings, w)
}
