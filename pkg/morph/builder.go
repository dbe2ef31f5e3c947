package morph

import "fmt"

// UnifurcationPolicy selects what [Build] does with sections that end up
// with exactly one child. The flat formats never produce such sections from
// branch detection alone, but block-structured inputs and manual assembly
// can. There is no universally right answer, so the policy is caller
// supplied rather than inferred.
type UnifurcationPolicy int

const (
	// UnifurcationFlag records a [WarnUnifurcation] warning for each
	// single-child section and leaves the topology untouched. Default.
	UnifurcationFlag UnifurcationPolicy = iota
	// UnifurcationFuse merges each single child into its parent section,
	// re-parenting grandchildren. Section ids are renumbered afterwards.
	UnifurcationFuse
)

// Options configures reconstruction.
type Options struct {
	// Name is stored as morphology metadata.
	Name string
	// Unifurcations selects the single-child section policy.
	Unifurcations UnifurcationPolicy
	// Logf receives structural warnings as they are found. Warnings are
	// also retained on the morphology regardless of this hook.
	Logf func(format string, args ...any)
}

// Build reconstructs a morphology from the full ordered sample list of one
// file: soma samples plus one or more neurite point sets sharing a single id
// namespace. Points are grouped into maximal unbranched sections, sections
// are linked into one tree per neurite, and the soma is assembled from the
// soma-tagged subset.
//
// Build fails fast on anything that would make the result topologically
// unsound for traversal: duplicate or unresolved sample ids, a malformed
// soma, sections with fewer than two points, and samples unreachable from
// every neurite root. Findings that need full-tree inspection (radius
// monotonicity, flatness, back-tracking, duplicate points) are left to the
// check package and never abort a load.
func Build(samples []Sample, opts Options) (*Morphology, error) {
	if opts.Logf == nil {
		opts.Logf = func(string, ...any) {}
	}

	index := make(map[int]int, len(samples))
	for i, s := range samples {
		if _, dup := index[s.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, s.ID)
		}
		index[s.ID] = i
	}

	// Child positions per sample id, file order. Undefined parents fail
	// here, before any tree is grown.
	children := make(map[int][]int)
	for i, s := range samples {
		if s.ParentID == NoParentID {
			continue
		}
		if _, ok := index[s.ParentID]; !ok {
			return nil, fmt.Errorf("%w: sample %d references %d", ErrUnresolvedParent, s.ID, s.ParentID)
		}
		children[s.ParentID] = append(children[s.ParentID], i)
	}

	m := NewMorphology(opts.Name)

	visited := make([]bool, len(samples))
	if err := buildSoma(m, samples, index, visited); err != nil {
		return nil, err
	}

	isSomaSample := func(pos int) bool { return samples[pos].Type == TypeSoma }

	// A neurite root is a non-soma sample parented to the soma or to
	// nothing at all.
	for i, s := range samples {
		if s.Type == TypeSoma {
			continue
		}
		if s.ParentID != NoParentID && !isSomaSample(index[s.ParentID]) {
			continue
		}
		root, err := growNeurite(m, samples, children, i, visited)
		if err != nil {
			return nil, fmt.Errorf("neurite rooted at sample %d: %w", s.ID, err)
		}
		if _, err := m.AddNeurite(root); err != nil {
			return nil, err
		}
	}

	for i, seen := range visited {
		if !seen {
			return nil, fmt.Errorf("%w: sample %d unreachable from any root", ErrDisconnected, samples[i].ID)
		}
	}

	switch opts.Unifurcations {
	case UnifurcationFuse:
		if fused := FuseUnifurcations(m); fused > 0 {
			opts.Logf("fused %d single-child sections", fused)
		}
	default:
		flagUnifurcations(m)
	}

	for _, w := range m.warnings {
		opts.Logf("%s", w.Message)
	}
	return m, nil
}

// buildSoma collects the soma-tagged samples and validates their topology.
// Bifurcation detection follows the cylinder-soma convention: a point set
// larger than three points where two soma samples share a parent is
// rejected.
func buildSoma(m *Morphology, samples []Sample, index map[int]int, visited []bool) error {
	var pts []Point
	parentSeen := make(map[int]bool)
	bifurcating := false
	for i, s := range samples {
		if s.Type != TypeSoma {
			continue
		}
		visited[i] = true
		pts = append(pts, s.Point())
		if s.ParentID == NoParentID {
			continue
		}
		p, ok := index[s.ParentID]
		if !ok || samples[p].Type != TypeSoma {
			return fmt.Errorf("%w: soma sample %d parented outside the soma", ErrMalformedSoma, s.ID)
		}
		if parentSeen[s.ParentID] {
			bifurcating = true
		}
		parentSeen[s.ParentID] = true
	}
	if len(pts) == 0 {
		return fmt.Errorf("%w: no soma points", ErrMalformedSoma)
	}
	if len(pts) > 3 && bifurcating {
		return fmt.Errorf("%w: bifurcating soma", ErrMalformedSoma)
	}
	m.soma.points = pts
	return nil
}

// growNeurite builds every section of the tree rooted at sample position
// rootPos, using an explicit work stack. Returns the root section.
func growNeurite(m *Morphology, samples []Sample, children map[int][]int, rootPos int, visited []bool) (*Section, error) {
	type work struct {
		pos    int       // first sample of the section body
		parent SectionID // section to attach to, NoSectionID for the root
		seed   Point     // boundary point duplicated as first point
		seeded bool
	}

	var root *Section
	stack := []work{{pos: rootPos, parent: NoSectionID}}
	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		var pts []Point
		var pending []Warning // duplicate-collapse warnings awaiting a section id
		if w.seeded {
			pts = append(pts, w.seed)
		}

		cur := w.pos
		for {
			visited[cur] = true
			p := samples[cur].Point()
			if n := len(pts); n > 0 && pts[n-1].SamePosition(p) {
				// Consecutive duplicate boundary points collapse to
				// one; keep the later radius.
				pts[n-1].R = p.R
				pending = append(pending, Warning{
					Kind:    WarnDuplicatePoint,
					Section: NoSectionID,
					Sample:  samples[cur].ID,
					Message: fmt.Sprintf("sample %d duplicates the previous point and was collapsed", samples[cur].ID),
				})
			} else {
				pts = append(pts, p)
			}

			kids := children[samples[cur].ID]
			if len(kids) == 1 {
				cur = kids[0]
				continue
			}

			// Boundary: leaf or forking point. The boundary point is
			// the section's last element; the section's type comes
			// from its first body sample.
			sec, err := m.NewSection(samples[w.pos].Type, pts)
			if err != nil {
				return nil, err
			}
			if w.parent == NoSectionID {
				root = sec
			} else if err := m.sections[w.parent].AppendChild(sec); err != nil {
				return nil, err
			}
			for i := range pending {
				pending[i].Section = sec.id
				m.warn(pending[i])
			}

			boundary := pts[len(pts)-1]
			for i := len(kids) - 1; i >= 0; i-- {
				stack = append(stack, work{
					pos:    kids[i],
					parent: sec.id,
					seed:   boundary,
					seeded: true,
				})
			}
			break
		}
	}
	return root, nil
}

// flagUnifurcations records a warning for every single-child section.
func flagUnifurcations(m *Morphology) {
	for _, s := range m.sections {
		if s != nil && len(s.children) == 1 {
			m.warn(Warning{
				Kind:    WarnUnifurcation,
				Section: s.id,
				Sample:  NoParentID,
				Message: fmt.Sprintf("section %d has exactly one child", s.id),
			})
		}
	}
}
