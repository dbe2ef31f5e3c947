package morph

// FuseUnifurcations merges every single-child section into its parent and
// returns the number of sections removed. The child's points are appended to
// the parent (minus the duplicated boundary point) and grandchildren are
// re-parented, so the continuity invariant is preserved.
//
// The arena is compacted afterwards: remaining sections are renumbered to
// dense ids, invalidating any [SectionID] held from before the call.
func FuseUnifurcations(m *Morphology) int {
	fused := 0
	for _, n := range m.neurites {
		stack := []SectionID{n.root}
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			s := m.sections[id]
			for len(s.children) == 1 {
				child := m.sections[s.children[0]]
				s.points = append(s.points, child.points[1:]...)
				s.children = child.childIDs()
				for _, gc := range s.children {
					m.sections[gc].parent = s.id
				}
				m.sections[child.id] = nil
				fused++
			}
			stack = append(stack, s.children...)
		}
	}
	if fused > 0 {
		m.compact()
	}
	return fused
}

// compact renumbers the arena to dense ids after sections were removed.
func (m *Morphology) compact() {
	remap := make(map[SectionID]SectionID, len(m.sections))
	kept := m.sections[:0]
	for _, s := range m.sections {
		if s == nil {
			continue
		}
		remap[s.id] = SectionID(len(kept))
		kept = append(kept, s)
	}
	m.sections = kept
	for _, s := range m.sections {
		s.id = remap[s.id]
		if s.parent != NoSectionID {
			s.parent = remap[s.parent]
		}
		for i, c := range s.children {
			s.children[i] = remap[c]
		}
	}
	for _, n := range m.neurites {
		n.root = remap[n.root]
	}
	for i := range m.warnings {
		if id, ok := remap[m.warnings[i].Section]; ok {
			m.warnings[i].Section = id
		} else {
			m.warnings[i].Section = NoSectionID
		}
	}
}
