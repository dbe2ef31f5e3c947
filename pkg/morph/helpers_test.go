package morph_test

import (
	"testing"

	"github.com/arborlab/morpho/pkg/morph"
)

// syntheticSamples is the canonical two-neurite fixture: a single-point soma
// (id 1), an axon trunk 2→3→4 forking at 4 into leaves 5 and 6, and an
// unbranched basal dendrite 7→8→9→10.
func syntheticSamples() []morph.Sample {
	return []morph.Sample{
		{ID: 1, Type: morph.TypeSoma, R: 2, ParentID: morph.NoParentID},
		{ID: 2, Type: morph.TypeAxon, Y: 2, R: 1.0, ParentID: 1},
		{ID: 3, Type: morph.TypeAxon, Y: 4, R: 0.9, ParentID: 2},
		{ID: 4, Type: morph.TypeAxon, Y: 6, R: 0.8, ParentID: 3},
		{ID: 5, Type: morph.TypeAxon, X: -2, Y: 8, R: 0.7, ParentID: 4},
		{ID: 6, Type: morph.TypeAxon, X: 2, Y: 8, R: 0.7, ParentID: 4},
		{ID: 7, Type: morph.TypeBasalDendrite, X: 2, R: 1.0, ParentID: 1},
		{ID: 8, Type: morph.TypeBasalDendrite, X: 4, R: 0.9, ParentID: 7},
		{ID: 9, Type: morph.TypeBasalDendrite, X: 6, R: 0.8, ParentID: 8},
		{ID: 10, Type: morph.TypeBasalDendrite, X: 8, R: 0.7, ParentID: 9},
	}
}

func buildSynthetic(t *testing.T) *morph.Morphology {
	t.Helper()
	m, err := morph.Build(syntheticSamples(), morph.Options{Name: "synthetic"})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return m
}

func sectionIDs(seq func(yield func(*morph.Section) bool)) []morph.SectionID {
	var ids []morph.SectionID
	seq(func(s *morph.Section) bool {
		ids = append(ids, s.ID())
		return true
	})
	return ids
}
