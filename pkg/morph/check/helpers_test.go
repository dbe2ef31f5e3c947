package check_test

import (
	"testing"

	"github.com/arborlab/morpho/pkg/morph"
)

// singleSection wraps one point list into a one-section neurite.
func singleSection(t *testing.T, pts []morph.Point) *morph.Neurite {
	t.Helper()
	m := morph.NewMorphology("fixture")
	s, err := m.NewSection(morph.TypeAxon, pts)
	if err != nil {
		t.Fatal(err)
	}
	n, err := m.AddNeurite(s)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

// forked builds trunk → (left, right) with the boundary point duplicated
// into each child, mirroring what reconstruction produces.
func forked(t *testing.T, trunk, left, right []morph.Point) *morph.Neurite {
	t.Helper()
	m := morph.NewMorphology("fixture")
	ts, err := m.NewSection(morph.TypeAxon, trunk)
	if err != nil {
		t.Fatal(err)
	}
	for _, pts := range [][]morph.Point{left, right} {
		child, err := m.NewSection(morph.TypeAxon, pts)
		if err != nil {
			t.Fatal(err)
		}
		if err := ts.AppendChild(child); err != nil {
			t.Fatal(err)
		}
	}
	n, err := m.AddNeurite(ts)
	if err != nil {
		t.Fatal(err)
	}
	return n
}
