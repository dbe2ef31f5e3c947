package check_test

import (
	"testing"

	"github.com/arborlab/morpho/pkg/morph"
	"github.com/arborlab/morpho/pkg/morph/check"
)

func TestDuplicatePointsExact(t *testing.T) {
	n := singleSection(t, []morph.Point{
		{R: 1},
		{X: 1, R: 1},
		{X: 2, R: 1},
		{X: 1, R: 1}, // revisits point 1
	})
	res := check.DuplicatePoints(n, 0)
	if res.Passed {
		t.Fatal("coinciding points not flagged")
	}
	if len(res.Issues) != 1 {
		t.Fatalf("issues = %v, want exactly one", res.Issues)
	}
	if got := res.Issues[0].Point; got != 1 {
		t.Errorf("reported earlier point = %d, want 1", got)
	}
}

func TestDuplicatePointsSkipsBoundaries(t *testing.T) {
	// Each child's first point duplicates the trunk's last point on purpose.
	n := forked(t,
		[]morph.Point{{R: 1}, {X: 1, R: 0.9}},
		[]morph.Point{{X: 1, R: 0.9}, {X: 2, Y: 1, R: 0.8}},
		[]morph.Point{{X: 1, R: 0.9}, {X: 2, Y: -1, R: 0.8}},
	)
	if res := check.DuplicatePoints(n, 0); !res.Passed {
		t.Errorf("boundary duplicates flagged: %v", res.Issues)
	}
}

func TestDuplicatePointsAcrossSections(t *testing.T) {
	// The right branch ends where the left branch ends.
	n := forked(t,
		[]morph.Point{{R: 1}, {X: 1, R: 0.9}},
		[]morph.Point{{X: 1, R: 0.9}, {X: 2, Y: 1, R: 0.8}},
		[]morph.Point{{X: 1, R: 0.9}, {X: 2, Y: 1, R: 0.8}},
	)
	res := check.DuplicatePoints(n, 0)
	if res.Passed {
		t.Fatal("cross-section duplicate not flagged")
	}
}

func TestDuplicatePointsWithTolerance(t *testing.T) {
	n := singleSection(t, []morph.Point{
		{R: 1},
		{X: 1, R: 1},
		{X: 2, R: 1},
		{X: 2.05, R: 1},
	})
	if res := check.DuplicatePoints(n, 0); !res.Passed {
		t.Errorf("near-duplicates flagged at zero tolerance: %v", res.Issues)
	}
	if res := check.DuplicatePoints(n, 0.1); res.Passed {
		t.Error("near-duplicates not flagged at tolerance 0.1")
	}
}
