package check_test

import (
	"testing"

	"github.com/arborlab/morpho/pkg/morph"
	"github.com/arborlab/morpho/pkg/morph/check"
)

func TestBackTrackingFlagsReversal(t *testing.T) {
	// The last segment heads straight back into the first one's volume.
	n := singleSection(t, []morph.Point{
		{R: 0.1},
		{X: 1, R: 0.1},
		{X: 2, R: 0.1},
		{X: 1, R: 0.1},
	})
	res := check.BackTracking(n)
	if res.Passed {
		t.Fatal("reversal not flagged")
	}
	if len(res.Issues) != 1 {
		t.Fatalf("issues = %v, want exactly one", res.Issues)
	}
	if got := res.Issues[0].Point; got != 2 {
		t.Errorf("offending segment start = %d, want 2", got)
	}
}

func TestBackTrackingPassesStraightSection(t *testing.T) {
	n := singleSection(t, []morph.Point{
		{R: 0.1},
		{X: 1, R: 0.1},
		{X: 2, R: 0.1},
		{X: 3, R: 0.1},
	})
	if res := check.BackTracking(n); !res.Passed {
		t.Errorf("straight section flagged: %v", res.Issues)
	}
}

func TestBackTrackingPassesDivergingTurn(t *testing.T) {
	// Reverses direction along x but leaves the earlier segment's volume.
	n := singleSection(t, []morph.Point{
		{R: 0.1},
		{X: 1, R: 0.1},
		{X: 2, Y: 2, R: 0.1},
		{X: 1, Y: 4, R: 0.1},
	})
	if res := check.BackTracking(n); !res.Passed {
		t.Errorf("diverging turn flagged: %v", res.Issues)
	}
}

func TestBackTrackingSkipsShortSections(t *testing.T) {
	// Two points can never form a non-adjacent pair.
	n := singleSection(t, []morph.Point{
		{R: 0.1},
		{X: 1, R: 0.1},
	})
	if res := check.BackTracking(n); !res.Passed {
		t.Errorf("two-point section flagged: %v", res.Issues)
	}
}

func TestBackTrackingIgnoresAdjacentSegments(t *testing.T) {
	// A sharp hairpin between adjacent segments is a turn, not a back-track.
	n := singleSection(t, []morph.Point{
		{R: 0.1},
		{X: 2, R: 0.1},
		{X: 1, Y: 0.05, R: 0.1},
	})
	if res := check.BackTracking(n); !res.Passed {
		t.Errorf("adjacent hairpin flagged: %v", res.Issues)
	}
}
