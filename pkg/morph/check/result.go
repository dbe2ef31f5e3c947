// Package check provides topology validators for reconstructed
// morphologies: radius monotonicity, flatness, back-tracking and duplicate
// points. Validators are pure analysis over the traversal engine; finding an
// issue is a result, never an error. A TOML-configured runner bundles them
// into a per-morphology report.
package check

import (
	"fmt"

	"github.com/arborlab/morpho/pkg/morph"
)

// Issue pinpoints one offending location.
type Issue struct {
	Section morph.SectionID // affected section, NoSectionID for tree-level findings
	Point   int             // index into the section's points, -1 if not applicable
	At      morph.Point     // offending location
	Detail  string
}

func (i Issue) String() string {
	if i.Section == morph.NoSectionID {
		return i.Detail
	}
	return fmt.Sprintf("section %d: %s", i.Section, i.Detail)
}

// Result is the unified outcome of one validator on one neurite. Callers
// that only need a verdict read Passed; detail consumers read Issues.
type Result struct {
	Check  string
	Passed bool
	Issues []Issue
}

func pass(name string) Result {
	return Result{Check: name, Passed: true}
}

func (r *Result) flag(issue Issue) {
	r.Passed = false
	r.Issues = append(r.Issues, issue)
}
