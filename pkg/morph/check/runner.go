package check

import (
	"github.com/google/uuid"

	"github.com/arborlab/morpho/pkg/morph"
)

// Entry is one validator result on one neurite.
type Entry struct {
	Neurite int // index within the morphology's neurite list
	Type    morph.NeuriteType
	Result
}

// Report collects the results of one check run over a morphology.
type Report struct {
	RunID      uuid.UUID
	Morphology string
	Entries    []Entry
}

// Passed reports whether every entry passed.
func (r *Report) Passed() bool {
	for _, e := range r.Entries {
		if !e.Passed {
			return false
		}
	}
	return true
}

// Run executes the enabled validators on every neurite of the morphology.
// Validators never abort: a failed check is a report entry, not an error.
// The only error case is an invalid configuration.
func Run(m *morph.Morphology, cfg Config) (*Report, error) {
	flatMethod, err := cfg.Flatness.method()
	if err != nil {
		return nil, err
	}

	report := &Report{RunID: uuid.New(), Morphology: m.Name()}
	for i, n := range m.Neurites() {
		add := func(res Result) {
			report.Entries = append(report.Entries, Entry{Neurite: i, Type: n.Type(), Result: res})
		}
		if cfg.Monotonic.Enabled {
			add(MonotonicRadius(n, cfg.Monotonic.Tolerance))
		}
		if cfg.Flatness.Enabled {
			add(Flatness(n, cfg.Flatness.Tolerance, flatMethod))
		}
		if cfg.BackTracking.Enabled {
			add(BackTracking(n))
		}
		if cfg.Duplicates.Enabled {
			add(DuplicatePoints(n, cfg.Duplicates.Tolerance))
		}
	}
	return report, nil
}
