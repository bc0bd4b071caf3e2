package pipeline

import "fmt"

// Funnel records the record-count reductions across pipeline stages. Counts
// are derived from the actual record slices at each stage boundary, so the
// identities below hold by construction; Check exists so tests and report
// generation can assert them.
type Funnel struct {
	Loaded              int `json:"loaded"`
	CompletenessDropped int `json:"completeness_dropped"`
	DuplicatesDropped   int `json:"duplicates_dropped"`
	Validated           int `json:"validated"`
	Passed              int `json:"passed"`
	Failed              int `json:"failed"`
}

// Check verifies the funnel identities:
//
//	loaded    = completeness_dropped + duplicates_dropped + validated
//	validated = passed + failed
//
// A violation is a defect in the pipeline, not a data problem.
func (f Funnel) Check() error {
	if f.Loaded != f.CompletenessDropped+f.DuplicatesDropped+f.Validated {
		return fmt.Errorf("funnel mismatch: loaded=%d but dropped=%d+%d and validated=%d",
			f.Loaded, f.CompletenessDropped, f.DuplicatesDropped, f.Validated)
	}
	if f.Validated != f.Passed+f.Failed {
		return fmt.Errorf("funnel mismatch: validated=%d but passed=%d and failed=%d",
			f.Validated, f.Passed, f.Failed)
	}
	return nil
}
