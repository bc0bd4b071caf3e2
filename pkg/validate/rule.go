// Package validate implements the record validation engine: an ordered set
// of data-driven rules evaluated against each record, with aggregated batch
// statistics. Rules are configuration, built once and passed to the engine;
// the evaluation loop never needs to change when the rule set does.
package validate

import "github.com/jmylchreest/cleanse/pkg/dataset"

// CheckFunc evaluates one rule against a record. On failure it returns a
// rendered, human-readable message that may embed observed values (actual
// character counts, the offending URL). It must never panic on malformed
// input: a value of an unexpected type fails the check instead.
type CheckFunc func(rec dataset.Record) (passed bool, message string)

// Rule is a single named validation check against one record field.
type Rule struct {
	// Field the rule reads. Informational for rules that consult more than
	// one field (the reason code is the stable identifier).
	Field string

	// Reason is the stable reason code recorded on failure.
	Reason string

	// Description summarizes the predicate for rule listings.
	Description string

	// OnlyIfPresent skips the rule (treated as passed) when Field is
	// absent, null, or empty on the record, rather than failing it.
	OnlyIfPresent bool

	// Check is the predicate.
	Check CheckFunc
}

// Verdict is the outcome of evaluating all rules against one record.
// Every rule runs; there is no short-circuit, so a single record can carry
// several simultaneous failure reasons.
type Verdict struct {
	Passed   bool
	Reasons  []string
	Messages []string
}
