package validate

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/cleanse/pkg/dataset"
)

// Engine evaluates records against a fixed, ordered rule set. The rule set
// is immutable after construction; one engine can validate any number of
// batches.
type Engine struct {
	rules []Rule
}

// NewEngine creates an engine with the given rules, evaluated in order.
// With no rules every record passes.
func NewEngine(rules []Rule) *Engine {
	owned := make([]Rule, len(rules))
	copy(owned, rules)
	return &Engine{rules: owned}
}

// Rules returns the active rule set in evaluation order.
func (e *Engine) Rules() []Rule {
	out := make([]Rule, len(e.rules))
	copy(out, e.rules)
	return out
}

// ValidateRecord runs every rule against the record and returns the
// combined verdict. Rules with OnlyIfPresent skip absent/null/empty fields.
func (e *Engine) ValidateRecord(rec dataset.Record) Verdict {
	v := Verdict{Passed: true}
	for _, rule := range e.rules {
		if rule.OnlyIfPresent && rec.IsMissing(rule.Field) {
			continue
		}
		passed, message := rule.Check(rec)
		if passed {
			continue
		}
		v.Passed = false
		v.Reasons = append(v.Reasons, rule.Reason)
		if message == "" {
			message = ReasonLabel(rule.Reason)
		}
		v.Messages = append(v.Messages, message)
	}
	return v
}

// ValidateBatch evaluates every record in input order and accumulates
// statistics. The returned verdicts are index-aligned with the input.
func (e *Engine) ValidateBatch(records []dataset.Record) ([]Verdict, *Statistics) {
	verdicts := make([]Verdict, 0, len(records))
	stats := NewStatistics()
	stats.Total = len(records)

	for i, rec := range records {
		v := e.ValidateRecord(rec)
		verdicts = append(verdicts, v)
		if v.Passed {
			stats.PassedCount++
			continue
		}
		stats.FailedCount++
		for _, reason := range v.Reasons {
			stats.ReasonCounts[reason]++
		}
		stats.FailedRecords = append(stats.FailedRecords, FailedRecord{
			Index:    i,
			Label:    recordLabel(i, rec),
			Reasons:  v.Reasons,
			Messages: v.Messages,
		})
	}
	return verdicts, stats
}

// recordLabel builds a stable identifier for failure details: position in
// the validated set plus the title when one exists.
func recordLabel(index int, rec dataset.Record) string {
	if title, ok := rec.Text(dataset.FieldTitle); ok {
		if title = strings.TrimSpace(title); title != "" {
			return fmt.Sprintf("#%d (%s)", index, title)
		}
	}
	return fmt.Sprintf("#%d (untitled)", index)
}
