// Package pipeline sequences the cleaning stages for a scraped-article
// dataset: normalize text, standardize dates, drop incomplete records,
// deduplicate, validate, and select the passing subset. Stages run
// synchronously over the full in-memory record set; each stage consumes the
// previous stage's complete output.
package pipeline

import (
	"github.com/jmylchreest/cleanse/internal/logger"
	"github.com/jmylchreest/cleanse/pkg/dataset"
	"github.com/jmylchreest/cleanse/pkg/normalize"
	"github.com/jmylchreest/cleanse/pkg/validate"
)

// Options configures a pipeline run.
type Options struct {
	// MinContentLength is the short_content threshold. Zero or negative
	// means validate.DefaultMinContentLength. Ignored when Rules is set.
	MinContentLength int

	// Rules overrides the active rule set. Nil means the built-in defaults.
	Rules []validate.Rule
}

// Pipeline owns the stage sequencing and the record set handed between
// stages. Construct once per run; the rule set is fixed at construction.
type Pipeline struct {
	engine *validate.Engine
}

// Result is the outcome of one pipeline run.
type Result struct {
	// Funnel holds the per-stage record counts.
	Funnel Funnel

	// Records is the full validated set (post-dedup), normalized, in order.
	Records []dataset.Record

	// Verdicts is index-aligned with Records.
	Verdicts []validate.Verdict

	// Stats is the aggregated validation outcome for Records.
	Stats *validate.Statistics

	// Cleaned is the passing subset of Records, in relative input order.
	Cleaned []dataset.Record
}

// New builds a pipeline from options.
func New(opts Options) *Pipeline {
	rules := opts.Rules
	if rules == nil {
		rules = validate.DefaultRules(opts.MinContentLength)
	}
	return &Pipeline{engine: validate.NewEngine(rules)}
}

// Engine exposes the validation engine, mainly for rule listings.
func (p *Pipeline) Engine() *validate.Engine {
	return p.engine
}

// Run executes the full stage sequence over loaded records. Input records
// are not mutated; each record is cloned before normalization. Run never
// fails: per-field parse problems degrade locally and validation failures
// are expected outcomes captured in the result.
func (p *Pipeline) Run(records []dataset.Record) *Result {
	res := &Result{}
	res.Funnel.Loaded = len(records)

	// Normalize text and dates per record, on working copies.
	working := make([]dataset.Record, 0, len(records))
	for _, rec := range records {
		clone := rec.Clone()
		normalize.Record(clone)
		normalize.RecordDate(clone)
		working = append(working, clone)
	}
	logger.Debug("normalization complete", "records", len(working))

	working, res.Funnel.CompletenessDropped = dropIncomplete(working)
	logger.Info("completeness filter applied",
		"dropped", res.Funnel.CompletenessDropped, "remaining", len(working))

	working, res.Funnel.DuplicatesDropped = dedupe(working)
	logger.Info("deduplication applied",
		"dropped", res.Funnel.DuplicatesDropped, "remaining", len(working))

	res.Records = working
	res.Verdicts, res.Stats = p.engine.ValidateBatch(working)
	res.Funnel.Validated = res.Stats.Total
	res.Funnel.Passed = res.Stats.PassedCount
	res.Funnel.Failed = res.Stats.FailedCount
	logger.Info("validation complete",
		"passed", res.Stats.PassedCount, "failed", res.Stats.FailedCount)

	res.Cleaned = make([]dataset.Record, 0, res.Stats.PassedCount)
	for i, rec := range res.Records {
		if res.Verdicts[i].Passed {
			res.Cleaned = append(res.Cleaned, rec)
		}
	}
	return res
}
