// Package report renders the human-readable quality report for a pipeline
// run: funnel counts, field completeness, validation outcomes, failure
// distribution, date coverage, and failed-record details.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/cleanse/pkg/dataset"
	"github.com/jmylchreest/cleanse/pkg/normalize"
	"github.com/jmylchreest/cleanse/pkg/pipeline"
	"github.com/jmylchreest/cleanse/pkg/validate"
)

const ruleWidth = 60

// Options configures report rendering.
type Options struct {
	// IncludeFailedDetails adds the per-record failure listing.
	IncludeFailedDetails bool
}

// Render produces the quality report text for a pipeline result. It returns
// an error only when the funnel counts are inconsistent, which indicates a
// pipeline defect rather than bad input data.
func Render(res *pipeline.Result, opts Options) (string, error) {
	if err := res.Funnel.Check(); err != nil {
		return "", err
	}

	var b strings.Builder
	rule := strings.Repeat("=", ruleWidth)
	sep := strings.Repeat("-", ruleWidth)

	fmt.Fprintf(&b, "CLEANSE QUALITY REPORT\n%s\n\n", rule)

	writeProcessingStats(&b, sep, res.Funnel)
	writeCompleteness(&b, sep, res.Records)
	writeValidationStats(&b, sep, res.Stats)
	writeFailureDistribution(&b, sep, res.Stats)
	writeDateCoverage(&b, sep, res.Records)
	writeDuplicateStats(&b, sep, res.Funnel)
	if opts.IncludeFailedDetails && len(res.Stats.FailedRecords) > 0 {
		writeFailedDetails(&b, sep, res.Stats.FailedRecords)
	}
	writeSummary(&b, sep, res)

	fmt.Fprintf(&b, "%s\nEnd of report\n", rule)
	return b.String(), nil
}

func writeProcessingStats(b *strings.Builder, sep string, f pipeline.Funnel) {
	fmt.Fprintf(b, "1. RECORD PROCESSING STATISTICS\n%s\n", sep)
	totalDropped := f.CompletenessDropped + f.DuplicatesDropped
	fmt.Fprintf(b, "  Records loaded:            %s\n", humanize.Comma(int64(f.Loaded)))
	fmt.Fprintf(b, "  Records after cleaning:    %s\n", humanize.Comma(int64(f.Validated)))
	fmt.Fprintf(b, "  Records dropped:           %s\n", humanize.Comma(int64(totalDropped)))
	fmt.Fprintf(b, "    - Incomplete:            %d\n", f.CompletenessDropped)
	fmt.Fprintf(b, "    - Duplicates:            %d\n", f.DuplicatesDropped)
	b.WriteString("\n")
}

func writeCompleteness(b *strings.Builder, sep string, records []dataset.Record) {
	fmt.Fprintf(b, "2. FIELD COMPLETENESS (non-empty ratio)\n%s\n", sep)
	n := len(records)
	if n == 0 {
		b.WriteString("  (no records)\n\n")
		return
	}
	for _, field := range trackedFields(records) {
		nonEmpty := 0
		for _, rec := range records {
			if !rec.IsMissing(field) {
				nonEmpty++
			}
		}
		pct := float64(nonEmpty) / float64(n) * 100
		fmt.Fprintf(b, "  %-25s %6.1f%%  (%d/%d)\n", field, pct, nonEmpty, n)
	}
	b.WriteString("\n")
}

// trackedFields returns the canonical fields present on at least one record,
// in canonical order, then any extra fields in sorted order of appearance.
func trackedFields(records []dataset.Record) []string {
	present := make(map[string]struct{})
	for _, rec := range records {
		for field := range rec {
			present[field] = struct{}{}
		}
	}
	fields := make([]string, 0, len(present))
	for _, field := range dataset.CanonicalFields {
		if _, ok := present[field]; ok {
			fields = append(fields, field)
			delete(present, field)
		}
	}
	extra := make([]string, 0, len(present))
	for field := range present {
		extra = append(extra, field)
	}
	sort.Strings(extra)
	return append(fields, extra...)
}

func writeValidationStats(b *strings.Builder, sep string, stats *validate.Statistics) {
	fmt.Fprintf(b, "3. VALIDATION RESULT STATISTICS\n%s\n", sep)
	fmt.Fprintf(b, "  Validated records:         %d\n", stats.Total)
	fmt.Fprintf(b, "  Passed:                    %d\n", stats.PassedCount)
	fmt.Fprintf(b, "  Failed:                    %d\n", stats.FailedCount)
	fmt.Fprintf(b, "  Pass rate:                 %.1f%%\n\n", stats.PassRate())
}

func writeFailureDistribution(b *strings.Builder, sep string, stats *validate.Statistics) {
	fmt.Fprintf(b, "4. VALIDATION FAILURE DISTRIBUTION\n%s\n", sep)
	reasons := stats.ReasonsByFrequency()
	if len(reasons) == 0 {
		b.WriteString("  (none)\n\n")
		return
	}
	for _, rc := range reasons {
		pct := float64(rc.Count) / float64(stats.FailedCount) * 100
		fmt.Fprintf(b, "  %4d  (%5.1f%% of failed)  %s\n", rc.Count, pct, validate.ReasonLabel(rc.Reason))
	}
	b.WriteString("\n")
}

func writeDateCoverage(b *strings.Builder, sep string, records []dataset.Record) {
	fmt.Fprintf(b, "5. DATE COVERAGE (publication date)\n%s\n", sep)
	var earliest, latest time.Time
	withDate := 0
	for _, rec := range records {
		iso, ok := rec.Text(dataset.FieldPublishedDate)
		if !ok {
			continue
		}
		t, err := time.Parse(normalize.ISO, iso)
		if err != nil {
			continue
		}
		if withDate == 0 || t.Before(earliest) {
			earliest = t
		}
		if withDate == 0 || t.After(latest) {
			latest = t
		}
		withDate++
	}
	if withDate == 0 {
		b.WriteString("  No valid dates found.\n\n")
		return
	}
	fmt.Fprintf(b, "  Earliest:                  %s\n", earliest.Format(normalize.ISO))
	fmt.Fprintf(b, "  Latest:                    %s\n", latest.Format(normalize.ISO))
	fmt.Fprintf(b, "  Records with date:         %d/%d\n", withDate, len(records))
	fmt.Fprintf(b, "  Records without date:      %d\n\n", len(records)-withDate)
}

func writeDuplicateStats(b *strings.Builder, sep string, f pipeline.Funnel) {
	fmt.Fprintf(b, "6. DUPLICATE RECORD STATISTICS\n%s\n", sep)
	fmt.Fprintf(b, "  Duplicates removed:        %d\n\n", f.DuplicatesDropped)
}

func writeFailedDetails(b *strings.Builder, sep string, failed []validate.FailedRecord) {
	fmt.Fprintf(b, "FAILED RECORD DETAILS\n%s\n", sep)
	for _, fr := range failed {
		fmt.Fprintf(b, "  Record:  %s\n", fr.Label)
		fmt.Fprintf(b, "  Reasons: %s\n", strings.Join(fr.Reasons, ", "))
		for _, msg := range fr.Messages {
			fmt.Fprintf(b, "           %s\n", msg)
		}
		b.WriteString("\n")
	}
}

func writeSummary(b *strings.Builder, sep string, res *pipeline.Result) {
	fmt.Fprintf(b, "SUMMARY\n%s\n", sep)
	f := res.Funnel
	endToEnd := 0.0
	cleaning := 0.0
	if f.Loaded > 0 {
		endToEnd = float64(f.Passed) / float64(f.Loaded) * 100
		cleaning = float64(f.Validated) / float64(f.Loaded) * 100
	}
	fmt.Fprintf(b, "  End-to-end retention:      %.1f%% (%d/%d records kept)\n", endToEnd, f.Passed, f.Loaded)
	fmt.Fprintf(b, "  Cleaning retention:        %.1f%% (%d/%d after cleaning)\n", cleaning, f.Validated, f.Loaded)
	fmt.Fprintf(b, "  Validation pass rate:      %.1f%%\n", res.Stats.PassRate())
	if top := res.Stats.ReasonsByFrequency(); len(top) > 0 {
		fmt.Fprintf(b, "  Top failure reason:        %s (n=%d)\n", validate.ReasonLabel(top[0].Reason), top[0].Count)
	}
	b.WriteString("\n")
}
