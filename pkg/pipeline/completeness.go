package pipeline

import "github.com/jmylchreest/cleanse/pkg/dataset"

// dropIncomplete removes records missing any required field (title, content,
// url). Missing means absent, null, empty, or whitespace-only. Dropped
// records are discarded; only the count survives for reporting.
func dropIncomplete(records []dataset.Record) (kept []dataset.Record, dropped int) {
	kept = make([]dataset.Record, 0, len(records))
	for _, rec := range records {
		if isComplete(rec) {
			kept = append(kept, rec)
		} else {
			dropped++
		}
	}
	return kept, dropped
}

func isComplete(rec dataset.Record) bool {
	for _, field := range dataset.RequiredFields {
		if rec.IsMissing(field) {
			return false
		}
	}
	return true
}
