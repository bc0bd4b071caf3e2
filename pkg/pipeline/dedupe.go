package pipeline

import (
	"strings"

	"github.com/jmylchreest/cleanse/pkg/dataset"
)

type dedupeKey struct {
	title string
	url   string
}

// dedupe removes records sharing a normalized (title, url) key with an
// earlier record. First occurrence wins; order is preserved.
func dedupe(records []dataset.Record) (kept []dataset.Record, dropped int) {
	seen := make(map[dedupeKey]struct{}, len(records))
	kept = make([]dataset.Record, 0, len(records))
	for _, rec := range records {
		key := keyOf(rec)
		if _, dup := seen[key]; dup {
			dropped++
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, rec)
	}
	return kept, dropped
}

func keyOf(rec dataset.Record) dedupeKey {
	title, _ := rec.Text(dataset.FieldTitle)
	url, _ := rec.Text(dataset.FieldURL)
	return dedupeKey{
		title: strings.ToLower(strings.TrimSpace(title)),
		url:   strings.ToLower(strings.TrimSpace(url)),
	}
}
