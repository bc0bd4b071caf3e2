package normalize

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/jmylchreest/cleanse/pkg/dataset"
)

// ISO is the output layout for normalized publication dates (UTC).
const ISO = time.RFC3339

// nullWords are scraper artifacts that mean "no date".
var nullWords = map[string]struct{}{
	"none": {},
	"null": {},
	"nan":  {},
}

// Date parses a raw date value into the canonical ISO form
// (YYYY-MM-DDTHH:MM:SSZ, UTC). ok is false when the value is absent,
// a null word, non-scalar, or unparseable.
func Date(value any) (iso string, ok bool) {
	s := strings.TrimSpace(stringify(value))
	if s == "" {
		return "", false
	}
	if _, isNull := nullWords[strings.ToLower(s)]; isNull {
		return "", false
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return "", false
	}
	return t.UTC().Format(ISO), true
}

// RecordDate standardizes the record's publication date in place:
// published_date is preferred; when it is absent, published is copied
// across before parsing. After this call published_date is either the
// canonical ISO string or nil. Parse failures never fail the record.
func RecordDate(rec dataset.Record) {
	raw, present := rec[dataset.FieldPublishedDate]
	if !present || raw == nil {
		raw = rec[dataset.FieldPublished]
	}
	if iso, ok := Date(raw); ok {
		rec[dataset.FieldPublishedDate] = iso
	} else {
		rec[dataset.FieldPublishedDate] = nil
	}
}
