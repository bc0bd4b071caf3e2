// Package dataset defines the scraped-article record model and dataset
// loading. A Record is a loose field mapping as it arrives from a scraper
// dump; downstream packages tighten it up stage by stage.
package dataset

import "strings"

// Canonical field names used throughout the pipeline.
const (
	FieldTitle            = "title"
	FieldContent          = "content"
	FieldAuthor           = "author"
	FieldSource           = "source"
	FieldURL              = "url"
	FieldPublished        = "published"
	FieldPublishedDate    = "published_date"
	FieldCategory         = "category"
	FieldScrapedTimestamp = "scraped_timestamp"
)

// CanonicalFields lists the known fields in report order.
var CanonicalFields = []string{
	FieldTitle,
	FieldContent,
	FieldAuthor,
	FieldSource,
	FieldURL,
	FieldPublished,
	FieldPublishedDate,
	FieldCategory,
	FieldScrapedTimestamp,
}

// RequiredFields must be present and non-empty for a record to survive the
// completeness filter.
var RequiredFields = []string{FieldTitle, FieldContent, FieldURL}

// Record is one scraped article: a mapping from field name to value.
// Values are whatever JSON decoding produced (string, nil, number, or
// nested structure); the normalizer is responsible for flattening them.
type Record map[string]any

// Text returns the field's value as a string. ok is false when the field
// is absent, null, or not a string.
func (r Record) Text(field string) (value string, ok bool) {
	v, present := r[field]
	if !present || v == nil {
		return "", false
	}
	s, isString := v.(string)
	return s, isString
}

// IsMissing reports whether a field is absent, null, or a string that is
// empty or whitespace-only. Non-string values count as present: the
// validation engine decides what to do with them.
func (r Record) IsMissing(field string) bool {
	v, present := r[field]
	if !present || v == nil {
		return true
	}
	if s, isString := v.(string); isString {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
