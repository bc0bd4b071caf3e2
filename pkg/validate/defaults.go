package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/jmylchreest/cleanse/pkg/dataset"
)

// Default thresholds for the built-in rule set.
const (
	DefaultMinContentLength = 120
	MaxTitleLength          = 500
	MaxContentLength        = 1_000_000
)

// Built-in reason codes.
const (
	ReasonMissingTitle     = "missing_title"
	ReasonTitleTooLong     = "title_too_long"
	ReasonShortContent     = "short_content"
	ReasonContentTooLong   = "content_too_long"
	ReasonInvalidURL       = "invalid_url"
	ReasonMissingPublished = "missing_published"
)

// reasonLabels are the fallback human-readable descriptions per reason code,
// used when a rule produced no rendered message.
var reasonLabels = map[string]string{
	ReasonMissingTitle:     "Title is missing or empty.",
	ReasonTitleTooLong:     fmt.Sprintf("Title exceeds maximum length (%d characters).", MaxTitleLength),
	ReasonShortContent:     fmt.Sprintf("Content is too short (minimum %d characters).", DefaultMinContentLength),
	ReasonContentTooLong:   fmt.Sprintf("Content exceeds maximum length (%d characters).", MaxContentLength),
	ReasonInvalidURL:       "URL must start with http:// or https:// and have valid format.",
	ReasonMissingPublished: "Published date is missing or empty.",
}

// ReasonLabel returns the human-readable description for a reason code, or
// the code itself when unknown.
func ReasonLabel(reason string) string {
	if label, ok := reasonLabels[reason]; ok {
		return label
	}
	return reason
}

// fieldText extracts a field as a trimmed string. ok is false when the
// field is absent, null, or of a non-string type; rules treat that as a
// failing value rather than aborting the batch.
func fieldText(rec dataset.Record, field string) (string, bool) {
	s, ok := rec.Text(field)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(s), true
}

// DefaultRules builds the built-in rule set in evaluation order. A
// minContentLength of zero or less falls back to DefaultMinContentLength.
// The returned slice is safe to modify before handing it to NewEngine.
func DefaultRules(minContentLength int) []Rule {
	if minContentLength <= 0 {
		minContentLength = DefaultMinContentLength
	}
	urlCheck := validator.New()

	return []Rule{
		{
			Field:       dataset.FieldTitle,
			Reason:      ReasonMissingTitle,
			Description: "title must be non-empty after trimming",
			Check: func(rec dataset.Record) (bool, string) {
				title, ok := fieldText(rec, dataset.FieldTitle)
				if !ok || title == "" {
					return false, "Title is missing or empty."
				}
				return true, ""
			},
		},
		{
			Field:         dataset.FieldTitle,
			Reason:        ReasonTitleTooLong,
			Description:   fmt.Sprintf("title must be at most %d characters", MaxTitleLength),
			OnlyIfPresent: true,
			Check: func(rec dataset.Record) (bool, string) {
				title, ok := fieldText(rec, dataset.FieldTitle)
				if !ok {
					return false, "Title has an unexpected non-text value."
				}
				if n := utf8.RuneCountInString(title); n > MaxTitleLength {
					return false, fmt.Sprintf("Title is too long: %d characters (maximum %d).", n, MaxTitleLength)
				}
				return true, ""
			},
		},
		{
			Field:       dataset.FieldContent,
			Reason:      ReasonShortContent,
			Description: fmt.Sprintf("content must be at least %d characters", minContentLength),
			Check: func(rec dataset.Record) (bool, string) {
				content, ok := fieldText(rec, dataset.FieldContent)
				if !ok || content == "" {
					return false, "Content is missing or empty."
				}
				if n := utf8.RuneCountInString(content); n < minContentLength {
					return false, fmt.Sprintf("Content is too short: %d characters (minimum %d required).", n, minContentLength)
				}
				return true, ""
			},
		},
		{
			Field:         dataset.FieldContent,
			Reason:        ReasonContentTooLong,
			Description:   fmt.Sprintf("content must be at most %d characters", MaxContentLength),
			OnlyIfPresent: true,
			Check: func(rec dataset.Record) (bool, string) {
				content, ok := fieldText(rec, dataset.FieldContent)
				if !ok {
					return false, "Content has an unexpected non-text value."
				}
				if n := utf8.RuneCountInString(content); n > MaxContentLength {
					return false, fmt.Sprintf("Content is too long: %d characters (maximum %d).", n, MaxContentLength)
				}
				return true, ""
			},
		},
		{
			Field:       dataset.FieldURL,
			Reason:      ReasonInvalidURL,
			Description: "url must be a well-formed http:// or https:// URL",
			Check: func(rec dataset.Record) (bool, string) {
				url, ok := fieldText(rec, dataset.FieldURL)
				if !ok || url == "" {
					return false, "URL is missing or empty."
				}
				if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
					return false, fmt.Sprintf("URL must start with http:// or https:// (got: %s).", truncate(url, 50))
				}
				if err := urlCheck.Var(url, "http_url"); err != nil {
					return false, "URL has invalid format after scheme (expected a host/path)."
				}
				return true, ""
			},
		},
		{
			Field:       dataset.FieldPublishedDate,
			Reason:      ReasonMissingPublished,
			Description: "published or published_date must be present",
			Check: func(rec dataset.Record) (bool, string) {
				if !rec.IsMissing(dataset.FieldPublishedDate) || !rec.IsMissing(dataset.FieldPublished) {
					return true, ""
				}
				return false, "Published date is missing or empty."
			},
		},
	}
}

// WithoutReasons filters a rule set, removing rules whose reason code is in
// the disabled list. Unknown codes are ignored.
func WithoutReasons(rules []Rule, disabled []string) []Rule {
	if len(disabled) == 0 {
		return rules
	}
	drop := make(map[string]struct{}, len(disabled))
	for _, reason := range disabled {
		drop[strings.TrimSpace(reason)] = struct{}{}
	}
	out := make([]Rule, 0, len(rules))
	for _, rule := range rules {
		if _, skip := drop[rule.Reason]; !skip {
			out = append(out, rule)
		}
	}
	return out
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max]) + "..."
}
