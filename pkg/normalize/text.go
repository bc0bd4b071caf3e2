// Package normalize provides pure field-level normalization for scraped
// article records: text cleanup (entities, markup remnants, whitespace) and
// publication-date standardization. Functions here never fail a record;
// unparseable values degrade to empty strings or nulls.
package normalize

import (
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jmylchreest/cleanse/pkg/dataset"
)

// \s alone is ASCII-only in Go; decoded &nbsp; and other Unicode spaces
// must collapse too.
var whitespaceRE = regexp.MustCompile(`[\s\x{00A0}\p{Zs}]+`)

// TextFields are the record fields that receive text normalization.
var TextFields = []string{
	dataset.FieldTitle,
	dataset.FieldContent,
	dataset.FieldAuthor,
	dataset.FieldSource,
	dataset.FieldURL,
}

// Text normalizes a single raw field value: decode HTML entities, strip
// residual markup tags, collapse whitespace runs to a single space, and trim.
// Scalars are stringified; nil and nested structures become the empty string.
func Text(value any) string {
	s := stringify(value)
	if s == "" {
		return ""
	}
	if strings.Contains(s, "<") && strings.Contains(s, ">") {
		s = stripMarkup(s)
	} else {
		s = html.UnescapeString(s)
	}
	s = whitespaceRE.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Record applies Text to every text field present on the record, in place.
func Record(rec dataset.Record) {
	for _, field := range TextFields {
		if _, present := rec[field]; present {
			rec[field] = Text(rec[field])
		}
	}
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		// Nested objects and arrays have no sensible flat form.
		return ""
	}
}

// stripMarkup drops tags and decodes entities by parsing the value as an
// HTML fragment. On parse failure the value passes through with only entity
// decoding.
func stripMarkup(s string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return html.UnescapeString(s)
	}
	return doc.Text()
}
