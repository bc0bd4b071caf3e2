package pipeline

import (
	"testing"

	"github.com/jmylchreest/cleanse/pkg/dataset"
)

func TestDedupe_FirstOccurrenceWins(t *testing.T) {
	records := []dataset.Record{
		{"title": "Same", "url": "https://example.com/a", "author": "first"},
		{"title": "Same", "url": "https://example.com/a", "author": "second"},
	}

	kept, dropped := dedupe(records)
	if dropped != 1 {
		t.Fatalf("dropped = %d, want 1", dropped)
	}
	if author, _ := kept[0].Text("author"); author != "first" {
		t.Errorf("first occurrence must survive, got author %q", author)
	}
}

func TestDedupe_KeyIsCaseInsensitive(t *testing.T) {
	records := []dataset.Record{
		{"title": "Hello World", "url": "https://example.com/a"},
		{"title": "HELLO WORLD", "url": "HTTPS://EXAMPLE.COM/A"},
	}

	_, dropped := dedupe(records)
	if dropped != 1 {
		t.Errorf("case-insensitive key should match, dropped = %d", dropped)
	}
}

func TestDedupe_KeyTrimsWhitespace(t *testing.T) {
	records := []dataset.Record{
		{"title": "Hello", "url": "https://example.com/a"},
		{"title": "  Hello  ", "url": " https://example.com/a "},
	}

	_, dropped := dedupe(records)
	if dropped != 1 {
		t.Errorf("trimmed key should match, dropped = %d", dropped)
	}
}

func TestDedupe_DistinctKeysSurvive(t *testing.T) {
	records := []dataset.Record{
		{"title": "Same", "url": "https://example.com/a"},
		{"title": "Same", "url": "https://example.com/b"},
		{"title": "Other", "url": "https://example.com/a"},
	}

	kept, dropped := dedupe(records)
	if dropped != 0 {
		t.Errorf("no duplicates expected, dropped = %d", dropped)
	}
	if len(kept) != 3 {
		t.Errorf("kept = %d, want 3", len(kept))
	}
}

func TestDedupe_PreservesOrder(t *testing.T) {
	records := []dataset.Record{
		{"title": "A", "url": "https://example.com/a"},
		{"title": "B", "url": "https://example.com/b"},
		{"title": "A", "url": "https://example.com/a"},
		{"title": "C", "url": "https://example.com/c"},
	}

	kept, _ := dedupe(records)
	want := []string{"A", "B", "C"}
	for i, w := range want {
		if title, _ := kept[i].Text("title"); title != w {
			t.Errorf("kept[%d] title = %q, want %q", i, title, w)
		}
	}
}
