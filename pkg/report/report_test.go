package report

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jmylchreest/cleanse/pkg/dataset"
	"github.com/jmylchreest/cleanse/pkg/pipeline"
)

func article(n int) dataset.Record {
	return dataset.Record{
		"title":     fmt.Sprintf("Article %d", n),
		"content":   strings.Repeat("x", 200),
		"url":       fmt.Sprintf("https://example.com/articles/%d", n),
		"published": fmt.Sprintf("2024-01-%02dT10:30:00Z", n),
	}
}

func sampleResult(t *testing.T) *pipeline.Result {
	t.Helper()
	records := []dataset.Record{article(1), article(2), article(3)}

	short := article(4)
	short["content"] = "too short"
	records = append(records, short)

	dup := article(1)
	records = append(records, dup)

	records = append(records, dataset.Record{
		"content": strings.Repeat("x", 200), "url": "https://example.com/incomplete",
	})

	return pipeline.New(pipeline.Options{}).Run(records)
}

func TestRender_Sections(t *testing.T) {
	text, err := Render(sampleResult(t), Options{IncludeFailedDetails: true})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	sections := []string{
		"CLEANSE QUALITY REPORT",
		"1. RECORD PROCESSING STATISTICS",
		"2. FIELD COMPLETENESS",
		"3. VALIDATION RESULT STATISTICS",
		"4. VALIDATION FAILURE DISTRIBUTION",
		"5. DATE COVERAGE",
		"6. DUPLICATE RECORD STATISTICS",
		"FAILED RECORD DETAILS",
		"SUMMARY",
		"End of report",
	}
	for _, section := range sections {
		if !strings.Contains(text, section) {
			t.Errorf("report missing section %q", section)
		}
	}
}

func TestRender_Counts(t *testing.T) {
	text, err := Render(sampleResult(t), Options{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	// 6 loaded, 1 incomplete, 1 duplicate, 4 validated, 3 passed, 1 failed.
	wants := []string{
		"Records loaded:            6",
		"Records after cleaning:    4",
		"Records dropped:           2",
		"- Incomplete:            1",
		"- Duplicates:            1",
		"Passed:                    3",
		"Failed:                    1",
		"Pass rate:                 75.0%",
		"Duplicates removed:        1",
	}
	for _, want := range wants {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestRender_FailureDistribution(t *testing.T) {
	text, err := Render(sampleResult(t), Options{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.Contains(text, "Content is too short") {
		t.Error("distribution should use the human-readable reason label")
	}
	if !strings.Contains(text, "(100.0% of failed)") {
		t.Errorf("distribution should show percentage of failed records:\n%s", text)
	}
}

func TestRender_DateCoverage(t *testing.T) {
	text, err := Render(sampleResult(t), Options{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.Contains(text, "Earliest:                  2024-01-01T10:30:00Z") {
		t.Errorf("date coverage earliest wrong:\n%s", text)
	}
	if !strings.Contains(text, "Latest:                    2024-01-04T10:30:00Z") {
		t.Errorf("date coverage latest wrong:\n%s", text)
	}
}

func TestRender_FailedDetailsToggle(t *testing.T) {
	res := sampleResult(t)

	with, err := Render(res, Options{IncludeFailedDetails: true})
	if err != nil {
		t.Fatal(err)
	}
	without, err := Render(res, Options{IncludeFailedDetails: false})
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(with, "FAILED RECORD DETAILS") {
		t.Error("expected details section when enabled")
	}
	if strings.Contains(without, "FAILED RECORD DETAILS") {
		t.Error("expected no details section when disabled")
	}
}

func TestRender_FieldCompleteness(t *testing.T) {
	text, err := Render(sampleResult(t), Options{})
	if err != nil {
		t.Fatal(err)
	}

	// Every validated record has a title: 100%.
	if !strings.Contains(text, "title") || !strings.Contains(text, "100.0%") {
		t.Errorf("expected full title completeness:\n%s", text)
	}
}

func TestRender_BrokenFunnelIsAnError(t *testing.T) {
	res := sampleResult(t)
	res.Funnel.Loaded += 1 // simulate a defect

	if _, err := Render(res, Options{}); err == nil {
		t.Fatal("expected error for inconsistent funnel counts")
	}
}

func TestRender_EmptyRun(t *testing.T) {
	res := pipeline.New(pipeline.Options{}).Run(nil)
	text, err := Render(res, Options{IncludeFailedDetails: true})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(text, "No valid dates found.") {
		t.Error("empty run should report no dates")
	}
	if !strings.Contains(text, "(no records)") {
		t.Error("empty run should report no records for completeness")
	}
}
