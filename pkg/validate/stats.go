package validate

import "sort"

// Statistics aggregates a batch validation pass. Built incrementally by
// ValidateBatch and read-only afterwards; one instance per pipeline run.
type Statistics struct {
	Total       int `json:"total"`
	PassedCount int `json:"passed"`
	FailedCount int `json:"failed"`

	// ReasonCounts maps reason code to occurrences across all records.
	// A record failing two rules increments two counters.
	ReasonCounts map[string]int `json:"reason_counts"`

	// FailedRecords captures per-record failure detail in input order.
	FailedRecords []FailedRecord `json:"failed_records,omitempty"`
}

// FailedRecord identifies one failed record and its reasons.
type FailedRecord struct {
	Index    int      `json:"index"`
	Label    string   `json:"label"`
	Reasons  []string `json:"reasons"`
	Messages []string `json:"messages"`
}

// ReasonCount pairs a reason code with its occurrence count.
type ReasonCount struct {
	Reason string
	Count  int
}

// NewStatistics creates empty statistics with initialized maps.
func NewStatistics() *Statistics {
	return &Statistics{
		ReasonCounts: make(map[string]int),
	}
}

// PassRate returns the passed percentage of validated records (0 when the
// batch was empty).
func (s *Statistics) PassRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.PassedCount) / float64(s.Total) * 100
}

// ReasonsByFrequency returns reason counts sorted most-common first, ties
// broken by reason code for deterministic output.
func (s *Statistics) ReasonsByFrequency() []ReasonCount {
	out := make([]ReasonCount, 0, len(s.ReasonCounts))
	for reason, count := range s.ReasonCounts {
		out = append(out, ReasonCount{Reason: reason, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Reason < out[j].Reason
	})
	return out
}

// TotalFailureOccurrences sums all reason counters. It can exceed
// FailedCount because one record may fail several rules.
func (s *Statistics) TotalFailureOccurrences() int {
	total := 0
	for _, count := range s.ReasonCounts {
		total += count
	}
	return total
}
