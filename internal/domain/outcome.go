package domain

// Outcome classifies what happened to a single plan item.
type Outcome int

const (
	OutcomeCopied Outcome = iota
	OutcomeOverwritten
	OutcomeSkipped
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCopied:
		return "copied"
	case OutcomeOverwritten:
		return "overwritten"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of one processed item. Err is set for failures.
type Result struct {
	Item    CopyItem
	Outcome Outcome
	Err     error
}

// Summary accumulates the per-outcome counters of one run.
type Summary struct {
	Copied      int
	Overwritten int
	Skipped     int
	Failed      int
	Failures    []Result
}

func (s *Summary) Record(r Result) {
	switch r.Outcome {
	case OutcomeCopied:
		s.Copied++
	case OutcomeOverwritten:
		s.Overwritten++
	case OutcomeSkipped:
		s.Skipped++
	case OutcomeFailed:
		s.Failed++
		s.Failures = append(s.Failures, r)
	}
}

// Total is the number of processed items across all outcomes.
func (s Summary) Total() int {
	return s.Copied + s.Overwritten + s.Skipped + s.Failed
}

func (s Summary) HasFailures() bool {
	return s.Failed > 0
}
