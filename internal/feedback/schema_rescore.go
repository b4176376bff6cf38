package feedback

// RescoreResult is the quick score refresh over edited resume text.
type RescoreResult struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

// Validate checks the result against the schema contract.
func (r *RescoreResult) Validate() error {
	if err := validateScore("score", r.Score); err != nil {
		return err
	}
	if r.Feedback == "" {
		return &SchemaViolationError{Field: "feedback", Reason: "must not be empty"}
	}
	return nil
}
