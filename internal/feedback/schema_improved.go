package feedback

// ImprovedResume is the AI-rewritten resume draft.
type ImprovedResume struct {
	Summary        string   `json:"summary"`
	Skills         []string `json:"skills"`
	Experience     string   `json:"experience"`
	Education      string   `json:"education"`
	EstimatedScore float64  `json:"estimatedScore"`
}

// Validate checks the draft against the schema contract.
func (r *ImprovedResume) Validate() error {
	if r.Summary == "" {
		return &SchemaViolationError{Field: "summary", Reason: "must not be empty"}
	}
	if len(r.Skills) == 0 {
		return &SchemaViolationError{Field: "skills", Reason: "must not be empty"}
	}
	if r.Experience == "" {
		return &SchemaViolationError{Field: "experience", Reason: "must not be empty"}
	}
	if err := validateScore("estimatedScore", r.EstimatedScore); err != nil {
		return err
	}
	return nil
}
