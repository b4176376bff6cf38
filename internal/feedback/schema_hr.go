package feedback

// HRReview is the structured review a recruiter would write for a
// resume against a specific role.
type HRReview struct {
	OverallSuitability string         `json:"overallSuitability"`
	SkillAlignment     SkillAlignment `json:"skillAlignment"`
	ExperienceReview   string         `json:"experienceReview"`
	Suggestions        []string       `json:"suggestions"`
	RoleFitScore       float64        `json:"roleFitScore"`
}

type SkillAlignment struct {
	MatchedSkills []string `json:"matchedSkills"`
	MissingSkills []string `json:"missingSkills"`
}

// Validate checks the review against the schema contract.
func (r *HRReview) Validate() error {
	if r.OverallSuitability == "" {
		return &SchemaViolationError{Field: "overallSuitability", Reason: "must not be empty"}
	}
	if err := validateScore("roleFitScore", r.RoleFitScore); err != nil {
		return err
	}
	if len(r.Suggestions) == 0 {
		return &SchemaViolationError{Field: "suggestions", Reason: "must not be empty"}
	}
	return nil
}
