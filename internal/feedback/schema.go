package feedback

import (
	"math"
	"strconv"
)

// JSON schema for ATS feedback:
// {
//   "overallScore": "number (0-100)",
//   "ATS":          { "score": "number", "tips": [{ "type": "good|improve", "tip": "string" }] },
//   "toneAndStyle": { "score": "number", "tips": [{ "type", "tip", "explanation" }] },
//   "content":      { ... },
//   "structure":    { ... },
//   "skills":       { ... }
// }
type Feedback struct {
	OverallScore float64  `json:"overallScore"`
	ATS          Category `json:"ATS"`
	ToneAndStyle Category `json:"toneAndStyle"`
	Content      Category `json:"content"`
	Structure    Category `json:"structure"`
	Skills       Category `json:"skills"`
}

// Category is one scored feedback dimension.
type Category struct {
	Score float64 `json:"score"`
	Tips  []Tip   `json:"tips"`
}

// Tip is a single piece of advice. Explanation is optional; the ATS
// category omits it.
type Tip struct {
	Type        string `json:"type"`
	Tip         string `json:"tip"`
	Explanation string `json:"explanation,omitempty"`
}

const (
	TipGood    = "good"
	TipImprove = "improve"
)

// Validate checks scores and tip types against the schema contract.
func (f *Feedback) Validate() error {
	if err := validateScore("overallScore", f.OverallScore); err != nil {
		return err
	}
	categories := []struct {
		name string
		cat  Category
	}{
		{"ATS", f.ATS},
		{"toneAndStyle", f.ToneAndStyle},
		{"content", f.Content},
		{"structure", f.Structure},
		{"skills", f.Skills},
	}
	for _, entry := range categories {
		if err := validateScore(entry.name+".score", entry.cat.Score); err != nil {
			return err
		}
		// Tip count is advisory; an empty list is accepted.
		for i, tip := range entry.cat.Tips {
			if err := validateTip(entry.name, i, tip); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateScore(field string, score float64) error {
	if score < 0 || score > 100 {
		return &SchemaViolationError{Field: field, Reason: "must be between 0 and 100"}
	}
	if score != math.Trunc(score) {
		return &SchemaViolationError{Field: field, Reason: "must be an integer"}
	}
	return nil
}

func validateTip(category string, index int, tip Tip) error {
	field := categoryTipField(category, index)
	if tip.Type != TipGood && tip.Type != TipImprove {
		return &SchemaViolationError{Field: field + ".type", Reason: `must be "good" or "improve"`}
	}
	if tip.Tip == "" {
		return &SchemaViolationError{Field: field + ".tip", Reason: "must not be empty"}
	}
	return nil
}

func categoryTipField(category string, index int) string {
	return category + ".tips[" + strconv.Itoa(index) + "]"
}
