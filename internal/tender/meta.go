// Package tender holds the domain types shared across pipeline stages:
// project metadata attached to a run and helpers for the CJK document
// conventions (chapter numerals, heading shapes) that tender documents use.
package tender

// ScoringWeight maps one scored proposal section to its point value from the
// tender's evaluation criteria.
type ScoringWeight struct {
	Name   string `yaml:"name" json:"name"`
	Points int    `yaml:"points" json:"points"`
}

// Meta is the structured project metadata for one pipeline run. Fields are
// explicit rather than a free-form map so a stage can never observe a key it
// does not know about.
type Meta struct {
	ProjectName    string          `yaml:"project_name" json:"project_name"`
	TenderNo       string          `yaml:"tender_no" json:"tender_no"`
	BidderName     string          `yaml:"bidder_name" json:"bidder_name"`
	ScoringWeights []ScoringWeight `yaml:"scoring_weights" json:"scoring_weights"`
}
