package model

// Contamination describes how far copyleft obligations propagate into a
// combined work.
type Contamination string

const (
	ContaminationNone       Contamination = "none"
	ContaminationModule     Contamination = "module"
	ContaminationDerivative Contamination = "derivative"
	ContaminationFull       Contamination = "full"
)

// LinkingRule lists license ids or "category:<name>" references for one
// linking dimension.
type LinkingRule struct {
	CompatibleWith   []string `json:"compatible_with" yaml:"compatible_with"`
	IncompatibleWith []string `json:"incompatible_with" yaml:"incompatible_with"`
	RequiresReview   []string `json:"requires_review" yaml:"requires_review"`
}

// DistributionRule lists distribution constraints and any special
// requirements attached to redistributing the combined work.
type DistributionRule struct {
	CanDistributeWith    []string `json:"can_distribute_with" yaml:"can_distribute_with"`
	CannotDistributeWith []string `json:"cannot_distribute_with" yaml:"cannot_distribute_with"`
	SpecialRequirements  []string `json:"special_requirements" yaml:"special_requirements"`
}

// RuleSet is the per-license compatibility rule block produced by the rule
// deriver.
type RuleSet struct {
	StaticLinking  LinkingRule      `json:"static_linking" yaml:"static_linking"`
	DynamicLinking LinkingRule      `json:"dynamic_linking" yaml:"dynamic_linking"`
	Distribution   DistributionRule `json:"distribution" yaml:"distribution"`
	Contamination  Contamination    `json:"contamination_effect" yaml:"contamination_effect"`
	Notes          string           `json:"notes" yaml:"notes"`
}

// IsZero reports whether the rule set was never populated. Used by the
// validator to flag licenses that slipped through without rules.
func (r RuleSet) IsZero() bool {
	return r.Contamination == "" &&
		len(r.StaticLinking.CompatibleWith) == 0 &&
		len(r.StaticLinking.IncompatibleWith) == 0 &&
		len(r.StaticLinking.RequiresReview) == 0 &&
		len(r.DynamicLinking.CompatibleWith) == 0 &&
		len(r.Distribution.CanDistributeWith) == 0 &&
		r.Notes == ""
}
