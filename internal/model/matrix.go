package model

// Verdict is a single pairwise compatibility decision.
type Verdict string

const (
	VerdictCompatible     Verdict = "compatible"
	VerdictIncompatible   Verdict = "incompatible"
	VerdictReviewRequired Verdict = "review_required"
	VerdictUnknown        Verdict = "unknown"
)

// PairCompatibility holds the three dimension verdicts for one ordered pair.
type PairCompatibility struct {
	StaticLinking  Verdict `json:"static_linking"`
	DynamicLinking Verdict `json:"dynamic_linking"`
	Distribution   Verdict `json:"distribution"`
}

// Matrix is the all-pairs compatibility table. Storage is directional
// (matrix[A][B] and matrix[B][A] are both present) but the derivation depends
// only on the unordered category pair, so the table is symmetric.
type Matrix struct {
	Version       string                                  `json:"version"`
	Generated     string                                  `json:"generated"`
	TotalLicenses int                                     `json:"total_licenses"`
	Compatibility map[string]map[string]PairCompatibility `json:"compatibility"`
}
