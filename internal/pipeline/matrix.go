package pipeline

import (
	"github.com/ospolicy/licensegen/internal/model"
)

// BuildMatrix computes the all-pairs compatibility table over every ordered
// pair of classified licenses, including each license against itself. The
// verdict function depends only on the unordered category pair, so the table
// comes out symmetric even though both directions are stored.
func BuildMatrix(analyses []model.LicenseAnalysis, generated string) *model.Matrix {
	matrix := &model.Matrix{
		Version:       "1.0",
		Generated:     generated,
		TotalLicenses: len(analyses),
		Compatibility: make(map[string]map[string]model.PairCompatibility, len(analyses)),
	}

	for _, a := range analyses {
		idA := a.License.LicenseID
		if idA == "" {
			continue
		}

		row := make(map[string]model.PairCompatibility, len(analyses))
		for _, b := range analyses {
			idB := b.License.LicenseID
			if idB == "" {
				continue
			}
			row[idB] = pairVerdicts(a.Classification.Category, b.Classification.Category)
		}
		matrix.Compatibility[idA] = row
	}

	return matrix
}

// pairVerdicts evaluates the category tie-break clauses in fixed order; the
// first matching clause wins.
func pairVerdicts(catA, catB model.Category) model.PairCompatibility {
	switch {
	// Two permissive licenses combine freely
	case catA == model.CategoryPermissive && catB == model.CategoryPermissive:
		return model.PairCompatibility{
			StaticLinking:  model.VerdictCompatible,
			DynamicLinking: model.VerdictCompatible,
			Distribution:   model.VerdictCompatible,
		}

	// Strong copyleft contaminates everything but itself
	case catA == model.CategoryCopyleftStrong || catB == model.CategoryCopyleftStrong:
		if catA == catB {
			return model.PairCompatibility{
				StaticLinking:  model.VerdictCompatible,
				DynamicLinking: model.VerdictCompatible,
				Distribution:   model.VerdictCompatible,
			}
		}
		return model.PairCompatibility{
			StaticLinking:  model.VerdictIncompatible,
			DynamicLinking: model.VerdictReviewRequired,
			Distribution:   model.VerdictIncompatible,
		}

	// Weak copyleft constrains static linking only
	case catA == model.CategoryCopyleftWeak || catB == model.CategoryCopyleftWeak:
		return model.PairCompatibility{
			StaticLinking:  model.VerdictReviewRequired,
			DynamicLinking: model.VerdictCompatible,
			Distribution:   model.VerdictCompatible,
		}

	default:
		return model.PairCompatibility{
			StaticLinking:  model.VerdictUnknown,
			DynamicLinking: model.VerdictUnknown,
			Distribution:   model.VerdictUnknown,
		}
	}
}
