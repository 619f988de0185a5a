package classify

import (
	"strings"

	"github.com/ospolicy/licensegen/internal/model"
)

// FallbackClassification classifies a license from its id alone. It is the
// deterministic path used whenever no AI backend is configured or a backend
// call degrades. The rule table is evaluated in fixed priority order; the
// first match wins, and the permissive baseline covers everything else.
// The result depends only on id, never on license text.
func FallbackClassification(id string) model.Classification {
	rec := baselineClassification(id)

	switch {
	case strings.Contains(id, "LGPL"):
		rec.Category = model.CategoryCopyleftWeak
		rec.Conditions.DiscloseSource = true
		rec.Compatibility.StaticLinking = model.RestrictionWeak
		rec.Obligations = []string{
			"Disclose source of LGPL components",
			"Allow relinking",
			"Include license text",
		}

	case strings.Contains(id, "AGPL"):
		rec.Category = model.CategoryCopyleftStrong
		rec.Conditions.DiscloseSource = true
		rec.Conditions.SameLicense = true
		rec.Conditions.NetworkUseDisclosure = true
		rec.Compatibility.StaticLinking = model.RestrictionStrong

	case strings.Contains(id, "GPL"):
		rec.Category = model.CategoryCopyleftStrong
		rec.Conditions.DiscloseSource = true
		rec.Conditions.SameLicense = true
		rec.Compatibility.CanCombineStrongCopyleft = true
		rec.Compatibility.CanCombinePermissive = false
		rec.Compatibility.StaticLinking = model.RestrictionStrong
		rec.Obligations = []string{
			"Disclose source code",
			"Include license text",
			"State changes",
			"Use same license for derivatives",
		}

	case strings.Contains(id, "Apache"):
		rec.Permissions.PatentGrant = true
		rec.Conditions.IncludeNotice = true
		rec.Conditions.StateChanges = true

	case strings.Contains(id, "MIT"), strings.Contains(id, "BSD"), strings.Contains(id, "ISC"):
		// Permissive baseline as-is

	case strings.Contains(id, "CC0"), strings.Contains(id, "Unlicense"):
		rec.Category = model.CategoryPublicDomain
		rec.Conditions.IncludeLicense = false
		rec.Conditions.IncludeCopyright = false
		rec.Obligations = []string{}
	}

	return rec
}

// baselineClassification is the permissive default every fallback branch
// starts from.
func baselineClassification(id string) model.Classification {
	return model.Classification{
		LicenseID: id,
		Category:  model.CategoryPermissive,
		Permissions: model.Permissions{
			CommercialUse: true,
			Distribution:  true,
			Modification:  true,
			PatentGrant:   false,
			PrivateUse:    true,
		},
		Conditions: model.Conditions{
			IncludeLicense:   true,
			IncludeCopyright: true,
		},
		Limitations: model.Limitations{
			Liability: true,
			Warranty:  true,
		},
		Compatibility: model.CombineProfile{
			CanCombinePermissive:     true,
			CanCombineWeakCopyleft:   true,
			CanCombineStrongCopyleft: false,
			StaticLinking:            model.RestrictionNone,
			DynamicLinking:           model.RestrictionNone,
		},
		Obligations: []string{
			"Include license text",
			"Include copyright notice",
		},
		KeyRequirements: []string{
			"Attribution required",
		},
	}
}

// FallbackRules derives compatibility rules from category alone. Four canned
// blocks cover the category space; public_domain, proprietary, and anything
// unrecognized get permissive-like defaults.
func FallbackRules(id string, category model.Category) model.RuleSet {
	switch category {
	case model.CategoryPermissive:
		return model.RuleSet{
			StaticLinking: model.LinkingRule{
				CompatibleWith:   []string{"category:any"},
				IncompatibleWith: []string{},
				RequiresReview:   []string{},
			},
			DynamicLinking: model.LinkingRule{
				CompatibleWith:   []string{"category:any"},
				IncompatibleWith: []string{},
				RequiresReview:   []string{},
			},
			Distribution: model.DistributionRule{
				CanDistributeWith:    []string{"category:any"},
				CannotDistributeWith: []string{},
				SpecialRequirements:  []string{"Include license and copyright notice"},
			},
			Contamination: model.ContaminationNone,
			Notes:         "Permissive license with minimal restrictions",
		}

	case model.CategoryCopyleftStrong:
		return model.RuleSet{
			StaticLinking: model.LinkingRule{
				CompatibleWith:   []string{id, "category:copyleft_strong"},
				IncompatibleWith: []string{"category:permissive", "category:proprietary"},
				RequiresReview:   []string{"category:copyleft_weak"},
			},
			DynamicLinking: model.LinkingRule{
				CompatibleWith:   []string{"category:any"},
				IncompatibleWith: []string{},
				RequiresReview:   []string{"category:proprietary"},
			},
			Distribution: model.DistributionRule{
				CanDistributeWith:    []string{id},
				CannotDistributeWith: []string{"category:proprietary"},
				SpecialRequirements:  []string{"Source code must be provided", "Same license required"},
			},
			Contamination: model.ContaminationFull,
			Notes:         "Strong copyleft with viral effect",
		}

	case model.CategoryCopyleftWeak:
		return model.RuleSet{
			StaticLinking: model.LinkingRule{
				CompatibleWith:   []string{"category:permissive", id},
				IncompatibleWith: []string{},
				RequiresReview:   []string{"category:copyleft_strong"},
			},
			DynamicLinking: model.LinkingRule{
				CompatibleWith:   []string{"category:any"},
				IncompatibleWith: []string{},
				RequiresReview:   []string{},
			},
			Distribution: model.DistributionRule{
				CanDistributeWith:    []string{"category:any"},
				CannotDistributeWith: []string{},
				SpecialRequirements:  []string{"Allow relinking", "Provide LGPL source"},
			},
			Contamination: model.ContaminationModule,
			Notes:         "Weak copyleft affecting only the library itself",
		}

	default:
		// public_domain, proprietary, unrecognized
		return model.RuleSet{
			StaticLinking: model.LinkingRule{
				CompatibleWith:   []string{"category:any"},
				IncompatibleWith: []string{},
				RequiresReview:   []string{},
			},
			DynamicLinking: model.LinkingRule{
				CompatibleWith:   []string{"category:any"},
				IncompatibleWith: []string{},
				RequiresReview:   []string{},
			},
			Distribution: model.DistributionRule{
				CanDistributeWith:    []string{"category:any"},
				CannotDistributeWith: []string{},
				SpecialRequirements:  []string{},
			},
			Contamination: model.ContaminationNone,
			Notes:         "Default compatibility rules",
		}
	}
}
