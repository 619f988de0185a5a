package pipeline

import (
	"github.com/ospolicy/licensegen/internal/model"
)

// BuildPolicyFile merges one license's classification and rules into the
// per-license policy record. Pure field copying; no decision logic.
func BuildPolicyFile(a model.LicenseAnalysis) model.PolicyFile {
	id := a.License.LicenseID

	name := a.License.Name
	if name == "" {
		name = id
	}

	return model.PolicyFile{
		License: model.Policy{
			ID:           id,
			Name:         name,
			Type:         a.Classification.Category,
			SPDXID:       id,
			Properties:   a.Classification.Permissions,
			Requirements: a.Classification.Conditions,
			Limitations:  a.Classification.Limitations,
			Compatibility: model.PolicyCompatibility{
				StaticLinking:  a.Rules.StaticLinking,
				DynamicLinking: a.Rules.DynamicLinking,
				Contamination:  a.Rules.Contamination,
				Notes:          a.Rules.Notes,
			},
			Obligations:     a.Classification.Obligations,
			KeyRequirements: a.Classification.KeyRequirements,
		},
	}
}

// BuildObligations assembles the obligation database. The three booleans are
// derived from conditions: attribution from include_copyright, source
// disclosure from disclose_source, notice from include_notice.
func BuildObligations(analyses []model.LicenseAnalysis, generated string) *model.ObligationDatabase {
	db := &model.ObligationDatabase{
		Version:   "1.0",
		Generated: generated,
		Licenses:  make(map[string]model.ObligationRecord, len(analyses)),
	}

	for _, a := range analyses {
		id := a.License.LicenseID
		if id == "" {
			continue
		}

		conditions := a.Classification.Conditions
		db.Licenses[id] = model.ObligationRecord{
			Obligations:              a.Classification.Obligations,
			KeyRequirements:          a.Classification.KeyRequirements,
			Conditions:               conditions,
			AttributionRequired:      conditions.IncludeCopyright,
			SourceDisclosureRequired: conditions.DiscloseSource,
			NoticeRequired:           conditions.IncludeNotice,
		}
	}

	return db
}

// BuildMaster assembles the master database: classification, rules, and
// obligations per license plus registry provenance flags.
func BuildMaster(analyses []model.LicenseAnalysis, generated string) *model.MasterDatabase {
	db := &model.MasterDatabase{
		Version:       "1.0",
		Generated:     generated,
		TotalLicenses: len(analyses),
		Licenses:      make(map[string]model.MasterRecord, len(analyses)),
	}

	for _, a := range analyses {
		id := a.License.LicenseID
		if id == "" {
			continue
		}

		name := a.License.Name
		if name == "" {
			name = id
		}

		db.Licenses[id] = model.MasterRecord{
			ID:          id,
			Name:        name,
			Category:    a.Classification.Category,
			Permissions: a.Classification.Permissions,
			Conditions:  a.Classification.Conditions,
			Limitations: a.Classification.Limitations,
			Obligations: a.Classification.Obligations,
			Rules:       a.Rules,
			SPDXMetadata: model.Provenance{
				IsOsiApproved: a.License.IsOsiApproved,
				IsFsfLibre:    a.License.IsFsfLibre,
				IsDeprecated:  a.License.IsDeprecated,
			},
		}
	}

	return db
}

// CountCategories builds the category histogram for the run summary.
func CountCategories(analyses []model.LicenseAnalysis) map[string]int {
	categories := make(map[string]int)
	for _, a := range analyses {
		cat := string(a.Classification.Category)
		if cat == "" {
			cat = "unknown"
		}
		categories[cat]++
	}
	return categories
}
