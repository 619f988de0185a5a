package validate

import (
	"fmt"

	"github.com/ospolicy/licensegen/internal/model"
)

// Check inspects every analysis record for completeness and returns a report.
// It never blocks persistence; the report rides along in the run summary.
//
// All four issue kinds bump their counters, but only missing categories and
// permissions produce error messages and flip IsValid. A public-domain grant
// with no obligations is legitimate; a record with no category is not.
func Check(analyses []model.LicenseAnalysis) model.ValidationReport {
	report := model.ValidationReport{
		TotalLicenses: len(analyses),
		Errors:        []string{},
	}

	for _, a := range analyses {
		id := a.License.LicenseID
		if id == "" {
			id = "unknown"
		}

		if a.Classification.Category == "" {
			report.MissingCategory++
			report.Errors = append(report.Errors, fmt.Sprintf("%s: Missing category", id))
		}

		if a.Classification.Permissions == (model.Permissions{}) {
			report.MissingPermissions++
			report.Errors = append(report.Errors, fmt.Sprintf("%s: Missing permissions", id))
		}

		if len(a.Classification.Obligations) == 0 {
			report.MissingObligations++
		}

		if a.Rules.IsZero() {
			report.MissingCompatibility++
		}
	}

	report.IsValid = len(report.Errors) == 0

	return report
}
