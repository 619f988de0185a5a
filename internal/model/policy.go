package model

// PolicyFile is the on-disk shape of a per-license policy document
// (licenses/spdx/<id>.yaml).
type PolicyFile struct {
	License Policy `json:"license" yaml:"license"`
}

// Policy is the per-license policy record consumed by downstream compliance
// tooling.
type Policy struct {
	ID              string              `json:"id" yaml:"id"`
	Name            string              `json:"name" yaml:"name"`
	Type            Category            `json:"type" yaml:"type"`
	SPDXID          string              `json:"spdx_id" yaml:"spdx_id"`
	Properties      Permissions         `json:"properties" yaml:"properties"`
	Requirements    Conditions          `json:"requirements" yaml:"requirements"`
	Limitations     Limitations         `json:"limitations" yaml:"limitations"`
	Compatibility   PolicyCompatibility `json:"compatibility" yaml:"compatibility"`
	Obligations     []string            `json:"obligations" yaml:"obligations"`
	KeyRequirements []string            `json:"key_requirements" yaml:"key_requirements"`
}

// PolicyCompatibility is the rule set as formatted for policy files: the two
// linking dimensions plus the contamination tag. The distribution dimension
// lives in the compatibility matrix instead.
type PolicyCompatibility struct {
	StaticLinking  LinkingRule   `json:"static_linking" yaml:"static_linking"`
	DynamicLinking LinkingRule   `json:"dynamic_linking" yaml:"dynamic_linking"`
	Contamination  Contamination `json:"contamination_effect" yaml:"contamination_effect"`
	Notes          string        `json:"notes" yaml:"notes"`
}

// ObligationRecord is the per-license entry in the obligation database. The
// three booleans are derived from conditions at aggregation time.
type ObligationRecord struct {
	Obligations              []string   `json:"obligations"`
	KeyRequirements          []string   `json:"key_requirements"`
	Conditions               Conditions `json:"conditions"`
	AttributionRequired      bool       `json:"attribution_required"`
	SourceDisclosureRequired bool       `json:"source_disclosure_required"`
	NoticeRequired           bool       `json:"notice_required"`
}

// ObligationDatabase is the aggregate obligation dataset.
type ObligationDatabase struct {
	Version   string                      `json:"version"`
	Generated string                      `json:"generated"`
	Licenses  map[string]ObligationRecord `json:"licenses"`
}

// MasterRecord is the union of everything known about one license.
type MasterRecord struct {
	ID           string      `json:"id" yaml:"id"`
	Name         string      `json:"name" yaml:"name"`
	Category     Category    `json:"category" yaml:"category"`
	Permissions  Permissions `json:"permissions" yaml:"permissions"`
	Conditions   Conditions  `json:"conditions" yaml:"conditions"`
	Limitations  Limitations `json:"limitations" yaml:"limitations"`
	Obligations  []string    `json:"obligations" yaml:"obligations"`
	Rules        RuleSet     `json:"compatibility_rules" yaml:"compatibility_rules"`
	SPDXMetadata Provenance  `json:"spdx_metadata" yaml:"spdx_metadata"`
}

// MasterDatabase combines all classification, rule, and obligation data. It
// is persisted twice, as JSON and as YAML.
type MasterDatabase struct {
	Version       string                  `json:"version" yaml:"version"`
	Generated     string                  `json:"generated" yaml:"generated"`
	TotalLicenses int                     `json:"total_licenses" yaml:"total_licenses"`
	Licenses      map[string]MasterRecord `json:"licenses" yaml:"licenses"`
}

// ValidationReport is the post-hoc completeness report attached to the run
// summary. It never blocks persistence.
type ValidationReport struct {
	TotalLicenses        int      `json:"total_licenses"`
	MissingCategory      int      `json:"missing_category"`
	MissingPermissions   int      `json:"missing_permissions"`
	MissingObligations   int      `json:"missing_obligations"`
	MissingCompatibility int      `json:"missing_compatibility"`
	Errors               []string `json:"validation_errors"`
	IsValid              bool     `json:"is_valid"`
}

// Summary describes one complete generation run.
type Summary struct {
	TotalLicenses   int              `json:"total_licenses"`
	SPDXVersion     string           `json:"spdx_version"`
	GeneratedAt     string           `json:"generated_at"`
	OutputDirectory string           `json:"output_directory"`
	Categories      map[string]int   `json:"categories"`
	Validation      ValidationReport `json:"validation"`
}
