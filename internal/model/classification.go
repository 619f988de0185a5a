package model

// Category classifies a license by the strength of its conditions.
type Category string

const (
	CategoryPermissive     Category = "permissive"
	CategoryCopyleftWeak   Category = "copyleft_weak"
	CategoryCopyleftStrong Category = "copyleft_strong"
	CategoryPublicDomain   Category = "public_domain"
	CategoryProprietary    Category = "proprietary"
)

// Permissions are the rights a license grants.
type Permissions struct {
	CommercialUse bool `json:"commercial_use" yaml:"commercial_use"`
	Distribution  bool `json:"distribution" yaml:"distribution"`
	Modification  bool `json:"modification" yaml:"modification"`
	PatentGrant   bool `json:"patent_grant" yaml:"patent_grant"`
	PrivateUse    bool `json:"private_use" yaml:"private_use"`
}

// Conditions are the requirements a license attaches to those rights.
type Conditions struct {
	DiscloseSource       bool `json:"disclose_source" yaml:"disclose_source"`
	IncludeLicense       bool `json:"include_license" yaml:"include_license"`
	IncludeCopyright     bool `json:"include_copyright" yaml:"include_copyright"`
	IncludeNotice        bool `json:"include_notice" yaml:"include_notice"`
	StateChanges         bool `json:"state_changes" yaml:"state_changes"`
	SameLicense          bool `json:"same_license" yaml:"same_license"`
	NetworkUseDisclosure bool `json:"network_use_disclosure" yaml:"network_use_disclosure"`
}

// Limitations are the protections a license withholds.
type Limitations struct {
	Liability    bool `json:"liability" yaml:"liability"`
	Warranty     bool `json:"warranty" yaml:"warranty"`
	TrademarkUse bool `json:"trademark_use" yaml:"trademark_use"`
}

// Restriction grades how strongly a linking mode is constrained.
type Restriction string

const (
	RestrictionNone   Restriction = "none"
	RestrictionWeak   Restriction = "weak"
	RestrictionStrong Restriction = "strong"
)

// CombineProfile is the coarse combination summary produced alongside a
// classification. The pairwise matrix is derived separately; this block is
// carried through to the master database as-is.
type CombineProfile struct {
	CanCombinePermissive     bool        `json:"can_combine_with_permissive" yaml:"can_combine_with_permissive"`
	CanCombineWeakCopyleft   bool        `json:"can_combine_with_weak_copyleft" yaml:"can_combine_with_weak_copyleft"`
	CanCombineStrongCopyleft bool        `json:"can_combine_with_strong_copyleft" yaml:"can_combine_with_strong_copyleft"`
	StaticLinking            Restriction `json:"static_linking_restrictions" yaml:"static_linking_restrictions"`
	DynamicLinking           Restriction `json:"dynamic_linking_restrictions" yaml:"dynamic_linking_restrictions"`
}

// Classification is the fully-populated record the classifier produces for a
// license. Category is always set; the fallback path guarantees a default.
type Classification struct {
	LicenseID       string         `json:"license_id" yaml:"license_id"`
	Category        Category       `json:"category" yaml:"category"`
	Permissions     Permissions    `json:"permissions" yaml:"permissions"`
	Conditions      Conditions     `json:"conditions" yaml:"conditions"`
	Limitations     Limitations    `json:"limitations" yaml:"limitations"`
	Compatibility   CombineProfile `json:"compatibility" yaml:"compatibility"`
	Obligations     []string       `json:"obligations" yaml:"obligations"`
	KeyRequirements []string       `json:"key_requirements" yaml:"key_requirements"`
}

// LicenseAnalysis bundles everything known about one license after the
// classification batch: the registry entry, the classification, and the
// derived compatibility rules.
type LicenseAnalysis struct {
	License        RegistryLicense
	Classification Classification
	Rules          RuleSet
}
