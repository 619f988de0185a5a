package model

// RegistryLicense is a single entry from the SPDX license list.
// Field names match the upstream licenses.json schema.
type RegistryLicense struct {
	LicenseID     string   `json:"licenseId"`
	Name          string   `json:"name"`
	IsOsiApproved bool     `json:"isOsiApproved"`
	IsFsfLibre    bool     `json:"isFsfLibre"`
	IsDeprecated  bool     `json:"isDeprecatedLicenseId"`
	DetailsURL    string   `json:"detailsUrl,omitempty"`
	Reference     string   `json:"reference,omitempty"`
	SeeAlso       []string `json:"seeAlso,omitempty"`
}

// RegistrySnapshot is the full SPDX license list as downloaded.
type RegistrySnapshot struct {
	LicenseListVersion string            `json:"licenseListVersion"`
	ReleaseDate        string            `json:"releaseDate,omitempty"`
	Licenses           []RegistryLicense `json:"licenses"`
}

// LicenseDetails is the per-license details document from the registry.
// Only the text fields are consumed; everything else is ignored.
type LicenseDetails struct {
	LicenseID       string `json:"licenseId"`
	LicenseText     string `json:"licenseText"`
	LicenseTextHTML string `json:"licenseTextHtml"`
}

// Provenance carries the registry approval/deprecation flags into the
// generated datasets.
type Provenance struct {
	IsOsiApproved bool `json:"is_osi_approved" yaml:"is_osi_approved"`
	IsFsfLibre    bool `json:"is_fsf_libre" yaml:"is_fsf_libre"`
	IsDeprecated  bool `json:"is_deprecated" yaml:"is_deprecated"`
}
