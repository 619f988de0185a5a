package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ospolicy/licensegen/internal/model"
	"gopkg.in/yaml.v3"
)

func TestRenderer_EnsureLayout(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(filepath.Join(dir, "data"))

	if err := r.EnsureLayout(); err != nil {
		t.Fatalf("EnsureLayout failed: %v", err)
	}

	for _, sub := range []string{"licenses/spdx", "compatibility", "obligations"} {
		if _, err := os.Stat(filepath.Join(dir, "data", sub)); err != nil {
			t.Errorf("expected directory %s: %v", sub, err)
		}
	}
}

func TestRenderer_WritePolicy(t *testing.T) {
	r := NewRenderer(t.TempDir())
	if err := r.EnsureLayout(); err != nil {
		t.Fatalf("EnsureLayout failed: %v", err)
	}

	pf := BuildPolicyFile(model.LicenseAnalysis{
		License:        model.RegistryLicense{LicenseID: "MIT", Name: "MIT License"},
		Classification: model.Classification{Category: model.CategoryPermissive},
	})

	if err := r.WritePolicy(pf); err != nil {
		t.Fatalf("WritePolicy failed: %v", err)
	}

	data, err := os.ReadFile(r.PolicyPath("MIT"))
	if err != nil {
		t.Fatalf("policy file missing: %v", err)
	}

	var loaded model.PolicyFile
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("policy file not valid YAML: %v", err)
	}
	if loaded.License.ID != "MIT" || loaded.License.Type != model.CategoryPermissive {
		t.Errorf("unexpected policy content: %+v", loaded.License)
	}
}

func TestRenderer_WriteMaster_BothFormats(t *testing.T) {
	r := NewRenderer(t.TempDir())
	if err := r.EnsureLayout(); err != nil {
		t.Fatalf("EnsureLayout failed: %v", err)
	}

	db := BuildMaster([]model.LicenseAnalysis{
		analysisWith("MIT", model.CategoryPermissive),
	}, "2026-01-01T00:00:00Z")

	if err := r.WriteMaster(db); err != nil {
		t.Fatalf("WriteMaster failed: %v", err)
	}

	jsonData, err := os.ReadFile(filepath.Join(r.Dir(), "license_database.json"))
	if err != nil {
		t.Fatalf("JSON master missing: %v", err)
	}
	var fromJSON model.MasterDatabase
	if err := json.Unmarshal(jsonData, &fromJSON); err != nil {
		t.Fatalf("JSON master unreadable: %v", err)
	}

	yamlData, err := os.ReadFile(filepath.Join(r.Dir(), "license_database.yaml"))
	if err != nil {
		t.Fatalf("YAML master missing: %v", err)
	}
	var fromYAML model.MasterDatabase
	if err := yaml.Unmarshal(yamlData, &fromYAML); err != nil {
		t.Fatalf("YAML master unreadable: %v", err)
	}

	if fromJSON.TotalLicenses != 1 || fromYAML.TotalLicenses != 1 {
		t.Errorf("expected 1 license in both formats, got %d/%d",
			fromJSON.TotalLicenses, fromYAML.TotalLicenses)
	}
}

func TestRenderer_WriteSummary(t *testing.T) {
	r := NewRenderer(t.TempDir())
	if err := r.EnsureLayout(); err != nil {
		t.Fatalf("EnsureLayout failed: %v", err)
	}

	s := &model.Summary{
		TotalLicenses:   2,
		SPDXVersion:     "3.24",
		GeneratedAt:     "2026-01-01T00:00:00Z",
		OutputDirectory: r.Dir(),
		Categories:      map[string]int{"permissive": 2},
		Validation:      model.ValidationReport{TotalLicenses: 2, IsValid: true, Errors: []string{}},
	}

	if err := r.WriteSummary(s); err != nil {
		t.Fatalf("WriteSummary failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(r.Dir(), "generation_summary.json"))
	if err != nil {
		t.Fatalf("summary missing: %v", err)
	}

	var loaded model.Summary
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("summary unreadable: %v", err)
	}
	if loaded.SPDXVersion != "3.24" || !loaded.Validation.IsValid {
		t.Errorf("unexpected summary content: %+v", loaded)
	}
}
