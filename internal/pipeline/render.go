package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ospolicy/licensegen/internal/model"
	"gopkg.in/yaml.v3"
)

// Dataset file names under the output directory.
const (
	matrixFile      = "compatibility_matrix.json"
	obligationsFile = "obligation_database.json"
	masterJSONFile  = "license_database.json"
	masterYAMLFile  = "license_database.yaml"
	summaryFile     = "generation_summary.json"
)

// Renderer writes the generated datasets. All writes go under one output
// directory passed in at construction; there is no process-wide path state.
type Renderer struct {
	outputDir string
}

// NewRenderer creates a renderer rooted at outputDir.
func NewRenderer(outputDir string) *Renderer {
	return &Renderer{outputDir: outputDir}
}

// Dir returns the output directory.
func (r *Renderer) Dir() string {
	return r.outputDir
}

// EnsureLayout creates the output directory tree. Failure here is fatal to
// the run; nothing else can be persisted without it.
func (r *Renderer) EnsureLayout() error {
	for _, dir := range []string{
		r.outputDir,
		filepath.Join(r.outputDir, "licenses", "spdx"),
		filepath.Join(r.outputDir, "compatibility"),
		filepath.Join(r.outputDir, "obligations"),
	} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory %s: %w", dir, err)
		}
	}
	return nil
}

// PolicyPath returns where one license's policy file lives.
func (r *Renderer) PolicyPath(id string) string {
	return filepath.Join(r.outputDir, "licenses", "spdx", id+".yaml")
}

// WritePolicy writes one per-license policy YAML.
func (r *Renderer) WritePolicy(pf model.PolicyFile) error {
	return r.writeYAML(r.PolicyPath(pf.License.ID), pf)
}

// WriteMatrix writes the compatibility matrix JSON.
func (r *Renderer) WriteMatrix(m *model.Matrix) error {
	return r.writeJSON(filepath.Join(r.outputDir, matrixFile), m)
}

// WriteObligations writes the obligation database JSON.
func (r *Renderer) WriteObligations(db *model.ObligationDatabase) error {
	return r.writeJSON(filepath.Join(r.outputDir, obligationsFile), db)
}

// WriteMaster writes the master database twice: JSON for machines, YAML for
// humans.
func (r *Renderer) WriteMaster(db *model.MasterDatabase) error {
	if err := r.writeJSON(filepath.Join(r.outputDir, masterJSONFile), db); err != nil {
		return err
	}
	return r.writeYAML(filepath.Join(r.outputDir, masterYAMLFile), db)
}

// WriteSummary writes the generation summary JSON.
func (r *Renderer) WriteSummary(s *model.Summary) error {
	return r.writeJSON(filepath.Join(r.outputDir, summaryFile), s)
}

func (r *Renderer) writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}

	return nil
}

func (r *Renderer) writeYAML(path string, v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}

	return nil
}
