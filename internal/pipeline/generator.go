package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ospolicy/licensegen/internal/cache"
	"github.com/ospolicy/licensegen/internal/classify"
	"github.com/ospolicy/licensegen/internal/llm"
	"github.com/ospolicy/licensegen/internal/model"
	"github.com/ospolicy/licensegen/internal/registry"
	"github.com/ospolicy/licensegen/internal/util"
	"github.com/ospolicy/licensegen/internal/validate"
	"github.com/ospolicy/licensegen/internal/worker"
)

// Generator drives a full run: registry snapshot, text fetches, concurrent
// classification, dataset aggregation, validation, output.
type Generator struct {
	cfg        *model.Config
	registry   *registry.Client
	classifier *classify.Classifier
	deriver    *classify.RuleDeriver
	pool       *worker.Pool
	renderer   *Renderer
}

// Options control one run.
type Options struct {
	ForceRefresh bool // bypass the registry cache
	Limit        int  // classify only the first N licenses; 0 means all
}

// NewGenerator wires the full pipeline from configuration. An unusable LLM
// configuration downgrades to deterministic classification with a warning
// instead of failing the run.
func NewGenerator(cfg *model.Config) *Generator {
	provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: LLM disabled: %v\n", err)
		provider = nil
	}
	if provider != nil && !provider.IsAvailable(context.Background()) {
		fmt.Fprintf(os.Stderr, "Warning: LLM backend %s not available, using deterministic classification\n", provider.Name())
		provider = nil
	}

	var store cache.Cache
	if cfg.Cache.Enabled {
		dir := cfg.Cache.Dir
		if dir == "" {
			if home, err := os.UserHomeDir(); err == nil {
				dir = filepath.Join(home, ".licensegen", "cache")
			} else {
				dir = ".licensegen-cache"
			}
		}
		store = cache.NewLayeredCache(cfg.Cache.MemoryTTL, dir, cfg.Cache.DiskTTL)
	}

	limiter := worker.NewLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	robots := util.NewRobotsChecker(util.NormalizeUserAgent(cfg.Registry.UserAgent), cfg.Registry.Timeout)

	return &Generator{
		cfg:        cfg,
		registry:   registry.NewClient(cfg.Registry, store, limiter, robots),
		classifier: classify.NewClassifier(provider),
		deriver:    classify.NewRuleDeriver(provider),
		pool:       worker.NewPool(cfg.Concurrency.Workers),
		renderer:   NewRenderer(cfg.Output.Dir),
	}
}

// Run executes the pipeline and returns the run summary. Only setup failures
// (output layout, registry snapshot) are fatal; per-license problems degrade
// to deterministic records.
func (g *Generator) Run(ctx context.Context, opts Options) (*model.Summary, error) {
	if err := g.renderer.EnsureLayout(); err != nil {
		return nil, err
	}

	snap, err := g.registry.Snapshot(ctx, opts.ForceRefresh)
	if err != nil {
		return nil, err
	}

	licenses := selectLicenses(snap.Licenses, opts.Limit)
	fmt.Fprintf(os.Stderr, "Processing %d licenses (SPDX list %s)\n", len(licenses), snap.LicenseListVersion)

	// Text fetches stay sequential; the rate limiter paces them anyway and
	// the classification fan-out is where concurrency pays off.
	texts := make([]string, len(licenses))
	for i, lic := range licenses {
		texts[i] = g.registry.Text(ctx, lic)
	}

	jobs := make([]worker.Job, len(licenses))
	for i, lic := range licenses {
		jobs[i] = &analysisJob{
			license:    lic,
			text:       texts[i],
			classifier: g.classifier,
			deriver:    g.deriver,
		}
	}

	results := g.pool.Run(ctx, jobs)

	analyses := make([]model.LicenseAnalysis, len(results))
	for i, res := range results {
		analyses[i] = res.(*analysisResult).Analysis
	}

	for _, a := range analyses {
		if err := g.renderer.WritePolicy(BuildPolicyFile(a)); err != nil {
			return nil, err
		}
	}

	generated := time.Now().UTC().Format(time.RFC3339)

	if err := g.renderer.WriteMatrix(BuildMatrix(analyses, generated)); err != nil {
		return nil, err
	}
	if err := g.renderer.WriteObligations(BuildObligations(analyses, generated)); err != nil {
		return nil, err
	}
	if err := g.renderer.WriteMaster(BuildMaster(analyses, generated)); err != nil {
		return nil, err
	}

	report := validate.Check(analyses)
	if !report.IsValid {
		fmt.Fprintf(os.Stderr, "Warning: validation found %d issues\n", len(report.Errors))
	}

	summary := &model.Summary{
		TotalLicenses:   len(analyses),
		SPDXVersion:     snap.LicenseListVersion,
		GeneratedAt:     generated,
		OutputDirectory: g.renderer.Dir(),
		Categories:      CountCategories(analyses),
		Validation:      report,
	}

	if err := g.renderer.WriteSummary(summary); err != nil {
		return nil, err
	}

	return summary, nil
}

// selectLicenses drops entries without an id and applies the limit.
func selectLicenses(all []model.RegistryLicense, limit int) []model.RegistryLicense {
	out := make([]model.RegistryLicense, 0, len(all))
	for _, lic := range all {
		if lic.LicenseID == "" {
			continue
		}
		out = append(out, lic)
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

// analysisJob classifies one license and derives its rules. It never fails:
// both stages degrade to deterministic records internally.
type analysisJob struct {
	license    model.RegistryLicense
	text       string
	classifier *classify.Classifier
	deriver    *classify.RuleDeriver
}

func (j *analysisJob) Execute(ctx context.Context) worker.Result {
	cls := j.classifier.Classify(ctx, j.license.LicenseID, j.text)
	rules := j.deriver.Derive(ctx, j.license.LicenseID, cls)

	return &analysisResult{
		Analysis: model.LicenseAnalysis{
			License:        j.license,
			Classification: cls,
			Rules:          rules,
		},
	}
}

type analysisResult struct {
	Analysis model.LicenseAnalysis
}

func (r *analysisResult) Err() error { return nil }
