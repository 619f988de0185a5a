package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ospolicy/licensegen/internal/llm"
	"github.com/ospolicy/licensegen/internal/model"
)

// Classifier turns (id, text) into a fully-populated classification record.
// With a provider it asks the AI backend and falls back to the deterministic
// rule table on any error; with a nil provider it is pure fallback. Classify
// never returns an error: every degradation path yields a complete record.
type Classifier struct {
	provider llm.Provider
}

// NewClassifier creates a classifier. A nil provider disables the AI path.
func NewClassifier(provider llm.Provider) *Classifier {
	return &Classifier{provider: provider}
}

// Classify produces the classification record for one license.
func (c *Classifier) Classify(ctx context.Context, id, text string) model.Classification {
	if c.provider == nil {
		return FallbackClassification(id)
	}

	resp, err := c.provider.Analyze(ctx, llm.AnalyzeRequest{
		Prompt: buildClassifyPrompt(id, text),
	})
	if err != nil {
		c.warnf("classification of %s fell back (%s backend): %v\n", id, c.provider.Name(), err)
		return FallbackClassification(id)
	}

	raw, ok := ExtractJSON(resp.Reply)
	if !ok {
		c.warnf("classification of %s fell back: no JSON object in reply\n", id)
		return FallbackClassification(id)
	}

	var rec model.Classification
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		c.warnf("classification of %s fell back: parse reply: %v\n", id, err)
		return FallbackClassification(id)
	}

	// A reply without a category is as good as unparsable; the record
	// invariant is that category is always set.
	if rec.Category == "" {
		c.warnf("classification of %s fell back: reply missing category\n", id)
		return FallbackClassification(id)
	}

	rec.LicenseID = id
	if rec.Obligations == nil {
		rec.Obligations = []string{}
	}
	if rec.KeyRequirements == nil {
		rec.KeyRequirements = []string{}
	}

	return rec
}

// warnf logs degradation details without ever surfacing them as errors.
func (c *Classifier) warnf(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, "Warning: "+format, a...)
}

// RuleDeriver turns a classification into linking/distribution compatibility
// rules, with the same dual-path design as the Classifier.
type RuleDeriver struct {
	provider llm.Provider
}

// NewRuleDeriver creates a rule deriver. A nil provider disables the AI path.
func NewRuleDeriver(provider llm.Provider) *RuleDeriver {
	return &RuleDeriver{provider: provider}
}

// Derive produces the compatibility rule set for one classified license.
func (d *RuleDeriver) Derive(ctx context.Context, id string, cls model.Classification) model.RuleSet {
	if d.provider == nil {
		return FallbackRules(id, cls.Category)
	}

	resp, err := d.provider.Analyze(ctx, llm.AnalyzeRequest{
		Prompt: buildRulesPrompt(id, cls.Category),
	})
	if err != nil {
		d.warnf("rule derivation for %s fell back (%s backend): %v\n", id, d.provider.Name(), err)
		return FallbackRules(id, cls.Category)
	}

	raw, ok := ExtractJSON(resp.Reply)
	if !ok {
		d.warnf("rule derivation for %s fell back: no JSON object in reply\n", id)
		return FallbackRules(id, cls.Category)
	}

	var rules model.RuleSet
	if err := json.Unmarshal([]byte(raw), &rules); err != nil {
		d.warnf("rule derivation for %s fell back: parse reply: %v\n", id, err)
		return FallbackRules(id, cls.Category)
	}

	return rules
}

func (d *RuleDeriver) warnf(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, "Warning: "+format, a...)
}
