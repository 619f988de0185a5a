package classify

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/ospolicy/licensegen/internal/llm"
	"github.com/ospolicy/licensegen/internal/model"
)

// fakeProvider implements llm.Provider for tests
type fakeProvider struct {
	reply string
	err   error
	calls int
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) IsAvailable(ctx context.Context) bool { return true }

func (f *fakeProvider) Analyze(ctx context.Context, req llm.AnalyzeRequest) (*llm.AnalyzeResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &llm.AnalyzeResponse{Reply: f.reply, Model: "fake"}, nil
}

func TestClassifier_NilProviderUsesFallback(t *testing.T) {
	c := NewClassifier(nil)

	got := c.Classify(context.Background(), "MIT", "some text")
	want := FallbackClassification("MIT")

	if !reflect.DeepEqual(got, want) {
		t.Error("nil provider must produce the deterministic fallback")
	}
}

func TestClassifier_AIReplyWins(t *testing.T) {
	p := &fakeProvider{reply: `Analysis follows.
{"category": "copyleft_weak", "permissions": {"commercial_use": true}, "obligations": ["Disclose source"]}`}
	c := NewClassifier(p)

	rec := c.Classify(context.Background(), "MPL-2.0", "mozilla text")

	if p.calls != 1 {
		t.Fatalf("expected 1 backend call, got %d", p.calls)
	}
	if rec.Category != model.CategoryCopyleftWeak {
		t.Errorf("expected copyleft_weak from reply, got %s", rec.Category)
	}
	if rec.LicenseID != "MPL-2.0" {
		t.Errorf("license id must be stamped from input, got %s", rec.LicenseID)
	}
	if len(rec.Obligations) != 1 || rec.Obligations[0] != "Disclose source" {
		t.Errorf("unexpected obligations: %v", rec.Obligations)
	}
}

func TestClassifier_BackendErrorFallsBack(t *testing.T) {
	p := &fakeProvider{err: errors.New("boom")}
	c := NewClassifier(p)

	got := c.Classify(context.Background(), "GPL-2.0-only", "text")
	want := FallbackClassification("GPL-2.0-only")

	if !reflect.DeepEqual(got, want) {
		t.Error("backend error must degrade to the fallback record")
	}
}

func TestClassifier_NoJSONFallsBack(t *testing.T) {
	p := &fakeProvider{reply: "I am unable to analyze this license."}
	c := NewClassifier(p)

	got := c.Classify(context.Background(), "ISC", "text")

	if !reflect.DeepEqual(got, FallbackClassification("ISC")) {
		t.Error("reply without JSON must degrade to the fallback record")
	}
}

func TestClassifier_MalformedJSONFallsBack(t *testing.T) {
	p := &fakeProvider{reply: `{"category": `}
	c := NewClassifier(p)

	got := c.Classify(context.Background(), "ISC", "text")

	if !reflect.DeepEqual(got, FallbackClassification("ISC")) {
		t.Error("unparsable reply must degrade to the fallback record")
	}
}

func TestClassifier_MissingCategoryFallsBack(t *testing.T) {
	p := &fakeProvider{reply: `{"permissions": {"commercial_use": true}}`}
	c := NewClassifier(p)

	got := c.Classify(context.Background(), "0BSD", "text")

	if got.Category == "" {
		t.Fatal("classification must never leave category empty")
	}
	if !reflect.DeepEqual(got, FallbackClassification("0BSD")) {
		t.Error("reply without category must degrade to the fallback record")
	}
}

func TestClassifier_NilSlicesNormalized(t *testing.T) {
	p := &fakeProvider{reply: `{"category": "permissive"}`}
	c := NewClassifier(p)

	rec := c.Classify(context.Background(), "MIT", "text")

	if rec.Obligations == nil || rec.KeyRequirements == nil {
		t.Error("obligations and key requirements must be non-nil slices")
	}
}

func TestRuleDeriver_NilProviderUsesFallback(t *testing.T) {
	d := NewRuleDeriver(nil)
	cls := FallbackClassification("GPL-3.0-only")

	got := d.Derive(context.Background(), "GPL-3.0-only", cls)
	want := FallbackRules("GPL-3.0-only", cls.Category)

	if !reflect.DeepEqual(got, want) {
		t.Error("nil provider must produce the deterministic rules")
	}
}

func TestRuleDeriver_AIReplyWins(t *testing.T) {
	p := &fakeProvider{reply: `{"contamination_effect": "module", "notes": "library scope only"}`}
	d := NewRuleDeriver(p)

	rules := d.Derive(context.Background(), "LGPL-3.0-only", FallbackClassification("LGPL-3.0-only"))

	if rules.Contamination != model.ContaminationModule {
		t.Errorf("expected module contamination from reply, got %s", rules.Contamination)
	}
	if rules.Notes != "library scope only" {
		t.Errorf("unexpected notes: %s", rules.Notes)
	}
}

func TestRuleDeriver_BackendErrorFallsBack(t *testing.T) {
	p := &fakeProvider{err: errors.New("timeout")}
	d := NewRuleDeriver(p)
	cls := FallbackClassification("Apache-2.0")

	got := d.Derive(context.Background(), "Apache-2.0", cls)

	if !reflect.DeepEqual(got, FallbackRules("Apache-2.0", cls.Category)) {
		t.Error("backend error must degrade to the fallback rules")
	}
}
