package llm

import "context"

// Provider defines the interface for LLM backends used during license
// analysis. A nil Provider means AI classification is disabled and every
// record comes from the deterministic fallback tables.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Analyze sends a single analysis prompt and returns the raw reply.
	// Callers own JSON extraction; a reply with no parsable JSON is the
	// caller's problem, not the provider's.
	Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// AnalyzeRequest contains the input for one LLM analysis call.
type AnalyzeRequest struct {
	// Prompt is the full analysis prompt (already bounded by the caller)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// AnalyzeResponse contains the LLM's raw reply.
type AnalyzeResponse struct {
	// Reply is the free-text reply, expected to embed one JSON object
	Reply string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Model:     "",
		Timeout:   60,
		MaxTokens: 2000,
	}
}

// systemPrompt frames every analysis call. Compliance output must be
// machine-readable, so the system prompt pins the JSON contract.
const systemPrompt = `You are an expert in software licensing and open source compliance. ` +
	`You analyze software licenses and report obligations, compatibility, ` +
	`usage restrictions, permissions, patent grants, and trademark rules. ` +
	`Always answer with a single structured JSON object. ` +
	`Be precise and accurate - licensing compliance is critical.`
