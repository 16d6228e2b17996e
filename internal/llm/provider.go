package llm

import (
	"context"
	"fmt"

	"frontierbrief/internal/model"
)

// Provider defines the interface for LLM commentary providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Comment generates a short commentary on a finished brief
	Comment(ctx context.Context, req CommentRequest) (*CommentResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// CommentRequest contains the input for commentary generation.
// Commentary runs strictly after assessment: the ranked list is final and
// the provider cannot change impacts, scores, or order.
type CommentRequest struct {
	// Assessments is the final ranked assessment list
	Assessments []model.Assessment

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// CommentResponse contains the provider's commentary output
type CommentResponse struct {
	// Commentary is the generated text
	Commentary string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI
	APIKey string

	// BaseURL for custom OpenAI-compatible endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests in seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Model:     "",
		Timeout:   30,
		MaxTokens: 600,
	}
}

// BuildPrompt constructs the default commentary prompt from the ranked
// assessments
func BuildPrompt(assessments []model.Assessment) string {
	prompt := `You are commenting on a ranked daily market brief. The ranking,
impact labels, and signal scores are final and rule-derived - do not revise,
re-rank, or second-guess them.

RULES:
1. Discuss ONLY the items listed below. Do not introduce outside facts.
2. Keep the register skeptical and capital-scarce: what deserves attention,
   what is noise.
3. 3-4 sentences, no bullet points.

Ranked items:
`

	for i, a := range assessments {
		prompt += fmt.Sprintf("%d. [%s] %s -> %s (signal %d/5): %s\n",
			i+1, a.Observation.Topic, a.Observation.Company, a.Impact, a.SignalScore, a.Reason)
	}

	if len(assessments) == 0 {
		prompt += "(no observations were supplied)\n"
	}

	return prompt
}
