package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"frontierbrief/internal/model"
	"github.com/sashabaranov/go-openai"
)

func commentServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("Expected path /chat/completions, got %s", r.URL.Path)
		}

		resp := openai.ChatCompletionResponse{
			ID:     "chatcmpl-123",
			Object: "chat.completion",
			Model:  "gpt-4o-mini",
			Choices: []openai.ChatCompletionChoice{
				{
					Index: 0,
					Message: openai.ChatCompletionMessage{
						Role:    "assistant",
						Content: content,
					},
					FinishReason: "stop",
				},
			},
			Usage: openai.Usage{TotalTokens: 42},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestOpenAIProvider_Comment_Success(t *testing.T) {
	server := commentServer(t, "  Only the NVIDIA item clears the action filter.  ")
	defer server.Close()

	provider, err := NewOpenAIProvider(Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Model:   "gpt-4o-mini",
		Timeout: 5,
	})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	resp, err := provider.Comment(context.Background(), CommentRequest{
		Assessments: []model.Assessment{
			{
				Observation: model.Observation{Topic: "AI hardware", Company: "NVIDIA"},
				Impact:      model.ImpactPositive,
				SignalScore: 5,
				Reason:      "positive cues: beats",
			},
		},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if resp.Commentary != "Only the NVIDIA item clears the action filter." {
		t.Errorf("Expected trimmed commentary, got %q", resp.Commentary)
	}
	if resp.TokensUsed != 42 {
		t.Errorf("Expected 42 tokens, got %d", resp.TokensUsed)
	}
}

func TestNewOpenAIProvider_RequiresKeyOrBaseURL(t *testing.T) {
	if _, err := NewOpenAIProvider(Config{}); err == nil {
		t.Error("Expected an error without API key or base URL")
	}
}

func TestBuildPrompt_ListsRankedItems(t *testing.T) {
	prompt := BuildPrompt([]model.Assessment{
		{
			Observation: model.Observation{Topic: "AI hardware", Company: "NVIDIA"},
			Impact:      model.ImpactPositive,
			SignalScore: 5,
			Reason:      "positive cues: beats",
		},
		{
			Observation: model.Observation{Topic: "Robotics", Company: "Fanuc"},
			Impact:      model.ImpactMixed,
			SignalScore: 0,
			Reason:      "insufficient directional evidence; limited specificity",
		},
	})

	if !strings.Contains(prompt, "1. [AI hardware] NVIDIA -> positive (signal 5/5)") {
		t.Errorf("Expected first ranked item in prompt, got:\n%s", prompt)
	}
	if !strings.Contains(prompt, "2. [Robotics] Fanuc -> mixed/unclear (signal 0/5)") {
		t.Errorf("Expected second ranked item in prompt, got:\n%s", prompt)
	}
	if !strings.Contains(prompt, "do not revise") {
		t.Error("Expected prompt to forbid revising the ranking")
	}
}

func TestNewProvider_Factory(t *testing.T) {
	p, err := NewProvider(Config{})
	if err != nil || p != nil {
		t.Errorf("Expected nil provider when disabled, got %v, %v", p, err)
	}

	if _, err := NewProvider(Config{Provider: "anthropic"}); err == nil {
		t.Error("Expected an error for unsupported provider")
	}

	ollama, err := NewProvider(Config{Provider: "ollama"})
	if err != nil {
		t.Fatalf("Expected no error for ollama, got %v", err)
	}
	if ollama.Name() != "ollama" {
		t.Errorf("Expected provider name ollama, got %s", ollama.Name())
	}
}
