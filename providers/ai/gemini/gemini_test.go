package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pockeat/pockeat-go/providers/ai"
)

func TestNew(t *testing.T) {
	provider := New()
	if provider == nil {
		t.Fatal("New() returned nil")
	}
	if provider.baseURL != defaultBaseURL {
		t.Errorf("expected baseURL %q, got %q", defaultBaseURL, provider.baseURL)
	}
	if provider.model != defaultModel {
		t.Errorf("expected model %q, got %q", defaultModel, provider.model)
	}
}

func TestWithAPIKey(t *testing.T) {
	provider := New().WithAPIKey("test-key")
	if provider.apiKey != "test-key" {
		t.Errorf("expected apiKey %q, got %q", "test-key", provider.apiKey)
	}
}

func TestWithBaseURL(t *testing.T) {
	provider := New().WithBaseURL("https://custom.api.com")
	if provider.baseURL != "https://custom.api.com" {
		t.Errorf("expected baseURL %q, got %q", "https://custom.api.com", provider.baseURL)
	}
}

func TestCheckHealth_MissingKey(t *testing.T) {
	provider := New().WithAPIKey("")
	if err := provider.CheckHealth(context.Background()); err == nil {
		t.Error("expected error for missing API key")
	}
}

func TestGenerate_Basic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("expected POST, got %s", r.Method)
		}

		// Verify Gemini auth header
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Errorf("missing or incorrect x-goog-api-key header: %s", r.Header.Get("x-goog-api-key"))
		}

		// Verify no Bearer auth
		if r.Header.Get("Authorization") != "" {
			t.Errorf("unexpected Authorization header: %s", r.Header.Get("Authorization"))
		}

		var req generateContentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}

		if len(req.Contents) != 1 {
			t.Fatalf("expected 1 content block, got %d", len(req.Contents))
		}
		if req.Contents[0].Parts[0].Text != "Analyze this meal" {
			t.Errorf("unexpected prompt text: %q", req.Contents[0].Parts[0].Text)
		}

		// Default temperature must be applied when the request leaves it unset.
		if req.GenerationConfig == nil || req.GenerationConfig.Temperature == nil {
			t.Fatal("expected generationConfig.temperature in request")
		}
		if *req.GenerationConfig.Temperature != defaultTemperature {
			t.Errorf("expected temperature %v, got %v", defaultTemperature, *req.GenerationConfig.Temperature)
		}

		resp := generateContentResponse{
			Candidates: []candidate{{
				Content: &content{
					Role:  "model",
					Parts: []part{{Text: `{"food_name": "salad"}`}},
				},
				FinishReason: "STOP",
			}},
			UsageMetadata: &usageMetadata{
				PromptTokenCount:     10,
				CandidatesTokenCount: 8,
				TotalTokenCount:      18,
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	provider := New().
		WithAPIKey("test-key").
		WithBaseURL(server.URL)

	response, err := provider.Generate(context.Background(), ai.Request{
		Prompt: "Analyze this meal",
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if response.Content != `{"food_name": "salad"}` {
		t.Errorf("unexpected content: %s", response.Content)
	}
	if response.Model != defaultModel {
		t.Errorf("expected model %q, got %q", defaultModel, response.Model)
	}
	if response.Usage == nil {
		t.Fatal("expected usage in response")
	}
	if response.Usage.TotalTokens != 18 {
		t.Errorf("expected 18 total tokens, got %d", response.Usage.TotalTokens)
	}
}

func TestGenerate_WithImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req generateContentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}

		parts := req.Contents[0].Parts
		if len(parts) != 2 {
			t.Fatalf("expected 2 parts (text + image), got %d", len(parts))
		}
		if parts[1].InlineData == nil {
			t.Fatal("expected inlineData in second part")
		}
		if parts[1].InlineData.MimeType != "image/jpeg" {
			t.Errorf("unexpected mime type: %s", parts[1].InlineData.MimeType)
		}
		// "fake-image-bytes" base64-encoded
		if parts[1].InlineData.Data != "ZmFrZS1pbWFnZS1ieXRlcw==" {
			t.Errorf("unexpected inline data: %s", parts[1].InlineData.Data)
		}

		resp := generateContentResponse{
			Candidates: []candidate{{
				Content: &content{Role: "model", Parts: []part{{Text: "ok"}}},
			}},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	provider := New().
		WithAPIKey("test-key").
		WithBaseURL(server.URL)

	_, err := provider.Generate(context.Background(), ai.Request{
		Prompt: "What food is in this image?",
		Images: []ai.Image{{MimeType: "image/jpeg", Data: []byte("fake-image-bytes")}},
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
}

func TestGenerate_MissingKey(t *testing.T) {
	provider := New().WithAPIKey("")
	_, err := provider.Generate(context.Background(), ai.Request{Prompt: "hi"})
	if err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestGenerate_BlockedPrompt(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := generateContentResponse{
			PromptFeedback: &promptFeedback{BlockReason: "SAFETY"},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	provider := New().
		WithAPIKey("test-key").
		WithBaseURL(server.URL)

	_, err := provider.Generate(context.Background(), ai.Request{Prompt: "hi"})
	if err == nil {
		t.Fatal("expected error for blocked prompt")
	}
}
