package gemini

import (
	"testing"

	"github.com/pockeat/pockeat-go/internal/utils"
	"github.com/pockeat/pockeat-go/providers/ai"
)

func TestRequestToGemini_TemperatureOverride(t *testing.T) {
	req := requestToGemini(ai.Request{
		Prompt:      "hello",
		Temperature: utils.Ptr(0.7),
	})
	if req.GenerationConfig == nil || req.GenerationConfig.Temperature == nil {
		t.Fatal("expected temperature in generation config")
	}
	if *req.GenerationConfig.Temperature != 0.7 {
		t.Errorf("expected temperature 0.7, got %v", *req.GenerationConfig.Temperature)
	}
}

func TestGeminiToResponse(t *testing.T) {
	tests := []struct {
		name        string
		input       generateContentResponse
		wantContent string
		wantErr     bool
	}{
		{
			name: "single text part",
			input: generateContentResponse{
				Candidates: []candidate{{
					Content:      &content{Parts: []part{{Text: "result"}}},
					FinishReason: "STOP",
				}},
			},
			wantContent: "result",
		},
		{
			name: "multiple text parts joined",
			input: generateContentResponse{
				Candidates: []candidate{{
					Content: &content{Parts: []part{{Text: "part one "}, {Text: "part two"}}},
				}},
			},
			wantContent: "part one part two",
		},
		{
			name:    "no candidates",
			input:   generateContentResponse{},
			wantErr: true,
		},
		{
			name: "blocked prompt",
			input: generateContentResponse{
				PromptFeedback: &promptFeedback{BlockReason: "SAFETY"},
			},
			wantErr: true,
		},
		{
			name: "candidate without content",
			input: generateContentResponse{
				Candidates: []candidate{{FinishReason: "STOP"}},
			},
			wantContent: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := geminiToResponse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.Content != tt.wantContent {
				t.Errorf("expected content %q, got %q", tt.wantContent, resp.Content)
			}
		})
	}
}
