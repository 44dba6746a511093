package gemini

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/pockeat/pockeat-go/internal/utils"
	"github.com/pockeat/pockeat-go/providers/ai"
)

// requestToGemini converts a provider-neutral request into Gemini's wire
// format. Images are base64-encoded as inline data parts after the prompt.
func requestToGemini(request ai.Request) generateContentRequest {
	parts := make([]part, 0, 1+len(request.Images))
	parts = append(parts, part{Text: request.Prompt})
	for _, image := range request.Images {
		parts = append(parts, part{
			InlineData: &inlineData{
				MimeType: image.MimeType,
				Data:     base64.StdEncoding.EncodeToString(image.Data),
			},
		})
	}

	temperature := request.Temperature
	if temperature == nil {
		temperature = utils.Ptr(defaultTemperature)
	}

	return generateContentRequest{
		Contents: []content{
			{Role: "user", Parts: parts},
		},
		GenerationConfig: &generationConfig{
			Temperature: temperature,
		},
	}
}

// geminiToResponse converts Gemini's wire response into the provider-neutral
// form, joining all text parts of the first candidate.
func geminiToResponse(response generateContentResponse) (*ai.Response, error) {
	if len(response.Candidates) == 0 {
		if response.PromptFeedback != nil && response.PromptFeedback.BlockReason != "" {
			return nil, fmt.Errorf("gemini blocked the prompt: %s", response.PromptFeedback.BlockReason)
		}
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	first := response.Candidates[0]
	var builder strings.Builder
	if first.Content != nil {
		for _, p := range first.Content.Parts {
			builder.WriteString(p.Text)
		}
	}

	result := &ai.Response{
		Content:      builder.String(),
		Model:        response.ModelVersion,
		FinishReason: first.FinishReason,
	}
	if response.UsageMetadata != nil {
		result.Usage = &ai.Usage{
			PromptTokens:     response.UsageMetadata.PromptTokenCount,
			CompletionTokens: response.UsageMetadata.CandidatesTokenCount,
			TotalTokens:      response.UsageMetadata.TotalTokenCount,
		}
	}
	return result, nil
}
