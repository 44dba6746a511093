package food

import (
	"context"
	"fmt"

	"github.com/pockeat/pockeat-go/internal/utils"
	"github.com/pockeat/pockeat-go/providers/ai"
	"github.com/pockeat/pockeat-go/providers/observability"
)

// Service runs food analysis operations against an [ai.Provider].
type Service struct {
	provider ai.Provider
	model    string
	logger   observability.Logger
}

// NewService creates a food analysis service backed by the given provider.
func NewService(provider ai.Provider) *Service {
	return &Service{
		provider: provider,
		logger:   observability.NopLogger{},
	}
}

// WithModel overrides the provider's default model for this service.
func (s *Service) WithModel(model string) *Service {
	s.model = model
	return s
}

// WithLogger sets the logger used for analysis tracing.
func (s *Service) WithLogger(logger observability.Logger) *Service {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// AnalyzeText analyzes a free-text food description. Provider failures are
// returned as errors; unparseable model output yields a result whose Error
// field is set.
func (s *Service) AnalyzeText(ctx context.Context, description string) (*AnalysisResult, error) {
	s.logger.Info(ctx, "analyzing food from text",
		observability.String(observability.AttrPreview, utils.TruncateString(description, 50)),
	)

	raw, err := s.generate(ctx, textAnalysisPrompt(description), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze food text: %w", err)
	}
	return ParseAnalysisResponse(raw, description), nil
}

// AnalyzeImage analyzes a meal photo.
func (s *Service) AnalyzeImage(ctx context.Context, image ai.Image) (*AnalysisResult, error) {
	s.logger.Info(ctx, "analyzing food from image",
		observability.Int("image.bytes", len(image.Data)),
	)

	raw, err := s.generate(ctx, imageAnalysisPrompt(), []ai.Image{image})
	if err != nil {
		return nil, fmt.Errorf("failed to analyze food image: %w", err)
	}
	return ParseAnalysisResponse(raw, "Unknown"), nil
}

// AnalyzeNutritionLabel analyzes a photographed nutrition label, scaled to
// the number of servings the user will consume.
func (s *Service) AnalyzeNutritionLabel(ctx context.Context, image ai.Image, servings float64) (*AnalysisResult, error) {
	s.logger.Info(ctx, "analyzing nutrition label",
		observability.Float64("servings", servings),
	)

	raw, err := s.generate(ctx, nutritionLabelPrompt(servings), []ai.Image{image})
	if err != nil {
		return nil, fmt.Errorf("failed to analyze nutrition label: %w", err)
	}
	return ParseAnalysisResponse(raw, "Unknown"), nil
}

// CorrectAnalysis revises a previous analysis based on user feedback. The
// corrected result keeps the previous result's ID.
func (s *Service) CorrectAnalysis(ctx context.Context, previous *AnalysisResult, userComment string) (*AnalysisResult, error) {
	s.logger.Info(ctx, "correcting food analysis",
		observability.String("result.id", previous.ID),
		observability.String(observability.AttrPreview, utils.TruncateString(userComment, 50)),
	)

	raw, err := s.generate(ctx, correctionPrompt(previous, userComment), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to correct food analysis: %w", err)
	}
	corrected := ParseAnalysisResponse(raw, previous.FoodName)
	corrected.ID = previous.ID
	return corrected, nil
}

// CorrectNutritionLabel revises a previous nutrition label analysis based on
// user feedback, keeping the previous result's ID.
func (s *Service) CorrectNutritionLabel(ctx context.Context, previous *AnalysisResult, userComment string, servings float64) (*AnalysisResult, error) {
	s.logger.Info(ctx, "correcting nutrition label analysis",
		observability.String("result.id", previous.ID),
		observability.Float64("servings", servings),
	)

	raw, err := s.generate(ctx, nutritionLabelCorrectionPrompt(previous, userComment, servings), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to correct nutrition label analysis: %w", err)
	}
	corrected := ParseAnalysisResponse(raw, previous.FoodName)
	corrected.ID = previous.ID
	return corrected, nil
}

func (s *Service) generate(ctx context.Context, prompt string, images []ai.Image) (string, error) {
	response, err := s.provider.Generate(ctx, ai.Request{
		Model:  s.model,
		Prompt: prompt,
		Images: images,
	})
	if err != nil {
		return "", err
	}

	s.logger.Debug(ctx, "received model response",
		observability.String(observability.AttrPreview, utils.TruncateString(response.Content, 100)),
	)
	return response.Content, nil
}
