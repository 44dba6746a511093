package exercise

import (
	"context"
	"fmt"

	"github.com/pockeat/pockeat-go/internal/utils"
	"github.com/pockeat/pockeat-go/providers/ai"
	"github.com/pockeat/pockeat-go/providers/observability"
)

// Service runs exercise analysis operations against an [ai.Provider].
type Service struct {
	provider ai.Provider
	model    string
	logger   observability.Logger
}

// NewService creates an exercise analysis service backed by the given
// provider.
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

// Analyze estimates calories burned from an exercise description. Provider
// failures are returned as errors; unparseable model output yields a result
// whose Error field is set.
func (s *Service) Analyze(ctx context.Context, description string, metrics UserMetrics) (*Result, error) {
	s.logger.Info(ctx, "analyzing exercise",
		observability.String(observability.AttrPreview, utils.TruncateString(description, 50)),
	)

	raw, err := s.generate(ctx, analysisPrompt(description, metrics))
	if err != nil {
		return nil, fmt.Errorf("failed to analyze exercise: %w", err)
	}
	return ParseAnalysisResponse(raw), nil
}

// Correct revises a previous analysis based on user feedback. The corrected
// result keeps the previous result's ID.
func (s *Service) Correct(ctx context.Context, previous *Result, userComment string, metrics UserMetrics) (*Result, error) {
	s.logger.Info(ctx, "correcting exercise analysis",
		observability.String("result.id", previous.ID),
		observability.String(observability.AttrPreview, utils.TruncateString(userComment, 50)),
	)

	raw, err := s.generate(ctx, correctionPrompt(previous, userComment, metrics))
	if err != nil {
		return nil, fmt.Errorf("failed to correct exercise analysis: %w", err)
	}
	corrected := ParseAnalysisResponse(raw)
	corrected.ID = previous.ID
	return corrected, nil
}

func (s *Service) generate(ctx context.Context, prompt string) (string, error) {
	response, err := s.provider.Generate(ctx, ai.Request{
		Model:  s.model,
		Prompt: prompt,
	})
	if err != nil {
		return "", err
	}

	s.logger.Debug(ctx, "received model response",
		observability.String(observability.AttrPreview, utils.TruncateString(response.Content, 100)),
	)
	return response.Content, nil
}
