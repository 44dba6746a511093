// Package gemini implements the ai.Provider interface for Google's Gemini
// API via the generativelanguage REST endpoint.
package gemini

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/pockeat/pockeat-go/internal/utils"
	"github.com/pockeat/pockeat-go/providers/ai"
	"github.com/pockeat/pockeat-go/providers/observability"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-1.5-pro"
	// defaultTemperature keeps analysis output deterministic enough to parse.
	defaultTemperature = 0.1
)

// GeminiProvider implements the ai.Provider interface for Google's Gemini API.
type GeminiProvider struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
	logger  observability.Logger
}

// New creates a new Gemini provider instance with defaults from environment.
// Environment variables:
//   - GOOGLE_API_KEY: API key for authentication
//   - GEMINI_API_KEY: fallback API key when GOOGLE_API_KEY is not set
//   - GEMINI_API_BASE_URL: Base URL for API (optional, defaults to Google's API)
func New() *GeminiProvider {
	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	baseURL := os.Getenv("GEMINI_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &GeminiProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   defaultModel,
		client:  &http.Client{},
		logger:  observability.NopLogger{},
	}
}

// WithAPIKey sets the API key for the provider.
func (p *GeminiProvider) WithAPIKey(apiKey string) *GeminiProvider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL sets the base URL for the API.
func (p *GeminiProvider) WithBaseURL(baseURL string) *GeminiProvider {
	p.baseURL = baseURL
	return p
}

// WithModel sets the default model used when a request does not name one.
func (p *GeminiProvider) WithModel(model string) *GeminiProvider {
	p.model = model
	return p
}

// WithHTTPClient sets a custom HTTP client.
func (p *GeminiProvider) WithHTTPClient(httpClient *http.Client) *GeminiProvider {
	p.client = httpClient
	return p
}

// WithLogger sets the logger used for request/response tracing.
func (p *GeminiProvider) WithLogger(logger observability.Logger) *GeminiProvider {
	if logger != nil {
		p.logger = logger
	}
	return p
}

// CheckHealth reports whether the provider is usable. It only verifies local
// configuration; it does not call the network.
func (p *GeminiProvider) CheckHealth(ctx context.Context) error {
	if p.apiKey == "" {
		return fmt.Errorf("gemini API key is missing: set the GOOGLE_API_KEY environment variable")
	}
	return nil
}

// Generate implements the ai.Provider interface. It sends a generateContent
// request to the Gemini API and returns the model's text response.
func (p *GeminiProvider) Generate(ctx context.Context, request ai.Request) (*ai.Response, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("gemini API key is missing: set the GOOGLE_API_KEY environment variable")
	}

	model := request.Model
	if model == "" {
		model = p.model
	}

	p.logger.Debug(ctx, "gemini provider preparing request",
		observability.String(observability.AttrProvider, "gemini"),
		observability.String(observability.AttrEndpoint, p.baseURL),
		observability.String(observability.AttrModel, model),
		observability.String(observability.AttrPreview, utils.TruncateString(request.Prompt, 100)),
		observability.Int("request.images", len(request.Images)),
	)

	url := fmt.Sprintf("%s/models/%s:generateContent", p.baseURL, model)
	geminiReq := requestToGemini(request)

	httpResponse, resp, err := utils.DoPostSync[generateContentResponse](
		ctx,
		p.client,
		url,
		"", // Gemini authenticates via its own header, not Bearer auth.
		geminiReq,
		utils.HeaderOption{Key: "x-goog-api-key", Value: p.apiKey},
	)
	if err != nil {
		p.logger.Error(ctx, "gemini request failed", observability.Error(err))
		return nil, err
	}
	if resp == nil {
		return nil, fmt.Errorf("empty response from Gemini API: %s", httpResponse.Status)
	}

	result, err := geminiToResponse(*resp)
	if err != nil {
		return nil, err
	}
	result.Model = model // Ensure model is set even if not in response

	p.logger.Debug(ctx, "gemini provider received response",
		observability.String(observability.AttrModel, model),
		observability.String(observability.AttrPreview, utils.TruncateString(result.Content, 100)),
	)

	return result, nil
}
