// Package ai defines the provider-neutral boundary between the analysis
// services and the text-generation backends that power them. A [Provider] is
// an opaque "prompt in, text out" function; everything the services know
// about model output is that it is a string of unknown formatting.
package ai

import "context"

// Provider is implemented by text-generation backends.
type Provider interface {
	// Generate sends a single-turn request to the model and returns its raw
	// text response. Implementations must honour ctx for cancellation and
	// deadlines.
	Generate(ctx context.Context, request Request) (*Response, error)
}

// Request is a single-turn generation request. Prompt is required; Images
// makes the request multimodal.
type Request struct {
	// Model overrides the provider's default model when non-empty.
	Model string
	// Prompt is the full natural-language instruction for the model.
	Prompt string
	// Images are inline binary attachments (e.g. a meal photo or a
	// nutrition label) sent alongside the prompt.
	Images []Image
	// Temperature overrides the provider's default sampling temperature.
	Temperature *float64
}

// Image is an inline binary attachment for multimodal requests.
type Image struct {
	// MimeType is the media type, e.g. "image/jpeg".
	MimeType string
	// Data holds the raw (not base64-encoded) image bytes.
	Data []byte
}

// Response is the provider-neutral result of a generation call.
type Response struct {
	// Content is the raw model output text, with no formatting guarantees.
	Content string
	// Model is the model that produced the response.
	Model string
	// FinishReason reports why generation stopped, in the provider's own
	// vocabulary.
	FinishReason string
	// Usage holds token accounting when the provider reports it.
	Usage *Usage
}

// Usage holds token usage information for a generation call.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}
