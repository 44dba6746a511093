package jsonx

import (
	"encoding/json"

	"github.com/pockeat/pockeat-go/internal/utils"
)

// PreviewLimit is the maximum number of candidate characters carried inside a
// [ParseError] for diagnostics. Error payloads stay small; the full text is
// never attached.
const PreviewLimit = 100

// ErrorKind classifies why a candidate could not be parsed.
type ErrorKind int

const (
	// KindMalformed means both the raw and the repaired decode attempts failed.
	KindMalformed ErrorKind = iota
	// KindEmptyInput means the candidate was empty before any decode attempt.
	KindEmptyInput
)

// ParseError is the typed failure returned by [Parse] when no viable JSON
// could be produced after extraction and repair.
type ParseError struct {
	Kind    ErrorKind
	Message string
	// Preview holds a truncated prefix of the original candidate, capped at
	// [PreviewLimit] characters. Empty for KindEmptyInput.
	Preview string
}

func (e *ParseError) Error() string {
	if e.Preview == "" {
		return e.Message
	}
	return e.Message + " (raw: " + e.Preview + ")"
}

// repairCandidate is swapped out by tests to verify that valid JSON never
// takes the repair path.
var repairCandidate = Repair

// Parse decodes candidate into a string-keyed map, tolerating the JSON
// defects [Repair] knows how to fix.
//
// The algorithm is bounded to two decode attempts: the candidate as-is, then
// once more after repair. Already-valid JSON is returned untouched: repair
// is never applied to it, which both avoids the extra work and keeps valid
// escaped content from being corrupted. An empty candidate fails with
// [KindEmptyInput] before any decode is tried.
//
// Presence of any particular key is not guaranteed; callers must default
// missing fields themselves.
func Parse(candidate string) (map[string]any, error) {
	if candidate == "" {
		return nil, &ParseError{Kind: KindEmptyInput, Message: "empty JSON string"}
	}

	var direct map[string]any
	if err := json.Unmarshal([]byte(candidate), &direct); err == nil {
		return direct, nil
	}

	var repaired map[string]any
	if err := json.Unmarshal([]byte(repairCandidate(candidate)), &repaired); err != nil {
		return nil, &ParseError{
			Kind:    KindMalformed,
			Message: "failed to parse JSON: " + err.Error(),
			Preview: utils.TruncateString(candidate, PreviewLimit),
		}
	}
	return repaired, nil
}
