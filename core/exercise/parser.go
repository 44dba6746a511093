package exercise

import (
	"strconv"

	"github.com/pockeat/pockeat-go/core/jsonx"
	"github.com/pockeat/pockeat-go/internal/utils"
)

// ParseAnalysisResponse recovers a [Result] from the model's raw text
// output. It never returns an error: failures surface in the result's Error
// field with a truncated diagnostic.
func ParseAnalysisResponse(raw string) *Result {
	result := NewResult()

	candidate, ok := jsonx.Extract(raw)
	if !ok {
		result.Error = "Failed to parse response: " + utils.TruncateString(raw, 100)
		return result
	}

	data, err := jsonx.Parse(candidate)
	if err != nil {
		result.Error = "Failed to parse response: " + err.Error()
		return result
	}

	if exerciseType, ok := data["exercise_type"].(string); ok && exerciseType != "" {
		result.ExerciseType = exerciseType
	}
	if duration, ok := data["duration"].(string); ok && duration != "" {
		result.Duration = duration
	}
	if intensity, ok := data["intensity"].(string); ok {
		result.Intensity = NormalizeIntensity(intensity)
	}
	if errText, ok := data["error"].(string); ok {
		result.Error = errText
	}
	result.CaloriesBurned = asFloat(data["calories_burned"])
	result.METValue = asFloat(data["met_value"])

	return result
}

func asFloat(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}
