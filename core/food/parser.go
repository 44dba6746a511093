package food

import (
	"strconv"

	"github.com/pockeat/pockeat-go/core/jsonx"
	"github.com/pockeat/pockeat-go/internal/utils"
)

// ParseAnalysisResponse recovers an [AnalysisResult] from the model's raw
// text output. It never returns an error: when no JSON can be extracted or
// the candidate cannot be decoded even after repair, the result carries a
// truncated diagnostic in its Error field.
func ParseAnalysisResponse(raw string, defaultFoodName string) *AnalysisResult {
	result := NewAnalysisResult(defaultFoodName)

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

	if name, ok := data["food_name"].(string); ok && name != "" {
		result.FoodName = name
	}
	if errText, ok := data["error"].(string); ok {
		result.Error = errText
	}

	if items, ok := data["ingredients"].([]any); ok {
		for _, item := range items {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}
			name, _ := entry["name"].(string)
			if name == "" {
				name = "Unknown ingredient"
			}
			result.Ingredients = append(result.Ingredients, Ingredient{
				Name:     name,
				Servings: asFloat(entry["servings"]),
			})
		}
	}

	if nutrition, ok := data["nutrition_info"].(map[string]any); ok {
		result.NutritionInfo = NutritionInfo{
			Calories:     asFloat(nutrition["calories"]),
			Protein:      asFloat(nutrition["protein"]),
			Carbs:        asFloat(nutrition["carbs"]),
			Fat:          asFloat(nutrition["fat"]),
			SaturatedFat: asFloat(nutrition["saturated_fat"]),
			Sodium:       asFloat(nutrition["sodium"]),
			Fiber:        asFloat(nutrition["fiber"]),
			Sugar:        asFloat(nutrition["sugar"]),
			Cholesterol:  asFloat(nutrition["cholesterol"]),
		}
		if extras, ok := nutrition["vitamins_and_minerals"].(map[string]any); ok && len(extras) > 0 {
			result.NutritionInfo.VitaminsAndMinerals = make(map[string]float64, len(extras))
			for key, value := range extras {
				result.NutritionInfo.VitaminsAndMinerals[key] = asFloat(value)
			}
		}
	}

	if warnings, ok := data["warnings"].([]any); ok {
		for _, warning := range warnings {
			if text, ok := warning.(string); ok {
				result.Warnings = append(result.Warnings, text)
			}
		}
	}

	result.AddStandardWarnings()
	return result
}

// asFloat coerces a decoded JSON value to float64. Models sometimes quote
// numbers; anything else collapses to zero.
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
