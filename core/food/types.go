package food

import (
	"time"

	"github.com/google/uuid"
)

// Warning strings the analysis prompts instruct the model to emit. The
// exact text matters: clients match on it.
const (
	HighSodiumWarning = "High sodium content"
	HighSugarWarning  = "High sugar content"
)

// Thresholds above which the standard warnings apply.
const (
	HighSodiumThresholdMg = 500.0
	HighSugarThresholdG   = 20.0
)

// Ingredient is a single ingredient with its serving amount in grams.
type Ingredient struct {
	Name     string  `json:"name"`
	Servings float64 `json:"servings"`
}

// NutritionInfo holds per-serving macronutrient values. Sodium and
// cholesterol are in milligrams, calories in kcal, everything else in grams.
type NutritionInfo struct {
	Calories            float64            `json:"calories"`
	Protein             float64            `json:"protein"`
	Carbs               float64            `json:"carbs"`
	Fat                 float64            `json:"fat"`
	SaturatedFat        float64            `json:"saturated_fat,omitempty"`
	Sodium              float64            `json:"sodium"`
	Fiber               float64            `json:"fiber"`
	Sugar               float64            `json:"sugar"`
	Cholesterol         float64            `json:"cholesterol,omitempty"`
	VitaminsAndMinerals map[string]float64 `json:"vitamins_and_minerals,omitempty"`
}

// AnalysisResult is the outcome of a food analysis. Error is set instead of
// returning a Go error when the model's response could not be understood.
type AnalysisResult struct {
	ID            string        `json:"id"`
	FoodName      string        `json:"food_name"`
	Ingredients   []Ingredient  `json:"ingredients"`
	NutritionInfo NutritionInfo `json:"nutrition_info"`
	Warnings      []string      `json:"warnings"`
	Error         string        `json:"error,omitempty"`
	Timestamp     time.Time     `json:"timestamp"`
}

// NewAnalysisResult returns an empty result with a fresh ID and timestamp.
func NewAnalysisResult(foodName string) *AnalysisResult {
	return &AnalysisResult{
		ID:          uuid.NewString(),
		FoodName:    foodName,
		Ingredients: []Ingredient{},
		Warnings:    []string{},
		Timestamp:   time.Now(),
	}
}

// AddStandardWarnings appends the high-sodium and high-sugar warnings when
// the nutrition values exceed their thresholds. Warnings already present are
// not duplicated.
func (r *AnalysisResult) AddStandardWarnings() {
	if r.NutritionInfo.Sodium > HighSodiumThresholdMg && !r.hasWarning(HighSodiumWarning) {
		r.Warnings = append(r.Warnings, HighSodiumWarning)
	}
	if r.NutritionInfo.Sugar > HighSugarThresholdG && !r.hasWarning(HighSugarWarning) {
		r.Warnings = append(r.Warnings, HighSugarWarning)
	}
}

func (r *AnalysisResult) hasWarning(warning string) bool {
	for _, w := range r.Warnings {
		if w == warning {
			return true
		}
	}
	return false
}
