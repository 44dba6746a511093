package exercise

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Intensity levels a result may carry. Anything else the model reports is
// normalized to "unknown".
const (
	IntensityLow     = "low"
	IntensityMedium  = "medium"
	IntensityHigh    = "high"
	IntensityUnknown = "unknown"
)

// UserMetrics carries optional health data used for calorie calculations.
// Zero values mean "not provided" and the prompt tells the model to assume
// average adult metrics.
type UserMetrics struct {
	WeightKg float64
	HeightCm float64
	Age      int
	Gender   string
}

// Result is the outcome of an exercise analysis. Error is set instead of
// returning a Go error when the model's response could not be understood.
type Result struct {
	ID             string    `json:"id"`
	ExerciseType   string    `json:"exercise_type"`
	CaloriesBurned float64   `json:"calories_burned"`
	Duration       string    `json:"duration"`
	Intensity      string    `json:"intensity"`
	METValue       float64   `json:"met_value"`
	Error          string    `json:"error,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// NewResult returns an unknown-valued result with a fresh ID and timestamp.
func NewResult() *Result {
	return &Result{
		ID:           uuid.NewString(),
		ExerciseType: "unknown",
		Duration:     "unknown",
		Intensity:    IntensityUnknown,
		Timestamp:    time.Now(),
	}
}

// NormalizeIntensity lowercases the model's intensity value and collapses
// anything outside the known levels to "unknown".
func NormalizeIntensity(intensity string) string {
	switch normalized := strings.ToLower(intensity); normalized {
	case IntensityLow, IntensityMedium, IntensityHigh, IntensityUnknown:
		return normalized
	default:
		return IntensityUnknown
	}
}
