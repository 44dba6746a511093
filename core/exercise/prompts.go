package exercise

import (
	"fmt"
	"strings"

	"github.com/pockeat/pockeat-go/internal/utils"
)

// healthInfoLine renders the user's metrics for the prompt, or a placeholder
// telling the model what to assume when none were provided.
func healthInfoLine(metrics UserMetrics, emptyFallback string) string {
	var parts []string
	if metrics.WeightKg > 0 {
		parts = append(parts, fmt.Sprintf("Weight: %v kg", metrics.WeightKg))
	}
	if metrics.HeightCm > 0 {
		parts = append(parts, fmt.Sprintf("Height: %v cm", metrics.HeightCm))
	}
	if metrics.Age > 0 {
		parts = append(parts, fmt.Sprintf("Age: %d years", metrics.Age))
	}
	if metrics.Gender != "" {
		parts = append(parts, fmt.Sprintf("Gender: %s", metrics.Gender))
	}
	if len(parts) == 0 {
		return emptyFallback
	}
	return strings.Join(parts, ", ")
}

const mifflinStJeorBlock = `For calorie calculations, use the Mifflin-St Jeor equation to first calculate BMR:
- For males: BMR = (10 x weight [kg]) + (6.25 x height [cm]) - (5 x age [years]) + 5
- For females: BMR = (10 x weight [kg]) + (6.25 x height [cm]) - (5 x age [years]) - 161

Then calculate calories burned as: (BMR / 24) x MET value x duration in hours`

func analysisPrompt(description string, metrics UserMetrics) string {
	healthInfo := healthInfoLine(metrics, "Assume average adult metrics for calculations")

	return fmt.Sprintf(`Analyze the following exercise description and provide detailed information.
First, evaluate if the description clearly mentions:
1. The type of exercise (what activity)
2. Duration of the exercise (how long)
3. Intensity of the exercise (how hard)

If ANY of these three elements are missing, return this error format:
{
"error": "Error in describing exercise",
"exercise_type": "unknown",
"calories_burned": 0,
"duration": "unknown",
"intensity": "unknown",
"met_value": 0.0
}

Otherwise, if all elements are present, return your response as a JSON object with this structure (NOTE: Choose exactly ONE type of intensity):
{
"exercise_type": "Concise name of exercise based on description",
"calories_burned": 0,
"duration": "xx seconds/minutes/hours",
"intensity": "Low/Medium/High",
"met_value": 0.0
}

Exercise description: %s

User health data: %s

%s

Please identify the appropriate MET value for the exercise and include it in the response.`,
		description, healthInfo, mifflinStJeorBlock)
}

func correctionPrompt(previous *Result, userComment string, metrics UserMetrics) string {
	previousJSON := utils.JSONToString(previous, true)
	healthInfo := healthInfoLine(metrics, "No health metrics provided")

	return fmt.Sprintf(`Here is the previous exercise analysis:
%s

The user has provided this feedback to correct or improve the analysis:
"%s"

User health data: %s

Please correct the analysis based on this feedback. Return your corrected response as a complete JSON object with the same structure as the original analysis.
Estimate using a concrete proven formula to get the calories burned.
IMPORTANT: If the pace increases, you MUST INCREASE the MET. If the pace decreases, you MUST MAINTAIN the MET. UNLESS the user feedback explicitly mentions a different MET value.

IMPORTANT: When user feedback only mentions correcting one parameter (e.g., only duration or only distance):
- If only duration is corrected, assume the same distance as originally stated
- If only distance is corrected, assume the same duration as originally stated

%s

RETURN THE CORRECTED ANALYSIS JSON ONLY`,
		previousJSON, userComment, healthInfo, mifflinStJeorBlock)
}
