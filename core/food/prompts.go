package food

import (
	"fmt"
	"strings"

	"github.com/pockeat/pockeat-go/internal/utils"
)

// jsonFormatBlock is the response schema shared by every food prompt.
const jsonFormatBlock = `{
  "food_name": "string",
  "ingredients": [
    {
      "name": "string",
      "servings": number
    }
  ],
  "nutrition_info": {
    "calories": number,
    "protein": number,
    "carbs": number,
    "fat": number,
    "sodium": number,
    "fiber": number,
    "sugar": number
  },
  "warnings": ["string", "string"]
}`

// jsonErrorBlock is the fallback schema the model is told to use when it
// cannot analyze the input.
func jsonErrorBlock(errorText string) string {
	return fmt.Sprintf(`{
  "error": %q,
  "food_name": "Unknown",
  "ingredients": [],
  "nutrition_info": {
    "calories": 0,
    "protein": 0,
    "carbs": 0,
    "fat": 0,
    "sodium": 0,
    "fiber": 0,
    "sugar": 0
  },
  "warnings": []
}`, errorText)
}

const warningRules = `IMPORTANT: Do not include any comments, annotations or notes in the JSON. Do not use '#' or '//' characters. Only return valid JSON.
For the warnings array:
- Include "High sodium content" (exact text) if sodium exceeds 500mg
- Include "High sugar content" (exact text) if sugar exceeds 20g
If there are no warnings, you can include an empty array [] for warnings.`

func textAnalysisPrompt(description string) string {
	return fmt.Sprintf(`Analyze this food description: "%s"

Please analyze the ingredients and nutritional content based on this description.
If not described, assume a standard serving size and ingredients for 1 person only.

Provide a comprehensive analysis including:
- The name of the food
- A complete list of ingredients with servings composition (in grams) from portion estimation or standard serving size.
- Detailed macronutrition information ONLY of calories, protein, carbs, fat, sodium, fiber, and sugar. No need to display other macro information.
- Add warnings if the food contains high sodium (>500mg) or high sugar (>20g).

BE VERY THOROUGH. YOU WILL BE FIRED. THE CUSTOMER CAN GET POISONED. BE VERY THOROUGH.

Return your response as a strict JSON object with this exact format with NO COMMENTS:
%s

%s

If you cannot identify the food or analyze it properly, use this format:
%s`,
		description, jsonFormatBlock, warningRules, jsonErrorBlock("Description of the issue"))
}

func imageAnalysisPrompt() string {
	return fmt.Sprintf(`You are a food recognition and nutrition analysis expert. Carefully analyze this image and identify any food or meal present.

Please look for:
- Prepared meals
- Individual food items
- Snacks
- Beverages
- Fruits and vegetables
- Packaged food products
- Amount of food items

Even if the image quality is not perfect or the food is partially visible, please do your best to identify it and provide an analysis.

For the identified food, provide a comprehensive analysis including:
- The specific name of the food
- A detailed list of likely ingredients with estimated servings composition in grams, estimate based on size and portion to the best of your ability.
- Detailed macronutrition information ONLY of calories, protein, carbs, fat, sodium, fiber, and sugar. No need to display other macro information.
- Add warnings if the food contains high sodium (>500mg) or high sugar (>20g)

BE VERY THOROUGH. YOU WILL BE FIRED. THE CUSTOMER CAN GET POISONED. BE VERY THOROUGH.
Return your response as a strict JSON object with this exact format with NO COMMENTS:
%s

%s

If absolutely no food can be detected in the image, only then use this format:
%s`,
		jsonFormatBlock, warningRules, jsonErrorBlock("No food detected in image"))
}

func nutritionLabelPrompt(servings float64) string {
	return fmt.Sprintf(`Analyze this nutrition label image. The user will consume %v servings.

Please provide a comprehensive analysis including:
- The name of the food
- A complete list of ingredients with servings composition in grams
- Detailed macronutrition information ONLY of calories, protein, carbs, fat, sodium, fiber, and sugar. No need to display other macro information.
- Add warnings if the food contains high sodium (>500mg) or high sugar (>20g)

Return your response as a strict JSON object with this exact format:
%s

%s

If no nutrition label is detected in the image or you cannot analyze it properly, use this format:
%s`,
		servings, jsonFormatBlock, warningRules, jsonErrorBlock("No nutrition label detected"))
}

func correctionPrompt(previous *AnalysisResult, userComment string) string {
	previousJSON := utils.JSONToString(previous, true)

	return fmt.Sprintf(`You are a food nutrition expert tasked with correcting a food analysis based on user feedback.

ORIGINAL ANALYSIS:
%s

USER CORRECTION: "%s"

INSTRUCTIONS:
1. Carefully analyze the user's correction and determine what specific aspects need to be modified.
2. Consider these possible correction types:
   - Food identity correction (e.g., "this is chicken, not beef")
   - Ingredient additions/removals/adjustments (e.g., "there's no butter" or "add 15g of cheese")
   - Portion size adjustments (e.g., "this is a half portion")
   - Nutritional value corrections (e.g., "calories should be around 350")
   - Special dietary information (e.g., "this is a vegan version")
3. Only modify elements that need correction based on the user's feedback.
4. Keep all other values from the original analysis intact.
5. Maintain reasonable nutritional consistency (e.g., if calories increase, check if macros need adjustment).
6. For standard serving size, use common restaurant or cookbook portions for a single adult.

RESPONSE FORMAT:
Return a valid JSON object with exactly this structure:
%s

WARNING CRITERIA:
- Add "High sodium content" if sodium exceeds 500mg
- Add "High sugar content" if sugar exceeds 20g
- Use empty array [] if no warnings apply

IMPORTANT: Return only the JSON object with no additional text, comments, or explanations.`,
		previousJSON, userComment, jsonFormatBlock)
}

func nutritionLabelCorrectionPrompt(previous *AnalysisResult, userComment string, servings float64) string {
	ingredients := make([]string, 0, len(previous.Ingredients))
	for _, ing := range previous.Ingredients {
		ingredients = append(ingredients, fmt.Sprintf("%s: %vg", ing.Name, ing.Servings))
	}
	nutrition := previous.NutritionInfo

	return fmt.Sprintf(`Original nutrition label analysis (for %v servings):
- Food name: %s
- Ingredients: %s
- Calories: %v
- Protein: %vg
- Carbs: %vg
- Fat: %vg
- Sodium: %vmg
- Fiber: %vg
- Sugar: %vg
- Warnings: %s

User correction comment: "%s"

Please correct and analyze the ingredients and nutritional content based on the user's feedback.
If not described, assume a standard serving size and ingredients for 1 person only.

Provide a comprehensive analysis including:
- The name of the food
- A complete list of ingredients with servings composition (in grams)
- Detailed macronutrition information ONLY of calories, protein, carbs, fat, sodium, fiber, and sugar.
- Add warnings if the food contains high sodium (>500mg) or high sugar (>20g)

Only modify values that need to be changed according to the user's feedback.

The corrected analysis should be for %v servings.

Return your response as a strict JSON object with this exact format:
%s

%s`,
		servings, previous.FoodName, strings.Join(ingredients, ", "),
		nutrition.Calories, nutrition.Protein, nutrition.Carbs, nutrition.Fat,
		nutrition.Sodium, nutrition.Fiber, nutrition.Sugar,
		strings.Join(previous.Warnings, ", "), userComment, servings, jsonFormatBlock, warningRules)
}
