package fatsecret

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pockeat/pockeat-go/core/food"
)

// kJPerKcal converts kilojoules to kilocalories when the page only lists
// energy in kJ.
const kJPerKcal = 4.184

// ParseFloat extracts a numeric value from a nutrient cell, accepting the
// comma decimal separator used on the Indonesian site. Unparseable input
// yields zero.
func ParseFloat(s string) float64 {
	var cleaned strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) || r == '.' || r == ',' {
			cleaned.WriteRune(r)
		}
	}
	if cleaned.Len() == 0 {
		return 0
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(cleaned.String(), ",", "."), 64)
	if err != nil {
		return 0
	}
	return value
}

// parseNutritionMarkdown scans the Markdown rendering of a FatSecret food
// page and pairs Indonesian nutrient labels with the value that follows
// them. It reports found=false when no nutrient could be read at all.
func parseNutritionMarkdown(markdown string) (food.NutritionInfo, bool) {
	var info food.NutritionInfo
	extras := map[string]float64{}
	var energyKJ float64
	found := false

	pendingLabel := ""
	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSpace(strings.Trim(strings.TrimSpace(line), "|*#"))
		if line == "" {
			continue
		}

		if !strings.ContainsAny(line, "0123456789") {
			pendingLabel = strings.ToLower(line)
			continue
		}

		value := ParseFloat(line)
		lower := strings.ToLower(line)
		label := pendingLabel
		pendingLabel = ""

		switch {
		case strings.Contains(label, "energi"):
			if strings.Contains(lower, "kj") {
				extras["energy_kj"] = value
				energyKJ = value
				found = true
			} else if strings.Contains(lower, "kkal") {
				info.Calories = value
				found = true
			}
		// A bare kcal value follows the kJ row on pages that list both.
		case strings.Contains(lower, "kkal") && info.Calories == 0:
			info.Calories = value
			found = true
		case strings.Contains(label, "lemak tak jenuh ganda"):
			extras["polyunsaturated_fat"] = value
			found = true
		case strings.Contains(label, "lemak tak jenuh tunggal"):
			extras["monounsaturated_fat"] = value
			found = true
		case strings.Contains(label, "lemak jenuh"):
			info.SaturatedFat = value
			found = true
		case strings.Contains(label, "lemak"):
			info.Fat = value
			found = true
		case strings.Contains(label, "karbohidrat"):
			info.Carbs = value
			found = true
		case strings.Contains(label, "protein"):
			info.Protein = value
			found = true
		case strings.Contains(label, "serat"):
			info.Fiber = value
			found = true
		case strings.Contains(label, "gula"):
			info.Sugar = value
			found = true
		case strings.Contains(label, "natrium"), strings.Contains(label, "sodium"):
			info.Sodium = value
			found = true
		case strings.Contains(label, "kolesterol"):
			info.Cholesterol = value
			found = true
		case strings.Contains(label, "kalium"):
			extras["potassium"] = value
			found = true
		}
	}

	if info.Calories == 0 && energyKJ > 0 {
		info.Calories = energyKJ / kJPerKcal
	}
	if len(extras) > 0 {
		info.VitaminsAndMinerals = extras
	}
	return info, found
}
