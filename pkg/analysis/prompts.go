package analysis

import (
	"fmt"
	"strings"
)

const (
	textSystemPrompt = "You are a nutrition expert specializing in bodybuilding and muscle gain. Analyze meals and provide accurate nutritional information."

	visionSystemPrompt = "You are a nutrition expert specializing in bodybuilding and muscle gain. Analyze meals and provide accurate nutritional information optimized for muscle gain tracking."

	visionPrompt = "Analyze this meal and provide detailed nutritional information. Include a descriptive name and detailed description. Focus on accuracy for muscle gain tracking. Include portion sizes if visible."

	structureSystemPrompt = "Convert the meal analysis into a structured JSON format. Return ONLY a JSON object with these exact fields: name (string), description (string), calories (number), protein (number), carbs (number), fats (number). Ensure all numeric values are numbers, not strings."

	textTemperature = 0.3
	visionMaxTokens = 500
)

func textPrompt(description string) string {
	return fmt.Sprintf(`Analyze this meal and provide nutritional information optimized for muscle gain:

%s

Return a JSON object with these fields:
{
  "name": "Brief name for the meal",
  "calories": number,
  "protein": number (in grams),
  "carbs": number (in grams),
  "fats": number (in grams)
}`, description)
}

func visionPromptWithHints(labels []string) string {
	if len(labels) == 0 {
		return visionPrompt
	}
	return fmt.Sprintf("%s\n\nAn image classifier detected these items, which may be incomplete or wrong: %s.",
		visionPrompt, strings.Join(labels, ", "))
}
