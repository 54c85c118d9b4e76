package analysis

import (
	"BulkBlitz-Backend/domain"
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// UnknownMealName replaces an empty or missing name in a reply.
const UnknownMealName = "Unknown meal"

// ParseResult decodes a completion reply into an AnalysisResult. Numeric fields
// must be JSON numbers; strings such as "450" are rejected.
func ParseResult(raw string) (domain.AnalysisResult, error) {
	text := stripFence(strings.TrimSpace(raw))

	if !strings.HasPrefix(text, "{") {
		return domain.AnalysisResult{}, fmt.Errorf("%w: reply is not a JSON object", domain.ErrMalformedAnalysis)
	}

	var fields struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Calories    *float64 `json:"calories"`
		Protein     *float64 `json:"protein"`
		Carbs       *float64 `json:"carbs"`
		Fats        *float64 `json:"fats"`
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	if err := dec.Decode(&fields); err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("%w: %v", domain.ErrMalformedAnalysis, err)
	}
	if strings.TrimSpace(text[dec.InputOffset():]) != "" {
		return domain.AnalysisResult{}, fmt.Errorf("%w: trailing data after object", domain.ErrMalformedAnalysis)
	}

	result := domain.AnalysisResult{
		Name:        deref(fields.Name),
		Description: deref(fields.Description),
		Calories:    derefNumber(fields.Calories),
		Protein:     derefNumber(fields.Protein),
		Carbs:       derefNumber(fields.Carbs),
		Fats:        derefNumber(fields.Fats),
	}

	if result.Calories < 0 || result.Protein < 0 || result.Carbs < 0 || result.Fats < 0 {
		return domain.AnalysisResult{}, fmt.Errorf("%w: %v", domain.ErrMalformedAnalysis, domain.ErrNegativeMacro)
	}

	result.Name = strings.TrimSpace(result.Name)
	if result.Name == "" {
		result.Name = UnknownMealName
	}

	return result, nil
}

// stripFence removes a surrounding ``` or ```json fence, in any case.
func stripFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if len(text) >= 4 && strings.EqualFold(text[:4], "json") {
		text = text[4:]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefNumber(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
