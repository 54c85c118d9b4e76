package domain

import (
	"errors"
)

var (
	MessageFailedAnalyzeMeal      = "Failed to analyze meal"
	MessageFailedAnalyzeMealImage = "Failed to analyze meal image"

	ErrAnalysisFailed     = errors.New("analysis failed")
	ErrMalformedAnalysis  = errors.New("malformed analysis response")
	ErrInvalidImage       = errors.New("invalid image data")
	ErrCompletionFailed   = errors.New("completion request failed")
	ErrMissingCredentials = errors.New("completion service credentials not configured")
)

type (
	AnalyzeMealRequest struct {
		Description string `json:"description" validate:"required"`
	}

	AnalyzeMealImageRequest struct {
		Image string `json:"image" validate:"required"`
	}

	// AnalysisResult is the normalized shape every analysis path produces. The
	// image endpoint answers with all six fields.
	AnalysisResult struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Calories    float64 `json:"calories"`
		Protein     float64 `json:"protein"`
		Carbs       float64 `json:"carbs"`
		Fats        float64 `json:"fats"`
	}

	// MealEstimate is the description-free body of the text endpoint.
	MealEstimate struct {
		Name     string  `json:"name"`
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fats     float64 `json:"fats"`
	}

	// Narrative is the free-form prose produced by the vision stage.
	Narrative string
)

func (r AnalysisResult) Estimate() MealEstimate {
	return MealEstimate{
		Name:     r.Name,
		Calories: r.Calories,
		Protein:  r.Protein,
		Carbs:    r.Carbs,
		Fats:     r.Fats,
	}
}
