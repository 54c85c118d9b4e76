package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateMeal  = "meal added successfully"
	MessageSuccessGetMeals    = "meals retrieved successfully"
	MessageSuccessArchiveMeal = "meal archived successfully"
	MessageSuccessGetMeal     = "meal retrieved successfully"

	MessageFailedCreateMeal  = "failed to save meal"
	MessageFailedGetMeals    = "failed to load meals"
	MessageFailedArchiveMeal = "failed to archive meal"

	ErrMealNotFound     = errors.New("meal not found")
	ErrInvalidMealDate  = errors.New("meal date must be a past or current date after 1900-01-01")
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrInvalidStatus    = errors.New("status must be active or all")
	ErrNegativeMacro    = errors.New("macro values must not be negative")
	ErrStoreFailure     = errors.New("meal store failure")
)

const (
	MealStatusActive = "active"
	MealStatusAll    = "all"
)

type (
	CreateMealRequest struct {
		Name        string  `json:"name" validate:"required,max=255"`
		Description string  `json:"description"`
		Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
		Calories    float64 `json:"calories" validate:"min=0"`
		Protein     float64 `json:"protein" validate:"min=0"`
		Carbs       float64 `json:"carbs" validate:"min=0"`
		Fats        float64 `json:"fats" validate:"min=0"`
		Analysis    string  `json:"analysis"`
		// Image is an optional data URL of the photographed meal.
		Image string `json:"image"`
	}

	CreateMealResponse struct {
		ID string `json:"id"`
	}

	ListMealsFilter struct {
		ActiveOnly bool
		From       *time.Time
		To         *time.Time // inclusive
	}

	MealResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description"`
		Date        string    `json:"date"`
		Calories    float64   `json:"calories"`
		Protein     float64   `json:"protein"`
		Carbs       float64   `json:"carbs"`
		Fats        float64   `json:"fats"`
		Analysis    string    `json:"analysis,omitempty"`
		ImageURL    string    `json:"image_url,omitempty"`
		Active      bool      `json:"active"`
		CreatedAt   time.Time `json:"created_at"`
		UpdatedAt   time.Time `json:"updated_at"`
	}
)
