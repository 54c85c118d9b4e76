package domain

import (
	"time"
)

var (
	MessageSuccessGetProfile    = "profile retrieved successfully"
	MessageSuccessUpdateProfile = "profile updated successfully"

	MessageFailedGetProfile    = "failed to retrieve profile"
	MessageFailedUpdateProfile = "failed to update profile"
)

const (
	GoalLeanBulk = "lean_bulk"
	GoalMassGain = "mass_gain"
	GoalStrength = "strength"

	ActivitySedentary   = "sedentary"
	ActivityLight       = "light"
	ActivityModerate    = "moderate"
	ActivityVeryActive  = "very_active"
	ActivityExtraActive = "extra_active"
)

var GoalLabels = map[string]string{
	GoalLeanBulk: "Lean Bulk",
	GoalMassGain: "Mass Gain",
	GoalStrength: "Strength Focus",
}

var ActivityLabels = map[string]string{
	ActivitySedentary:   "Sedentary",
	ActivityLight:       "Light Activity",
	ActivityModerate:    "Moderate Activity",
	ActivityVeryActive:  "Very Active",
	ActivityExtraActive: "Extra Active",
}

type (
	UpdateProfileRequest struct {
		Name           string  `json:"name" validate:"omitempty,max=255"`
		Age            int     `json:"age" validate:"omitempty,min=1,max=130"`
		Weight         float64 `json:"weight" validate:"omitempty,gt=0"`
		Height         float64 `json:"height" validate:"omitempty,gt=0"`
		Goal           string  `json:"goal" validate:"omitempty,oneof=lean_bulk mass_gain strength"`
		ActivityLevel  string  `json:"activity_level" validate:"omitempty,oneof=sedentary light moderate very_active extra_active"`
		TargetCalories float64 `json:"target_calories" validate:"min=0"`
		TargetProtein  float64 `json:"target_protein" validate:"min=0"`
		TargetCarbs    float64 `json:"target_carbs" validate:"min=0"`
		TargetFats     float64 `json:"target_fats" validate:"min=0"`
	}

	// MacroTargets is used for both daily and derived weekly targets.
	MacroTargets struct {
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fats     float64 `json:"fats"`
	}

	ProfileResponse struct {
		ID            string       `json:"id"`
		Name          string       `json:"name"`
		Age           int          `json:"age"`
		Weight        float64      `json:"weight"`
		Height        float64      `json:"height"`
		Goal          string       `json:"goal,omitempty"`
		ActivityLevel string       `json:"activity_level,omitempty"`
		DailyTargets  MacroTargets `json:"daily_targets"`
		WeeklyTargets MacroTargets `json:"weekly_targets"`
		Tokens        int          `json:"tokens"`
		UpdatedAt     time.Time    `json:"updated_at"`
	}
)

func (t MacroTargets) Weekly() MacroTargets {
	return MacroTargets{
		Calories: t.Calories * 7,
		Protein:  t.Protein * 7,
		Carbs:    t.Carbs * 7,
		Fats:     t.Fats * 7,
	}
}
